package store

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	models "github.com/swastikaa0/GroceryWebDevelopment-sub001/model"
)

// ErrNotFound is returned when a product id does not resolve in the catalog.
var ErrNotFound = errors.New("product not found")

// Catalog holds the fixed set of purchasable products for a session. It is
// populated once and never mutated afterwards, so reads need no locking.
type Catalog struct {
	products []models.Product
	index    map[string]int // id -> position in products
}

// NewCatalog builds a catalog from products in the given order. Each product
// is checked once here; after that the catalog trusts its contents.
func NewCatalog(products []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]models.Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q: empty id", p.Name)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %q: negative price %v", p.ID, p.Price)
		}
		if p.OriginalPrice < p.Price {
			return nil, fmt.Errorf("product %q: original price %v below price %v", p.ID, p.OriginalPrice, p.Price)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return nil, fmt.Errorf("product %q: rating %d out of range", p.ID, p.Rating)
		}
		if p.ReviewCount < 0 {
			return nil, fmt.Errorf("product %q: negative review count %d", p.ID, p.ReviewCount)
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// List yields every product in catalog order. The sequence is restartable:
// ranging over it again starts from the beginning.
func (c *Catalog) List() iter.Seq[models.Product] {
	return func(yield func(models.Product) bool) {
		for _, p := range c.products {
			if !yield(p) {
				return
			}
		}
	}
}

// Search yields products whose name contains query as a case-insensitive
// substring, in catalog order. An empty query matches everything.
func (c *Catalog) Search(query string) iter.Seq[models.Product] {
	q := strings.ToLower(query)
	return func(yield func(models.Product) bool) {
		for _, p := range c.products {
			if !strings.Contains(strings.ToLower(p.Name), q) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// FilterByCategory yields products whose category matches exactly
// (case-sensitive), in catalog order.
func (c *Catalog) FilterByCategory(category string) iter.Seq[models.Product] {
	return func(yield func(models.Product) bool) {
		for _, p := range c.products {
			if p.Category != category {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// GetByID returns the product with the given id or ErrNotFound.
func (c *Catalog) GetByID(id string) (models.Product, error) {
	i, ok := c.index[id]
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c.products[i], nil
}

// Len reports the number of products in the catalog.
func (c *Catalog) Len() int { return len(c.products) }
