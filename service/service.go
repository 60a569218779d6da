package service

import (
	"iter"

	models "github.com/swastikaa0/GroceryWebDevelopment-sub001/model"
	"github.com/swastikaa0/GroceryWebDevelopment-sub001/store"
)

// Service fronts the catalog and the cart for the HTTP layer: it validates
// input, resolves product ids, and maps domain values onto response DTOs.
type Service struct {
	catalog *store.Catalog
	cart    *store.CartStore
}

func NewService(catalog *store.Catalog, cart *store.CartStore) *Service {
	return &Service{catalog: catalog, cart: cart}
}

func (s *Service) ListProducts() []ProductDTO {
	return collect(s.catalog.List())
}

func (s *Service) SearchProducts(query string) []ProductDTO {
	return collect(s.catalog.Search(query))
}

func (s *Service) ProductsByCategory(category string) []ProductDTO {
	return collect(s.catalog.FilterByCategory(category))
}

func (s *Service) GetProduct(id string) (ProductDTO, error) {
	p, err := s.catalog.GetByID(id)
	if err != nil {
		return ProductDTO{}, err
	}
	return toProductDTO(p), nil
}

// AddToCart checks the product exists before touching the cart, so a bad id
// leaves cart state untouched.
func (s *Service) AddToCart(productID string, qty int) error {
	if _, err := s.catalog.GetByID(productID); err != nil {
		return err
	}
	return s.cart.AddItem(productID, qty)
}

func (s *Service) RemoveFromCart(productID string) {
	s.cart.RemoveItem(productID)
}

// SetCartQuantity replaces a cart line's quantity. Zero clears the line, and
// is allowed even for ids no longer in the catalog so stale lines can always
// be removed.
func (s *Service) SetCartQuantity(productID string, qty int) error {
	if qty > 0 {
		if _, err := s.catalog.GetByID(productID); err != nil {
			return err
		}
	}
	return s.cart.SetQuantity(productID, qty)
}

// CartSummary resolves every cart line against the catalog and returns the
// lines with the derived item count and subtotal.
func (s *Service) CartSummary() (CartSummaryDTO, error) {
	subtotal, err := s.cart.Subtotal(s.catalog)
	if err != nil {
		return CartSummaryDTO{}, err
	}
	items := s.cart.Items()
	sum := CartSummaryDTO{
		Lines:     make([]CartLineDTO, 0, len(items)),
		ItemCount: s.cart.ItemCount(),
		Subtotal:  subtotal,
	}
	// catalog order keeps the response stable across calls
	for p := range s.catalog.List() {
		it, ok := items[p.ID]
		if !ok {
			continue
		}
		sum.Lines = append(sum.Lines, CartLineDTO{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  it.Quantity,
			UnitPrice: p.Price,
			LineTotal: float64(it.Quantity) * p.Price,
		})
	}
	return sum, nil
}

// Register validates the form; on success the caller redirects to login.
func (s *Service) Register(form models.RegistrationForm) (models.RegistrationForm, error) {
	return ValidateRegistration(form)
}

func collect(seq iter.Seq[models.Product]) []ProductDTO {
	out := []ProductDTO{}
	for p := range seq {
		out = append(out, toProductDTO(p))
	}
	return out
}

func toProductDTO(p models.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		Image:         p.Image,
	}
}

// DTOs
type ProductDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	Rating        int     `json:"rating"`
	ReviewCount   int     `json:"review_count"`
	Image         string  `json:"image,omitempty"`
}

type CartLineDTO struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type CartSummaryDTO struct {
	Lines     []CartLineDTO `json:"items"`
	ItemCount int           `json:"item_count"`
	Subtotal  float64       `json:"subtotal"`
}
