package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	models "github.com/swastikaa0/GroceryWebDevelopment-sub001/model"
)

// ErrInvalidQuantity is returned when a cart mutator receives a quantity it
// cannot apply (non-positive for AddItem, negative for SetQuantity).
var ErrInvalidQuantity = errors.New("invalid quantity")

// ProductResolver resolves a product id to its current product record. The
// Catalog satisfies it; cart state deliberately stores no prices so that a
// price change in the catalog is reflected in the next subtotal.
type ProductResolver interface {
	GetByID(id string) (models.Product, error)
}

type subscriber struct {
	id uuid.UUID
	fn func(models.Cart)
}

// CartStore owns the cart for a session. Every page reads and mutates the one
// shared instance instead of keeping its own counter. Mutations validate
// before touching state and notify subscribers exactly once after commit, in
// registration order.
//
// A single mutex guards the cart because the HTTP layer serves requests on
// multiple goroutines. Callbacks run with the lock held, so an observer must
// not call back into the store.
type CartStore struct {
	mu    sync.Mutex
	items map[string]int // product id -> quantity, always >= 1
	subs  []subscriber
}

func NewCartStore() *CartStore {
	return &CartStore{items: make(map[string]int)}
}

// AddItem adds qty of a product to the cart, merging with any existing entry.
func (s *CartStore) AddItem(productID string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[productID] += qty
	s.notifyLocked()
	return nil
}

// RemoveItem deletes the product's cart entry. Removing an absent product is
// a no-op and does not notify.
func (s *CartStore) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[productID]; !ok {
		return
	}
	delete(s.items, productID)
	s.notifyLocked()
}

// SetQuantity replaces the stored quantity. Zero is equivalent to RemoveItem;
// negative quantities are rejected before any state changes.
func (s *CartStore) SetQuantity(productID string, qty int) error {
	if qty < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}
	if qty == 0 {
		s.RemoveItem(productID)
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[productID] = qty
	s.notifyLocked()
	return nil
}

// ItemCount returns the sum of quantities across the cart, 0 when empty.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, qty := range s.items {
		n += qty
	}
	return n
}

// Items returns a snapshot of the cart.
func (s *CartStore) Items() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subtotal sums quantity x price over the cart, resolving each price through
// the supplied resolver at call time. A product id that no longer resolves
// fails the whole call; no partial total is returned.
func (s *CartStore) Subtotal(resolver ProductResolver) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for id, qty := range s.items {
		p, err := resolver.GetByID(id)
		if err != nil {
			return 0, fmt.Errorf("cart item %s: %w", id, err)
		}
		total += float64(qty) * p.Price
	}
	return total, nil
}

// Subscribe registers an observer called synchronously after every successful
// mutation with a fresh cart snapshot. The returned id deregisters it.
func (s *CartStore) Subscribe(fn func(models.Cart)) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return id
}

// Unsubscribe removes the observer registered under id, if any.
func (s *CartStore) Unsubscribe(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// notifyLocked invokes subscribers in registration order. Callers hold mu.
func (s *CartStore) notifyLocked() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for _, sub := range s.subs {
		sub.fn(snap)
	}
}

func (s *CartStore) snapshotLocked() models.Cart {
	snap := make(models.Cart, len(s.items))
	for id, qty := range s.items {
		snap[id] = models.CartItem{ProductID: id, Quantity: qty}
	}
	return snap
}
