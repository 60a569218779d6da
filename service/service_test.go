package service

import (
	"errors"
	"testing"

	models "github.com/swastikaa0/GroceryWebDevelopment-sub001/model"
	"github.com/swastikaa0/GroceryWebDevelopment-sub001/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	catalog, err := store.NewCatalog([]models.Product{
		{ID: "p1", Name: "Brown Rice 1kg", Category: "Grains", Price: 2.50, OriginalPrice: 3.00, Rating: 4, ReviewCount: 134},
		{ID: "p2", Name: "Basmati Rice 5kg", Category: "Grains", Price: 10.00, OriginalPrice: 11.00, Rating: 5, ReviewCount: 267},
		{ID: "p3", Name: "Whole Milk 1L", Category: "Dairy", Price: 1.00, OriginalPrice: 1.00, Rating: 5, ReviewCount: 423},
	})
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	return NewService(catalog, store.NewCartStore())
}

func TestListAndSearchMapping(t *testing.T) {
	svc := newTestService(t)

	all := svc.ListProducts()
	if len(all) != 3 || all[0].ID != "p1" || all[2].ID != "p3" {
		t.Fatalf("unexpected listing: %+v", all)
	}
	if all[0].OriginalPrice != 3.00 || all[0].Rating != 4 {
		t.Fatalf("DTO lost fields: %+v", all[0])
	}

	rice := svc.SearchProducts("rice")
	if len(rice) != 2 || rice[0].Name != "Brown Rice 1kg" || rice[1].Name != "Basmati Rice 5kg" {
		t.Fatalf("unexpected search result: %+v", rice)
	}

	grains := svc.ProductsByCategory("Grains")
	if len(grains) != 2 {
		t.Fatalf("expected 2 Grains products, got %d", len(grains))
	}

	if got := svc.SearchProducts("nothing matches this"); len(got) != 0 {
		t.Fatalf("expected empty (non-nil) slice, got %v", got)
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc := newTestService(t)

	if err := svc.AddToCart("ghost", 1); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// the failed add must leave the cart untouched
	sum, err := svc.CartSummary()
	if err != nil {
		t.Fatalf("CartSummary failed: %v", err)
	}
	if sum.ItemCount != 0 {
		t.Fatalf("expected empty cart, got %+v", sum)
	}
}

func TestAddToCartInvalidQuantity(t *testing.T) {
	svc := newTestService(t)

	if err := svc.AddToCart("p1", 0); !errors.Is(err, store.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := svc.SetCartQuantity("p1", -2); !errors.Is(err, store.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestCartSummary(t *testing.T) {
	svc := newTestService(t)

	if err := svc.AddToCart("p2", 1); err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}
	if err := svc.AddToCart("p1", 2); err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}

	sum, err := svc.CartSummary()
	if err != nil {
		t.Fatalf("CartSummary failed: %v", err)
	}
	if sum.ItemCount != 3 {
		t.Fatalf("expected item count 3, got %d", sum.ItemCount)
	}
	if want := 2*2.50 + 1*10.00; sum.Subtotal != want {
		t.Fatalf("expected subtotal %v, got %v", want, sum.Subtotal)
	}
	// lines come back in catalog order regardless of add order
	if len(sum.Lines) != 2 || sum.Lines[0].ProductID != "p1" || sum.Lines[1].ProductID != "p2" {
		t.Fatalf("unexpected lines: %+v", sum.Lines)
	}
	if sum.Lines[0].Name != "Brown Rice 1kg" || sum.Lines[0].LineTotal != 5.00 {
		t.Fatalf("unexpected first line: %+v", sum.Lines[0])
	}
}

func TestSetCartQuantityZeroClearsStaleLine(t *testing.T) {
	svc := newTestService(t)

	// quantity 0 succeeds even for ids the catalog does not know
	if err := svc.SetCartQuantity("ghost", 0); err != nil {
		t.Fatalf("SetCartQuantity(ghost, 0) failed: %v", err)
	}
	// but a positive quantity for an unknown id is rejected
	if err := svc.SetCartQuantity("ghost", 1); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveFromCart(t *testing.T) {
	svc := newTestService(t)

	if err := svc.AddToCart("p1", 1); err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}
	svc.RemoveFromCart("p1")
	svc.RemoveFromCart("p1") // second remove is a no-op

	sum, err := svc.CartSummary()
	if err != nil {
		t.Fatalf("CartSummary failed: %v", err)
	}
	if sum.ItemCount != 0 || len(sum.Lines) != 0 {
		t.Fatalf("expected empty summary, got %+v", sum)
	}
}

func TestGetProduct(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.GetProduct("p3")
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if p.Name != "Whole Milk 1L" || p.Price != 1.00 {
		t.Fatalf("unexpected product: %+v", p)
	}
	if _, err := svc.GetProduct("nope"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
