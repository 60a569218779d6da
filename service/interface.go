package service

import (
	models "github.com/swastikaa0/GroceryWebDevelopment-sub001/model"
)

type ServiceInterface interface {
	ListProducts() []ProductDTO
	SearchProducts(query string) []ProductDTO
	ProductsByCategory(category string) []ProductDTO
	GetProduct(id string) (ProductDTO, error)
	AddToCart(productID string, qty int) error
	RemoveFromCart(productID string)
	SetCartQuantity(productID string, qty int) error
	CartSummary() (CartSummaryDTO, error)
	Register(form models.RegistrationForm) (models.RegistrationForm, error)
}
