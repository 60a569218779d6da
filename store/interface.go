package store

import (
	models "github.com/swastikaa0/GroceryWebDevelopment-sub001/model"
)

// ProductSource supplies the catalog contents. It is queried once at startup;
// the catalog built from it is treated as immutable for the session.
type ProductSource interface {
	FetchProducts() ([]models.Product, error)
	Close() error
}
