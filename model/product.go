package models

// Product is a single purchasable item. Products are constructed once (by the
// data source) and never mutated; the catalog is their sole owner.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	Rating        int     `json:"rating"`
	ReviewCount   int     `json:"review_count"`
	Image         string  `json:"image"`
}
