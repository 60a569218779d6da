package models

// CartItem exists only while its quantity is positive; a mutation that would
// drop the quantity to zero removes the item instead.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart maps product id to the item stored for it. Snapshots handed to
// observers are copies; mutating one has no effect on the store.
type Cart map[string]CartItem
