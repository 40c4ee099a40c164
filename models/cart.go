package models

// Product is a catalog entry as presented to the cart. The catalog owns
// products; the cart never mutates them.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
}

// CartItem is a product plus the quantity selected. A cart holds at most one
// CartItem per product ID.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartState is the full cart contents plus the panel visibility flag.
// Consumers only ever receive copies; the store owns the canonical state.
type CartState struct {
	Items  []CartItem `json:"items"`
	IsOpen bool       `json:"isOpen"`
}
