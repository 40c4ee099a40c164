package models

// CheckoutItem is one entry of a checkout request: a loose snapshot of a cart
// item as serialized by the storefront client.
type CheckoutItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Quantity    int     `json:"quantity,omitempty"`
}

type CheckoutRequest struct {
	Items         []CheckoutItem `json:"items"`
	CustomerEmail string         `json:"customerEmail,omitempty"`
}

// CheckoutResponse carries the hosted checkout page the client redirects to.
type CheckoutResponse struct {
	URL string `json:"url"`
}
