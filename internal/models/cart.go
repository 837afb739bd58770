package models

// CartItem is a snapshot of a product at the time it was added, plus a
// quantity. Later edits to the source product do not propagate here.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart is the wire shape of one subject's cart with derived totals.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse pairs the updated cart with the confirmation message the
// storefront surfaces as a toast.
type CartResponse struct {
	Message string `json:"message,omitempty"`
	Cart    Cart   `json:"cart"`
}
