package models

import (
	"time"

	"github.com/google/uuid"
)

type CartEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (e CartEntry) Subtotal() float64 {
	return e.Product.Price * float64(e.Quantity)
}

type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

type CartResponse struct {
	Items          []CartLine `json:"items"`
	TotalItems     int        `json:"total_items"`
	TotalPrice     float64    `json:"total_price"`
	FormattedTotal string     `json:"formatted_total"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

// Quantity is a pointer so an explicit zero (remove) can be told apart from a
// missing field.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type CheckoutConfirmation struct {
	ID             uuid.UUID `json:"id"`
	TotalItems     int       `json:"total_items"`
	TotalPrice     float64   `json:"total_price"`
	FormattedTotal string    `json:"formatted_total"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}
