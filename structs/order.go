package structs

import (
	"time"

	"github.com/google/uuid"
)

// OrderRequest is an employee-entered order: the customer is identified by
// email and items reference products by id.
type OrderRequest struct {
	CustomerEmail string         `json:"customer_email" validate:"required,email"`
	Products      map[string]int `json:"products" validate:"required,min=1"` // productID -> quantity
}

// OrderSummary is one row of an order history listing. The total uses the
// product's current price, matching how the back office reports totals.
type OrderSummary struct {
	ID           uuid.UUID `json:"id"`
	OrderedAt    time.Time `json:"ordered_at"`
	CustomerName string    `json:"customer_name,omitempty"`
	Email        string    `json:"email,omitempty"`
	DiscountPct  int       `json:"discount_pct"`
	TotalCents   int64     `json:"total_cents"`
}

type OrderLineDetail struct {
	Product        string `json:"product"`
	Quantity       int    `json:"quantity"`
	UnitCents      int64  `json:"unit_cents"`
	LineTotalCents int64  `json:"line_total_cents"`
}

type OrderDetail struct {
	ID           uuid.UUID         `json:"id"`
	OrderedAt    time.Time         `json:"ordered_at"`
	CustomerName string            `json:"customer_name,omitempty"`
	Email        string            `json:"email,omitempty"`
	DiscountPct  int               `json:"discount_pct"`
	TotalCents   int64             `json:"total_cents"`
	Items        []OrderLineDetail `json:"items"`
}
