package structs

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryRequest records an incoming shipment from a distributor,
// identified by name the way the back-office form submits it.
type DeliveryRequest struct {
	DistributorName string         `json:"distributor_name" validate:"required,min=2,max=200"`
	Products        map[string]int `json:"products" validate:"required,min=1"` // productID -> quantity
}

type DeliverySummary struct {
	ID              uuid.UUID `json:"id"`
	Distributor     string    `json:"distributor"`
	DeliveredAt     time.Time `json:"delivered_at"`
	TotalPriceCents int64     `json:"total_price_cents"`
	TotalCostCents  int64     `json:"total_cost_cents"`
}

type DeliveryLineDetail struct {
	Product        string `json:"product"`
	Quantity       int    `json:"quantity"`
	UnitCents      int64  `json:"unit_cents"`
	CostCents      int64  `json:"cost_cents"`
	LinePriceCents int64  `json:"line_price_cents"`
	LineCostCents  int64  `json:"line_cost_cents"`
}

type DeliveryDetail struct {
	ID          uuid.UUID            `json:"id"`
	Distributor string               `json:"distributor"`
	DeliveredAt time.Time            `json:"delivered_at"`
	Items       []DeliveryLineDetail `json:"items"`
}

type DistributorRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=200"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"omitempty,max=20"`
}
