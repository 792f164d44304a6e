package tables

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	tableName  struct{}   `bun:"table:orders,alias:o"`
	Id         uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CustomerId uuid.UUID  `bun:"customer_id,notnull,type:uuid" json:"customer_id" validate:"required"`
	EmployeeId *uuid.UUID `bun:"employee_id,type:uuid" json:"employee_id,omitempty"` // Nullable for self-service orders

	// Discount applied at checkout, snapshotted so later loyalty changes
	// never rewrite history.
	DiscountPct int       `bun:"discount_pct,notnull,default:0" json:"discount_pct"`
	OrderedAt   time.Time `bun:"ordered_at,notnull,default:now()" json:"ordered_at"`

	Customer *Customer    `bun:"rel:belongs-to,join:customer_id=id" json:"customer,omitempty"`
	Employee *Employee    `bun:"rel:belongs-to,join:employee_id=id" json:"employee,omitempty"`
	Lines    []*OrderLine `bun:"rel:has-many,join:id=order_id" json:"lines,omitempty"`
}

type OrderLine struct {
	tableName struct{}  `bun:"table:order_lines,alias:ol"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderId   uuid.UUID `bun:"order_id,notnull,type:uuid" json:"order_id" validate:"required"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id" validate:"required"`
	Quantity  int       `bun:"quantity,notnull" json:"quantity" validate:"required,min=1"`

	// Snapshot of pricing at time of order
	UnitPriceCents int64 `bun:"unit_price_cents,notnull" json:"unit_price_cents"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
}
