package tables

import (
	"time"

	"github.com/google/uuid"
)

type Distributor struct {
	tableName    struct{}  `bun:"table:distributors,alias:d"`
	Id           uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name         string    `bun:"name,unique,notnull" json:"name" validate:"required,min=2,max=200"`
	ContactEmail string    `bun:"contact_email" json:"contact_email,omitempty" validate:"omitempty,email"`
	Phone        string    `bun:"phone" json:"phone,omitempty"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

type Delivery struct {
	tableName     struct{}  `bun:"table:deliveries,alias:del"`
	Id            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	DistributorId uuid.UUID `bun:"distributor_id,notnull,type:uuid" json:"distributor_id" validate:"required"`
	EmployeeId    uuid.UUID `bun:"employee_id,notnull,type:uuid" json:"employee_id" validate:"required"`
	DeliveredAt   time.Time `bun:"delivered_at,notnull,default:now()" json:"delivered_at"`

	Distributor *Distributor    `bun:"rel:belongs-to,join:distributor_id=id" json:"distributor,omitempty"`
	Employee    *Employee       `bun:"rel:belongs-to,join:employee_id=id" json:"employee,omitempty"`
	Lines       []*DeliveryLine `bun:"rel:has-many,join:id=delivery_id" json:"lines,omitempty"`
}

type DeliveryLine struct {
	tableName  struct{}  `bun:"table:delivery_lines,alias:dl"`
	Id         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	DeliveryId uuid.UUID `bun:"delivery_id,notnull,type:uuid" json:"delivery_id" validate:"required"`
	ProductId  uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id" validate:"required"`
	Quantity   int       `bun:"quantity,notnull" json:"quantity" validate:"required,min=1"`

	// Snapshot of pricing at time of delivery
	UnitPriceCents int64 `bun:"unit_price_cents,notnull" json:"unit_price_cents"`
	UnitCostCents  int64 `bun:"unit_cost_cents,notnull" json:"unit_cost_cents"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
}
