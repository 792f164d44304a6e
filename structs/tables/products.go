package tables

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	tableName struct{}  `bun:"table:categories,alias:cat"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,unique,notnull" json:"name" validate:"required,min=2,max=100"`

	Subcategories []*Subcategory `bun:"rel:has-many,join:id=category_id" json:"subcategories,omitempty"`
}

type Subcategory struct {
	tableName  struct{}  `bun:"table:subcategories,alias:sc"`
	Id         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CategoryId uuid.UUID `bun:"category_id,notnull,type:uuid" json:"category_id" validate:"required"`
	Name       string    `bun:"name,notnull" json:"name" validate:"required,min=2,max=100"`

	Category *Category `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
}

type Product struct {
	tableName   struct{}  `bun:"table:products,alias:p"`
	Id          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Description string    `bun:"description,notnull" json:"description" validate:"required,min=2,max=300"`
	// Nullable: uncategorized products are allowed.
	SubcategoryId *uuid.UUID `bun:"subcategory_id,type:uuid" json:"subcategory_id,omitempty"`

	// Prices in cents. Cost is what the shop pays the distributor.
	PriceCents int64 `bun:"price_cents,notnull" json:"price_cents" validate:"required,gt=0"`
	CostCents  int64 `bun:"cost_cents,notnull" json:"cost_cents" validate:"required,gt=0"`

	// Stock never drops below zero; decrements are guarded in SQL.
	Stock int `bun:"stock,notnull,default:0" json:"stock" validate:"gte=0"`

	Image []byte `bun:"image,type:bytea" json:"-"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Subcategory *Subcategory `bun:"rel:belongs-to,join:subcategory_id=id" json:"subcategory,omitempty"`
}
