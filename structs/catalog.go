package structs

import "github.com/google/uuid"

type ProductView struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category,omitempty"`
	Subcategory string    `json:"subcategory,omitempty"`
	HasImage    bool      `json:"has_image"`
}

// ProductAdminView adds the fields only the back office sees.
type ProductAdminView struct {
	ProductView
	CostCents     int64      `json:"cost_cents"`
	SubcategoryID *uuid.UUID `json:"subcategory_id,omitempty"`
}

type SubcategoryView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CategoryView struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	Subcategories []SubcategoryView `json:"subcategories,omitempty"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type SubcategoryRequest struct {
	Name       string    `json:"name" validate:"required,min=2,max=100"`
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
}

// ProductRequest arrives as a multipart form so the image can ride along.
// Parsing happens in handling; validation here covers the decoded values.
type ProductRequest struct {
	Description   string     `json:"description" validate:"required,min=2,max=300"`
	PriceCents    int64      `json:"price_cents" validate:"required,gt=0"`
	CostCents     int64      `json:"cost_cents" validate:"required,gt=0"`
	Stock         int        `json:"stock" validate:"gte=0"`
	SubcategoryID *uuid.UUID `json:"subcategory_id,omitempty"`
	Image         []byte     `json:"-"`
}

type FrontPage struct {
	BestSellers       []BestSeller     `json:"best_sellers"`
	RandomCategory    *CategoryView    `json:"random_category"`
	RandomPicks       []ProductView    `json:"random_picks"`
	RandomSubcategory *SubcategoryView `json:"random_subcategory"`
	SubcategoryPicks  []ProductView    `json:"subcategory_picks"`
}
