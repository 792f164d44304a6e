package structs

import (
	"time"

	"github.com/google/uuid"
)

type CustomerProfile struct {
	ID          uuid.UUID  `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Street      string     `json:"street"`
	StreetNo    string     `json:"street_no"`
	City        string     `json:"city"`
	County      string     `json:"county"`
	MemberSince *time.Time `json:"member_since,omitempty"`
	DiscountPct int        `json:"discount_pct"`
}

type CustomerListing struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	City        string     `json:"city"`
	MemberSince *time.Time `json:"member_since,omitempty"`
	OrderCount  int64      `json:"order_count"`
}
