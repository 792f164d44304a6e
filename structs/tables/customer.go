package tables

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	tableName struct{}  `bun:"table:customers,alias:c"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserId    uuid.UUID `bun:"user_id,notnull,type:uuid,unique" json:"user_id"`
	FirstName string    `bun:"first_name,notnull" json:"first_name" validate:"required,min=2,max=100"`
	LastName  string    `bun:"last_name,notnull" json:"last_name" validate:"required,min=2,max=100"`
	Phone     string    `bun:"phone,notnull" json:"phone" validate:"required,len=10,numeric"`
	Street    string    `bun:"street,notnull" json:"street"`
	StreetNo  string    `bun:"street_no,notnull" json:"street_no"`
	City      string    `bun:"city,notnull" json:"city"`
	County    string    `bun:"county,notnull" json:"county"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`

	User        *User        `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
	LoyaltyCard *LoyaltyCard `bun:"rel:has-one,join:id=customer_id" json:"loyalty_card,omitempty"`
}

// LoyaltyCard tracks membership age. Discount is derived from IssuedAt at
// read time, never stored.
type LoyaltyCard struct {
	tableName  struct{}  `bun:"table:loyalty_cards,alias:lc"`
	Id         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CustomerId uuid.UUID `bun:"customer_id,notnull,type:uuid,unique" json:"customer_id"`
	IssuedAt   time.Time `bun:"issued_at,notnull,default:now()" json:"issued_at"`
}

type Employee struct {
	tableName struct{}  `bun:"table:employees,alias:e"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserId    uuid.UUID `bun:"user_id,notnull,type:uuid,unique" json:"user_id"`
	FirstName string    `bun:"first_name,notnull" json:"first_name"`
	LastName  string    `bun:"last_name,notnull" json:"last_name"`
	Phone     string    `bun:"phone" json:"phone,omitempty"`
	HiredAt   time.Time `bun:"hired_at,notnull,default:now()" json:"hired_at"`

	User *User `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
}
