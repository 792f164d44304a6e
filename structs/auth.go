package structs

import (
	"time"

	"github.com/google/uuid"
)

type ArgonParams struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// AuthClaims is the decoded content of a session token. Srv carries the
// server instance marker: tokens minted by a previous process are rejected.
type AuthClaims struct {
	Sub   uuid.UUID `json:"sub"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
	Srv   string    `json:"srv"`
	Iat   time.Time `json:"iat"`
	Exp   time.Time `json:"exp"`
	Jti   uuid.UUID `json:"jti"`
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterRequest struct {
	FirstName       string `json:"first_name" validate:"required,min=2,max=100"`
	LastName        string `json:"last_name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,len=10,numeric"`
	Street          string `json:"street" validate:"required,max=200"`
	StreetNo        string `json:"street_no" validate:"required,max=20"`
	City            string `json:"city" validate:"required,max=100"`
	County          string `json:"county" validate:"required,max=100"`
	Password        string `json:"password" validate:"required,min=8,max=100"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
	LoyaltyCard     bool   `json:"loyalty_card"`
}

type ProfileUpdateRequest struct {
	FirstName       string `json:"first_name" validate:"required,min=2,max=100"`
	LastName        string `json:"last_name" validate:"required,min=2,max=100"`
	Street          string `json:"street" validate:"required,max=200"`
	StreetNo        string `json:"street_no" validate:"required,max=20"`
	City            string `json:"city" validate:"required,max=100"`
	County          string `json:"county" validate:"required,max=100"`
	Password        string `json:"password" validate:"omitempty,min=8,max=100"`
	PasswordConfirm string `json:"password_confirm" validate:"omitempty"`
}
