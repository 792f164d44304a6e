package lib

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Shop errors
var (
	ErrOutOfStock       = errors.New("insufficient stock")
	ErrEmptyOrder       = errors.New("order has no items")
	ErrUnknownProduct   = errors.New("unknown product")
	ErrUnknownCustomer  = errors.New("unknown customer")
	ErrInvalidDateRange = errors.New("invalid date range")
)

// IsNotFound reports whether err maps to a missing record
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func MapPgError(err error) error {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "23503": // foreign_key_violation
			return ErrNotFound
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}
