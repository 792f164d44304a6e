package services

import (
	"testing"
	"time"

	"petshop_server/structs/tables"

	"github.com/stretchr/testify/assert"
)

func TestLoyaltyDiscountBoundaries(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	daysAgo := func(days float64) time.Time {
		return now.Add(-time.Duration(days * 24 * float64(time.Hour)))
	}

	// Exactly two years (730.5 days) is not "older than two years".
	assert.Equal(t, 0, LoyaltyDiscount(daysAgo(730.5), now))
	assert.Equal(t, 3, LoyaltyDiscount(daysAgo(731), now))

	// Exactly five years stays in the junior tier.
	assert.Equal(t, 3, LoyaltyDiscount(daysAgo(1826.25), now))
	assert.Equal(t, 7, LoyaltyDiscount(daysAgo(1827), now))

	assert.Equal(t, 0, LoyaltyDiscount(daysAgo(1), now))
	assert.Equal(t, 7, LoyaltyDiscount(daysAgo(3653), now))
}

func TestLoyaltyDiscountFutureCard(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, LoyaltyDiscount(now.Add(time.Hour), now))
}

func TestDiscountForWithoutCard(t *testing.T) {
	cs := &CustomerService{}
	assert.Equal(t, 0, cs.DiscountFor(&tables.Customer{}))
}

func TestDiscountForWithCard(t *testing.T) {
	cs := &CustomerService{}
	customer := &tables.Customer{
		LoyaltyCard: &tables.LoyaltyCard{
			IssuedAt: time.Now().AddDate(-3, 0, 0),
		},
	}
	assert.Equal(t, 3, cs.DiscountFor(customer))
}
