package services

import "time"

// Discount tiers for loyalty card holders, in whole percent.
const (
	loyaltySeniorPct = 7
	loyaltyJuniorPct = 3

	loyaltySeniorYears = 5
	loyaltyJuniorYears = 2

	daysPerYear = 365.25
)

// LoyaltyDiscount returns the discount percentage a card issued at issuedAt
// earns by now. Membership older than five years earns 7%, older than two
// years 3%, anything younger nothing. Boundaries are strict: exactly two
// years earns nothing.
func LoyaltyDiscount(issuedAt, now time.Time) int {
	if now.Before(issuedAt) {
		return 0
	}

	days := now.Sub(issuedAt).Hours() / 24
	years := days / daysPerYear

	switch {
	case years > loyaltySeniorYears:
		return loyaltySeniorPct
	case years > loyaltyJuniorYears:
		return loyaltyJuniorPct
	default:
		return 0
	}
}
