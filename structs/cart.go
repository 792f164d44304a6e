package structs

import (
	"errors"

	"github.com/google/uuid"
)

// Cart errors surfaced directly to the shopper.
var (
	ErrCartProductUnknown = errors.New("product not found")
	ErrCartOutOfStock     = errors.New("this product is currently out of stock")
	ErrCartStockExceeded  = errors.New("not enough stock available for that quantity")
	ErrCartQuantity       = errors.New("quantity must be at least 1")
)

// Cart is the session shopping cart: product id -> requested quantity.
// Mutations are guarded by the stock value read for the product at the time
// of the call; nothing is reserved until checkout confirms the order.
type Cart map[uuid.UUID]int

// Add puts qty units of a product in the cart. stock is the product's
// current on-hand quantity; the combined cart quantity may not exceed it.
func (c Cart) Add(productID uuid.UUID, qty int, stock int) error {
	if qty <= 0 {
		return ErrCartQuantity
	}
	if stock <= 0 {
		return ErrCartOutOfStock
	}
	if c[productID]+qty > stock {
		return ErrCartStockExceeded
	}
	c[productID] += qty
	return nil
}

// Increment bumps a line by one, subject to the same stock ceiling as Add.
func (c Cart) Increment(productID uuid.UUID, stock int) error {
	if c[productID]+1 > stock {
		return ErrCartStockExceeded
	}
	c[productID]++
	return nil
}

// Decrement lowers a line by one and drops the line when it reaches zero.
func (c Cart) Decrement(productID uuid.UUID) {
	current, ok := c[productID]
	if !ok {
		return
	}
	if current <= 1 {
		delete(c, productID)
		return
	}
	c[productID] = current - 1
}

// Remove deletes the line for a product regardless of quantity.
func (c Cart) Remove(productID uuid.UUID) {
	delete(c, productID)
}

type CartAddRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

type CartUpdateRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Action    string    `json:"action" validate:"required,oneof=inc dec"`
}

type CartRemoveRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

type CartLine struct {
	ProductID      uuid.UUID `json:"product_id"`
	Description    string    `json:"description"`
	Quantity       int       `json:"quantity"`
	UnitCents      int64     `json:"unit_cents"`
	LineTotalCents int64     `json:"line_total_cents"`
}

// CartView is the cart joined against current product data. DiscountPct is
// the shopper's loyalty discount as of now; the binding value is computed
// again at checkout.
type CartView struct {
	Items         []CartLine `json:"items"`
	SubtotalCents int64      `json:"subtotal_cents"`
	DiscountPct   int        `json:"discount_pct"`
	TotalCents    int64      `json:"total_cents"`
}

// Count returns the total number of units across all lines.
func (c Cart) Count() int {
	total := 0
	for _, qty := range c {
		total += qty
	}
	return total
}

// Items returns only the positive-quantity lines. Entries that were stored
// with a zero or negative quantity (e.g. by an older session) are skipped.
func (c Cart) Items() map[uuid.UUID]int {
	items := make(map[uuid.UUID]int, len(c))
	for id, qty := range c {
		if qty > 0 {
			items[id] = qty
		}
	}
	return items
}
