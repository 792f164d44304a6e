package structs

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddRespectsStockCeiling(t *testing.T) {
	cart := Cart{}
	id := uuid.New()

	require.NoError(t, cart.Add(id, 3, 5))
	assert.Equal(t, 3, cart[id])

	// 3 in the cart + 3 more would exceed stock 5.
	assert.ErrorIs(t, cart.Add(id, 3, 5), ErrCartStockExceeded)
	assert.Equal(t, 3, cart[id])

	require.NoError(t, cart.Add(id, 2, 5))
	assert.Equal(t, 5, cart[id])
}

func TestCartAddRejectsBadInput(t *testing.T) {
	cart := Cart{}
	id := uuid.New()

	assert.ErrorIs(t, cart.Add(id, 0, 5), ErrCartQuantity)
	assert.ErrorIs(t, cart.Add(id, -1, 5), ErrCartQuantity)
	assert.ErrorIs(t, cart.Add(id, 1, 0), ErrCartOutOfStock)
	assert.Empty(t, cart)
}

func TestCartIncrementCeiling(t *testing.T) {
	cart := Cart{}
	id := uuid.New()

	require.NoError(t, cart.Add(id, 4, 5))
	require.NoError(t, cart.Increment(id, 5))
	assert.Equal(t, 5, cart[id])

	assert.ErrorIs(t, cart.Increment(id, 5), ErrCartStockExceeded)
	assert.Equal(t, 5, cart[id])
}

func TestCartDecrementDropsLineAtZero(t *testing.T) {
	cart := Cart{}
	id := uuid.New()

	require.NoError(t, cart.Add(id, 2, 10))

	cart.Decrement(id)
	assert.Equal(t, 1, cart[id])

	cart.Decrement(id)
	_, ok := cart[id]
	assert.False(t, ok)

	// Decrementing an absent line is a no-op.
	cart.Decrement(id)
	assert.Empty(t, cart)
}

func TestCartRemove(t *testing.T) {
	cart := Cart{}
	id := uuid.New()

	require.NoError(t, cart.Add(id, 7, 10))
	cart.Remove(id)
	assert.Empty(t, cart)
}
