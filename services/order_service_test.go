package services

import (
	"strings"
	"testing"

	"petshop_server/lib"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatherOrderItemsMergesEquivalentIds(t *testing.T) {
	id := uuid.New()

	// The same product can arrive under different spellings of its id.
	items, err := GatherOrderItems(map[string]int{
		id.String():                  2,
		strings.ToUpper(id.String()): 3,
	})
	require.NoError(t, err)

	assert.Len(t, items, 1)
	assert.Equal(t, 5, items[id])
}

func TestGatherOrderItemsRejectsEmpty(t *testing.T) {
	_, err := GatherOrderItems(map[string]int{})
	assert.ErrorIs(t, err, lib.ErrEmptyOrder)

	_, err = GatherOrderItems(nil)
	assert.ErrorIs(t, err, lib.ErrEmptyOrder)
}

func TestGatherOrderItemsRejectsBadQuantities(t *testing.T) {
	id := uuid.NewString()

	_, err := GatherOrderItems(map[string]int{id: 0})
	assert.Error(t, err)

	_, err = GatherOrderItems(map[string]int{id: -2})
	assert.Error(t, err)
}

func TestGatherOrderItemsRejectsBadIds(t *testing.T) {
	_, err := GatherOrderItems(map[string]int{"not-a-uuid": 1})
	assert.Error(t, err)
}

func TestApplyDiscountRoundsLikeTheListTotals(t *testing.T) {
	// 33 cents at 7% off is 30.69; ROUND in the list query gives 31, so the
	// detail view must not truncate to 30.
	assert.Equal(t, int64(31), applyDiscount(33, 7))

	assert.Equal(t, int64(97), applyDiscount(100, 3))
	assert.Equal(t, int64(33), applyDiscount(33, 0))
	assert.Equal(t, int64(0), applyDiscount(0, 7))
}
