package services

import (
	"strings"
	"testing"

	"petshop_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowClauses(t *testing.T) {
	assert.Equal(t, "AND o.ordered_at >= now() - interval '30 days'",
		windowClauses(structs.WindowMonth, "o.ordered_at"))
	assert.Equal(t, "AND del.delivered_at >= now() - interval '183 days'",
		windowClauses(structs.WindowHalfYear, "del.delivered_at"))
	assert.Empty(t, windowClauses(structs.WindowAll, "o.ordered_at"))
}

func TestBottomProductsQueryWindowsTheLineSet(t *testing.T) {
	filter := windowClauses(structs.WindowMonth, "o.ordered_at")
	require.NotEmpty(t, filter)

	query := bottomProductsQuery(filter)

	filterAt := strings.Index(query, filter)
	require.NotEqual(t, -1, filterAt, "window filter must appear in the query")

	derivedEnd := strings.Index(query, ") s ON s.product_id")
	require.NotEqual(t, -1, derivedEnd)

	// The filter must sit inside the derived line set, where it removes the
	// out-of-window lines before the sum. Attached to the outer join it would
	// only null the order columns and the lines would still count.
	assert.Less(t, filterAt, derivedEnd)
	assert.NotContains(t, query[derivedEnd:], "ordered_at")
}

func TestBottomProductsQueryKeepsNeverSoldProducts(t *testing.T) {
	query := bottomProductsQuery(windowClauses(structs.WindowAll, "o.ordered_at"))

	assert.Contains(t, query, "LEFT JOIN")
	assert.Contains(t, query, "COALESCE")
	assert.Contains(t, query, "ORDER BY units_sold ASC, p.id ASC")
}
