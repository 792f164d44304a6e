package handling

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petshop_server/structs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindowDefaultsToAll(t *testing.T) {
	r := httptest.NewRequest("GET", "/admin/analytics", nil)

	window, err := ParseWindow(r)
	require.NoError(t, err)
	assert.Equal(t, structs.WindowAll, window)
}

func TestParseWindowKnownValues(t *testing.T) {
	for _, raw := range []string{"30d", "183d", "all"} {
		r := httptest.NewRequest("GET", "/admin/analytics?window="+raw, nil)

		window, err := ParseWindow(r)
		require.NoError(t, err)
		assert.Equal(t, structs.AnalyticsWindow(raw), window)
	}
}

func TestParseWindowRejectsUnknown(t *testing.T) {
	r := httptest.NewRequest("GET", "/admin/analytics?window=90d", nil)

	_, err := ParseWindow(r)
	assert.ErrorIs(t, err, ErrBadWindow)
}

func TestParseDateRange(t *testing.T) {
	r := httptest.NewRequest("GET", "/admin/reports/revenue?start_date=2026-01-01&end_date=2026-03-31", nil)

	from, to, err := ParseDateRange(r)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), to)
}

func TestParseDateRangeRejectsInverted(t *testing.T) {
	r := httptest.NewRequest("GET", "/admin/reports/revenue?start_date=2026-03-31&end_date=2026-01-01", nil)

	_, _, err := ParseDateRange(r)
	assert.ErrorIs(t, err, ErrBadDateRange)
}

func TestParseDateRangeRequiresBothDates(t *testing.T) {
	r := httptest.NewRequest("GET", "/admin/reports/revenue?start_date=2026-01-01", nil)

	_, _, err := ParseDateRange(r)
	assert.ErrorIs(t, err, ErrBadDateRange)
}

func TestParsePagination(t *testing.T) {
	r := httptest.NewRequest("GET", "/admin/products", nil)
	limit, offset := ParsePagination(r, 20)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	r = httptest.NewRequest("GET", "/admin/products?limit=5&offset=10", nil)
	limit, offset = ParsePagination(r, 20)
	assert.Equal(t, 5, limit)
	assert.Equal(t, 10, offset)

	// The cap keeps a greedy client from pulling the whole table.
	r = httptest.NewRequest("GET", "/admin/products?limit=5000", nil)
	limit, _ = ParsePagination(r, 20)
	assert.Equal(t, 100, limit)

	// Garbage falls back to the default.
	r = httptest.NewRequest("GET", "/admin/products?limit=abc&offset=-3", nil)
	limit, offset = ParsePagination(r, 20)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)
}

func productFormRequest(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, form.WriteField(key, value))
	}
	require.NoError(t, form.Close())

	r := httptest.NewRequest("POST", "/admin/products", body)
	r.Header.Set("Content-Type", form.FormDataContentType())
	return r
}

func TestParseProductFormWithoutSubcategory(t *testing.T) {
	r := productFormRequest(t, map[string]string{
		"description": "Hamster wheel",
		"price_cents": "1299",
		"cost_cents":  "600",
		"stock":       "4",
	})

	req, err := ParseProductForm(r, 5<<20)
	require.NoError(t, err)
	assert.Nil(t, req.SubcategoryID)
	assert.Equal(t, "Hamster wheel", req.Description)
	assert.Equal(t, int64(1299), req.PriceCents)
	assert.Equal(t, 4, req.Stock)
}

func TestParseProductFormWithSubcategory(t *testing.T) {
	id := uuid.New()
	r := productFormRequest(t, map[string]string{
		"description":    "Hamster wheel",
		"price_cents":    "1299",
		"cost_cents":     "600",
		"subcategory_id": id.String(),
	})

	req, err := ParseProductForm(r, 5<<20)
	require.NoError(t, err)
	require.NotNil(t, req.SubcategoryID)
	assert.Equal(t, id, *req.SubcategoryID)
}

func TestParseProductFormRejectsBadSubcategory(t *testing.T) {
	r := productFormRequest(t, map[string]string{
		"description":    "Hamster wheel",
		"price_cents":    "1299",
		"cost_cents":     "600",
		"subcategory_id": "not-a-uuid",
	})

	_, err := ParseProductForm(r, 5<<20)
	assert.Error(t, err)
}
