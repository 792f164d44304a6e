package handling

import (
	"errors"
	"io"
	"net/http"
	"petshop_server/structs"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBadWindow    = errors.New("unknown analytics window")
	ErrBadDateRange = errors.New("invalid date range")
)

// ParseWindow reads the ?window= query parameter. Absent means all time.
func ParseWindow(r *http.Request) (structs.AnalyticsWindow, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("window"))
	if raw == "" {
		return structs.WindowAll, nil
	}

	switch structs.AnalyticsWindow(raw) {
	case structs.WindowMonth, structs.WindowHalfYear, structs.WindowAll:
		return structs.AnalyticsWindow(raw), nil
	default:
		return "", ErrBadWindow
	}
}

// ParseDateRange reads ?start_date= and ?end_date= as YYYY-MM-DD. Both are
// required and the start must not come after the end.
func ParseDateRange(r *http.Request) (time.Time, time.Time, error) {
	query := r.URL.Query()

	from, err := time.Parse("2006-01-02", query.Get("start_date"))
	if err != nil {
		return time.Time{}, time.Time{}, ErrBadDateRange
	}

	to, err := time.Parse("2006-01-02", query.Get("end_date"))
	if err != nil {
		return time.Time{}, time.Time{}, ErrBadDateRange
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, ErrBadDateRange
	}

	return from, to, nil
}

// ParsePagination reads ?limit= and ?offset= with sane caps
func ParsePagination(r *http.Request, defaultLimit int) (limit, offset int) {
	query := r.URL.Query()

	limit = defaultLimit
	if raw := query.Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > 100 {
		limit = 100
	}

	if raw := query.Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}

	return limit, offset
}

// ParseProductForm decodes the multipart product form the back office
// submits. Prices arrive in cents; the image part is optional.
func ParseProductForm(r *http.Request, maxImageBytes int64) (*structs.ProductRequest, error) {
	if err := r.ParseMultipartForm(maxImageBytes + 1<<20); err != nil {
		return nil, err
	}

	priceCents, err := strconv.ParseInt(r.FormValue("price_cents"), 10, 64)
	if err != nil {
		return nil, errors.New("price_cents must be an integer")
	}

	costCents, err := strconv.ParseInt(r.FormValue("cost_cents"), 10, 64)
	if err != nil {
		return nil, errors.New("cost_cents must be an integer")
	}

	stock := 0
	if raw := r.FormValue("stock"); raw != "" {
		if stock, err = strconv.Atoi(raw); err != nil {
			return nil, errors.New("stock must be an integer")
		}
	}

	req := &structs.ProductRequest{
		Description: strings.TrimSpace(r.FormValue("description")),
		PriceCents:  priceCents,
		CostCents:   costCents,
		Stock:       stock,
	}

	// An empty subcategory leaves the product uncategorized.
	if raw := strings.TrimSpace(r.FormValue("subcategory_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("subcategory_id must be a UUID")
		}
		req.SubcategoryID = &id
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		if header.Size > maxImageBytes {
			return nil, errors.New("image too large")
		}
		image, err := io.ReadAll(file)
		if err != nil {
			return nil, err
		}
		req.Image = image
	} else if err != http.ErrMissingFile {
		return nil, err
	}

	return req, nil
}
