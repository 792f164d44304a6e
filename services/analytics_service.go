package services

import (
	"context"
	"fmt"
	"petshop_server/database"
	"petshop_server/lib"
	"petshop_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

type AnalyticsService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewAnalyticsService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *AnalyticsService {
	return &AnalyticsService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

// windowClauses returns interval filters for the order and delivery time
// columns. The strings are fixed per window; nothing user-supplied is
// interpolated.
func windowClauses(window structs.AnalyticsWindow, column string) string {
	switch window {
	case structs.WindowMonth:
		return fmt.Sprintf("AND %s >= now() - interval '30 days'", column)
	case structs.WindowHalfYear:
		return fmt.Sprintf("AND %s >= now() - interval '183 days'", column)
	default:
		return ""
	}
}

// Overview assembles the dashboard aggregates for one window. Each block is
// a separate query; a shop this size does not need them batched.
func (as *AnalyticsService) Overview(ctx context.Context, window structs.AnalyticsWindow) (*structs.AnalyticsOverview, error) {
	overview := &structs.AnalyticsOverview{Window: window}

	orderFilter := windowClauses(window, "o.ordered_at")
	deliveryFilter := windowClauses(window, "del.delivered_at")

	topSpender, err := database.RawQueryOne[structs.TopCustomer](as.db.DB, ctx, fmt.Sprintf(`
		SELECT c.id AS customer_id,
		       c.first_name || ' ' || c.last_name AS name,
		       u.email,
		       CAST(SUM(ol.quantity * p.price_cents) AS BIGINT) AS value
		FROM customers c
		JOIN users u ON u.id = c.user_id
		JOIN orders o ON o.customer_id = c.id
		JOIN order_lines ol ON ol.order_id = o.id
		JOIN products p ON p.id = ol.product_id
		WHERE true %s
		GROUP BY c.id, c.first_name, c.last_name, u.email
		ORDER BY value DESC, c.id ASC
		LIMIT 1`, orderFilter))
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	overview.TopSpender = topSpender

	mostOrders, err := database.RawQueryOne[structs.TopCustomer](as.db.DB, ctx, fmt.Sprintf(`
		SELECT c.id AS customer_id,
		       c.first_name || ' ' || c.last_name AS name,
		       u.email,
		       COUNT(o.id) AS value
		FROM customers c
		JOIN users u ON u.id = c.user_id
		JOIN orders o ON o.customer_id = c.id
		WHERE true %s
		GROUP BY c.id, c.first_name, c.last_name, u.email
		ORDER BY value DESC, c.id ASC
		LIMIT 1`, orderFilter))
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	overview.MostOrders = mostOrders

	topByDeliveries, err := database.RawQueryOne[structs.TopDistributor](as.db.DB, ctx, fmt.Sprintf(`
		SELECT d.id AS distributor_id,
		       d.name,
		       COUNT(del.id) AS value
		FROM distributors d
		JOIN deliveries del ON del.distributor_id = d.id
		WHERE true %s
		GROUP BY d.id, d.name
		ORDER BY value DESC, d.id ASC
		LIMIT 1`, deliveryFilter))
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	overview.TopDistributorByDeliveries = topByDeliveries

	topByVolume, err := database.RawQueryOne[structs.TopDistributor](as.db.DB, ctx, fmt.Sprintf(`
		SELECT d.id AS distributor_id,
		       d.name,
		       CAST(SUM(dl.quantity) AS BIGINT) AS value
		FROM distributors d
		JOIN deliveries del ON del.distributor_id = d.id
		JOIN delivery_lines dl ON dl.delivery_id = del.id
		WHERE true %s
		GROUP BY d.id, d.name
		ORDER BY value DESC, d.id ASC
		LIMIT 1`, deliveryFilter))
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	overview.TopDistributorByVolume = topByVolume

	overview.TopProducts, err = as.productsByRevenue(ctx, orderFilter, "DESC", 5)
	if err != nil {
		return nil, err
	}

	overview.BottomProducts, err = as.bottomProductsByUnits(ctx, orderFilter, 5)
	if err != nil {
		return nil, err
	}

	return overview, nil
}

// productsByRevenue ranks sold products by revenue; ties resolve by id so
// repeated calls paint the same picture.
func (as *AnalyticsService) productsByRevenue(ctx context.Context, orderFilter, direction string, limit int) ([]structs.ProductRevenue, error) {
	rows, err := database.RawQuery[structs.ProductRevenue](as.db.DB, ctx, fmt.Sprintf(`
		SELECT p.id AS product_id,
		       p.description,
		       CAST(SUM(ol.quantity * p.price_cents) AS BIGINT) AS revenue_cents,
		       CAST(SUM(ol.quantity) AS BIGINT) AS units_sold
		FROM products p
		JOIN order_lines ol ON ol.product_id = p.id
		JOIN orders o ON o.id = ol.order_id
		WHERE true %s
		GROUP BY p.id, p.description
		ORDER BY revenue_cents %s, p.id ASC
		LIMIT ?`, orderFilter, direction), limit)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return rows, nil
}

// bottomProductsQuery builds the slowest-movers ranking. The window filter
// belongs inside the joined line set: putting it on the outer left join's ON
// clause would null the order columns but keep the line rows, so out-of-window
// sales would still count.
func bottomProductsQuery(orderFilter string) string {
	return fmt.Sprintf(`
		SELECT p.id AS product_id,
		       p.description,
		       COALESCE(CAST(SUM(s.quantity * p.price_cents) AS BIGINT), 0) AS revenue_cents,
		       COALESCE(CAST(SUM(s.quantity) AS BIGINT), 0) AS units_sold
		FROM products p
		LEFT JOIN (
			SELECT ol.product_id, ol.quantity
			FROM order_lines ol
			JOIN orders o ON o.id = ol.order_id
			WHERE true %s
		) s ON s.product_id = p.id
		GROUP BY p.id, p.description
		ORDER BY units_sold ASC, p.id ASC
		LIMIT ?`, orderFilter)
}

// bottomProductsByUnits ranks the slowest movers; the left join keeps
// never-sold products in the running at zero units.
func (as *AnalyticsService) bottomProductsByUnits(ctx context.Context, orderFilter string, limit int) ([]structs.ProductRevenue, error) {
	rows, err := database.RawQuery[structs.ProductRevenue](as.db.DB, ctx, bottomProductsQuery(orderFilter), limit)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return rows, nil
}

// Report sums revenue and expense over a closed date range. The end date
// counts through the end of its day.
func (as *AnalyticsService) Report(ctx context.Context, from, to time.Time) (*structs.FinancialReport, error) {
	if to.Before(from) {
		return nil, lib.ErrInvalidDateRange
	}

	// Inclusive end of day
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), to.Location())

	report := &structs.FinancialReport{From: from, To: to}

	revenue, err := database.RawQueryOne[struct {
		RevenueCents int64 `bun:"revenue_cents"`
		OrderCount   int64 `bun:"order_count"`
	}](as.db.DB, ctx, `
		SELECT COALESCE(CAST(ROUND(SUM(ol.quantity * p.price_cents * (100 - o.discount_pct) / 100.0)) AS BIGINT), 0) AS revenue_cents,
		       COUNT(DISTINCT o.id) AS order_count
		FROM orders o
		JOIN order_lines ol ON ol.order_id = o.id
		JOIN products p ON p.id = ol.product_id
		WHERE o.ordered_at >= ? AND o.ordered_at <= ?`, from, end)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if revenue != nil {
		report.RevenueCents = revenue.RevenueCents
		report.OrderCount = revenue.OrderCount
	}

	expense, err := database.RawQueryOne[struct {
		ExpenseCents  int64 `bun:"expense_cents"`
		DeliveryCount int64 `bun:"delivery_count"`
	}](as.db.DB, ctx, `
		SELECT COALESCE(CAST(SUM(dl.quantity * dl.unit_cost_cents) AS BIGINT), 0) AS expense_cents,
		       COUNT(DISTINCT del.id) AS delivery_count
		FROM deliveries del
		JOIN delivery_lines dl ON dl.delivery_id = del.id
		WHERE del.delivered_at >= ? AND del.delivered_at <= ?`, from, end)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if expense != nil {
		report.ExpenseCents = expense.ExpenseCents
		report.DeliveryCount = expense.DeliveryCount
	}

	return report, nil
}
