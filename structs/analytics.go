package structs

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsWindow constrains the period overview queries aggregate over.
type AnalyticsWindow string

const (
	WindowMonth    AnalyticsWindow = "30d"
	WindowHalfYear AnalyticsWindow = "183d"
	WindowAll      AnalyticsWindow = "all"
)

type TopCustomer struct {
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Value      int64     `json:"value"` // cents for spend, count for order totals
}

type TopDistributor struct {
	DistributorID uuid.UUID `json:"distributor_id"`
	Name          string    `json:"name"`
	Value         int64     `json:"value"` // delivery count or delivered units
}

type ProductRevenue struct {
	ProductID    uuid.UUID `json:"product_id"`
	Description  string    `json:"description"`
	RevenueCents int64     `json:"revenue_cents"`
	UnitsSold    int64     `json:"units_sold"`
}

// AnalyticsOverview bundles the business dashboard aggregates for one window.
type AnalyticsOverview struct {
	Window                     AnalyticsWindow  `json:"window"`
	TopSpender                 *TopCustomer     `json:"top_spender"`
	MostOrders                 *TopCustomer     `json:"most_orders"`
	TopDistributorByDeliveries *TopDistributor  `json:"top_distributor_by_deliveries"`
	TopDistributorByVolume     *TopDistributor  `json:"top_distributor_by_volume"`
	TopProducts                []ProductRevenue `json:"top_products"`
	BottomProducts             []ProductRevenue `json:"bottom_products"`
}

type BestSeller struct {
	ProductID   uuid.UUID `json:"product_id"`
	Description string    `json:"description"`
	UnitsSold   int64     `json:"units_sold"`
}

// FinancialReport sums order revenue and delivery cost over a closed date
// range. The end date is inclusive through the end of its day.
type FinancialReport struct {
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	RevenueCents  int64     `json:"revenue_cents"`
	ExpenseCents  int64     `json:"expense_cents"`
	OrderCount    int64     `json:"order_count"`
	DeliveryCount int64     `json:"delivery_count"`
}
