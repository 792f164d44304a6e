package services

import (
	"context"
	"fmt"
	"petshop_server/database"
	"petshop_server/lib"
	"petshop_server/structs"
	"petshop_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type OrderService struct {
	logger          *gecho.Logger
	cfg             *structs.Config
	db              *database.DB
	productService  *ProductService
	customerService *CustomerService
	emailService    *EmailService
}

func NewOrderService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	productService *ProductService,
	customerService *CustomerService,
	emailService *EmailService,
) *OrderService {
	return &OrderService{
		logger:          logger,
		cfg:             cfg,
		db:              db,
		productService:  productService,
		customerService: customerService,
		emailService:    emailService,
	}
}

// GatherOrderItems turns the request's product map into typed items,
// merging repeated IDs and rejecting junk before any database work.
func GatherOrderItems(products map[string]int) (map[uuid.UUID]int, error) {
	if len(products) == 0 {
		return nil, lib.ErrEmptyOrder
	}

	items := make(map[uuid.UUID]int, len(products))
	for idStr, qty := range products {
		if qty <= 0 {
			return nil, fmt.Errorf("invalid quantity %d for product %s", qty, idStr)
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid product ID: %s", idStr)
		}
		items[id] += qty
	}

	if len(items) == 0 {
		return nil, lib.ErrEmptyOrder
	}
	return items, nil
}

// PlaceOrderFromRequest resolves the customer by email and places the order.
// EmployeeUserId is set when a clerk keys the order in at the counter.
func (os *OrderService) PlaceOrderFromRequest(ctx context.Context, req *structs.OrderRequest, employeeUserId *uuid.UUID) (*tables.Order, error) {
	items, err := GatherOrderItems(req.Products)
	if err != nil {
		return nil, err
	}

	customer, err := os.customerService.GetCustomerByEmail(ctx, req.CustomerEmail)
	if err != nil {
		return nil, err
	}

	return os.PlaceOrder(ctx, customer, items, employeeUserId)
}

// PlaceOrder writes the order header, its lines and the stock decrements in
// one transaction. A single product short on stock rolls the whole order back.
func (os *OrderService) PlaceOrder(ctx context.Context, customer *tables.Customer, items map[uuid.UUID]int, employeeUserId *uuid.UUID) (*tables.Order, error) {
	if len(items) == 0 {
		return nil, lib.ErrEmptyOrder
	}

	productIds := make([]uuid.UUID, 0, len(items))
	for id := range items {
		productIds = append(productIds, id)
	}

	products, err := os.productService.GetProductsByIds(ctx, productIds)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*tables.Product, len(products))
	for i := range products {
		productMap[products[i].Id] = &products[i]
	}
	for id := range items {
		if _, exists := productMap[id]; !exists {
			return nil, fmt.Errorf("%w: %s", lib.ErrUnknownProduct, id)
		}
	}

	var employeeId *uuid.UUID
	if employeeUserId != nil {
		employee, err := os.customerService.GetEmployeeByUserId(ctx, *employeeUserId)
		if err != nil {
			return nil, err
		}
		employeeId = &employee.Id
	}

	// Discount is derived from the loyalty card at checkout and frozen on
	// the order header.
	discount := os.customerService.DiscountFor(customer)

	order := &tables.Order{
		Id:          uuid.New(),
		CustomerId:  customer.Id,
		EmployeeId:  employeeId,
		DiscountPct: discount,
		OrderedAt:   time.Now(),
	}

	orderLines := make([]*tables.OrderLine, 0, len(items))
	for id, qty := range items {
		product := productMap[id]
		orderLines = append(orderLines, &tables.OrderLine{
			Id:             uuid.New(),
			OrderId:        order.Id,
			ProductId:      id,
			Quantity:       qty,
			UnitPriceCents: product.PriceCents,
		})
	}

	err = database.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		if _, err := tx.NewInsert().Model(&orderLines).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		for id, qty := range items {
			if err := DecrementStockTx(ctx, tx, id, qty); err != nil {
				if err == lib.ErrOutOfStock {
					return fmt.Errorf("%w: %s", lib.ErrOutOfStock, productMap[id].Description)
				}
				return err
			}
		}

		return nil
	})
	if err != nil {
		os.logger.Warn("Order rejected",
			gecho.Field("error", err),
			gecho.Field("customer_id", customer.Id))
		return nil, err
	}

	// Send order confirmation email asynchronously, the order is already
	// committed
	go func() {
		emailErr := os.emailService.SendOrderConfirmationEmail(customer, order, orderLines, productMap)
		if emailErr != nil {
			os.logger.Error("Failed to send order confirmation email",
				gecho.Field("error", emailErr),
				gecho.Field("order_id", order.Id))
		}
	}()

	os.logger.Info("Order placed",
		gecho.Field("order_id", order.Id),
		gecho.Field("customer_id", customer.Id),
		gecho.Field("lines", len(orderLines)),
		gecho.Field("discount_pct", discount))

	return order, nil
}

// ListOrders returns order summaries for the back office, newest first.
// Totals are computed over current product prices with the frozen discount
// applied, matching how totals show everywhere in the back office.
func (os *OrderService) ListOrders(ctx context.Context) ([]structs.OrderSummary, error) {
	return os.listOrders(ctx, "", nil)
}

// ListOrdersByCustomer returns one customer's order history, newest first
func (os *OrderService) ListOrdersByCustomer(ctx context.Context, customerId uuid.UUID) ([]structs.OrderSummary, error) {
	return os.listOrders(ctx, "WHERE o.customer_id = ?", []any{customerId})
}

func (os *OrderService) listOrders(ctx context.Context, where string, args []any) ([]structs.OrderSummary, error) {
	query := fmt.Sprintf(`
		SELECT o.id,
		       o.ordered_at,
		       c.first_name || ' ' || c.last_name AS customer_name,
		       u.email,
		       o.discount_pct,
		       CAST(ROUND(SUM(ol.quantity * p.price_cents) * (100 - o.discount_pct) / 100.0) AS BIGINT) AS total_cents
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN users u ON u.id = c.user_id
		JOIN order_lines ol ON ol.order_id = o.id
		JOIN products p ON p.id = ol.product_id
		%s
		GROUP BY o.id, o.ordered_at, c.first_name, c.last_name, u.email, o.discount_pct
		ORDER BY o.ordered_at DESC`, where)

	rows, err := database.RawQuery[structs.OrderSummary](os.db.DB, ctx, query, args...)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return rows, nil
}

// GetOrderDetail returns the order with its lines. Line prices are the
// snapshots taken at checkout.
func (os *OrderService) GetOrderDetail(ctx context.Context, orderId uuid.UUID) (*structs.OrderDetail, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("o.id", orderId).
		With("Customer").
		With("Customer.User").
		With("Lines").
		With("Lines.Product").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}

	detail := &structs.OrderDetail{
		ID:          order.Id,
		OrderedAt:   order.OrderedAt,
		DiscountPct: order.DiscountPct,
	}
	if order.Customer != nil {
		detail.CustomerName = order.Customer.FirstName + " " + order.Customer.LastName
		if order.Customer.User != nil {
			detail.Email = order.Customer.User.Email
		}
	}

	var total int64
	for _, line := range order.Lines {
		item := structs.OrderLineDetail{
			Quantity:       line.Quantity,
			UnitCents:      line.UnitPriceCents,
			LineTotalCents: int64(line.Quantity) * line.UnitPriceCents,
		}
		if line.Product != nil {
			item.Product = line.Product.Description
		}
		total += item.LineTotalCents
		detail.Items = append(detail.Items, item)
	}
	detail.TotalCents = applyDiscount(total, order.DiscountPct)

	return detail, nil
}

// applyDiscount takes a whole-percent discount off a cent amount, rounding
// half up to match the SQL ROUND used by the order list totals.
func applyDiscount(totalCents int64, discountPct int) int64 {
	return (totalCents*int64(100-discountPct) + 50) / 100
}

// GetOrderDiscount reports the discount frozen on an order header
func (os *OrderService) GetOrderDiscount(ctx context.Context, orderId uuid.UUID) (int, error) {
	order, err := database.Query[tables.Order](os.db).Where("o.id", orderId).First(ctx)
	if err != nil {
		return 0, lib.MapPgError(err)
	}
	if order == nil {
		return 0, lib.ErrNotFound
	}
	return order.DiscountPct, nil
}

// DeleteOrder removes an order and its lines. Stock is not restored; a
// deletion corrects bookkeeping, it does not undo a sale.
func (os *OrderService) DeleteOrder(ctx context.Context, orderId uuid.UUID) error {
	return database.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*tables.OrderLine)(nil)).Where("order_id = ?", orderId).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		res, err := tx.NewDelete().Model((*tables.Order)(nil)).Where("id = ?", orderId).Exec(ctx)
		if err != nil {
			return lib.MapPgError(err)
		}
		affected, _ := res.RowsAffected()
		if affected == 0 {
			return lib.ErrNotFound
		}

		os.logger.Info("Order deleted", gecho.Field("order_id", orderId))
		return nil
	})
}
