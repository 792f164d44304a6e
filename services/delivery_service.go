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

type DeliveryService struct {
	logger          *gecho.Logger
	cfg             *structs.Config
	db              *database.DB
	productService  *ProductService
	customerService *CustomerService
}

func NewDeliveryService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	productService *ProductService,
	customerService *CustomerService,
) *DeliveryService {
	return &DeliveryService{
		logger:          logger,
		cfg:             cfg,
		db:              db,
		productService:  productService,
		customerService: customerService,
	}
}

// RecordDelivery books an incoming shipment: header, lines and stock
// increments in one transaction, the mirror image of a checkout.
func (ds *DeliveryService) RecordDelivery(ctx context.Context, req *structs.DeliveryRequest, employeeUserId uuid.UUID) (*tables.Delivery, error) {
	items, err := GatherOrderItems(req.Products)
	if err != nil {
		return nil, err
	}

	distributor, err := ds.GetDistributorByName(ctx, req.DistributorName)
	if err != nil {
		return nil, err
	}

	employee, err := ds.customerService.GetEmployeeByUserId(ctx, employeeUserId)
	if err != nil {
		return nil, err
	}

	productIds := make([]uuid.UUID, 0, len(items))
	for id := range items {
		productIds = append(productIds, id)
	}

	products, err := ds.productService.GetProductsByIds(ctx, productIds)
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

	delivery := &tables.Delivery{
		Id:            uuid.New(),
		DistributorId: distributor.Id,
		EmployeeId:    employee.Id,
		DeliveredAt:   time.Now(),
	}

	lines := make([]*tables.DeliveryLine, 0, len(items))
	for id, qty := range items {
		product := productMap[id]
		lines = append(lines, &tables.DeliveryLine{
			Id:             uuid.New(),
			DeliveryId:     delivery.Id,
			ProductId:      id,
			Quantity:       qty,
			UnitPriceCents: product.PriceCents,
			UnitCostCents:  product.CostCents,
		})
	}

	err = database.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(delivery).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		if _, err := tx.NewInsert().Model(&lines).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		for id, qty := range items {
			if err := IncrementStockTx(ctx, tx, id, qty); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		ds.logger.Warn("Delivery rejected",
			gecho.Field("error", err),
			gecho.Field("distributor", req.DistributorName))
		return nil, err
	}

	ds.logger.Info("Delivery recorded",
		gecho.Field("delivery_id", delivery.Id),
		gecho.Field("distributor_id", distributor.Id),
		gecho.Field("lines", len(lines)))

	return delivery, nil
}

// ListDeliveries returns delivery summaries, newest first. Price and cost
// totals come from the snapshots taken when the shipment was booked.
func (ds *DeliveryService) ListDeliveries(ctx context.Context) ([]structs.DeliverySummary, error) {
	rows, err := database.RawQuery[structs.DeliverySummary](ds.db.DB, ctx, `
		SELECT del.id,
		       d.name AS distributor,
		       del.delivered_at,
		       SUM(dl.quantity * dl.unit_price_cents) AS total_price_cents,
		       SUM(dl.quantity * dl.unit_cost_cents) AS total_cost_cents
		FROM deliveries del
		JOIN distributors d ON d.id = del.distributor_id
		JOIN delivery_lines dl ON dl.delivery_id = del.id
		GROUP BY del.id, d.name, del.delivered_at
		ORDER BY del.delivered_at DESC`)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return rows, nil
}

func (ds *DeliveryService) GetDeliveryDetail(ctx context.Context, deliveryId uuid.UUID) (*structs.DeliveryDetail, error) {
	delivery, err := database.Query[tables.Delivery](ds.db).
		Where("del.id", deliveryId).
		With("Distributor").
		With("Lines").
		With("Lines.Product").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if delivery == nil {
		return nil, lib.ErrNotFound
	}

	detail := &structs.DeliveryDetail{
		ID:          delivery.Id,
		DeliveredAt: delivery.DeliveredAt,
	}
	if delivery.Distributor != nil {
		detail.Distributor = delivery.Distributor.Name
	}

	for _, line := range delivery.Lines {
		item := structs.DeliveryLineDetail{
			Quantity:       line.Quantity,
			UnitCents:      line.UnitPriceCents,
			CostCents:      line.UnitCostCents,
			LinePriceCents: int64(line.Quantity) * line.UnitPriceCents,
			LineCostCents:  int64(line.Quantity) * line.UnitCostCents,
		}
		if line.Product != nil {
			item.Product = line.Product.Description
		}
		detail.Items = append(detail.Items, item)
	}

	return detail, nil
}

func (ds *DeliveryService) GetDistributorByName(ctx context.Context, name string) (*tables.Distributor, error) {
	distributor, err := database.Query[tables.Distributor](ds.db).
		Where("d.name", name).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if distributor == nil {
		return nil, fmt.Errorf("%w: distributor %q", lib.ErrNotFound, name)
	}
	return distributor, nil
}

func (ds *DeliveryService) ListDistributors(ctx context.Context) ([]tables.Distributor, error) {
	distributors, err := database.Query[tables.Distributor](ds.db).
		OrderBy("d.name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return distributors, nil
}

func (ds *DeliveryService) CreateDistributor(ctx context.Context, req *structs.DistributorRequest) (*tables.Distributor, error) {
	distributor := &tables.Distributor{
		Id:           uuid.New(),
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		CreatedAt:    time.Now(),
	}
	inserted, err := database.Create(ds.db, ctx, distributor)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	ds.logger.Info("Distributor created", gecho.Field("distributor_id", distributor.Id), gecho.Field("name", distributor.Name))
	return inserted, nil
}

func (ds *DeliveryService) UpdateDistributor(ctx context.Context, id uuid.UUID, req *structs.DistributorRequest) error {
	affected, err := database.UpdateByID[tables.Distributor](ds.db, ctx, id, map[string]any{
		"name":          req.Name,
		"contact_email": req.ContactEmail,
		"phone":         req.Phone,
	})
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}

func (ds *DeliveryService) DeleteDistributor(ctx context.Context, id uuid.UUID) error {
	affected, err := database.DeleteByID[tables.Distributor](ds.db, ctx, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	ds.logger.Info("Distributor deleted", gecho.Field("distributor_id", id))
	return nil
}

// DeleteDelivery removes a delivery and its lines. Stock stays as it is;
// like order deletion this corrects the books, not the shelf.
func (ds *DeliveryService) DeleteDelivery(ctx context.Context, deliveryId uuid.UUID) error {
	return database.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*tables.DeliveryLine)(nil)).Where("delivery_id = ?", deliveryId).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		res, err := tx.NewDelete().Model((*tables.Delivery)(nil)).Where("id = ?", deliveryId).Exec(ctx)
		if err != nil {
			return lib.MapPgError(err)
		}
		affected, _ := res.RowsAffected()
		if affected == 0 {
			return lib.ErrNotFound
		}
		return nil
	})
}
