package services

import (
	"context"
	"petshop_server/database"
	"petshop_server/lib"
	"petshop_server/structs"
	"petshop_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type ProductService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewProductService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ProductService {
	return &ProductService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

func (ps *ProductService) GetProductById(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	product, err := database.Query[tables.Product](ps.db).
		Where("p.id", id).
		With("Subcategory").
		With("Subcategory.Category").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrUnknownProduct
	}
	return product, nil
}

func (ps *ProductService) GetProductsByIds(ctx context.Context, ids []uuid.UUID) ([]tables.Product, error) {
	if len(ids) == 0 {
		return []tables.Product{}, nil
	}

	idsIface := make([]any, len(ids))
	for i, id := range ids {
		idsIface[i] = id
	}

	products, err := database.Query[tables.Product](ps.db).
		WhereIn("p.id", idsIface).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return products, nil
}

// ListProducts returns the full catalog with subcategory and category
// names, the back-office product table.
func (ps *ProductService) ListProducts(ctx context.Context, limit, offset int) ([]tables.Product, error) {
	products, err := database.Query[tables.Product](ps.db).
		With("Subcategory").
		With("Subcategory.Category").
		OrderBy("p.description", database.ASC).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return products, nil
}

// SearchProducts matches the search term against product descriptions,
// substring and case-insensitive.
func (ps *ProductService) SearchProducts(ctx context.Context, term string, limit, offset int) ([]tables.Product, error) {
	products, err := database.Query[tables.Product](ps.db).
		WhereLike("p.description", "%"+term+"%").
		OrderBy("p.description", database.ASC).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return products, nil
}

func (ps *ProductService) GetProductsBySubcategory(ctx context.Context, subcategoryId uuid.UUID) ([]tables.Product, error) {
	products, err := database.Query[tables.Product](ps.db).
		Where("p.subcategory_id", subcategoryId).
		OrderBy("p.description", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return products, nil
}

func (ps *ProductService) GetProductsByCategory(ctx context.Context, categoryId uuid.UUID) ([]tables.Product, error) {
	products, err := database.Query[tables.Product](ps.db).
		WhereRaw("p.subcategory_id IN (SELECT id FROM subcategories WHERE category_id = ?)", categoryId).
		OrderBy("p.description", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return products, nil
}

func (ps *ProductService) CreateProduct(ctx context.Context, req *structs.ProductRequest) (*tables.Product, error) {
	product := &tables.Product{
		Id:            uuid.New(),
		Description:   req.Description,
		SubcategoryId: req.SubcategoryID,
		PriceCents:    req.PriceCents,
		CostCents:     req.CostCents,
		Stock:         req.Stock,
		Image:         req.Image,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	inserted, err := database.Create(ps.db, ctx, product)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	ps.logger.Info("Product created",
		gecho.Field("product_id", product.Id),
		gecho.Field("description", product.Description))

	return inserted, nil
}

func (ps *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *structs.ProductRequest) (*tables.Product, error) {
	updates := map[string]any{
		"description":    req.Description,
		"subcategory_id": req.SubcategoryID,
		"price_cents":    req.PriceCents,
		"cost_cents":     req.CostCents,
		"stock":          req.Stock,
		"updated_at":     time.Now(),
	}
	if len(req.Image) > 0 {
		updates["image"] = req.Image
	}

	affected, err := database.Query[tables.Product](ps.db).Where("id", id).Update(ctx, updates)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if affected == 0 {
		return nil, lib.ErrUnknownProduct
	}

	return ps.GetProductById(ctx, id)
}

func (ps *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	affected, err := database.DeleteByID[tables.Product](ps.db, ctx, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrUnknownProduct
	}

	ps.logger.Info("Product deleted", gecho.Field("product_id", id))
	return nil
}

// GetProductImage returns the raw image bytes, nil when the product has none
func (ps *ProductService) GetProductImage(ctx context.Context, id uuid.UUID) ([]byte, error) {
	product, err := database.Query[tables.Product](ps.db).
		Select("p.id").
		Select("p.image").
		Where("p.id", id).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrUnknownProduct
	}
	return product.Image, nil
}

// DecrementStockTx takes qty units off a product inside an open transaction.
// The WHERE guard makes the decrement and the availability check one atomic
// statement, so two concurrent checkouts can never drive stock negative.
func DecrementStockTx(ctx context.Context, tx bun.Tx, productId uuid.UUID, qty int) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE products SET stock = stock - ?, updated_at = now() WHERE id = ? AND stock >= ?",
		qty, productId, qty)
	if err != nil {
		return lib.MapPgError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return lib.ErrOutOfStock
	}
	return nil
}

// IncrementStockTx adds qty units to a product inside an open transaction
func IncrementStockTx(ctx context.Context, tx bun.Tx, productId uuid.UUID, qty int) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE products SET stock = stock + ?, updated_at = now() WHERE id = ?",
		qty, productId)
	if err != nil {
		return lib.MapPgError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return lib.ErrUnknownProduct
	}
	return nil
}
