package services

import (
	"context"
	"petshop_server/database"
	"petshop_server/lib"
	"petshop_server/structs"
	"petshop_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type CatalogService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewCatalogService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *CatalogService {
	return &CatalogService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

func (cs *CatalogService) GetCategories(ctx context.Context) ([]tables.Category, error) {
	categories, err := database.Query[tables.Category](cs.db).
		With("Subcategories").
		OrderBy("cat.name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return categories, nil
}

func (cs *CatalogService) GetCategoryById(ctx context.Context, id uuid.UUID) (*tables.Category, error) {
	category, err := database.Query[tables.Category](cs.db).
		Where("cat.id", id).
		With("Subcategories").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if category == nil {
		return nil, lib.ErrNotFound
	}
	return category, nil
}

func (cs *CatalogService) CreateCategory(ctx context.Context, req *structs.CategoryRequest) (*tables.Category, error) {
	category := &tables.Category{
		Id:   uuid.New(),
		Name: req.Name,
	}
	inserted, err := database.Create(cs.db, ctx, category)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.logger.Info("Category created", gecho.Field("category_id", category.Id), gecho.Field("name", category.Name))
	return inserted, nil
}

func (cs *CatalogService) UpdateCategory(ctx context.Context, id uuid.UUID, req *structs.CategoryRequest) error {
	affected, err := database.UpdateByID[tables.Category](cs.db, ctx, id, map[string]any{"name": req.Name})
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}

func (cs *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	affected, err := database.DeleteByID[tables.Category](cs.db, ctx, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}

func (cs *CatalogService) GetSubcategoryById(ctx context.Context, id uuid.UUID) (*tables.Subcategory, error) {
	subcategory, err := database.Query[tables.Subcategory](cs.db).
		Where("sc.id", id).
		With("Category").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if subcategory == nil {
		return nil, lib.ErrNotFound
	}
	return subcategory, nil
}

func (cs *CatalogService) CreateSubcategory(ctx context.Context, req *structs.SubcategoryRequest) (*tables.Subcategory, error) {
	subcategory := &tables.Subcategory{
		Id:         uuid.New(),
		CategoryId: req.CategoryID,
		Name:       req.Name,
	}
	inserted, err := database.Create(cs.db, ctx, subcategory)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.logger.Info("Subcategory created", gecho.Field("subcategory_id", subcategory.Id), gecho.Field("name", subcategory.Name))
	return inserted, nil
}

func (cs *CatalogService) UpdateSubcategory(ctx context.Context, id uuid.UUID, req *structs.SubcategoryRequest) error {
	affected, err := database.UpdateByID[tables.Subcategory](cs.db, ctx, id, map[string]any{
		"name":        req.Name,
		"category_id": req.CategoryID,
	})
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}

func (cs *CatalogService) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	affected, err := database.DeleteByID[tables.Subcategory](cs.db, ctx, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// GetBestSellers returns the most sold products by summed quantity.
// Products that never sold are absent; ties fall back to description order.
func (cs *CatalogService) GetBestSellers(ctx context.Context, limit int) ([]structs.BestSeller, error) {
	rows, err := database.RawQuery[structs.BestSeller](cs.db.DB, ctx, `
		SELECT p.id AS product_id, p.description, SUM(ol.quantity) AS units_sold
		FROM products p
		INNER JOIN order_lines ol ON ol.product_id = p.id
		GROUP BY p.id, p.description
		ORDER BY units_sold DESC, p.description ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return rows, nil
}

// GetProductDescriptions lists every distinct product description, ordered,
// for the storefront's search autocomplete.
func (cs *CatalogService) GetProductDescriptions(ctx context.Context) ([]string, error) {
	rows, err := database.RawQuery[struct {
		Description string `bun:"description"`
	}](cs.db.DB, ctx, `
		SELECT DISTINCT description
		FROM products
		ORDER BY description ASC`)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	descriptions := make([]string, 0, len(rows))
	for _, row := range rows {
		descriptions = append(descriptions, row.Description)
	}
	return descriptions, nil
}

// The merchandising pick queries. Only categories and subcategories with at
// least one product qualify, so the front page never shows an empty block;
// the product samples read in description order like the rest of the shop.
const (
	randomCategorySQL = `
		SELECT cat.id, cat.name
		FROM categories cat
		WHERE EXISTS (
			SELECT 1
			FROM products p
			JOIN subcategories s ON s.id = p.subcategory_id
			WHERE s.category_id = cat.id
		)
		ORDER BY random()
		LIMIT 1`

	randomSubcategorySQL = `
		SELECT sc.id, sc.category_id, sc.name
		FROM subcategories sc
		WHERE EXISTS (SELECT 1 FROM products WHERE subcategory_id = sc.id)
		ORDER BY random()
		LIMIT 1`

	categorySampleSQL = `
		SELECT p.*
		FROM products p
		WHERE p.subcategory_id IN (SELECT id FROM subcategories WHERE category_id = ?)
		ORDER BY p.description ASC
		LIMIT ?`

	subcategorySampleSQL = `
		SELECT p.*
		FROM products p
		WHERE p.subcategory_id = ?
		ORDER BY p.description ASC
		LIMIT ?`
)

// GetRandomCategory picks one non-empty category at random with a sample of
// its products, the merchandising block under the best sellers.
func (cs *CatalogService) GetRandomCategory(ctx context.Context, productLimit int) (*tables.Category, []tables.Product, error) {
	category, err := database.RawQueryOne[tables.Category](cs.db.DB, ctx, randomCategorySQL)
	if err != nil {
		return nil, nil, lib.MapPgError(err)
	}
	if category == nil {
		return nil, nil, nil // no category has products yet
	}

	products, err := database.RawQuery[tables.Product](cs.db.DB, ctx, categorySampleSQL, category.Id, productLimit)
	if err != nil {
		return nil, nil, lib.MapPgError(err)
	}

	return category, products, nil
}

// GetRandomSubcategory is the companion block: one non-empty subcategory at
// random with a sample of its products.
func (cs *CatalogService) GetRandomSubcategory(ctx context.Context, productLimit int) (*tables.Subcategory, []tables.Product, error) {
	subcategory, err := database.RawQueryOne[tables.Subcategory](cs.db.DB, ctx, randomSubcategorySQL)
	if err != nil {
		return nil, nil, lib.MapPgError(err)
	}
	if subcategory == nil {
		return nil, nil, nil
	}

	products, err := database.RawQuery[tables.Product](cs.db.DB, ctx, subcategorySampleSQL, subcategory.Id, productLimit)
	if err != nil {
		return nil, nil, lib.MapPgError(err)
	}

	return subcategory, products, nil
}
