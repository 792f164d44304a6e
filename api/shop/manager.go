package shop

import (
	"petshop_server/services"
	"petshop_server/structs"
	"petshop_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ShopRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	productService *services.ProductService
	cfg            *structs.Config
}

func NewShopRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	productService *services.ProductService,
	cfg *structs.Config,
) *ShopRoutesManager {
	return &ShopRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		productService: productService,
		cfg:            cfg,
	}
}

func (srm *ShopRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/shop", func(r chi.Router) {
		r.Get("/", srm.GetFrontPage)
		r.Get("/search", srm.SearchProducts)
		r.Get("/categories", srm.GetCategories)
		r.Get("/descriptions", srm.GetDescriptions)
		r.Get("/category/{id}", srm.GetProductsByCategory)
		r.Get("/subcategory/{id}", srm.GetProductsBySubcategory)
		r.Get("/product/{id}", srm.GetProduct)
		r.Get("/product/{id}/image", srm.GetProductImage)
	})
}

// productView strips a product row down to what the storefront shows.
func productView(p *tables.Product) structs.ProductView {
	view := structs.ProductView{
		ID:          p.Id,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Stock:       p.Stock,
		HasImage:    len(p.Image) > 0,
	}
	if p.Subcategory != nil {
		view.Subcategory = p.Subcategory.Name
		if p.Subcategory.Category != nil {
			view.Category = p.Subcategory.Category.Name
		}
	}
	return view
}

func productViews(products []tables.Product) []structs.ProductView {
	views := make([]structs.ProductView, 0, len(products))
	for i := range products {
		views = append(views, productView(&products[i]))
	}
	return views
}

func categoryView(c *tables.Category) structs.CategoryView {
	view := structs.CategoryView{
		ID:   c.Id,
		Name: c.Name,
	}
	for _, sub := range c.Subcategories {
		view.Subcategories = append(view.Subcategories, structs.SubcategoryView{
			ID:   sub.Id,
			Name: sub.Name,
		})
	}
	return view
}
