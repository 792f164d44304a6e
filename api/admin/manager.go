package admin

import (
	"petshop_server/api/middleware"
	"petshop_server/services"
	"petshop_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger           *gecho.Logger
	authService      *services.AuthService
	productService   *services.ProductService
	catalogService   *services.CatalogService
	customerService  *services.CustomerService
	orderService     *services.OrderService
	deliveryService  *services.DeliveryService
	analyticsService *services.AnalyticsService
	cfg              *structs.Config
	mw               *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	productService *services.ProductService,
	catalogService *services.CatalogService,
	customerService *services.CustomerService,
	orderService *services.OrderService,
	deliveryService *services.DeliveryService,
	analyticsService *services.AnalyticsService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:           logger,
		authService:      authService,
		productService:   productService,
		catalogService:   catalogService,
		customerService:  customerService,
		orderService:     orderService,
		deliveryService:  deliveryService,
		analyticsService: analyticsService,
		cfg:              cfg,
		mw:               mw,
	}
}

func (adm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(adm.mw.RequireEmployee)

		r.Get("/products", adm.ListProducts)
		r.Post("/products", adm.CreateProduct)
		r.Put("/products/{id}", adm.UpdateProduct)
		r.Delete("/products/{id}", adm.DeleteProduct)

		r.Post("/categories", adm.CreateCategory)
		r.Put("/categories/{id}", adm.UpdateCategory)
		r.Delete("/categories/{id}", adm.DeleteCategory)
		r.Post("/subcategories", adm.CreateSubcategory)
		r.Put("/subcategories/{id}", adm.UpdateSubcategory)
		r.Delete("/subcategories/{id}", adm.DeleteSubcategory)

		r.Get("/customers", adm.ListCustomers)
		r.Post("/customers", adm.CreateCustomer)
		r.Delete("/customers/{id}", adm.DeleteCustomer)
		r.Post("/customers/{id}/loyalty-card", adm.IssueLoyaltyCard)

		r.Get("/orders", adm.ListOrders)
		r.Post("/orders", adm.CreateOrder)
		r.Get("/orders/loyalty-discount", adm.GetLoyaltyDiscount)
		r.Get("/orders/{id}", adm.GetOrderDetail)
		r.Delete("/orders/{id}", adm.DeleteOrder)

		r.Get("/deliveries", adm.ListDeliveries)
		r.Post("/deliveries", adm.CreateDelivery)
		r.Get("/deliveries/{id}", adm.GetDeliveryDetail)
		r.Delete("/deliveries/{id}", adm.DeleteDelivery)

		r.Get("/distributors", adm.ListDistributors)
		r.Post("/distributors", adm.CreateDistributor)
		r.Put("/distributors/{id}", adm.UpdateDistributor)
		r.Delete("/distributors/{id}", adm.DeleteDistributor)

		r.Get("/analytics", adm.GetAnalytics)
		r.Get("/reports/revenue", adm.GetRevenueReport)
	})
}
