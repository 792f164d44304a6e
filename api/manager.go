package api

import (
	"petshop_server/api/account"
	"petshop_server/api/admin"
	"petshop_server/api/auth"
	"petshop_server/api/cart"
	"petshop_server/api/health"
	"petshop_server/api/middleware"
	"petshop_server/api/shop"
	"petshop_server/database"
	"petshop_server/services"
	"petshop_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	authRoutes    *auth.AuthRoutesManager
	shopRoutes    *shop.ShopRoutesManager
	cartRoutes    *cart.CartRoutesManager
	accountRoutes *account.AccountRoutesManager
	adminRoutes   *admin.AdminRoutesManager
	healthRoutes  *health.HealthRoutesManager
}

// NewRouterManager wires every service once and hands them to the route
// managers that share them.
func NewRouterManager(
	logger *gecho.Logger,
	db *database.DB,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *routerManager {
	cacheService := services.NewCacheService(logger, cfg)
	emailService := services.NewEmailService(logger, cfg)
	authService := services.NewAuthService(cfg, logger, db)
	productService := services.NewProductService(logger, cfg, db)
	catalogService := services.NewCatalogService(logger, cfg, db)
	customerService := services.NewCustomerService(logger, cfg, db, authService)
	cartService := services.NewCartService(logger, cfg, cacheService, productService)
	orderService := services.NewOrderService(logger, cfg, db, productService, customerService, emailService)
	deliveryService := services.NewDeliveryService(logger, cfg, db, productService, customerService)
	analyticsService := services.NewAnalyticsService(logger, cfg, db)
	healthService := services.NewHealthService(logger, db, cacheService)

	return &routerManager{
		authRoutes:    auth.NewAuthRoutesManager(logger, authService, cacheService, cfg, mw),
		shopRoutes:    shop.NewShopRoutesManager(logger, catalogService, productService, cfg),
		cartRoutes:    cart.NewCartRoutesManager(logger, cartService, productService, customerService, orderService, cfg, mw),
		accountRoutes: account.NewAccountRoutesManager(logger, customerService, orderService, cfg, mw),
		adminRoutes: admin.NewAdminRoutesManager(
			logger,
			authService,
			productService,
			catalogService,
			customerService,
			orderService,
			deliveryService,
			analyticsService,
			cfg,
			mw,
		),
		healthRoutes: health.NewHealthRoutesManager(healthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.authRoutes.RegisterRoutes(r)
	rm.shopRoutes.RegisterRoutes(r)
	rm.cartRoutes.RegisterRoutes(r)
	rm.accountRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
