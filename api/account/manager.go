package account

import (
	"petshop_server/api/middleware"
	"petshop_server/services"
	"petshop_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AccountRoutesManager struct {
	logger          *gecho.Logger
	customerService *services.CustomerService
	orderService    *services.OrderService
	cfg             *structs.Config
	mw              *middleware.Middleware
}

func NewAccountRoutesManager(
	logger *gecho.Logger,
	customerService *services.CustomerService,
	orderService *services.OrderService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AccountRoutesManager {
	return &AccountRoutesManager{
		logger:          logger,
		customerService: customerService,
		orderService:    orderService,
		cfg:             cfg,
		mw:              mw,
	}
}

func (arm *AccountRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/account", func(r chi.Router) {
		r.Use(arm.mw.RequireCustomer)

		r.Get("/profile", arm.GetProfile)
		r.Put("/profile", arm.UpdateProfile)
		r.Get("/orders", arm.GetOrders)
		r.Get("/orders/{id}", arm.GetOrderDetail)
	})
}
