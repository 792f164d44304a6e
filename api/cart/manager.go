package cart

import (
	"petshop_server/api/middleware"
	"petshop_server/services"
	"petshop_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CartRoutesManager struct {
	logger          *gecho.Logger
	cartService     *services.CartService
	productService  *services.ProductService
	customerService *services.CustomerService
	orderService    *services.OrderService
	cfg             *structs.Config
	mw              *middleware.Middleware
}

func NewCartRoutesManager(
	logger *gecho.Logger,
	cartService *services.CartService,
	productService *services.ProductService,
	customerService *services.CustomerService,
	orderService *services.OrderService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *CartRoutesManager {
	return &CartRoutesManager{
		logger:          logger,
		cartService:     cartService,
		productService:  productService,
		customerService: customerService,
		orderService:    orderService,
		cfg:             cfg,
		mw:              mw,
	}
}

func (crm *CartRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		// Guests shop too; CartSession resolves who the cart belongs to.
		r.Use(crm.mw.CartSession)

		r.Get("/", crm.GetCart)
		r.Post("/add", crm.AddItem)
		r.Post("/update", crm.UpdateItem)
		r.Post("/remove", crm.RemoveItem)
		r.Post("/clear", crm.ClearCart)
		r.Post("/confirm", crm.Confirm)
	})
}
