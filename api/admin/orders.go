package admin

import (
	"net/http"
	"petshop_server/api/middleware"
	"petshop_server/handling"
	"petshop_server/lib"
	"petshop_server/structs"
	"strings"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (adm *AdminRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := adm.orderService.ListOrders(r.Context())
	if err != nil {
		handling.RespondError(err, "Failed to load orders", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(orders),
		gecho.Send(),
	)
}

// CreateOrder books an order a clerk takes at the counter; the customer is
// identified by email and the acting employee comes from the session.
func (adm *AdminRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to continue"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.OrderRequest](r)
	if err != nil {
		handling.RespondError(err, "Please check the order details", adm.logger, w)
		return
	}

	order, err := adm.orderService.PlaceOrderFromRequest(r.Context(), body, &claims.Sub)
	if err != nil {
		handling.RespondError(err, "Failed to place the order", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order placed"),
		gecho.WithData(order),
		gecho.Send(),
	)
}

// GetLoyaltyDiscount previews what discount a customer would get right now,
// looked up by email before the clerk books the order.
func (adm *AdminRoutesManager) GetLoyaltyDiscount(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		gecho.BadRequest(w, gecho.WithMessage("Customer email is required"), gecho.Send())
		return
	}

	customer, err := adm.customerService.GetCustomerByEmail(r.Context(), email)
	if err != nil {
		handling.RespondError(err, "Failed to look up the customer", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"email":        email,
			"discount_pct": adm.customerService.DiscountFor(customer),
		}),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	detail, err := adm.orderService.GetOrderDetail(r.Context(), id)
	if err != nil {
		handling.RespondError(err, "Failed to load the order", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(detail),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	if err := adm.orderService.DeleteOrder(r.Context(), id); err != nil {
		handling.RespondError(err, "Failed to delete the order", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order deleted"),
		gecho.Send(),
	)
}
