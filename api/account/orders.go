package account

import (
	"net/http"
	"petshop_server/api/middleware"
	"petshop_server/handling"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (arm *AccountRoutesManager) GetOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to continue"), gecho.Send())
		return
	}

	customer, err := arm.customerService.GetCustomerByUserId(r.Context(), claims.Sub)
	if err != nil {
		handling.RespondError(err, "Failed to load your orders", arm.logger, w)
		return
	}

	orders, err := arm.orderService.ListOrdersByCustomer(r.Context(), customer.Id)
	if err != nil {
		handling.RespondError(err, "Failed to load your orders", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(orders),
		gecho.Send(),
	)
}

func (arm *AccountRoutesManager) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to continue"), gecho.Send())
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	detail, err := arm.orderService.GetOrderDetail(r.Context(), id)
	if err != nil {
		handling.RespondError(err, "Failed to load the order", arm.logger, w)
		return
	}

	// Customers only see their own orders.
	if detail.Email != claims.Email {
		arm.logger.Warn("Customer requested someone else's order",
			gecho.Field("user_id", claims.Sub),
			gecho.Field("order_id", id),
		)
		gecho.NotFound(w, gecho.WithMessage("Order not found"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(detail),
		gecho.Send(),
	)
}
