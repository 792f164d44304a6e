package cart

import (
	"net/http"
	"petshop_server/api/middleware"
	"petshop_server/handling"
	"petshop_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// Confirm turns the cart into an order. Guests are asked to log in; the
// cart is only cleared once the order commit succeeds.
func (crm *CartRoutesManager) Confirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := middleware.GetClaimsFromContext(ctx)
	if !ok || claims.Role != tables.RoleCustomer {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to place your order"), gecho.Send())
		return
	}

	sessionKey, ok := middleware.GetSessionKeyFromContext(ctx)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("No cart session"), gecho.Send())
		return
	}

	cart, err := crm.cartService.Load(ctx, sessionKey)
	if err != nil {
		handling.RespondError(err, "Failed to load your cart", crm.logger, w)
		return
	}
	if len(cart) == 0 {
		gecho.BadRequest(w, gecho.WithMessage("Your cart is empty"), gecho.Send())
		return
	}

	customer, err := crm.customerService.GetCustomerByUserId(ctx, claims.Sub)
	if err != nil {
		handling.RespondError(err, "Failed to place your order", crm.logger, w)
		return
	}

	order, err := crm.orderService.PlaceOrder(ctx, customer, map[uuid.UUID]int(cart), nil)
	if err != nil {
		handling.RespondError(err, "Failed to place your order", crm.logger, w)
		return
	}

	// Only a committed order empties the cart.
	if err := crm.cartService.Clear(ctx, sessionKey); err != nil {
		crm.logger.Warn("Order placed but cart not cleared", gecho.Field("order_id", order.Id), gecho.Field("error", err))
	}

	gecho.Success(w,
		gecho.WithMessage("Order placed"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
