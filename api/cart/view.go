package cart

import (
	"net/http"
	"petshop_server/api/middleware"
	"petshop_server/handling"
	"petshop_server/lib"
	"petshop_server/structs"
	"petshop_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// GetCart joins the stored cart against current product data. Products that
// vanished since they were added are silently dropped from the view.
func (crm *CartRoutesManager) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

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

	view := structs.CartView{Items: []structs.CartLine{}}

	if len(cart) > 0 {
		ids := make([]uuid.UUID, 0, len(cart))
		for id := range cart {
			ids = append(ids, id)
		}

		products, err := crm.productService.GetProductsByIds(ctx, ids)
		if err != nil {
			handling.RespondError(err, "Failed to load your cart", crm.logger, w)
			return
		}

		for i := range products {
			p := &products[i]
			qty := cart[p.Id]
			line := structs.CartLine{
				ProductID:      p.Id,
				Description:    p.Description,
				Quantity:       qty,
				UnitCents:      p.PriceCents,
				LineTotalCents: int64(qty) * p.PriceCents,
			}
			view.Items = append(view.Items, line)
			view.SubtotalCents += line.LineTotalCents
		}
	}

	view.DiscountPct = crm.currentDiscount(r)
	view.TotalCents = view.SubtotalCents * int64(100-view.DiscountPct) / 100

	gecho.Success(w,
		gecho.WithData(view),
		gecho.Send(),
	)
}

// currentDiscount previews the loyalty discount for a logged-in customer;
// guests always see zero.
func (crm *CartRoutesManager) currentDiscount(r *http.Request) int {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok || claims.Role != tables.RoleCustomer {
		return 0
	}

	customer, err := crm.customerService.GetCustomerByUserId(r.Context(), claims.Sub)
	if err != nil || customer == nil {
		if err != nil && !lib.IsNotFound(err) {
			crm.logger.Warn("Failed to resolve customer for cart discount", gecho.Field("user_id", claims.Sub), gecho.Field("error", err))
		}
		return 0
	}

	return crm.customerService.DiscountFor(customer)
}
