package cart

import (
	"net/http"
	"petshop_server/api/middleware"
	"petshop_server/handling"
	"petshop_server/lib"
	"petshop_server/structs"

	"github.com/MonkyMars/gecho"
)

func (crm *CartRoutesManager) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionKey, ok := middleware.GetSessionKeyFromContext(r.Context())
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("No cart session"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CartAddRequest](r)
	if err != nil {
		handling.RespondError(err, "Please check the item and try again", crm.logger, w)
		return
	}

	cart, err := crm.cartService.AddItem(r.Context(), sessionKey, body.ProductID, body.Quantity)
	if err != nil {
		handling.RespondError(err, "Failed to add the item to your cart", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item added"),
		gecho.WithData(cart),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sessionKey, ok := middleware.GetSessionKeyFromContext(r.Context())
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("No cart session"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CartUpdateRequest](r)
	if err != nil {
		handling.RespondError(err, "Please check the item and try again", crm.logger, w)
		return
	}

	var cart structs.Cart
	switch body.Action {
	case "inc":
		cart, err = crm.cartService.IncrementItem(r.Context(), sessionKey, body.ProductID)
	case "dec":
		cart, err = crm.cartService.DecrementItem(r.Context(), sessionKey, body.ProductID)
	}
	if err != nil {
		handling.RespondError(err, "Failed to update your cart", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Cart updated"),
		gecho.WithData(cart),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionKey, ok := middleware.GetSessionKeyFromContext(r.Context())
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("No cart session"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CartRemoveRequest](r)
	if err != nil {
		handling.RespondError(err, "Please check the item and try again", crm.logger, w)
		return
	}

	cart, err := crm.cartService.RemoveItem(r.Context(), sessionKey, body.ProductID)
	if err != nil {
		handling.RespondError(err, "Failed to update your cart", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item removed"),
		gecho.WithData(cart),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionKey, ok := middleware.GetSessionKeyFromContext(r.Context())
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("No cart session"), gecho.Send())
		return
	}

	if err := crm.cartService.Clear(r.Context(), sessionKey); err != nil {
		handling.RespondError(err, "Failed to clear your cart", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Cart cleared"),
		gecho.Send(),
	)
}
