package admin

import (
	"net/http"
	"petshop_server/handling"
	"petshop_server/lib"
	"petshop_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (adm *AdminRoutesManager) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := adm.customerService.ListCustomers(r.Context())
	if err != nil {
		handling.RespondError(err, "Failed to load customers", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(customers),
		gecho.Send(),
	)
}

// CreateCustomer lets a clerk open an account at the counter. It reuses the
// registration flow but never logs the clerk in as the new customer.
func (adm *AdminRoutesManager) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		handling.RespondError(err, "Please check the customer details", adm.logger, w)
		return
	}

	user, err := adm.authService.Register(r.Context(), body)
	if err != nil {
		handling.RespondError(err, "Failed to create the customer", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Customer created"),
		gecho.WithData(user),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid customer id"), gecho.Send())
		return
	}

	if err := adm.customerService.DeleteCustomer(r.Context(), id); err != nil {
		handling.RespondError(err, "Failed to delete the customer", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Customer deleted"),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) IssueLoyaltyCard(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid customer id"), gecho.Send())
		return
	}

	card, err := adm.customerService.IssueLoyaltyCard(r.Context(), id)
	if err != nil {
		handling.RespondError(err, "Failed to issue the loyalty card", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Loyalty card issued"),
		gecho.WithData(card),
		gecho.Send(),
	)
}
