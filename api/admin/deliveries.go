package admin

import (
	"net/http"
	"petshop_server/api/middleware"
	"petshop_server/handling"
	"petshop_server/lib"
	"petshop_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (adm *AdminRoutesManager) ListDeliveries(w http.ResponseWriter, r *http.Request) {
	deliveries, err := adm.deliveryService.ListDeliveries(r.Context())
	if err != nil {
		handling.RespondError(err, "Failed to load deliveries", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(deliveries),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) CreateDelivery(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to continue"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.DeliveryRequest](r)
	if err != nil {
		handling.RespondError(err, "Please check the delivery details", adm.logger, w)
		return
	}

	delivery, err := adm.deliveryService.RecordDelivery(r.Context(), body, claims.Sub)
	if err != nil {
		handling.RespondError(err, "Failed to record the delivery", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Delivery recorded"),
		gecho.WithData(delivery),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) GetDeliveryDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid delivery id"), gecho.Send())
		return
	}

	detail, err := adm.deliveryService.GetDeliveryDetail(r.Context(), id)
	if err != nil {
		handling.RespondError(err, "Failed to load the delivery", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(detail),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) DeleteDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid delivery id"), gecho.Send())
		return
	}

	if err := adm.deliveryService.DeleteDelivery(r.Context(), id); err != nil {
		handling.RespondError(err, "Failed to delete the delivery", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Delivery deleted"),
		gecho.Send(),
	)
}
