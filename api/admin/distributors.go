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

func (adm *AdminRoutesManager) ListDistributors(w http.ResponseWriter, r *http.Request) {
	distributors, err := adm.deliveryService.ListDistributors(r.Context())
	if err != nil {
		handling.RespondError(err, "Failed to load distributors", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(distributors),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) CreateDistributor(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.DistributorRequest](r)
	if err != nil {
		handling.RespondError(err, "Please check the distributor fields", adm.logger, w)
		return
	}

	distributor, err := adm.deliveryService.CreateDistributor(r.Context(), body)
	if err != nil {
		handling.RespondError(err, "Failed to create the distributor", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Distributor created"),
		gecho.WithData(distributor),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) UpdateDistributor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid distributor id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.DistributorRequest](r)
	if err != nil {
		handling.RespondError(err, "Please check the distributor fields", adm.logger, w)
		return
	}

	if err := adm.deliveryService.UpdateDistributor(r.Context(), id, body); err != nil {
		handling.RespondError(err, "Failed to update the distributor", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Distributor updated"),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) DeleteDistributor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid distributor id"), gecho.Send())
		return
	}

	if err := adm.deliveryService.DeleteDistributor(r.Context(), id); err != nil {
		handling.RespondError(err, "Failed to delete the distributor", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Distributor deleted"),
		gecho.Send(),
	)
}
