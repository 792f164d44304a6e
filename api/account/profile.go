package account

import (
	"net/http"
	"petshop_server/api/middleware"
	"petshop_server/handling"
	"petshop_server/lib"
	"petshop_server/structs"

	"github.com/MonkyMars/gecho"
)

func (arm *AccountRoutesManager) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to continue"), gecho.Send())
		return
	}

	profile, err := arm.customerService.Profile(r.Context(), claims.Sub)
	if err != nil {
		handling.RespondError(err, "Failed to load your profile", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(profile),
		gecho.Send(),
	)
}

func (arm *AccountRoutesManager) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to continue"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ProfileUpdateRequest](r)
	if err != nil {
		handling.RespondError(err, "Please check your details and try again", arm.logger, w)
		return
	}

	if err := arm.customerService.UpdateProfile(r.Context(), claims.Sub, body); err != nil {
		handling.RespondError(err, "Failed to update your profile", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Profile updated"),
		gecho.Send(),
	)
}
