package auth

import (
	"net/http"
	"petshop_server/handling"
	"petshop_server/lib"
	"petshop_server/structs"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		handling.RespondError(err, "Please check your registration details and try again", arm.logger, w)
		return
	}

	user, err := arm.authService.Register(r.Context(), body)
	if err != nil {
		handling.RespondError(err, "Unable to create your account. Please try again", arm.logger, w)
		return
	}

	// Registration logs the new customer straight in.
	accessToken, err := arm.authService.GenerateAccessToken(user)
	if err != nil {
		handling.HandleError(err, "Account created, but login failed. Please log in manually", arm.logger, w)
		return
	}

	lib.SetCookie(lib.AccessCookieName, accessToken, arm.authService.GetAccessTokenExpiration(), w)

	gecho.Success(w,
		gecho.WithMessage("Account created"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
