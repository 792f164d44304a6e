package auth

import (
	"net/http"
	"petshop_server/api/middleware"
	"petshop_server/lib"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	// Logout succeeds whether or not a session exists; an expired or garbled
	// cookie is simply cleared.
	if accessToken, err := lib.GetCookieValue(lib.AccessCookieName, r); err == nil {
		if claims, err := lib.ParseToken(accessToken, arm.cfg.Auth.AccessTokenSecret); err == nil {
			if err := arm.cacheService.InvalidateUserCache(claims.Sub); err != nil {
				arm.logger.Error("Failed to clear user cache during logout", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
			}
		}
	}

	lib.ClearCookie(lib.AccessCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out successfully"),
		gecho.Send(),
	)
}

// HandleMe returns the account behind the current session.
func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to continue"), gecho.Send())
		return
	}

	user, err := arm.authService.GetUserByID(r.Context(), claims.Sub)
	if err != nil || user == nil {
		arm.logger.Warn("Session references unknown user", gecho.Field("user_id", claims.Sub), gecho.Field("error", err))
		gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(user),
		gecho.Send(),
	)
}
