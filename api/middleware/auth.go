package middleware

import (
	"context"
	"fmt"
	"net/http"
	"petshop_server/lib"
	"petshop_server/structs"
	"petshop_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// Context keys for storing session data in request context
type contextKey string

const (
	ClaimsContextKey     contextKey = "claims"
	SessionKeyContextKey contextKey = "session_key"
)

// validClaims extracts the session cookie and checks it was minted by this
// process. Tokens from a previous run carry a stale srv marker and are
// rejected, which forces a fresh login after every restart.
func (mw *Middleware) validClaims(r *http.Request) (*structs.AuthClaims, error) {
	claims, err := lib.ExtractClaims(r, mw.cfg.Auth.AccessTokenSecret)
	if err != nil {
		return nil, err
	}
	if claims.Srv != mw.cfg.Server.InstanceID {
		return nil, lib.ErrExpiredToken
	}
	return claims, nil
}

// RequireUser protects routes to logged-in users of any role.
func (mw *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := mw.validClaims(r)
		if err != nil {
			mw.logger.Warn("Rejected unauthenticated request", gecho.Field("path", r.URL.Path), gecho.Field("error", err))
			gecho.Unauthorized(w, gecho.WithMessage("Please log in to continue"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireCustomer protects routes to logged-in customers.
func (mw *Middleware) RequireCustomer(next http.Handler) http.Handler {
	return mw.requireRole(tables.RoleCustomer, next)
}

// RequireEmployee protects the back office to staff accounts.
func (mw *Middleware) RequireEmployee(next http.Handler) http.Handler {
	return mw.requireRole(tables.RoleEmployee, next)
}

func (mw *Middleware) requireRole(role string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := mw.validClaims(r)
		if err != nil {
			mw.logger.Warn("Rejected unauthenticated request", gecho.Field("path", r.URL.Path), gecho.Field("error", err))
			gecho.Unauthorized(w, gecho.WithMessage("Please log in to continue"), gecho.Send())
			return
		}

		if claims.Role != role {
			mw.logger.Warn("Rejected request with wrong role",
				gecho.Field("user_id", claims.Sub),
				gecho.Field("role", claims.Role),
				gecho.Field("path", r.URL.Path),
			)
			gecho.Forbidden(w, gecho.WithMessage("Access denied"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CartSession resolves the key a cart is stored under. Logged-in shoppers
// get a key derived from their account; anonymous shoppers get a guest
// cookie minted on first contact so their cart follows the browser.
func (mw *Middleware) CartSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if claims, err := mw.validClaims(r); err == nil {
			ctx = context.WithValue(ctx, ClaimsContextKey, claims)
			ctx = context.WithValue(ctx, SessionKeyContextKey, fmt.Sprintf("user:%s", claims.Sub))
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		// The cookie value becomes part of the cache key, so anything that
		// is not a uuid is replaced with a freshly minted one.
		guestId, err := lib.GetCookieValue(lib.GuestCartCookieName, r)
		if err != nil || uuid.Validate(guestId) != nil {
			guestId = uuid.NewString()
			lib.SetCookie(lib.GuestCartCookieName, guestId, time.Now().Add(mw.cfg.Cache.CartTTL), w)
		}

		ctx = context.WithValue(ctx, SessionKeyContextKey, fmt.Sprintf("guest:%s", guestId))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaimsFromContext is a helper function to extract the claims from request context
func GetClaimsFromContext(ctx context.Context) (*structs.AuthClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*structs.AuthClaims)
	return claims, ok
}

// GetSessionKeyFromContext returns the cart session key set by CartSession.
func GetSessionKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(SessionKeyContextKey).(string)
	return key, ok
}
