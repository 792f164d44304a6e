package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"petshop_server/lib"
	"petshop_server/structs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartSessionMiddleware() *Middleware {
	return &Middleware{
		cfg: &structs.Config{
			Server: &structs.ServerConfig{InstanceID: "test-instance"},
			Auth:   &structs.AuthConfig{AccessTokenSecret: "test-secret"},
			Cache:  &structs.CacheConfig{CartTTL: time.Hour},
		},
	}
}

func resolveSessionKey(t *testing.T, r *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var key string
	handler := cartSessionMiddleware().CartSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, _ = GetSessionKeyFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	return key, rec
}

func TestCartSessionMintsGuestId(t *testing.T) {
	key, rec := resolveSessionKey(t, httptest.NewRequest("GET", "/cart", nil))

	require.True(t, strings.HasPrefix(key, "guest:"))
	assert.NoError(t, uuid.Validate(strings.TrimPrefix(key, "guest:")))
	assert.NotEmpty(t, rec.Result().Cookies())
}

func TestCartSessionKeepsValidGuestCookie(t *testing.T) {
	guestId := uuid.NewString()
	r := httptest.NewRequest("GET", "/cart", nil)
	r.AddCookie(&http.Cookie{Name: lib.GuestCartCookieName, Value: guestId})

	key, rec := resolveSessionKey(t, r)

	assert.Equal(t, "guest:"+guestId, key)
	assert.Empty(t, rec.Result().Cookies())
}

func TestCartSessionReplacesTamperedGuestCookie(t *testing.T) {
	// A cookie value the client made up must never reach the cache key.
	r := httptest.NewRequest("GET", "/cart", nil)
	r.AddCookie(&http.Cookie{Name: lib.GuestCartCookieName, Value: "user:someone-else"})

	key, rec := resolveSessionKey(t, r)

	require.True(t, strings.HasPrefix(key, "guest:"))
	assert.NoError(t, uuid.Validate(strings.TrimPrefix(key, "guest:")))
	assert.NotEqual(t, "guest:user:someone-else", key)
	assert.NotEmpty(t, rec.Result().Cookies())
}
