package handling

import (
	"errors"
	"net/http"
	"petshop_server/lib"
	"petshop_server/structs"

	"github.com/MonkyMars/gecho"
)

func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) *gecho.Response {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	return gecho.InternalServerError(w, gecho.Send())
}

// RespondError maps domain errors onto HTTP responses; anything unmapped is
// logged and becomes a 500.
func RespondError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) *gecho.Response {
	var validationErr *lib.ValidationError
	if errors.As(err, &validationErr) {
		return gecho.BadRequest(w, gecho.WithMessage("Validation failed"), gecho.WithData(validationErr.Errors), gecho.Send())
	}

	switch {
	case errors.Is(err, lib.ErrNotFound),
		errors.Is(err, lib.ErrUnknownProduct),
		errors.Is(err, lib.ErrUnknownCustomer):
		return gecho.NotFound(w, gecho.WithMessage(err.Error()), gecho.Send())
	case errors.Is(err, lib.ErrConflict):
		return gecho.Conflict(w, gecho.WithMessage(err.Error()), gecho.Send())
	case errors.Is(err, lib.ErrOutOfStock),
		errors.Is(err, lib.ErrEmptyOrder),
		errors.Is(err, lib.ErrInvalidDateRange),
		errors.Is(err, structs.ErrCartProductUnknown),
		errors.Is(err, structs.ErrCartOutOfStock),
		errors.Is(err, structs.ErrCartStockExceeded),
		errors.Is(err, structs.ErrCartQuantity):
		return gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
	case errors.Is(err, lib.ErrInvalidCredentials),
		errors.Is(err, lib.ErrInvalidToken),
		errors.Is(err, lib.ErrExpiredToken):
		return gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
	}

	return HandleError(err, msg, logger, w)
}
