// Package rest provides HTTP handlers for product and cart operations.
package rest

import (
	"errors"
	"log/slog"
	"net/http"

	shoperrors "github.com/abgdnv/filecommerce/internal/errors"
	"github.com/abgdnv/filecommerce/pkg/web"
)

// Client-facing error messages.
const (
	ProductNotFoundMessage = "Producto no encontrado"
	CartNotFoundMessage    = "Carrito no encontrado"
	InvalidProductMessage  = "Todos los campos son obligatorios, excepto thumbnails"
	InvalidQuantityMessage = "La cantidad debe ser mayor que cero"
)

// HealthCheck is a simple health check endpoint.
func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// respondServiceError maps a service error to its status code and client message.
// Client errors are logged as warnings, anything else as an error.
func respondServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, msg string, err error) {
	status, message := http.StatusInternalServerError, web.InternalErrorMessage
	switch {
	case errors.Is(err, shoperrors.ErrProductNotFound):
		status, message = http.StatusNotFound, ProductNotFoundMessage
	case errors.Is(err, shoperrors.ErrCartNotFound):
		status, message = http.StatusNotFound, CartNotFoundMessage
	case errors.Is(err, shoperrors.ErrInvalidProduct):
		status, message = http.StatusBadRequest, InvalidProductMessage
	case errors.Is(err, shoperrors.ErrInvalidQuantity):
		status, message = http.StatusBadRequest, InvalidQuantityMessage
	}

	switch fields, ok := web.FieldErrors(err); {
	case ok:
		logger.WarnContext(r.Context(), msg, "errors", fields)
	case status == http.StatusInternalServerError:
		logger.ErrorContext(r.Context(), msg, "error", err)
	default:
		logger.WarnContext(r.Context(), msg, "error", err)
	}
	web.RespondError(w, logger, status, message)
}

// respondInvalidBody reports a request body that is not valid JSON for the target type.
func respondInvalidBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	logger.WarnContext(r.Context(), "Error decoding request body", "error", err)
	web.RespondError(w, logger, http.StatusBadRequest, web.InvalidBodyMessage)
}
