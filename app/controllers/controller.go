// Package controllers translates HTTP requests into service calls and
// service results into the JSON envelope. No business rules live here.
package controllers

import (
	"errors"
	"net/http"

	"github.com/cropconnect/api/app/models"
	"github.com/cropconnect/api/pkg/logger"
	"github.com/cropconnect/api/pkg/response"
)

// respondErr maps a domain error onto the envelope. notFound is the
// resource-specific message used for models.ErrNotFound.
func respondErr(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, models.ErrDuplicateEmail):
		response.Error(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, models.ErrInvalidCredentials):
		response.Unauthorized(w, "Invalid credentials")
	case errors.Is(err, models.ErrForbidden):
		response.Forbidden(w, "Not authorized")
	case errors.Is(err, models.ErrNotFound):
		response.NotFound(w, notFound)
	case errors.Is(err, models.ErrValidation):
		response.Error(w, http.StatusBadRequest, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("unhandled service error", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
