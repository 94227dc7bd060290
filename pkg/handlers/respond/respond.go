package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/commerce-atlas/pkg/models/api"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

func JSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

// Error maps err onto a status code: ErrNotFound is 404, ErrValidation is 422
// and anything else is a 500 whose detail is logged but not returned.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		JSON(w, r, http.StatusNotFound, api.Error{Error: "not_found", Detail: err.Error()})
	case errors.Is(err, domain.ErrValidation):
		JSON(w, r, http.StatusUnprocessableEntity, api.Error{Error: "validation_error", Detail: err.Error()})
	default:
		logger.Error().Err(err).Msg("request failed")
		JSON(w, r, http.StatusInternalServerError, api.Error{Error: "internal_error"})
	}
}
