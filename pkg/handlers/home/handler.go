package home

import (
	"net/http"

	"github.com/de-tools/commerce-atlas/pkg/handlers/respond"
	"github.com/de-tools/commerce-atlas/pkg/models/api"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
)

type Handler struct {
	version     string
	environment domain.Environment
}

func NewHandler(version string, environment domain.Environment) *Handler {
	return &Handler{
		version:     version,
		environment: environment,
	}
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, api.Home{
		Version:     h.version,
		Status:      "Healthy",
		Environment: string(h.environment),
	})
}
