package inventory

import (
	"net/http"

	"github.com/de-tools/commerce-atlas/pkg/adapters"
	"github.com/de-tools/commerce-atlas/pkg/handlers/respond"
	"github.com/de-tools/commerce-atlas/pkg/models/api"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/de-tools/commerce-atlas/pkg/services/inventory"
)

type Handler struct {
	inventory inventory.Service
}

func NewHandler(inventoryService inventory.Service) *Handler {
	return &Handler{
		inventory: inventoryService,
	}
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	threshold, err := respond.QueryInt(r, "low_stock_threshold", inventory.DefaultLowStockThreshold)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	statuses, err := h.inventory.GetStatus(r.Context(), threshold)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	response := make([]api.InventoryStatus, 0, len(statuses))
	for _, s := range statuses {
		response = append(response, adapters.MapInventoryStatusDomainToApi(s))
	}
	respond.JSON(w, r, http.StatusOK, response)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var body api.InventoryUpdate
	if err := respond.DecodeJSON(r, &body); err != nil {
		respond.Error(w, r, err)
		return
	}
	if body.ProductID == nil || body.QuantityChange == nil {
		respond.Error(w, r, domain.Invalid("product_id and quantity_change are required"))
		return
	}

	change, err := h.inventory.Update(r.Context(), domain.InventoryUpdate{
		ProductID:      *body.ProductID,
		QuantityChange: *body.QuantityChange,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapInventoryChangeDomainToApi(change))
}
