package sales

import (
	"net/http"

	"github.com/de-tools/commerce-atlas/pkg/adapters"
	"github.com/de-tools/commerce-atlas/pkg/handlers/respond"
	"github.com/de-tools/commerce-atlas/pkg/models/api"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/de-tools/commerce-atlas/pkg/services/sales"
)

type Handler struct {
	sales sales.Service
}

func NewHandler(salesService sales.Service) *Handler {
	return &Handler{
		sales: salesService,
	}
}

func (h *Handler) ListSales(w http.ResponseWriter, r *http.Request) {
	page, err := respond.Page(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	records, err := h.sales.ListSales(r.Context(), page)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	response := make([]api.Sale, 0, len(records))
	for _, s := range records {
		response = append(response, adapters.MapSaleDomainToApi(s))
	}
	respond.JSON(w, r, http.StatusOK, response)
}

func (h *Handler) RegisterSale(w http.ResponseWriter, r *http.Request) {
	var body api.SaleCreate
	if err := respond.DecodeJSON(r, &body); err != nil {
		respond.Error(w, r, err)
		return
	}
	if body.Quantity == nil || body.Revenue == nil || body.ProductID == nil {
		respond.Error(w, r, domain.Invalid("date, quantity, revenue and product_id are required"))
		return
	}
	date, err := domain.ParseDay(body.Date)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	sale, err := h.sales.RecordSale(r.Context(), domain.NewSale{
		Date:      date,
		Quantity:  *body.Quantity,
		Revenue:   *body.Revenue,
		ProductID: *body.ProductID,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusCreated, adapters.MapSaleDomainToApi(sale))
}

func (h *Handler) SalesByDate(w http.ResponseWriter, r *http.Request) {
	period, err := respond.DateRange(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	total, err := h.sales.SalesByDate(r.Context(), period)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapPeriodSalesDomainToApi(total))
}

func (h *Handler) SalesByProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := respond.RequiredInt64(r, "product_id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	total, err := h.sales.SalesByProduct(r.Context(), productID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapProductSalesDomainToApi(total))
}

func (h *Handler) SalesByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := respond.RequiredInt64(r, "category_id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	total, err := h.sales.SalesByCategory(r.Context(), categoryID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapCategorySalesDomainToApi(total))
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.sales.Analyze(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapSalesAnalysisDomainToApi(analysis))
}
