package products

import (
	"net/http"

	"github.com/de-tools/commerce-atlas/pkg/adapters"
	"github.com/de-tools/commerce-atlas/pkg/handlers/respond"
	"github.com/de-tools/commerce-atlas/pkg/models/api"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/de-tools/commerce-atlas/pkg/services/catalog"
)

type Handler struct {
	catalog catalog.Service
}

func NewHandler(catalogService catalog.Service) *Handler {
	return &Handler{
		catalog: catalogService,
	}
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	page, err := respond.Page(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	categories, err := h.catalog.ListCategories(r.Context(), page)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	response := make([]api.Category, 0, len(categories))
	for _, c := range categories {
		response = append(response, adapters.MapCategoryDomainToApi(c))
	}
	respond.JSON(w, r, http.StatusOK, response)
}

func (h *Handler) RegisterCategory(w http.ResponseWriter, r *http.Request) {
	var body api.CategoryCreate
	if err := respond.DecodeJSON(r, &body); err != nil {
		respond.Error(w, r, err)
		return
	}

	category, err := h.catalog.RegisterCategory(r.Context(), body.Name)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusCreated, adapters.MapCategoryDomainToApi(category))
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, err := respond.Page(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	products, err := h.catalog.ListProducts(r.Context(), page)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	response := make([]api.Product, 0, len(products))
	for _, p := range products {
		response = append(response, adapters.MapProductDomainToApi(p))
	}
	respond.JSON(w, r, http.StatusOK, response)
}

func (h *Handler) RegisterProduct(w http.ResponseWriter, r *http.Request) {
	var body api.ProductCreate
	if err := respond.DecodeJSON(r, &body); err != nil {
		respond.Error(w, r, err)
		return
	}
	if body.Price == nil || body.CategoryID == nil {
		respond.Error(w, r, domain.Invalid("price and category_id are required"))
		return
	}

	product, err := h.catalog.RegisterProduct(r.Context(), domain.NewProduct{
		Name:        body.Name,
		Description: body.Description,
		Price:       *body.Price,
		CategoryID:  *body.CategoryID,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusCreated, adapters.MapProductDomainToApi(product))
}
