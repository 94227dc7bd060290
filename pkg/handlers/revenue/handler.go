package revenue

import (
	"net/http"

	"github.com/de-tools/commerce-atlas/pkg/adapters"
	"github.com/de-tools/commerce-atlas/pkg/handlers/respond"
	"github.com/de-tools/commerce-atlas/pkg/models/api"
	"github.com/de-tools/commerce-atlas/pkg/services/revenue"
)

type Handler struct {
	reporter revenue.Reporter
}

func NewHandler(reporter revenue.Reporter) *Handler {
	return &Handler{
		reporter: reporter,
	}
}

func (h *Handler) TimePeriod(w http.ResponseWriter, r *http.Request) {
	period, err := respond.DateRange(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	total, err := h.reporter.TotalRevenue(r.Context(), period)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapRevenueTotalDomainToApi(total))
}

func (h *Handler) Daily(w http.ResponseWriter, r *http.Request) {
	days, err := respond.QueryInt(r, "days", revenue.DefaultDays)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	buckets, err := h.reporter.Daily(r.Context(), days)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapDailyRevenueDomainToApi(buckets))
}

func (h *Handler) Weekly(w http.ResponseWriter, r *http.Request) {
	weeks, err := respond.QueryInt(r, "weeks", revenue.DefaultWeeks)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	buckets, err := h.reporter.Weekly(r.Context(), weeks)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapWeeklyRevenueDomainToApi(buckets))
}

func (h *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	months, err := respond.QueryInt(r, "months", revenue.DefaultMonths)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	buckets, err := h.reporter.Monthly(r.Context(), months)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapMonthlyRevenueDomainToApi(buckets))
}

func (h *Handler) Annual(w http.ResponseWriter, r *http.Request) {
	years, err := respond.QueryInt(r, "years", revenue.DefaultYears)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	buckets, err := h.reporter.Annual(r.Context(), years)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapAnnualRevenueDomainToApi(buckets))
}

func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	ids, err := respond.Int64List(r, "product_ids")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	rows, err := h.reporter.ByProducts(r.Context(), ids)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	response := make([]api.RevenueProduct, 0, len(rows))
	for _, row := range rows {
		response = append(response, adapters.MapProductRevenueDomainToApi(row))
	}
	respond.JSON(w, r, http.StatusOK, response)
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	ids, err := respond.Int64List(r, "category_ids")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	rows, err := h.reporter.ByCategories(r.Context(), ids)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	response := make([]api.RevenueCategory, 0, len(rows))
	for _, row := range rows {
		response = append(response, adapters.MapCategoryRevenueDomainToApi(row))
	}
	respond.JSON(w, r, http.StatusOK, response)
}
