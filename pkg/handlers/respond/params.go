package respond

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/commerce-atlas/pkg/models/domain"
)

// QueryInt returns the named query parameter, or def when it is absent.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.Invalid("query parameter %s must be an integer, got %q", name, raw)
	}
	return v, nil
}

func RequiredInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, domain.Invalid("query parameter %s is required", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.Invalid("query parameter %s must be an integer, got %q", name, raw)
	}
	return v, nil
}

func RequiredDate(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, domain.Invalid("query parameter %s is required", name)
	}
	return domain.ParseDay(raw)
}

// DateRange reads start_date and end_date.
func DateRange(r *http.Request) (domain.DateRange, error) {
	start, err := RequiredDate(r, "start_date")
	if err != nil {
		return domain.DateRange{}, err
	}
	end, err := RequiredDate(r, "end_date")
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.NewDateRange(start, end)
}

// Int64List accepts repeated parameters (?id=1&id=2) and comma separated
// values (?id=1,2). At least one id is required.
func Int64List(r *http.Request, name string) ([]int64, error) {
	var ids []int64
	for _, value := range r.URL.Query()[name] {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, domain.Invalid("query parameter %s must hold integers, got %q", name, part)
			}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, domain.Invalid("query parameter %s is required", name)
	}
	return ids, nil
}

func Page(r *http.Request) (domain.Page, error) {
	limit, err := QueryInt(r, "limit", 10)
	if err != nil {
		return domain.Page{}, err
	}
	offset, err := QueryInt(r, "offset", 0)
	if err != nil {
		return domain.Page{}, err
	}
	page := domain.Page{Offset: offset, Limit: limit}
	return page, page.Validate()
}

func DecodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return domain.Invalid("malformed request body: %v", err)
	}
	return nil
}
