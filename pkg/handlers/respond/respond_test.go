package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/de-tools/commerce-atlas/pkg/models/api"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   api.Error
	}{
		{
			name:           "not found",
			err:            domain.NotFound("product", 999),
			expectedStatus: http.StatusNotFound,
			expectedBody:   api.Error{Error: "not_found", Detail: "product 999: not found"},
		},
		{
			name:           "validation",
			err:            fmt.Errorf("register product: %w", domain.Invalid("price must not be negative")),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody: api.Error{
				Error:  "validation_error",
				Detail: "register product: price must not be negative: validation failed",
			},
		},
		{
			name:           "internal",
			err:            errors.New("dial tcp: connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   api.Error{Error: "internal_error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			Error(rec, req, tt.err)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var body api.Error
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestInt64List(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?product_ids=1&product_ids=2,3&product_ids=", nil)
	ids, err := Int64List(req, "product_ids")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	_, err = Int64List(httptest.NewRequest(http.MethodGet, "/", nil), "product_ids")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = Int64List(httptest.NewRequest(http.MethodGet, "/?product_ids=x", nil), "product_ids")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPage(t *testing.T) {
	page, err := Page(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, domain.Page{Offset: 0, Limit: 10}, page)

	page, err = Page(httptest.NewRequest(http.MethodGet, "/?limit=3&offset=6", nil))
	require.NoError(t, err)
	assert.Equal(t, domain.Page{Offset: 6, Limit: 3}, page)

	_, err = Page(httptest.NewRequest(http.MethodGet, "/?limit=abc", nil))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = Page(httptest.NewRequest(http.MethodGet, "/?offset=-2", nil))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDateRange(t *testing.T) {
	period, err := DateRange(httptest.NewRequest(http.MethodGet, "/?start_date=2024-01-01&end_date=2024-01-31", nil))
	require.NoError(t, err)
	assert.Equal(t, 31, period.Days())

	for _, query := range []string{
		"/?start_date=2024-02-01&end_date=2024-01-31",
		"/?start_date=2024-02-01",
		"/?start_date=01-02-2024&end_date=2024-03-01",
	} {
		_, err := DateRange(httptest.NewRequest(http.MethodGet, query, nil))
		assert.ErrorIs(t, err, domain.ErrValidation, query)
	}
}
