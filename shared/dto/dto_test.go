package dto_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"salon/shared/constant"
	"salon/shared/dto"
	"salon/shared/failure"
	"salon/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudit_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2025, 9, 5, 9, 30, 0, 0, time.UTC)

	audit := &dto.Audit{}
	audit.FromModel(model.Audit{CreatedAt: createdAt.UnixMilli(), UpdatedAt: updatedAt.UnixMilli()})

	assert.Equal(t, "2025-09-01T09:00:00+09:00", audit.CreatedAt)
	assert.Equal(t, "2025-09-05T18:30:00+09:00", audit.UpdatedAt)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:           "with all valid parameters",
			queryParams:    map[string]string{"page": "2", "limit": "20"},
			defaultRequest: false,
			expected:       dto.QueryParams{Page: 2, Limit: 20},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "with invalid page parameter",
			queryParams:    map[string]string{"page": "invalid"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "with negative page parameter",
			queryParams:    map[string]string{"page": "-1", "limit": "0"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			var q dto.QueryParams
			q.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, q)
		})
	}
}

func TestReferenceTimeFromRequest(t *testing.T) {
	jst := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC).UnixMilli()

	tests := []struct {
		name    string
		query   string
		want    int64
		wantErr bool
	}{
		{name: "epoch milliseconds", query: "at=1757462400000", want: 1757462400000},
		{name: "civil time with space", query: "at=2025-09-10+09:00:00", want: jst},
		{name: "civil time with T", query: "at=2025-09-10T09:00:00", want: jst},
		{name: "invalid value", query: "at=tomorrow", wantErr: true},
		{name: "date only", query: "at=2025-09-10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/user/bundle?"+tt.query, nil)

			got, err := dto.ReferenceTimeFromRequest(req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.Contains(t, err.Error(), "invalid reference time")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReferenceTimeFromRequest_DefaultsToNow(t *testing.T) {
	before := time.Now().UnixMilli()

	got, err := dto.ReferenceTimeFromRequest(httptest.NewRequest(http.MethodGet, "/v1/user/bundle", nil))

	require.NoError(t, err)
	assert.GreaterOrEqual(t, got, before)
	assert.LessOrEqual(t, got, time.Now().UnixMilli())
}
