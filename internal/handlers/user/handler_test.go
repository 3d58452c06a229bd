package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salon/infras/otel/mocks"
	"salon/internal/domains/reservation/model/dto"
	serviceMocks "salon/internal/domains/reservation/service/mocks"
	"salon/internal/handlers/user"
)

func TestHandler_GetBundle(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantAudience string
	}{
		{name: "family", query: "?at=1757462400000&audience=family", wantAudience: "family"},
		{name: "no audience", query: "?at=1757462400000", wantAudience: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := serviceMocks.NewMockReservation(ctrl)

			handler := user.New(mockService, mocks.NewOtel())

			r := chi.NewRouter()
			handler.Router(r)

			mockService.EXPECT().
				UserBundle(gomock.Any(), int64(1757462400000), tt.wantAudience).
				Return(dto.UserBundleResponse{Audience: "senior", Now: 1757462400000}, nil)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/bundle"+tt.query, nil))

			require.Equal(t, http.StatusOK, rec.Code)

			var body struct {
				Data dto.UserBundleResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, int64(1757462400000), body.Data.Now)
		})
	}
}
