package client_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salon/infras/otel/mocks"
	"salon/internal/domains/reservation/model"
	"salon/internal/domains/reservation/model/dto"
	serviceMocks "salon/internal/domains/reservation/service/mocks"
	"salon/internal/handlers/client"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	"salon/shared/failure"
)

const ref = int64(1757462400000)

func newRouter(t *testing.T) (*chi.Mux, *serviceMocks.MockReservation) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockReservation(ctrl)

	handler := client.New(mockService, mocks.NewOtel())

	r := chi.NewRouter()
	handler.Router(r)

	return r, mockService
}

func TestHandler_GetDashboard(t *testing.T) {
	r, mockService := newRouter(t)

	mockService.EXPECT().
		ClientDashboard(gomock.Any(), ref).
		Return(dto.ClientDashboardResponse{
			Users:  []dto.UserSummaryResponse{},
			Stores: []dto.StoreSummaryResponse{},
		}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/client/dashboard?at=1757462400000", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"users":[]`)
}

func TestHandler_GetReservations(t *testing.T) {
	r, mockService := newRouter(t)

	want := dto.ReservationQuery{
		QueryParams: gDto.QueryParams{Page: 1, Limit: 10},
		Keyword:     "abc",
		Status:      "all",
	}

	mockService.EXPECT().
		ClientReservations(gomock.Any(), ref, want).
		Return(dto.ReservationListResponse{TotalData: 3, TotalPage: 1}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/client/reservations?at=1757462400000&q=+abc+", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_data":3`)
}

func TestHandler_ExportReservations(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, mockService := newRouter(t)

		want := dto.ReservationQuery{
			QueryParams: gDto.QueryParams{Page: 1, Limit: 10},
			Status:      "cancelled",
		}

		mockService.EXPECT().
			ClientExport(gomock.Any(), ref, want).
			Return(model.ExportFile{Name: "reservations-20250910-0900.xlsx", Content: []byte("xlsx")}, nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/client/reservations/export?at=1757462400000&status=cancelled", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constant.ContentTypeXLSX, rec.Header().Get(constant.RequestHeaderContentType))
		assert.Equal(t, `attachment; filename="reservations-20250910-0900.xlsx"`, rec.Header().Get(constant.RequestHeaderContentDisposition))
		assert.Equal(t, "4", rec.Header().Get(constant.RequestHeaderContentLength))
		assert.Equal(t, "xlsx", rec.Body.String())
	})

	t.Run("invalid reference time", func(t *testing.T) {
		r, _ := newRouter(t)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/client/reservations/export?at=2025/09/10", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("integrity failure", func(t *testing.T) {
		r, mockService := newRouter(t)

		mockService.EXPECT().
			ClientExport(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.ExportFile{}, failure.InternalError(errors.New(`user "u_9" referenced by reservation r_1 does not exist`)))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/client/reservations/export", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "u_9")
	})
}
