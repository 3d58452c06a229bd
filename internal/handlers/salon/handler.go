package salon

import (
	"net/http"

	"salon/infras/otel"
	"salon/internal/domains/reservation/model/dto"
	"salon/internal/domains/reservation/service"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	"salon/shared/validator"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/salon", func(routerGroup chi.Router) {
		routerGroup.Get("/dashboard", handler.GetDashboard)
		routerGroup.Get("/reservations", handler.GetReservations)
	})
}

// GetDashboard returns reservation stats and the most recent reservations.
// @Summary Salon dashboard
// @Description Reservation stats, the latest reservations by slot start, and the salon catalog counts and upcoming posts.
// @Tags Salon
// @Produce json
// @Param at query string false "Reference time, epoch ms or civil time"
// @Param limit query integer false "Number of recent reservations and upcoming posts, default 3"
// @Success 200 {object} response.Data[dto.SalonDashboardResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/salon/dashboard [get]
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSalonDashboard")
	defer scope.End()

	ref, err := gDto.ReferenceTimeFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid reference time")

		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	if err := validator.ValidateStruct(&queryParams); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	dashboard, err := handler.service.SalonDashboard(ctx, ref, queryParams.Limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build salon dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dashboard)
}

// GetReservations lists reservations, latest first.
// @Summary Salon reservations
// @Description Filter by keyword and status, then paginate.
// @Tags Salon
// @Produce json
// @Param at query string false "Reference time, epoch ms or civil time"
// @Param q query string false "Keyword over client, store and user names or reservation id"
// @Param status query string false "all, draft, confirmed or cancelled"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.ReservationListResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/salon/reservations [get]
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSalonReservations")
	defer scope.End()

	ref, err := gDto.ReferenceTimeFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid reference time")

		response.WithError(w, err)

		return
	}

	req := dto.ReservationQuery{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	reservations, err := handler.service.SalonReservations(ctx, ref, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list salon reservations")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("reservations.total", reservations.TotalData)

	response.WithJSON(w, http.StatusOK, reservations)
}
