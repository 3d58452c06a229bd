package client

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
	router.Route("/client", func(routerGroup chi.Router) {
		routerGroup.Get("/dashboard", handler.GetDashboard)
		routerGroup.Get("/reservations", handler.GetReservations)
		routerGroup.Get("/reservations/export", handler.ExportReservations)
	})
}

// GetDashboard summarizes reservations made through corporate clients.
// @Summary Client dashboard
// @Description Stats, per-user and per-store summaries over client reservations.
// @Tags Client
// @Produce json
// @Param at query string false "Reference time, epoch ms or civil time"
// @Success 200 {object} response.Data[dto.ClientDashboardResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/client/dashboard [get]
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientDashboard")
	defer scope.End()

	ref, err := gDto.ReferenceTimeFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid reference time")

		response.WithError(w, err)

		return
	}

	dashboard, err := handler.service.ClientDashboard(ctx, ref)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build client dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dashboard)
}

// GetReservations lists client reservations, latest first.
// @Summary Client reservations
// @Description Filter by keyword and status, then paginate.
// @Tags Client
// @Produce json
// @Param at query string false "Reference time, epoch ms or civil time"
// @Param q query string false "Keyword over client, store and user names or reservation id"
// @Param status query string false "all, draft, confirmed or cancelled"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.ReservationListResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/client/reservations [get]
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientReservations")
	defer scope.End()

	ref, req, err := parseQuery(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	reservations, err := handler.service.ClientReservations(ctx, ref, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list client reservations")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("reservations.total", reservations.TotalData)

	response.WithJSON(w, http.StatusOK, reservations)
}

// ExportReservations downloads every matching client reservation as a spreadsheet.
// @Summary Export client reservations
// @Description Same filters as the list, without pagination.
// @Tags Client
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param at query string false "Reference time, epoch ms or civil time"
// @Param q query string false "Keyword over client, store and user names or reservation id"
// @Param status query string false "all, draft, confirmed or cancelled"
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/client/reservations/export [get]
func (handler *Handler) ExportReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportClientReservations")
	defer scope.End()

	ref, req, err := parseQuery(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	file, err := handler.service.ClientExport(ctx, ref, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export client reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Client reservations exported")

	response.WithFile(w, constant.ContentTypeXLSX, file.Name, file.Content)
}

func parseQuery(r *http.Request) (int64, dto.ReservationQuery, error) {
	req := dto.ReservationQuery{}

	ref, err := gDto.ReferenceTimeFromRequest(r)
	if err != nil {
		return 0, req, err
	}

	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		return 0, req, err
	}

	return ref, req, nil
}
