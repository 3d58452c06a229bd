package admin

import (
	"net/http"

	"salon/infras/otel"
	"salon/internal/domains/reservation/service"
	"salon/shared/constant"
	gDto "salon/shared/dto"
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
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Get("/overview", handler.GetOverview)
	})
}

// GetOverview returns dataset totals for the back office.
// @Summary Admin overview
// @Description Count every entity in the loaded dataset and report the latest user and store updates.
// @Tags Admin
// @Produce json
// @Param at query string false "Reference time, epoch ms or civil time"
// @Success 200 {object} response.Data[dto.AdminOverviewResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/overview [get]
func (handler *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOverview")
	defer scope.End()

	ref, err := gDto.ReferenceTimeFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid reference time")

		response.WithError(w, err)

		return
	}

	overview, err := handler.service.AdminOverview(ctx, ref)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build admin overview")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, overview)
}
