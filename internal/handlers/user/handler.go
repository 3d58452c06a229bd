package user

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
	router.Route("/user", func(routerGroup chi.Router) {
		routerGroup.Get("/bundle", handler.GetBundle)
	})
}

// GetBundle returns everything the end-user home screen needs in one payload.
// @Summary User bundle
// @Description Store summaries from active slots, reservation summaries and dashboard stats.
// @Tags User
// @Produce json
// @Param at query string false "Reference time, epoch ms or civil time"
// @Param audience query string false "senior or family, default senior"
// @Success 200 {object} response.Data[dto.UserBundleResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user/bundle [get]
func (handler *Handler) GetBundle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserBundle")
	defer scope.End()

	ref, err := gDto.ReferenceTimeFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid reference time")

		response.WithError(w, err)

		return
	}

	audience := r.URL.Query().Get(constant.RequestParamAudience)

	bundle, err := handler.service.UserBundle(ctx, ref, audience)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build user bundle")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("bundle.audience", bundle.Audience)

	response.WithJSON(w, http.StatusOK, bundle)
}
