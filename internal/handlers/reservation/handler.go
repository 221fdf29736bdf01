package reservation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"latina/infras/otel"
	"latina/internal/domains/reservation/model/dto"
	"latina/internal/domains/reservation/service"
	"latina/shared/constant"
	"latina/shared/validator"
	"latina/transport/http/response"
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
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/slots", handler.GetSlots)
	})
}

// CreateReservation accepts a booking request.
// @Summary Request a table
// @Description Accepts a reservation request and echoes the booking back. Nothing is confirmed until the restaurant calls back.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation request"
// @Success 200 {object} response.Acknowledgment[dto.ReservationSummary]
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reservations [post]
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	body := http.MaxBytesReader(writer, request.Body, constant.RequestMaxMemory)
	if err := validator.Decode(body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode reservation request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation received", map[string]any{"guests": res.Guests})

	response.WithAcknowledgment(writer, constant.ResponseMessageReservationOK, res)
}

// GetSlots lists the bookable times.
// @Summary List reservation slots
// @Description Returns the half-hour slots a table can be requested for.
// @Tags Reservation
// @Produce json
// @Success 200 {object} response.Data[[]string]
// @Router /api/reservations/slots [get]
func (handler *Handler) GetSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	res := handler.service.Slots(ctx)

	response.WithJSON(writer, http.StatusOK, res.Slots)
}
