package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"latina/infras/otel"
	"latina/internal/domains/reservation/model/dto"
	"latina/internal/domains/reservation/notifier"
	"latina/internal/domains/reservation/repository"
	"latina/internal/domains/reservation/slot"
	"latina/shared/constant"
	"latina/shared/failure"
	"latina/shared/validator"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationSummary, error)
	Slots(ctx context.Context) dto.SlotsResponse
}

type serviceImpl struct {
	repo     repository.Reservation
	notifier notifier.Notifier
	otel     otel.Otel
}

// New wires the reservation service. repo and notifier may be nil; the
// booking is then only acknowledged and logged.
func New(repo repository.Reservation, notifier notifier.Notifier, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:     repo,
		notifier: notifier,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationSummary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if missing := validator.Fields(&req, "required"); len(missing) > 0 {
		log.Warn().Strs("fields", missing).Msg("reservation is missing required fields")

		return res, failure.MissingFields // nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	reservation := req.ToModel()
	scope.SetAttributes(map[string]any{
		"reservation.id":     reservation.ID,
		"reservation.date":   reservation.Date,
		"reservation.guests": reservation.Guests,
	})

	if s.repo != nil {
		if err = s.repo.Insert(ctx, reservation); err != nil {
			log.Error().Err(err).Msg("failed to journal reservation")

			return res, fmt.Errorf("failed to journal reservation: %w", err)
		}
	}

	log.Info().
		Str("id", reservation.ID).
		Str("date", reservation.Date).
		Str("time", reservation.Time).
		Int("guests", reservation.Guests).
		Str("locale", reservation.Locale).
		Msg("reservation received")

	if s.notifier != nil {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.notifier.Publish(c, reservation.ToEvent()); err != nil {
				log.Error().Err(err).Str("id", reservation.ID).Msg("failed to publish reservation event")
			}
		}()
	}

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) Slots(ctx context.Context) dto.SlotsResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Slots")
	defer scope.End()

	return dto.SlotsResponse{Slots: slot.All()}
}
