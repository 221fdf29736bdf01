package dto

import (
	"strings"

	"github.com/google/uuid"

	"latina/internal/domains/reservation/form"
	"latina/internal/domains/reservation/model"
	"latina/shared/locale"
	"latina/shared/timezone"
)

// CreateReservationRequest is the body of POST /api/reservations. Only the
// presence of the booking fields is checked here; the form validates dates
// and slots before anything is sent.
type CreateReservationRequest struct {
	Name         string `json:"name"                   validate:"required"          example:"Ana"`
	Phone        string `json:"phone"                  validate:"required"          example:"+351900000000"`
	Date         string `json:"date"                   validate:"required"          example:"2026-10-15"`
	Time         string `json:"time"                   validate:"required"          example:"20:00"`
	Guests       int    `json:"guests"                 validate:"required,min=1"    example:"4"`
	Observations string `json:"observations,omitempty" validate:"omitempty,max=500"`
	Locale       string `json:"locale,omitempty"       validate:"omitempty"         example:"pt"`
}

// NewCreateReservationRequest builds the request body for a form that passed
// validation.
func NewCreateReservationRequest(values form.Values, loc locale.Locale) CreateReservationRequest {
	return CreateReservationRequest{
		Name:         values.Name,
		Phone:        values.Phone,
		Date:         values.Date,
		Time:         values.Time,
		Guests:       values.Guests,
		Observations: values.Observations,
		Locale:       loc.String(),
	}
}

// Normalize trims the text fields so whitespace-only values count as absent.
func (c *CreateReservationRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Date = strings.TrimSpace(c.Date)
	c.Time = strings.TrimSpace(c.Time)
	c.Observations = strings.TrimSpace(c.Observations)
	c.Locale = strings.TrimSpace(c.Locale)
}

func (c *CreateReservationRequest) ToModel() model.Reservation {
	loc, ok := locale.Parse(c.Locale)
	if !ok {
		loc = locale.Default
	}

	return model.Reservation{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Phone:        c.Phone,
		Date:         c.Date,
		Time:         c.Time,
		Guests:       c.Guests,
		Observations: c.Observations,
		Locale:       loc.String(),
		CreatedAt:    timezone.Now(),
	}
}

// ReservationSummary is the booking echoed back to the guest.
type ReservationSummary struct {
	Name   string `json:"name"   example:"Ana"`
	Date   string `json:"date"   example:"2026-10-15"`
	Time   string `json:"time"   example:"20:00"`
	Guests int    `json:"guests" example:"4"`
}

func (r *ReservationSummary) FromModel(model model.Reservation) {
	r.Name = model.Name
	r.Date = model.Date
	r.Time = model.Time
	r.Guests = model.Guests
}

func (r ReservationSummary) ToAcknowledgment(message string) form.Acknowledgment {
	return form.Acknowledgment{
		Message: message,
		Name:    r.Name,
		Date:    r.Date,
		Time:    r.Time,
		Guests:  r.Guests,
	}
}

type SlotsResponse struct {
	Slots []string `json:"slots"`
}
