package model

import (
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID           = "id"
	FieldName         = "name"
	FieldPhone        = "phone"
	FieldDate         = "reservation_date"
	FieldTime         = "reservation_time"
	FieldGuests       = "guests"
	FieldObservations = "observations"
	FieldLocale       = "locale"
	FieldCreatedAt    = "created_at"
)

// Reservation is one accepted booking request. Date and time are kept as the
// guest entered them; staff confirm the table by phone.
type Reservation struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Phone        string    `db:"phone"`
	Date         string    `db:"reservation_date"`
	Time         string    `db:"reservation_time"`
	Guests       int       `db:"guests"`
	Observations string    `db:"observations"`
	Locale       string    `db:"locale"`
	CreatedAt    time.Time `db:"created_at"`
}

// Columns lists the insert columns in table order.
func Columns() []string {
	return []string{
		FieldID,
		FieldName,
		FieldPhone,
		FieldDate,
		FieldTime,
		FieldGuests,
		FieldObservations,
		FieldLocale,
		FieldCreatedAt,
	}
}

// ReceivedEvent is published once a reservation has been accepted.
type ReceivedEvent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Guests       int       `json:"guests"`
	Observations string    `json:"observations,omitempty"`
	Locale       string    `json:"locale"`
	ReceivedAt   time.Time `json:"received_at"`
}

func (r Reservation) ToEvent() ReceivedEvent {
	return ReceivedEvent{
		ID:           r.ID,
		Name:         r.Name,
		Phone:        r.Phone,
		Date:         r.Date,
		Time:         r.Time,
		Guests:       r.Guests,
		Observations: r.Observations,
		Locale:       r.Locale,
		ReceivedAt:   r.CreatedAt,
	}
}
