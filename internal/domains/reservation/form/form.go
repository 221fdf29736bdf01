// Package form holds the reservation form: the field values a guest is
// editing, their validation, and the submit/acknowledge/reset cycle.
package form

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

type State int

const (
	Editing State = iota
	Validating
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Validating:
		return "validating"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

type Field string

const (
	FieldName         Field = "name"
	FieldPhone        Field = "phone"
	FieldDate         Field = "date"
	FieldTime         Field = "time"
	FieldGuests       Field = "guests"
	FieldObservations Field = "observations"
)

// Fields lists the form fields in display order.
func Fields() []Field {
	return []Field{FieldName, FieldPhone, FieldDate, FieldTime, FieldGuests, FieldObservations}
}

// Code identifies why a field failed. Codes double as catalog keys under
// reservation.validation.
type Code string

const (
	CodeRequired    Code = "required"
	CodePastDate    Code = "pastDate"
	CodeInvalidDate Code = "invalidDate"
	CodeMinGuests   Code = "minGuests"
)

const DefaultGuests = 2

var (
	ErrBusy         = errors.New("form is busy")
	ErrUnknownField = errors.New("unknown form field")
	ErrInvalid      = errors.New("form has invalid fields")
)

type Values struct {
	Name         string
	Phone        string
	Date         string
	Time         string
	Guests       int
	Observations string
}

// InitialValues is the empty form shown to a new guest.
func InitialValues() Values {
	return Values{Guests: DefaultGuests}
}

type FieldError struct {
	Code    Code
	Message string
}

// ValidationErrors maps each failing field to its reason. It satisfies
// errors.Is(err, ErrInvalid).
type ValidationErrors map[Field]FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, field := range slices.Sorted(maps.Keys(v)) {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field].Code))
	}

	return "invalid reservation: " + strings.Join(parts, ", ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrInvalid
}

func (v ValidationErrors) Has(field Field) bool {
	_, ok := v[field]

	return ok
}

// Acknowledgment is what the endpoint echoes back for an accepted booking.
type Acknowledgment struct {
	Message string
	Name    string
	Date    string
	Time    string
	Guests  int
}

// Submitter sends a validated form to the reservation endpoint.
type Submitter interface {
	Submit(ctx context.Context, values Values) (Acknowledgment, error)
}

type SubmitterFunc func(ctx context.Context, values Values) (Acknowledgment, error)

func (f SubmitterFunc) Submit(ctx context.Context, values Values) (Acknowledgment, error) {
	return f(ctx, values)
}

// SubmissionError is a rejected or failed submission. Status is the HTTP
// status when the endpoint answered, zero when it could not be reached.
type SubmissionError struct {
	Status int
	Reason string
	Err    error
}

func (e *SubmissionError) Error() string {
	switch {
	case e.Status != 0 && e.Reason != "":
		return fmt.Sprintf("reservation rejected (%d): %s", e.Status, e.Reason)
	case e.Err != nil:
		return "reservation not sent: " + e.Err.Error()
	default:
		return "reservation not sent"
	}
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
