package form

import (
	"context"
	"errors"
	"maps"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"latina/internal/catalog"
	"latina/internal/domains/reservation/slot"
	"latina/shared/contact"
	"latina/shared/timezone"
)

const (
	DefaultResetDelay = 4 * time.Second
)

// Controller drives one guest's reservation form. Field changes are rejected
// with ErrBusy while a submission is being validated or is in flight, and
// while the acknowledgment is showing.
type Controller struct {
	mu sync.Mutex

	submitter  Submitter
	catalog    *catalog.Catalog
	clock      Clock
	location   *time.Location
	resetDelay time.Duration
	phone      string
	whatsApp   string

	state   State
	values  Values
	errors  ValidationErrors
	ack     *Acknowledgment
	failure error

	resetTimer Timer
	generation int
}

type Option func(*Controller)

func WithClock(clock Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithLocation sets the timezone that decides what "today" is.
func WithLocation(location *time.Location) Option {
	return func(c *Controller) {
		c.location = location
	}
}

func WithResetDelay(delay time.Duration) Option {
	return func(c *Controller) {
		c.resetDelay = delay
	}
}

// WithContact sets the phone number for the call link and the WhatsApp
// number, country code first, for the chat link.
func WithContact(phone, whatsApp string) Option {
	return func(c *Controller) {
		c.phone = phone
		c.whatsApp = whatsApp
	}
}

func New(submitter Submitter, cat *catalog.Catalog, opts ...Option) *Controller {
	controller := &Controller{
		submitter:  submitter,
		catalog:    cat,
		clock:      systemClock{},
		location:   timezone.GetLocation(),
		resetDelay: DefaultResetDelay,
		state:      Editing,
		values:     InitialValues(),
		errors:     ValidationErrors{},
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

func (c *Controller) Values() Values {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.values
}

// Errors returns a copy of the current validation errors.
func (c *Controller) Errors() ValidationErrors {
	c.mu.Lock()
	defer c.mu.Unlock()

	return maps.Clone(c.errors)
}

// Acknowledgment returns the last accepted booking while its confirmation is
// showing.
func (c *Controller) Acknowledgment() (Acknowledgment, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ack == nil || c.state != Succeeded {
		return Acknowledgment{}, false
	}

	return *c.ack, true
}

// Failure returns the error of the last submission while in Failed.
func (c *Controller) Failure() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.failure
}

func (c *Controller) Slots() []string {
	return slot.All()
}

// UpdateField sets one field from its text value and optimistically drops
// that field's validation error. Editing a failed form returns it to Editing.
func (c *Controller) UpdateField(field Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.editable(); err != nil {
		return err
	}

	switch field {
	case FieldName:
		c.values.Name = value
	case FieldPhone:
		c.values.Phone = value
	case FieldDate:
		c.values.Date = value
	case FieldTime:
		c.values.Time = value
	case FieldGuests:
		guests, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			guests = 0
		}

		c.values.Guests = guests
	case FieldObservations:
		c.values.Observations = value
	default:
		return ErrUnknownField
	}

	delete(c.errors, field)

	return nil
}

// AdjustGuests adds delta to the guest count, never going below one.
func (c *Controller) AdjustGuests(delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.editable(); err != nil {
		return err
	}

	c.values.Guests = max(1, c.values.Guests+delta)
	delete(c.errors, FieldGuests)

	return nil
}

// Submit validates the form and, when every field passes, sends it and waits
// for the answer. Validation failures are returned as ValidationErrors and
// never reach the submitter. Submit does not time out on its own; bound it
// through ctx.
func (c *Controller) Submit(ctx context.Context) (Acknowledgment, error) {
	c.mu.Lock()

	if c.state != Editing && c.state != Failed {
		c.mu.Unlock()

		return Acknowledgment{}, ErrBusy
	}

	c.state = Validating
	c.failure = nil

	if errs := c.validate(); len(errs) > 0 {
		c.errors = errs
		c.state = Editing
		c.mu.Unlock()

		return Acknowledgment{}, maps.Clone(errs)
	}

	c.errors = ValidationErrors{}
	c.state = Submitting
	values := c.values
	c.mu.Unlock()

	ack, err := c.submitter.Submit(ctx, values)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		var subErr *SubmissionError
		if !errors.As(err, &subErr) {
			subErr = &SubmissionError{Err: err}
		}

		log.Error().Err(err).Msg("failed to submit reservation")

		c.state = Failed
		c.failure = subErr

		return Acknowledgment{}, subErr
	}

	c.state = Succeeded
	c.ack = &ack
	c.scheduleReset()

	return ack, nil
}

// Dismiss closes the acknowledgment. The scheduled reset still clears the
// form when it fires.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Succeeded {
		c.state = Editing
	}
}

// Close stops a pending reset. The controller must not be used afterwards.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopReset()

	return nil
}

// WhatsAppMessage is the booking intent as free text for the chat channel.
// Fields the guest has not filled in show as {placeholder} words.
func (c *Controller) WhatsAppMessage() string {
	c.mu.Lock()
	values := c.values
	c.mu.Unlock()

	messages := c.catalog.Messages.Reservation
	placeholder := func(value, word string) string {
		if value == "" {
			return "{" + word + "}"
		}

		return value
	}

	guests := ""
	if values.Guests > 0 {
		guests = strconv.Itoa(values.Guests)
	}

	return catalog.Format(messages.WhatsAppMessage, map[string]string{
		"date":   placeholder(values.Date, messages.Placeholders.Date),
		"time":   placeholder(values.Time, messages.Placeholders.Time),
		"guests": placeholder(guests, messages.Placeholders.Guests),
		"name":   placeholder(values.Name, messages.Placeholders.Name),
	})
}

// WhatsAppLink opens a chat with the restaurant prefilled with
// WhatsAppMessage. It works whether or not the endpoint is reachable.
func (c *Controller) WhatsAppLink() string {
	return contact.WhatsAppLink(c.whatsApp, c.WhatsAppMessage())
}

// CallLink dials the restaurant directly.
func (c *Controller) CallLink() string {
	return contact.CallLink(c.phone)
}

func (c *Controller) editable() error {
	switch c.state {
	case Editing:
		return nil
	case Failed:
		c.state = Editing
		c.failure = nil

		return nil
	default:
		return ErrBusy
	}
}

func (c *Controller) validate() ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(c.values.Name) == "" {
		errs[FieldName] = c.fieldError(CodeRequired)
	}

	if strings.TrimSpace(c.values.Phone) == "" {
		errs[FieldPhone] = c.fieldError(CodeRequired)
	}

	if c.values.Date == "" {
		errs[FieldDate] = c.fieldError(CodeRequired)
	} else {
		date, err := timezone.ParseDate(c.values.Date, c.location)
		if err != nil {
			errs[FieldDate] = c.fieldError(CodeInvalidDate)
		} else if date.Before(c.today()) {
			errs[FieldDate] = c.fieldError(CodePastDate)
		}
	}

	if c.values.Time == "" {
		errs[FieldTime] = c.fieldError(CodeRequired)
	}

	if c.values.Guests < 1 {
		errs[FieldGuests] = c.fieldError(CodeMinGuests)
	}

	return errs
}

func (c *Controller) today() time.Time {
	return timezone.StartOfDay(c.clock.Now().In(c.location))
}

func (c *Controller) fieldError(code Code) FieldError {
	return FieldError{
		Code:    code,
		Message: c.catalog.Messages.Reservation.Validation.ValidationMessage(string(code)),
	}
}

func (c *Controller) scheduleReset() {
	c.stopReset()

	generation := c.generation
	c.resetTimer = c.clock.AfterFunc(c.resetDelay, func() {
		c.reset(generation)
	})
}

func (c *Controller) stopReset() {
	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}

	c.generation++
}

func (c *Controller) reset(generation int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A newer submission or Close superseded this timer.
	if generation != c.generation {
		return
	}

	if c.state == Validating || c.state == Submitting {
		return
	}

	c.values = InitialValues()
	c.errors = ValidationErrors{}
	c.ack = nil
	c.failure = nil
	c.state = Editing
	c.resetTimer = nil
}
