package form_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latina/internal/catalog"
	"latina/internal/domains/reservation/form"
	"latina/shared/locale"
)

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}

	t.stopped = true

	return true
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) form.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	timer := &fakeTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, timer)

	return timer
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)

	due := []func(){}
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired && !timer.at.After(c.now) {
			timer.fired = true
			due = append(due, timer.f)
		}
	}
	c.mu.Unlock()

	for _, f := range due {
		f()
	}
}

type recordingSubmitter struct {
	mu    sync.Mutex
	calls []form.Values
	err   error
}

func (s *recordingSubmitter) Submit(_ context.Context, values form.Values) (form.Acknowledgment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, values)
	if s.err != nil {
		return form.Acknowledgment{}, s.err
	}

	return form.Acknowledgment{
		Message: "Reservation received successfully",
		Name:    values.Name,
		Date:    values.Date,
		Time:    values.Time,
		Guests:  values.Guests,
	}, nil
}

func (s *recordingSubmitter) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.calls)
}

var today = time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC)

func newController(t *testing.T, submitter form.Submitter, loc locale.Locale) (*form.Controller, *fakeClock) {
	t.Helper()

	clock := newFakeClock(today)
	controller := form.New(submitter, catalog.MustLoad(loc),
		form.WithClock(clock),
		form.WithLocation(time.UTC),
		form.WithContact("+351 968 707 515", "351968707515"),
	)

	t.Cleanup(func() { _ = controller.Close() })

	return controller, clock
}

func fill(t *testing.T, controller *form.Controller, values map[form.Field]string) {
	t.Helper()

	for field, value := range values {
		require.NoError(t, controller.UpdateField(field, value))
	}
}

func validFields() map[form.Field]string {
	return map[form.Field]string{
		form.FieldName:   "Ana",
		form.FieldPhone:  "+351900000000",
		form.FieldDate:   "2026-10-15",
		form.FieldTime:   "20:00",
		form.FieldGuests: "4",
	}
}

func TestController_Initial(t *testing.T) {
	controller, _ := newController(t, &recordingSubmitter{}, locale.PT)

	assert.Equal(t, form.Editing, controller.State())
	assert.Equal(t, form.Values{Guests: 2}, controller.Values())
	assert.Empty(t, controller.Errors())
	assert.Len(t, controller.Slots(), 22)

	_, ok := controller.Acknowledgment()
	assert.False(t, ok)
}

func TestController_Submit_Validation(t *testing.T) {
	tests := []struct {
		name   string
		change map[form.Field]string
		want   map[form.Field]form.Code
	}{
		{
			name:   "empty name",
			change: map[form.Field]string{form.FieldName: ""},
			want:   map[form.Field]form.Code{form.FieldName: form.CodeRequired},
		},
		{
			name:   "whitespace phone",
			change: map[form.Field]string{form.FieldPhone: "   "},
			want:   map[form.Field]form.Code{form.FieldPhone: form.CodeRequired},
		},
		{
			name:   "empty date",
			change: map[form.Field]string{form.FieldDate: ""},
			want:   map[form.Field]form.Code{form.FieldDate: form.CodeRequired},
		},
		{
			name:   "yesterday",
			change: map[form.Field]string{form.FieldDate: "2026-10-14"},
			want:   map[form.Field]form.Code{form.FieldDate: form.CodePastDate},
		},
		{
			name:   "unparseable date",
			change: map[form.Field]string{form.FieldDate: "15/10/2026"},
			want:   map[form.Field]form.Code{form.FieldDate: form.CodeInvalidDate},
		},
		{
			name:   "empty time",
			change: map[form.Field]string{form.FieldTime: ""},
			want:   map[form.Field]form.Code{form.FieldTime: form.CodeRequired},
		},
		{
			name:   "zero guests",
			change: map[form.Field]string{form.FieldGuests: "0"},
			want:   map[form.Field]form.Code{form.FieldGuests: form.CodeMinGuests},
		},
		{
			name:   "guests not a number",
			change: map[form.Field]string{form.FieldGuests: "many"},
			want:   map[form.Field]form.Code{form.FieldGuests: form.CodeMinGuests},
		},
		{
			name: "failures accumulate",
			change: map[form.Field]string{
				form.FieldName:   "",
				form.FieldPhone:  "",
				form.FieldDate:   "2020-01-01",
				form.FieldTime:   "",
				form.FieldGuests: "-3",
			},
			want: map[form.Field]form.Code{
				form.FieldName:   form.CodeRequired,
				form.FieldPhone:  form.CodeRequired,
				form.FieldDate:   form.CodePastDate,
				form.FieldTime:   form.CodeRequired,
				form.FieldGuests: form.CodeMinGuests,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submitter := &recordingSubmitter{}
			controller, _ := newController(t, submitter, locale.EN)

			fill(t, controller, validFields())
			fill(t, controller, tt.change)

			_, err := controller.Submit(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, form.ErrInvalid)

			got := map[form.Field]form.Code{}
			for field, fieldErr := range controller.Errors() {
				got[field] = fieldErr.Code
				assert.NotEmpty(t, fieldErr.Message)
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, form.Editing, controller.State())
			assert.Zero(t, submitter.Calls(), "invalid forms must not reach the endpoint")
		})
	}
}

func TestController_Submit_EmptyForm(t *testing.T) {
	submitter := &recordingSubmitter{}
	controller, _ := newController(t, submitter, locale.PT)

	_, err := controller.Submit(context.Background())

	var errs form.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 4)
	assert.False(t, errs.Has(form.FieldGuests), "the default of two guests is valid")
	assert.Equal(t, "Campo obrigatório", errs[form.FieldName].Message)
	assert.Zero(t, submitter.Calls())
}

func TestController_DateBoundary(t *testing.T) {
	submitter := &recordingSubmitter{}
	controller, _ := newController(t, submitter, locale.PT)

	fill(t, controller, validFields())
	require.NoError(t, controller.UpdateField(form.FieldDate, "2026-10-14"))

	_, err := controller.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, form.CodePastDate, controller.Errors()[form.FieldDate].Code)
	assert.Equal(t, "A data não pode ser no passado", controller.Errors()[form.FieldDate].Message)

	require.NoError(t, controller.UpdateField(form.FieldDate, "2026-10-15"))

	_, err = controller.Submit(context.Background())
	require.NoError(t, err, "today is bookable even late in the day")
	assert.Equal(t, 1, submitter.Calls())
}

func TestController_DateUsesLocation(t *testing.T) {
	lisbon, err := time.LoadLocation("Europe/Lisbon")
	require.NoError(t, err)

	submitter := &recordingSubmitter{}
	// 23:30 UTC on the 15th is already the 16th in Lisbon summer time.
	clock := newFakeClock(time.Date(2026, 7, 15, 23, 30, 0, 0, time.UTC))
	controller := form.New(submitter, catalog.MustLoad(locale.PT), form.WithClock(clock), form.WithLocation(lisbon))
	defer controller.Close()

	fill(t, controller, validFields())
	require.NoError(t, controller.UpdateField(form.FieldDate, "2026-07-15"))

	_, err = controller.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, form.CodePastDate, controller.Errors()[form.FieldDate].Code)
}

func TestController_UpdateField_ClearsError(t *testing.T) {
	controller, _ := newController(t, &recordingSubmitter{}, locale.EN)

	_, err := controller.Submit(context.Background())
	require.Error(t, err)
	require.True(t, controller.Errors().Has(form.FieldName))

	require.NoError(t, controller.UpdateField(form.FieldName, "x"))
	assert.False(t, controller.Errors().Has(form.FieldName))
	assert.True(t, controller.Errors().Has(form.FieldPhone), "other fields keep their errors")

	_, err = controller.Submit(context.Background())
	require.Error(t, err)

	// Clearing is optimistic: an edit that is still invalid also clears it.
	require.NoError(t, controller.UpdateField(form.FieldPhone, ""))
	assert.False(t, controller.Errors().Has(form.FieldPhone))

	require.NoError(t, controller.UpdateField(form.FieldName, "x"))
	assert.False(t, controller.Errors().Has(form.FieldName))
}

func TestController_UpdateField_UnknownField(t *testing.T) {
	controller, _ := newController(t, &recordingSubmitter{}, locale.EN)

	assert.ErrorIs(t, controller.UpdateField("email", "ana@example.com"), form.ErrUnknownField)
}

func TestController_AdjustGuests(t *testing.T) {
	controller, _ := newController(t, &recordingSubmitter{}, locale.EN)

	require.NoError(t, controller.UpdateField(form.FieldGuests, "1"))
	require.NoError(t, controller.AdjustGuests(-1))
	assert.Equal(t, 1, controller.Values().Guests)

	require.NoError(t, controller.AdjustGuests(-10))
	assert.Equal(t, 1, controller.Values().Guests)

	require.NoError(t, controller.AdjustGuests(1))
	assert.Equal(t, 2, controller.Values().Guests)

	require.NoError(t, controller.AdjustGuests(98))
	assert.Equal(t, 100, controller.Values().Guests, "there is no upper bound")
}

func TestController_Submit_Success(t *testing.T) {
	submitter := &recordingSubmitter{}
	controller, clock := newController(t, submitter, locale.EN)

	fill(t, controller, validFields())
	require.NoError(t, controller.UpdateField(form.FieldObservations, "birthday"))

	ack, err := controller.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, form.Acknowledgment{
		Message: "Reservation received successfully",
		Name:    "Ana",
		Date:    "2026-10-15",
		Time:    "20:00",
		Guests:  4,
	}, ack)
	assert.Equal(t, form.Succeeded, controller.State())
	assert.Equal(t, "birthday", submitter.calls[0].Observations)

	shown, ok := controller.Acknowledgment()
	assert.True(t, ok)
	assert.Equal(t, ack, shown)

	assert.ErrorIs(t, controller.UpdateField(form.FieldName, "Rui"), form.ErrBusy)
	assert.ErrorIs(t, controller.AdjustGuests(1), form.ErrBusy)

	_, err = controller.Submit(context.Background())
	assert.ErrorIs(t, err, form.ErrBusy)

	clock.Advance(3900 * time.Millisecond)
	assert.Equal(t, form.Succeeded, controller.State())

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, form.Editing, controller.State())
	assert.Equal(t, form.InitialValues(), controller.Values())
	assert.Empty(t, controller.Errors())

	_, ok = controller.Acknowledgment()
	assert.False(t, ok)
}

func TestController_Dismiss(t *testing.T) {
	controller, clock := newController(t, &recordingSubmitter{}, locale.EN)

	fill(t, controller, validFields())

	_, err := controller.Submit(context.Background())
	require.NoError(t, err)

	controller.Dismiss()
	assert.Equal(t, form.Editing, controller.State())
	assert.Equal(t, "Ana", controller.Values().Name)

	_, ok := controller.Acknowledgment()
	assert.False(t, ok)

	clock.Advance(form.DefaultResetDelay)
	assert.Equal(t, form.InitialValues(), controller.Values())
}

func TestController_Close_StopsReset(t *testing.T) {
	controller, clock := newController(t, &recordingSubmitter{}, locale.EN)

	fill(t, controller, validFields())

	_, err := controller.Submit(context.Background())
	require.NoError(t, err)

	require.NoError(t, controller.Close())
	clock.Advance(time.Minute)

	assert.Equal(t, form.Succeeded, controller.State())
	assert.Equal(t, "Ana", controller.Values().Name)
}

func TestController_Submit_Failure(t *testing.T) {
	submitter := &recordingSubmitter{err: errors.New("connection refused")}
	controller, _ := newController(t, submitter, locale.EN)

	fill(t, controller, validFields())

	_, err := controller.Submit(context.Background())

	var subErr *form.SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Zero(t, subErr.Status)
	assert.Equal(t, form.Failed, controller.State())
	assert.Equal(t, "Ana", controller.Values().Name, "entered data is kept for a retry")
	assert.Error(t, controller.Failure())

	submitter.err = nil

	ack, err := controller.Submit(context.Background())
	require.NoError(t, err, "a failed form can be resubmitted as is")
	assert.Equal(t, "Ana", ack.Name)
	assert.Equal(t, 2, submitter.Calls())
}

func TestController_Submit_RejectedByEndpoint(t *testing.T) {
	submitter := &recordingSubmitter{err: &form.SubmissionError{Status: http.StatusBadRequest, Reason: "Missing required fields"}}
	controller, _ := newController(t, submitter, locale.EN)

	fill(t, controller, validFields())

	_, err := controller.Submit(context.Background())

	var subErr *form.SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, http.StatusBadRequest, subErr.Status)

	require.NoError(t, controller.UpdateField(form.FieldName, "Ana Maria"))
	assert.Equal(t, form.Editing, controller.State())
	assert.NoError(t, controller.Failure())
}

func TestController_BusyWhileSubmitting(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	submitter := form.SubmitterFunc(func(ctx context.Context, values form.Values) (form.Acknowledgment, error) {
		close(started)
		<-release

		return form.Acknowledgment{Name: values.Name}, nil
	})

	controller, _ := newController(t, submitter, locale.EN)
	fill(t, controller, validFields())

	done := make(chan error, 1)
	go func() {
		_, err := controller.Submit(context.Background())
		done <- err
	}()

	<-started
	assert.Equal(t, form.Submitting, controller.State())
	assert.ErrorIs(t, controller.UpdateField(form.FieldName, "Rui"), form.ErrBusy)
	assert.ErrorIs(t, controller.AdjustGuests(1), form.ErrBusy)

	_, err := controller.Submit(context.Background())
	assert.ErrorIs(t, err, form.ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, form.Succeeded, controller.State())
	assert.Equal(t, "Ana", controller.Values().Name)
}

func TestController_WhatsApp(t *testing.T) {
	controller, _ := newController(t, &recordingSubmitter{}, locale.EN)

	assert.Equal(t,
		"Hello! I would like to book a table for {date} at {time}, for 2 people. Name: {name}",
		controller.WhatsAppMessage(),
	)

	fill(t, controller, validFields())

	assert.Equal(t,
		"Hello! I would like to book a table for 2026-10-15 at 20:00, for 4 people. Name: Ana",
		controller.WhatsAppMessage(),
	)
	assert.Equal(t,
		"https://wa.me/351968707515?text=Hello%21%20I%20would%20like%20to%20book%20a%20table%20for%202026-10-15%20at%2020%3A00%2C%20for%204%20people.%20Name%3A%20Ana",
		controller.WhatsAppLink(),
	)
}

func TestController_WhatsApp_LocalizedPlaceholders(t *testing.T) {
	controller, _ := newController(t, &recordingSubmitter{}, locale.PT)

	require.NoError(t, controller.UpdateField(form.FieldGuests, "0"))

	assert.Equal(t,
		"Olá! Gostaria de reservar uma mesa para {data} às {hora}, para {pessoas} pessoas. Nome: {nome}",
		controller.WhatsAppMessage(),
	)
}

func TestController_CallLink(t *testing.T) {
	controller, _ := newController(t, &recordingSubmitter{}, locale.FR)

	assert.Equal(t, "tel:+351968707515", controller.CallLink())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "editing", form.Editing.String())
	assert.Equal(t, "submitting", form.Submitting.String())
	assert.Equal(t, "unknown", form.State(42).String())
}
