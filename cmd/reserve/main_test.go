package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latina/internal/domains/reservation/form"
)

func TestParse(t *testing.T) {
	opts, err := parse([]string{"-name", "Ana", "-guests", "4", "-locale", "en", "-date", "2099-12-31", "-time", "20:00"}, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, "Ana", opts.name)
	assert.Equal(t, 4, opts.guests)
	assert.Equal(t, "en", opts.locale)
	assert.Equal(t, "http://localhost:8080", opts.url)
}

func TestParse_Errors(t *testing.T) {
	_, err := parse([]string{"-locale", "de"}, io.Discard)
	assert.Error(t, err)

	_, err = parse([]string{"-guests", "many"}, io.Discard)
	assert.Error(t, err)
}

func validOptions() options {
	return options{
		locale: "en",
		name:   "Ana",
		phone:  "+351900000000",
		date:   "2099-12-31",
		time:   "20:00",
		guests: 4,
	}
}

func TestRun_Accepted(t *testing.T) {
	var got form.Values
	submitter := form.SubmitterFunc(func(_ context.Context, values form.Values) (form.Acknowledgment, error) {
		got = values

		return form.Acknowledgment{Name: values.Name, Date: values.Date, Time: values.Time, Guests: values.Guests}, nil
	})

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), validOptions(), submitter, &out))

	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, 4, got.Guests)
	assert.Contains(t, out.String(), "Booking received!")
	assert.Contains(t, out.String(), "Ana, 2099-12-31 20:00, 4")
	assert.Contains(t, out.String(), "whatsapp: https://wa.me/")
}

func TestRun_Invalid(t *testing.T) {
	submitter := form.SubmitterFunc(func(context.Context, form.Values) (form.Acknowledgment, error) {
		t.Fatal("invalid bookings must not be sent")

		return form.Acknowledgment{}, nil
	})

	opts := validOptions()
	opts.phone = ""
	opts.date = "2000-01-01"

	var out bytes.Buffer
	err := run(context.Background(), opts, submitter, &out)

	assert.ErrorIs(t, err, form.ErrInvalid)
	assert.Contains(t, out.String(), "phone: This field is required")
	assert.Contains(t, out.String(), "date: The date cannot be in the past")
	assert.Contains(t, out.String(), "call:     tel:")
}

func TestRun_SiteDown(t *testing.T) {
	submitter := form.SubmitterFunc(func(context.Context, form.Values) (form.Acknowledgment, error) {
		return form.Acknowledgment{}, &form.SubmissionError{Err: errors.New("connection refused")}
	})

	var out bytes.Buffer
	err := run(context.Background(), validOptions(), submitter, &out)

	var subErr *form.SubmissionError
	assert.ErrorAs(t, err, &subErr)
	assert.Contains(t, out.String(), "We could not send your booking")
	assert.Contains(t, out.String(), "whatsapp: https://wa.me/")
}

func TestRun_UnusualSlot(t *testing.T) {
	submitter := form.SubmitterFunc(func(_ context.Context, values form.Values) (form.Acknowledgment, error) {
		return form.Acknowledgment{Name: values.Name}, nil
	})

	opts := validOptions()
	opts.time = "02:00"

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), opts, submitter, &out))

	assert.Contains(t, out.String(), "note: 02:00 is not one of the usual slots")
}
