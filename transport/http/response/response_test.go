package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"latina/shared/failure"
	"latina/transport/http/response"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "missing fields",
			err:      failure.MissingFields,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Missing required fields"}`,
		},
		{
			name:     "wrapped failure keeps its own message",
			err:      fmt.Errorf("failed to decode request body: %w", errors.Join(failure.InvalidBody, errors.New("unexpected EOF"))),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Invalid request body"}`,
		},
		{
			name:     "plain error is internal",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal server error"}`,
		},
		{
			name:     "internal failure hides its detail",
			err:      failure.InternalError(errors.New("disk full")),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal server error"}`,
		},
		{
			name:     "rate limited",
			err:      failure.RequestLimitExceeded,
			wantCode: http.StatusTooManyRequests,
			wantBody: `{"error":"REQUEST LIMIT EXCEEDED"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
		})
	}
}

func TestWithAcknowledgment(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithAcknowledgment(recorder, "Reservation received successfully", map[string]any{"name": "Ana", "guests": 4})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t,
		`{"success":true,"message":"Reservation received successfully","data":{"name":"Ana","guests":4}}`,
		recorder.Body.String(),
	)
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusOK, []string{"12:30", "13:00"})

	assert.JSONEq(t, `{"data":["12:30","13:00"]}`, recorder.Body.String())
}

func TestWithPreparingShutdown(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithPreparingShutdown(recorder)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, recorder.Body.String())
}

func TestWithNotFound(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithNotFound(recorder)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, recorder.Body.String())
}
