// Package client submits reservation forms to a running site over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"latina/infras/otel"
	"latina/internal/domains/reservation/form"
	"latina/internal/domains/reservation/model/dto"
	"latina/shared/constant"
	"latina/shared/locale"
	"latina/transport/http/response"
)

const reservationsPath = "/api/reservations"

// Client implements form.Submitter against POST /api/reservations.
type Client struct {
	baseURL string
	locale  locale.Locale
	http    *http.Client
	otel    otel.Otel
}

// New builds a client for baseURL. A zero timeout waits for the server
// indefinitely.
func New(baseURL string, timeout time.Duration, loc locale.Locale, otel otel.Otel) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		locale:  loc,
		http:    &http.Client{Timeout: timeout},
		otel:    otel,
	}
}

func (c *Client) Submit(ctx context.Context, values form.Values) (ack form.Acknowledgment, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SubmitReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body, err := json.Marshal(dto.NewCreateReservationRequest(values, c.locale))
	if err != nil {
		return ack, fmt.Errorf("failed to encode reservation: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+reservationsPath, bytes.NewReader(body))
	if err != nil {
		return ack, fmt.Errorf("failed to build reservation request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.http.Do(request)
	if err != nil {
		log.Error().Err(err).Str("url", request.URL.String()).Msg("failed to reach reservation endpoint")

		return ack, &form.SubmissionError{Err: err}
	}
	defer resp.Body.Close()

	scope.SetAttribute("http.status_code", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		var payload response.Error
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error == nil {
			return ack, &form.SubmissionError{Status: resp.StatusCode, Reason: http.StatusText(resp.StatusCode)}
		}

		return ack, &form.SubmissionError{Status: resp.StatusCode, Reason: *payload.Error}
	}

	var payload response.Acknowledgment[dto.ReservationSummary]
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ack, &form.SubmissionError{Status: resp.StatusCode, Err: fmt.Errorf("failed to decode acknowledgment: %w", err)}
	}

	if !payload.Success {
		return ack, &form.SubmissionError{Status: resp.StatusCode, Reason: payload.Message}
	}

	return payload.Data.ToAcknowledgment(payload.Message), nil
}
