package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"latina/config"
	"latina/transport/http/router"
)

func TestHealth_GracePeriod(t *testing.T) {
	h := New(&config.Config{}, router.Router{}, Resources{})

	tests := []struct {
		state    ServerState
		wantCode int
		wantBody string
	}{
		{state: ServerStateReady, wantCode: http.StatusOK, wantBody: `{"message":"OK"}`},
		{state: ServerStateInGracePeriod, wantCode: http.StatusServiceUnavailable, wantBody: `{"message":"SERVER PREPARING TO SHUT DOWN"}`},
		{state: ServerStateInCleanupPeriod, wantCode: http.StatusServiceUnavailable, wantBody: `{"message":"SERVER PREPARING TO SHUT DOWN"}`},
	}

	for _, tt := range tests {
		h.setState(tt.state)

		recorder := httptest.NewRecorder()
		h.health(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, tt.wantCode, recorder.Code)
		assert.JSONEq(t, tt.wantBody, recorder.Body.String())
	}
}

func TestResources_CloseToleratesDisabledIntegrations(t *testing.T) {
	assert.NotPanics(t, func() {
		Resources{}.Close(t.Context())
	})
}
