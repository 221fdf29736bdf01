package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"latina/shared/constant"
	"latina/shared/failure"
	"latina/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// Acknowledgment confirms an accepted request and echoes what was accepted.
type Acknowledgment[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithAcknowledgment sends a 200 with success set and the accepted data.
func WithAcknowledgment[T any](writer http.ResponseWriter, message string, data T) {
	response(writer, http.StatusOK, Acknowledgment[T]{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// WithError sends a response with an error message. Client errors carry the
// failure message; server errors never expose internal detail.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	errMsg := constant.ResponseErrorInternal
	if code < http.StatusInternalServerError {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			errMsg = fail.Message
		} else {
			errMsg = err.Error()
		}
	}

	response(writer, code, Error{Error: &errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithError(writer, failure.RequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func WithNotFound(writer http.ResponseWriter) {
	WithError(writer, failure.NotFound(constant.ResponseErrorNotFound))
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
