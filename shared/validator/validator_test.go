package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"latina/shared/failure"
	"latina/shared/validator"
)

type bookingStruct struct {
	Name   string `json:"name"   validate:"required"`
	Date   string `json:"date"   validate:"required"`
	Time   string `json:"time"   validate:"required"`
	Guests int    `json:"guests" validate:"required,gte=1"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        bookingStruct
		expectError bool
	}{
		{
			name:        "valid struct",
			data:        bookingStruct{Name: "Ana", Date: "2026-10-15", Time: "20:00", Guests: 4},
			expectError: false,
		},
		{
			name:        "missing required field",
			data:        bookingStruct{Date: "2026-10-15", Time: "20:00", Guests: 4},
			expectError: true,
		},
		{
			name:        "zero guests",
			data:        bookingStruct{Name: "Ana", Date: "2026-10-15", Time: "20:00"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required", expectError: false},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "within max length", field: "window seat", tag: "max=500", expectError: false},
		{name: "over max length", field: strings.Repeat("a", 501), tag: "max=500", expectError: true},
		{name: "number out of range", field: 150, tag: "gte=0,lte=100", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		jsonBody string
		wantCode int
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"name":"Ana","date":"2026-10-15","time":"20:00","guests":4}`,
			wantCode: 0,
		},
		{
			name:     "missing field",
			jsonBody: `{"name":"Ana","date":"2026-10-15","guests":4}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed JSON",
			jsonBody: `{"name":"Ana","date":}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingStruct
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if failure.GetCode(err) != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestDecodeReportsInvalidBody(t *testing.T) {
	var data bookingStruct

	err := validator.Decode(strings.NewReader(`not json`), &data)
	if err == nil {
		t.Fatal("expected decode error")
	}

	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, failure.GetCode(err))
	}
}

func TestValidationMessagesUseJSONNames(t *testing.T) {
	err := validator.ValidateStruct(&bookingStruct{})
	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	if err.Error() != "name is required" {
		t.Errorf("expected 'name is required', got %q", err.Error())
	}
}

func TestFields(t *testing.T) {
	data := bookingStruct{Name: "Ana", Date: "2026-10-15"}

	got := validator.Fields(&data, "required")
	want := []string{"time", "guests"}

	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Fields() = %v, want %v", got, want)
	}

	if validator.Fields(&bookingStruct{Name: "Ana", Date: "2026-10-15", Time: "20:00", Guests: 2}, "") != nil {
		t.Error("expected nil for a valid struct")
	}
}
