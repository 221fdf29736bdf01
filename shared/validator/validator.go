package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"

	"latina/shared/failure"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
}

// Decode reads JSON from r into data. A body that is not valid JSON (or has
// the wrong shape) is reported as failure.InvalidBody.
func Decode[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return fmt.Errorf("failed to decode request body: %w", errors.Join(failure.InvalidBody, err))
	}

	return nil
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// Fields returns the JSON names of every struct field failing tag, in
// declaration order. A nil result means the struct passed.
func Fields[T any](data *T, tag string) []string {
	err := validate.Struct(data)

	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return nil
	}

	fields := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		if tag == "" || valErr.Tag() == tag {
			fields = append(fields, valErr.Field())
		}
	}

	return fields
}
