package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"

	"tudu/shared/failure"
)

var validate *val.Validate

func registerNotBlankValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return !field.Field().IsZero()
	}

	return strings.TrimSpace(str) != ""
}

// registerMaxBytesValidation bounds the encoded length of a string, unlike max which counts runes.
func registerMaxBytesValidation(field val.FieldLevel) bool {
	limit, err := strconv.Atoi(field.Param())
	if err != nil {
		return false
	}

	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return len(str) <= limit
}

// jsonFieldName reports fields by their JSON name so messages match the request body.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.RegisterValidation("notblank", registerNotBlankValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxbytes", registerMaxBytesValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. A body that cannot be decoded and a struct that
// breaks its validation rules are both reported as unprocessable.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.Unprocessable(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.UnprocessableFromString(msg) //nolint:wrapcheck
	}

	return nil
}
