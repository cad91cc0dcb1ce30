package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"tudu/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusNotFound,
		Message: "ToDo Not Found",
	}

	if f.Error() != "ToDo Not Found" {
		t.Errorf("expected error message to be 'ToDo Not Found', got %s", f.Error())
	}
}

func TestInvalidIDParam(t *testing.T) {
	if failure.InvalidIDParam.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected code to be %d, got %d", http.StatusUnprocessableEntity, failure.InvalidIDParam.Code)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		result  error
		code    int
		message string
	}{
		{
			name:    "Unprocessable",
			result:  failure.Unprocessable(errors.New("content is required")),
			code:    http.StatusUnprocessableEntity,
			message: "content is required",
		},
		{
			name:    "UnprocessableFromString",
			result:  failure.UnprocessableFromString("is_done is required"),
			code:    http.StatusUnprocessableEntity,
			message: "is_done is required",
		},
		{
			name:    "Unauthorized",
			result:  failure.Unauthorized("Not Authorized"),
			code:    http.StatusUnauthorized,
			message: "Not Authorized",
		},
		{
			name:    "NotFound",
			result:  failure.NotFound("User not found"),
			code:    http.StatusNotFound,
			message: "User not found",
		},
		{
			name:    "Conflict",
			result:  failure.Conflict("username already exists"),
			code:    http.StatusConflict,
			message: "username already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.result)
			}

			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}

			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestNilErrorConstructors(t *testing.T) {
	if failure.Unprocessable(nil) != nil {
		t.Error("expected Unprocessable(nil) to be nil")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusConflict, Message: "test"},
			expected: http.StatusConflict,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("create account: %w", failure.NotFound("test")),
			expected: http.StatusNotFound,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}
