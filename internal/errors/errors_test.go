package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewStorageError(t *testing.T) {
	cause := errors.New("database locked")
	err := NewStorageError("insert task", cause)

	if err.Type != ErrorTypeStorage {
		t.Errorf("Type = %v, want ErrorTypeStorage", err.Type)
	}
	if err.Code != "STORAGE_ERROR" {
		t.Errorf("Code = %v, want STORAGE_ERROR", err.Code)
	}
	if !errors.Is(err, err) {
		t.Error("expected error to match itself")
	}
	if err.Unwrap() != cause {
		t.Error("expected cause to be preserved")
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "insert task" {
		t.Errorf("operation context = %v, want insert task", operation)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "123")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("Type = %v, want ErrorTypeNotFound", err.Type)
	}
	if err.Message != "task not found: 123" {
		t.Errorf("Message = %v", err.Message)
	}
}

func TestNewFormatError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewFormatError("backup document is not valid JSON", cause)

	if err.Type != ErrorTypeFormat {
		t.Errorf("Type = %v, want ErrorTypeFormat", err.Type)
	}
	if err.Code != "FORMAT_ERROR" {
		t.Errorf("Code = %v, want FORMAT_ERROR", err.Code)
	}
}

func TestIsErrorType(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		errorType ErrorType
		expected  bool
	}{
		{"matching storage error", NewStorageError("op", nil), ErrorTypeStorage, true},
		{"non-matching type", NewStorageError("op", nil), ErrorTypeNotFound, false},
		{"wrapped app error", fmt.Errorf("outer: %w", NewNotFoundError("task", "1")), ErrorTypeNotFound, true},
		{"plain error", errors.New("plain"), ErrorTypeStorage, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsErrorType(tt.err, tt.errorType); got != tt.expected {
				t.Errorf("IsErrorType() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"validation error passes through", NewValidationError("name must not be blank", nil), "name must not be blank"},
		{"format error passes through", NewFormatError("missing completionRecords field", nil), "missing completionRecords field"},
		{"storage error is generic", NewStorageError("insert", errors.New("io error")), "A storage error occurred. Please try again."},
		{"plain error passes through", errors.New("plain failure"), "plain failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestShouldLogError(t *testing.T) {
	if ShouldLogError(NewValidationError("bad input", nil)) {
		t.Error("validation errors should not be logged")
	}
	if ShouldLogError(NewFormatError("bad document", nil)) {
		t.Error("format errors should not be logged")
	}
	if !ShouldLogError(NewStorageError("write", nil)) {
		t.Error("storage errors should be logged")
	}
	if !ShouldLogError(errors.New("unknown")) {
		t.Error("unknown errors should be logged")
	}
}
