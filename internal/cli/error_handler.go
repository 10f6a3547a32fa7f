package cli

import (
	"fmt"

	"smallthings/internal/errors"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages with operation context
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}
	return err
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsValidationError checks if an error is a validation or input error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeValidation) ||
		errors.IsErrorType(err, errors.ErrorTypeInvalidInput)
}
