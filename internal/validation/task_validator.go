package validation

import (
	"fmt"
	"strings"

	"smallthings/internal/config"
	"smallthings/internal/domain"
	"smallthings/internal/errors"
)

// TaskValidator enforces the input rules the task editor applies before a
// task reaches the store: non-blank name, duration within the configured
// range, and a color from the palette. The store itself accepts anything;
// restores in particular bypass these checks.
type TaskValidator struct {
	config *config.Config
}

// NewTaskValidator creates a validator with default configuration
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{config: config.NewConfig()}
}

// NewTaskValidatorWithConfig creates a validator with the given configuration
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{config: cfg}
}

// ValidateName checks that a task name is non-blank and within length limits
func (v *TaskValidator) ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.NewValidationError("task name must not be blank", nil)
	}
	if len(trimmed) > v.config.Validation.TaskNameMaxLength {
		return errors.NewValidationError(
			fmt.Sprintf("task name must be at most %d characters", v.config.Validation.TaskNameMaxLength), nil)
	}
	return nil
}

// ValidateDuration checks that a duration is within the configured range
func (v *TaskValidator) ValidateDuration(minutes int) error {
	min := v.config.Validation.MinDurationMinutes
	max := v.config.Validation.MaxDurationMinutes
	if minutes < min || minutes > max {
		return errors.NewInvalidInputError("duration", minutes,
			fmt.Sprintf("must be between %d and %d minutes", min, max))
	}
	return nil
}

// ValidateColor checks that a color code comes from the palette
func (v *TaskValidator) ValidateColor(colorCode string) error {
	if !domain.IsPaletteColor(colorCode) {
		return errors.NewInvalidInputError("color", colorCode, "must be one of the palette colors")
	}
	return nil
}

// ValidateTask runs all checks for a create or update
func (v *TaskValidator) ValidateTask(name, colorCode string, durationMinutes int) error {
	if err := v.ValidateName(name); err != nil {
		return err
	}
	if err := v.ValidateColor(colorCode); err != nil {
		return err
	}
	return v.ValidateDuration(durationMinutes)
}

// CleanName returns the name with surrounding whitespace removed
func (v *TaskValidator) CleanName(name string) string {
	return strings.TrimSpace(name)
}
