package models

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrConfiguration = errors.New("rate table configuration is inconsistent")
	ErrAccessDenied  = errors.New("access denied")
	ErrOrderNotFound = errors.New("order not found")
	ErrUserNotFound  = errors.New("user not found")
)

// ValidationError reports bad or missing user supplied data. The message is
// safe to show to the caller.
type ValidationError struct {
	Message string
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ConfigurationError reports an inconsistent rate table. It is an operator
// problem and must not be shown to customers verbatim.
type ConfigurationError struct {
	Message string
}

func NewConfigurationError(format string, args ...any) error {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string { return "rate table: " + e.Message }

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }
