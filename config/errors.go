package config

import (
	"errors"
	"fmt"
)

// Kind classifies a configuration failure.
type Kind string

const (
	// MissingRequiredKey indicates a key with no default is absent or empty.
	MissingRequiredKey Kind = "MISSING_REQUIRED_KEY"
	// TypeCoercionFailure indicates a value could not be parsed as its declared type.
	TypeCoercionFailure Kind = "TYPE_COERCION_FAILURE"
	// OutOfRangeValue indicates a numeric value parsed but violates its declared range.
	OutOfRangeValue Kind = "OUT_OF_RANGE_VALUE"
	// InvalidEnumValue indicates a value is not one of the recognized enum names.
	InvalidEnumValue Kind = "INVALID_ENUM_VALUE"
	// MalformedListValue indicates a list entry could not be parsed or the list is empty.
	MalformedListValue Kind = "MALFORMED_LIST_VALUE"
)

// ConfigError is the failure signal of the loader. It carries the offending
// environment key and the kind of violation so callers can report precisely
// which setting broke startup. All loader errors are fatal: there is no
// partial-configuration mode.
type ConfigError struct {
	Kind    Kind
	Key     string
	Value   string
	Message string
	Cause   error
}

// Error returns the string representation of the error.
func (e *ConfigError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %s", e.Key, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Key, e.Kind)
}

// Unwrap returns the underlying cause of the error.
func (e *ConfigError) Unwrap() error { return e.Cause }

// KindOf extracts the Kind from err if it is (or wraps) a ConfigError.
func KindOf(err error) (Kind, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return "", false
}

// --- constructors ---

func missingKey(key string) *ConfigError {
	return &ConfigError{
		Kind: MissingRequiredKey, Key: key,
		Message: "required key is absent",
	}
}

func coercionFailure(key, value, want string, cause error) *ConfigError {
	return &ConfigError{
		Kind: TypeCoercionFailure, Key: key, Value: value,
		Message: fmt.Sprintf("%q cannot be parsed as %s", value, want),
		Cause:   cause,
	}
}

func outOfRange(key, value, constraint string) *ConfigError {
	return &ConfigError{
		Kind: OutOfRangeValue, Key: key, Value: value,
		Message: fmt.Sprintf("%s must be %s", value, constraint),
	}
}

func invalidEnum(key, value string, allowed []string) *ConfigError {
	return &ConfigError{
		Kind: InvalidEnumValue, Key: key, Value: value,
		Message: fmt.Sprintf("%q is not one of %v", value, allowed),
	}
}

func malformedList(key, value, reason string) *ConfigError {
	return &ConfigError{
		Kind: MalformedListValue, Key: key, Value: value,
		Message: reason,
	}
}
