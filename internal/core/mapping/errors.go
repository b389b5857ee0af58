package mapping

import "fmt"

// InvalidPayloadError reports a payload that is not a non-empty string-keyed
// map. Caller responsibility; mapped to 400.
type InvalidPayloadError struct {
	Reason string
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid payload: %s", e.Reason)
}

// MissingFieldError reports a declared field absent from the payload on the
// strict creation path.
type MissingFieldError struct {
	Field  string
	Entity string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q for %s", e.Field, e.Entity)
}

// ValidationError reports a constraint violation; Message is user-facing.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Message)
}

// ConfigError reports a field map whose declared field has no assignable
// setter. Programmer error: must fail loudly and never reach a user as a
// 400-class message.
type ConfigError struct {
	Field  string
	Entity string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("field map for %s declares %q without a setter", e.Entity, e.Field)
}
