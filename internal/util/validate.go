package util

import "fmt"

// ValidationError reports a payload field that failed validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// RequireFields checks that every named field is present and non-empty in
// the payload: absent keys, nil values and empty strings fail. Numeric zero
// is a valid value. The first offending field is reported.
func RequireFields(payload map[string]any, fields []string) error {
	for _, f := range fields {
		v, ok := payload[f]
		if !ok || v == nil {
			return &ValidationError{Field: f, Message: "required field is missing"}
		}
		if s, isStr := v.(string); isStr && s == "" {
			return &ValidationError{Field: f, Message: "required field is empty"}
		}
	}
	return nil
}
