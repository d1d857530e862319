package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStoreUnavailable is returned by every store operation when the service
// runs without a database connection.
var ErrStoreUnavailable = errors.New("database not available")

// FieldError describes a single failed constraint of a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// ValidationError is returned when a payload breaks its field constraints.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}
