package common

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries field-keyed messages so clients can render
// per-field feedback. Recoverable: the caller must correct the input.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add appends a message under the given field key.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

// Merge copies every field of other under the given key prefix.
func (e *ValidationError) Merge(prefix string, other *ValidationError) {
	for field, msgs := range other.Fields {
		key := field
		if prefix != "" {
			key = prefix + "." + field
		}
		e.Fields[key] = append(e.Fields[key], msgs...)
	}
}

// HasErrors reports whether any field accumulated a message.
func (e *ValidationError) HasErrors() bool { return len(e.Fields) > 0 }

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// ConflictError is returned when a seat is already taken on a flight,
// whether detected up front or by the unique constraint at commit time.
// Both paths produce the same shape.
type ConflictError struct {
	Row      int    `json:"row"`
	Seat     int    `json:"seat"`
	FlightID string `json:"flight_id"`
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("seat (row %d, seat %d) is already taken on flight %s", e.Row, e.Seat, e.FlightID)
}

// NotFoundError identifies a missing resource by kind and id.
type NotFoundError struct {
	Resource string `json:"resource"`
	ID       string `json:"id"`
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// PermissionError is returned for admin-only writes by non-admins and
// for access to another user's orders or tickets.
type PermissionError struct {
	Reason string `json:"reason"`
}

func (e *PermissionError) Error() string { return e.Reason }

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// AsConflictError unwraps err into a *ConflictError if it is one.
func AsConflictError(err error) (*ConflictError, bool) {
	var ce *ConflictError
	ok := errors.As(err, &ce)
	return ce, ok
}

// AsNotFoundError unwraps err into a *NotFoundError if it is one.
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var ne *NotFoundError
	ok := errors.As(err, &ne)
	return ne, ok
}

// AsPermissionError unwraps err into a *PermissionError if it is one.
func AsPermissionError(err error) (*PermissionError, bool) {
	var pe *PermissionError
	ok := errors.As(err, &pe)
	return pe, ok
}
