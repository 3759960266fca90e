package models

import "fmt"

// ValidationError reports a missing or malformed field on an incoming request.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports a lookup by id that matched nothing.
type NotFoundError struct {
	Resource string `json:"resource"`
	ID       int64  `json:"id"`
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// DuplicateSerialError reports a registration attempt with an already known
// serial number. Only raised when strict serial dedup is enabled.
type DuplicateSerialError struct {
	SerialNumber string `json:"serialNumber"`
}

func (e *DuplicateSerialError) Error() string {
	return fmt.Sprintf("equipment with serial number %q already registered", e.SerialNumber)
}

// UnknownCrewError reports a crew name outside the configured crew list.
// Only raised when strict crew validation is enabled.
type UnknownCrewError struct {
	Crew string `json:"crew"`
}

func (e *UnknownCrewError) Error() string {
	return fmt.Sprintf("crew %q is not in the configured crew list", e.Crew)
}
