package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// MaintenanceEvent is a scheduled work order tying equipment, date, crew and
// priority together. Events are immutable once created; only the sweep moves
// them from scheduled to overdue.
type MaintenanceEvent struct {
	ID          int64             `json:"id" dynamodbav:"id"`
	Date        Date              `json:"date" dynamodbav:"date"`
	Equipment   string            `json:"equipment" dynamodbav:"equipment" validate:"required"`
	Type        string            `json:"type" dynamodbav:"type" validate:"required"`
	Crew        string            `json:"crew" dynamodbav:"crew"`
	Priority    Priority          `json:"priority" dynamodbav:"priority" validate:"required,oneof=low medium high"`
	Status      MaintenanceStatus `json:"status" dynamodbav:"status"`
	Description string            `json:"description" dynamodbav:"description"`
	CreatedAt   time.Time         `json:"createdAt" dynamodbav:"createdAt"`
}

type ScheduleEventRequest struct {
	Date        Date     `json:"date"`
	Equipment   string   `json:"equipment" validate:"required,min=1,max=200"`
	Type        string   `json:"type" validate:"required,min=1,max=100"`
	Crew        string   `json:"crew" validate:"required,min=1,max=100"`
	Priority    Priority `json:"priority" validate:"required,oneof=low medium high"`
	Description string   `json:"description" validate:"omitempty,max=1000"`
}

// CalendarDay is one entry of a month view: whether any events fall on it.
type CalendarDay struct {
	Date      Date `json:"date"`
	HasEvents bool `json:"hasEvents"`
}
