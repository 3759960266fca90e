package models

import "time"

type ComplaintPriority string

const (
	ComplaintPriorityLow      ComplaintPriority = "low"
	ComplaintPriorityMedium   ComplaintPriority = "medium"
	ComplaintPriorityHigh     ComplaintPriority = "high"
	ComplaintPriorityCritical ComplaintPriority = "critical"
)

type ComplaintStatus string

const (
	ComplaintStatusNew        ComplaintStatus = "new"
	ComplaintStatusInProgress ComplaintStatus = "in-progress"
	ComplaintStatusCompleted  ComplaintStatus = "completed"
	ComplaintStatusCancelled  ComplaintStatus = "cancelled"
)

// ComplaintUnassigned is the assignee value before a crew is dispatched.
const ComplaintUnassigned = "unassigned"

// Complaint is a fault report against a piece of equipment that becomes a
// dispatchable task for the admin panel.
type Complaint struct {
	ID          int64             `json:"id" dynamodbav:"id"`
	Title       string            `json:"title" dynamodbav:"title"`
	Equipment   string            `json:"equipment" dynamodbav:"equipment" validate:"required"`
	Location    string            `json:"location" dynamodbav:"location" validate:"required"`
	Priority    ComplaintPriority `json:"priority" dynamodbav:"priority" validate:"required,oneof=low medium high critical"`
	Status      ComplaintStatus   `json:"status" dynamodbav:"status"`
	Assignee    string            `json:"assignee" dynamodbav:"assignee"`
	Date        Date              `json:"date" dynamodbav:"date"`
	Description string            `json:"description" dynamodbav:"description" validate:"required"`
	Contact     string            `json:"contact" dynamodbav:"contact"`
	CreatedAt   time.Time         `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt" dynamodbav:"updatedAt"`
}

type CreateComplaintRequest struct {
	Title       string            `json:"title" validate:"omitempty,max=200"`
	Equipment   string            `json:"equipment" validate:"required,min=1,max=200"`
	Location    string            `json:"location" validate:"required,min=1,max=200"`
	Priority    ComplaintPriority `json:"priority" validate:"required,oneof=low medium high critical"`
	Description string            `json:"description" validate:"required,min=1,max=1000"`
	Contact     string            `json:"contact" validate:"required,min=1,max=200"`
}

type UpdateComplaintRequest struct {
	Title       string            `json:"title,omitempty" validate:"omitempty,max=200"`
	Priority    ComplaintPriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Status      ComplaintStatus   `json:"status,omitempty" validate:"omitempty,oneof=new in-progress completed cancelled"`
	Assignee    string            `json:"assignee,omitempty" validate:"omitempty,max=100"`
	Description string            `json:"description,omitempty" validate:"omitempty,max=1000"`
}

type ComplaintFilter struct {
	Query    string            `json:"query,omitempty"`
	Status   ComplaintStatus   `json:"status,omitempty"`
	Priority ComplaintPriority `json:"priority,omitempty"`
}
