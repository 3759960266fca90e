package models

import "time"

type EquipmentStatus string

const (
	EquipmentWorking    EquipmentStatus = "working"
	EquipmentNotWorking EquipmentStatus = "not-working"
)

type MaintenanceStatus string

const (
	MaintenanceCompleted MaintenanceStatus = "completed"
	MaintenanceScheduled MaintenanceStatus = "scheduled"
	MaintenanceOverdue   MaintenanceStatus = "overdue"
)

// MaintenanceRecord is one entry in an equipment's embedded maintenance
// history, past or future. Records are created as scheduled and move to
// completed when performed, or to overdue when their date elapses.
type MaintenanceRecord struct {
	Date   Date              `json:"date" dynamodbav:"date"`
	Type   string            `json:"type" dynamodbav:"type"`
	Status MaintenanceStatus `json:"status" dynamodbav:"status"`
}

// Equipment is a tracked physical asset with maintenance obligations.
// MaintenanceHistory is kept newest first.
type Equipment struct {
	ID                 int64               `json:"id" dynamodbav:"id"`
	Name               string              `json:"name" dynamodbav:"name" validate:"required"`
	Type               string              `json:"type" dynamodbav:"type"`
	Location           string              `json:"location" dynamodbav:"location"`
	Status             EquipmentStatus     `json:"status" dynamodbav:"status"`
	SerialNumber       string              `json:"serialNumber" dynamodbav:"serialNumber" validate:"required"`
	Manufacturer       string              `json:"manufacturer" dynamodbav:"manufacturer"`
	InstallDate        Date                `json:"installDate" dynamodbav:"installDate"`
	OperatingHours     int64               `json:"operatingHours" dynamodbav:"operatingHours" validate:"gte=0"`
	LastMaintenance    Date                `json:"lastMaintenance" dynamodbav:"lastMaintenance"`
	NextMaintenance    Date                `json:"nextMaintenance" dynamodbav:"nextMaintenance"`
	MaintenanceHistory []MaintenanceRecord `json:"maintenanceHistory" dynamodbav:"maintenanceHistory"`
	CreatedAt          time.Time           `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt" dynamodbav:"updatedAt"`
}

type RegisterEquipmentRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Type           string `json:"type" validate:"omitempty,max=100"`
	Location       string `json:"location" validate:"omitempty,max=200"`
	SerialNumber   string `json:"serialNumber" validate:"required,min=1,max=100"`
	Manufacturer   string `json:"manufacturer" validate:"omitempty,max=200"`
	InstallDate    Date   `json:"installDate"`
	OperatingHours int64  `json:"operatingHours" validate:"gte=0"`
}

// ScanRequest carries the raw contents of a scanned QR or barcode label.
type ScanRequest struct {
	Payload string `json:"payload"`
}

// ScanCandidate is a fully defaulted registration candidate produced from a
// decoded scan payload. It has no identity yet; registration assigns one.
type ScanCandidate struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	Location       string `json:"location"`
	SerialNumber   string `json:"serialNumber"`
	Manufacturer   string `json:"manufacturer"`
	InstallDate    Date   `json:"installDate"`
	OperatingHours int64  `json:"operatingHours"`
}

// EquipmentFilter narrows a registry search. Query is a case-insensitive
// substring over name, location and serial number; Type and Status are exact
// matches. Empty values and "all" are wildcards.
type EquipmentFilter struct {
	Query  string `json:"query,omitempty"`
	Type   string `json:"type,omitempty"`
	Status string `json:"status,omitempty"`
}

// AddMaintenanceRecordRequest plans a future maintenance action on one
// equipment's history.
type AddMaintenanceRecordRequest struct {
	Date Date   `json:"date"`
	Type string `json:"type" validate:"required,min=1,max=100"`
}

// CompleteMaintenanceRecordRequest marks a planned history entry as performed.
type CompleteMaintenanceRecordRequest struct {
	Date Date   `json:"date"`
	Type string `json:"type" validate:"required,min=1,max=100"`
}
