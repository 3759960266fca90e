package services

import (
	"context"
	"maintdesk-backend/models"
	"time"
)

// EquipmentServiceInterface defines the contract for the equipment registry
type EquipmentServiceInterface interface {
	RegisterEquipment(ctx context.Context, req *models.RegisterEquipmentRequest) (*models.Equipment, error)
	SearchEquipment(ctx context.Context, filter *models.EquipmentFilter) ([]*models.Equipment, error)
	GetEquipmentByID(ctx context.Context, id int64) (*models.Equipment, error)
	DistinctTypes(ctx context.Context) ([]string, error)
	RecomputeDueStatus(ctx context.Context, asOf models.Date) (int, error)
	AddMaintenanceRecord(ctx context.Context, id int64, req *models.AddMaintenanceRecordRequest) (*models.Equipment, error)
	CompleteMaintenanceRecord(ctx context.Context, id int64, req *models.CompleteMaintenanceRecordRequest) (*models.Equipment, error)
}

// IngestServiceInterface defines the contract for scan payload resolution
type IngestServiceInterface interface {
	ResolveScanPayload(payload string) *models.ScanCandidate
}

// ScheduleServiceInterface defines the contract for the maintenance scheduler
type ScheduleServiceInterface interface {
	ScheduleMaintenance(ctx context.Context, req *models.ScheduleEventRequest) (*models.MaintenanceEvent, error)
	EventsOn(ctx context.Context, date models.Date) ([]*models.MaintenanceEvent, error)
	HasEventsOn(ctx context.Context, date models.Date) (bool, error)
	CalendarMonth(ctx context.Context, year int, month time.Month) ([]models.CalendarDay, error)
	MarkOverdueEvents(ctx context.Context, asOf models.Date) (int, error)
	ClassifyCrewWorkload(ctx context.Context, date models.Date) ([]models.CrewWorkload, error)
}

// ComplaintServiceInterface defines the contract for work requests
type ComplaintServiceInterface interface {
	CreateComplaint(ctx context.Context, req *models.CreateComplaintRequest) (*models.Complaint, error)
	SearchComplaints(ctx context.Context, filter *models.ComplaintFilter) ([]*models.Complaint, error)
	GetComplaintByID(ctx context.Context, id int64) (*models.Complaint, error)
	UpdateComplaint(ctx context.Context, id int64, req *models.UpdateComplaintRequest) (*models.Complaint, error)
}

// ServiceContainerInterface bundles all services for handler wiring
type ServiceContainerInterface interface {
	GetEquipmentService() EquipmentServiceInterface
	GetIngestService() IngestServiceInterface
	GetScheduleService() ScheduleServiceInterface
	GetComplaintService() ComplaintServiceInterface
}
