package repository

import (
	"context"
	"maintdesk-backend/models"
)

// EquipmentRepositoryInterface defines the contract for equipment repository operations
type EquipmentRepositoryInterface interface {
	CreateEquipment(ctx context.Context, equipment *models.Equipment) (*models.Equipment, error)
	GetEquipment(ctx context.Context, id int64) (*models.Equipment, error)
	GetEquipmentBySerial(ctx context.Context, serialNumber string) ([]*models.Equipment, error)
	ListEquipment(ctx context.Context) ([]*models.Equipment, error)
	UpdateEquipment(ctx context.Context, id int64, equipment *models.Equipment) (*models.Equipment, error)
}

// EventRepositoryInterface defines the contract for maintenance event repository operations
type EventRepositoryInterface interface {
	CreateEvent(ctx context.Context, event *models.MaintenanceEvent) (*models.MaintenanceEvent, error)
	GetEvent(ctx context.Context, id int64) (*models.MaintenanceEvent, error)
	ListEvents(ctx context.Context) ([]*models.MaintenanceEvent, error)
	ListEventsByDate(ctx context.Context, date models.Date) ([]*models.MaintenanceEvent, error)
	UpdateEvent(ctx context.Context, id int64, event *models.MaintenanceEvent) (*models.MaintenanceEvent, error)
}

// ComplaintRepositoryInterface defines the contract for complaint repository operations
type ComplaintRepositoryInterface interface {
	CreateComplaint(ctx context.Context, complaint *models.Complaint) (*models.Complaint, error)
	GetComplaint(ctx context.Context, id int64) (*models.Complaint, error)
	ListComplaints(ctx context.Context) ([]*models.Complaint, error)
	UpdateComplaint(ctx context.Context, id int64, complaint *models.Complaint) (*models.Complaint, error)
}

// RepositoryContainerInterface defines the contract for the repository container
type RepositoryContainerInterface interface {
	GetEquipmentRepository() EquipmentRepositoryInterface
	GetEventRepository() EventRepositoryInterface
	GetComplaintRepository() ComplaintRepositoryInterface
}
