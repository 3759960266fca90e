package controller

import (
	"context"
	"maintdesk-backend/models"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockEquipmentService implements services.EquipmentServiceInterface for testing
type MockEquipmentService struct {
	mock.Mock
}

func (m *MockEquipmentService) RegisterEquipment(ctx context.Context, req *models.RegisterEquipmentRequest) (*models.Equipment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Equipment), args.Error(1)
}

func (m *MockEquipmentService) SearchEquipment(ctx context.Context, filter *models.EquipmentFilter) ([]*models.Equipment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Equipment), args.Error(1)
}

func (m *MockEquipmentService) GetEquipmentByID(ctx context.Context, id int64) (*models.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Equipment), args.Error(1)
}

func (m *MockEquipmentService) DistinctTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockEquipmentService) RecomputeDueStatus(ctx context.Context, asOf models.Date) (int, error) {
	args := m.Called(ctx, asOf)
	return args.Int(0), args.Error(1)
}

func (m *MockEquipmentService) AddMaintenanceRecord(ctx context.Context, id int64, req *models.AddMaintenanceRecordRequest) (*models.Equipment, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Equipment), args.Error(1)
}

func (m *MockEquipmentService) CompleteMaintenanceRecord(ctx context.Context, id int64, req *models.CompleteMaintenanceRecordRequest) (*models.Equipment, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Equipment), args.Error(1)
}

// MockIngestService implements services.IngestServiceInterface for testing
type MockIngestService struct {
	mock.Mock
}

func (m *MockIngestService) ResolveScanPayload(payload string) *models.ScanCandidate {
	args := m.Called(payload)
	return args.Get(0).(*models.ScanCandidate)
}

// MockScheduleService implements services.ScheduleServiceInterface for testing
type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) ScheduleMaintenance(ctx context.Context, req *models.ScheduleEventRequest) (*models.MaintenanceEvent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceEvent), args.Error(1)
}

func (m *MockScheduleService) EventsOn(ctx context.Context, date models.Date) ([]*models.MaintenanceEvent, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MaintenanceEvent), args.Error(1)
}

func (m *MockScheduleService) HasEventsOn(ctx context.Context, date models.Date) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockScheduleService) CalendarMonth(ctx context.Context, year int, month time.Month) ([]models.CalendarDay, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CalendarDay), args.Error(1)
}

func (m *MockScheduleService) MarkOverdueEvents(ctx context.Context, asOf models.Date) (int, error) {
	args := m.Called(ctx, asOf)
	return args.Int(0), args.Error(1)
}

func (m *MockScheduleService) ClassifyCrewWorkload(ctx context.Context, date models.Date) ([]models.CrewWorkload, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CrewWorkload), args.Error(1)
}

// MockComplaintService implements services.ComplaintServiceInterface for testing
type MockComplaintService struct {
	mock.Mock
}

func (m *MockComplaintService) CreateComplaint(ctx context.Context, req *models.CreateComplaintRequest) (*models.Complaint, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockComplaintService) SearchComplaints(ctx context.Context, filter *models.ComplaintFilter) ([]*models.Complaint, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Complaint), args.Error(1)
}

func (m *MockComplaintService) GetComplaintByID(ctx context.Context, id int64) (*models.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockComplaintService) UpdateComplaint(ctx context.Context, id int64, req *models.UpdateComplaintRequest) (*models.Complaint, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}
