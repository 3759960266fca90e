package services

import (
	"context"
	"maintdesk-backend/models"

	"github.com/stretchr/testify/mock"
)

// MockLogger implements the logger interface for testing
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Debugf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Info(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Infof(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Warn(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Warnf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Error(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Errorf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Fatal(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Fatalf(format string, args ...interface{}) {
	m.Called(format, args)
}

// newQuietLogger returns a MockLogger that tolerates any log call.
func newQuietLogger() *MockLogger {
	logger := &MockLogger{}
	logger.On("Debug", mock.Anything).Return().Maybe()
	logger.On("Debugf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	logger.On("Info", mock.Anything).Return().Maybe()
	logger.On("Infof", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	logger.On("Warn", mock.Anything).Return().Maybe()
	logger.On("Warnf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	logger.On("Error", mock.Anything).Return().Maybe()
	logger.On("Errorf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	return logger
}

// MockEquipmentRepository implements EquipmentRepositoryInterface for testing
type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) CreateEquipment(ctx context.Context, equipment *models.Equipment) (*models.Equipment, error) {
	args := m.Called(ctx, equipment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) GetEquipment(ctx context.Context, id int64) (*models.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) GetEquipmentBySerial(ctx context.Context, serialNumber string) ([]*models.Equipment, error) {
	args := m.Called(ctx, serialNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) ListEquipment(ctx context.Context) ([]*models.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) UpdateEquipment(ctx context.Context, id int64, equipment *models.Equipment) (*models.Equipment, error) {
	args := m.Called(ctx, id, equipment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Equipment), args.Error(1)
}

// MockEventRepository implements EventRepositoryInterface for testing
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) CreateEvent(ctx context.Context, event *models.MaintenanceEvent) (*models.MaintenanceEvent, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceEvent), args.Error(1)
}

func (m *MockEventRepository) GetEvent(ctx context.Context, id int64) (*models.MaintenanceEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceEvent), args.Error(1)
}

func (m *MockEventRepository) ListEvents(ctx context.Context) ([]*models.MaintenanceEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MaintenanceEvent), args.Error(1)
}

func (m *MockEventRepository) ListEventsByDate(ctx context.Context, date models.Date) ([]*models.MaintenanceEvent, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MaintenanceEvent), args.Error(1)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, id int64, event *models.MaintenanceEvent) (*models.MaintenanceEvent, error) {
	args := m.Called(ctx, id, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceEvent), args.Error(1)
}

// MockComplaintRepository implements ComplaintRepositoryInterface for testing
type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) CreateComplaint(ctx context.Context, complaint *models.Complaint) (*models.Complaint, error) {
	args := m.Called(ctx, complaint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) GetComplaint(ctx context.Context, id int64) (*models.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) ListComplaints(ctx context.Context) ([]*models.Complaint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) UpdateComplaint(ctx context.Context, id int64, complaint *models.Complaint) (*models.Complaint, error) {
	args := m.Called(ctx, id, complaint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}
