package services

import (
	"maintdesk-backend/models"
	"maintdesk-backend/repository"
	"maintdesk-backend/utils/logger"
)

// Service implements ServiceContainerInterface
type Service struct {
	equipmentService EquipmentServiceInterface
	ingestService    IngestServiceInterface
	scheduleService  ScheduleServiceInterface
	complaintService ComplaintServiceInterface
}

// NewService creates a new service container with all dependencies injected
func NewService(
	repoContainer repository.RepositoryContainerInterface,
	logger logger.Logger,
	config *models.Config,
) ServiceContainerInterface {
	return &Service{
		equipmentService: NewEquipmentService(repoContainer.GetEquipmentRepository(), config, logger),
		ingestService:    NewIngestService(logger),
		scheduleService:  NewScheduleService(repoContainer.GetEventRepository(), config, logger),
		complaintService: NewComplaintService(repoContainer.GetComplaintRepository(), config, logger),
	}
}

// GetEquipmentService returns the equipment registry service
func (s *Service) GetEquipmentService() EquipmentServiceInterface {
	return s.equipmentService
}

// GetIngestService returns the scan ingestion service
func (s *Service) GetIngestService() IngestServiceInterface {
	return s.ingestService
}

// GetScheduleService returns the maintenance scheduler service
func (s *Service) GetScheduleService() ScheduleServiceInterface {
	return s.scheduleService
}

// GetComplaintService returns the work request service
func (s *Service) GetComplaintService() ComplaintServiceInterface {
	return s.complaintService
}
