package repository

import (
	"maintdesk-backend/dal"
	"maintdesk-backend/models"
	"maintdesk-backend/utils/logger"
)

// Repository bundles all entity repositories over one database client
type Repository struct {
	Equipment *EquipmentRepository
	Event     *EventRepository
	Complaint *ComplaintRepository
}

func NewRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *Repository {
	return &Repository{
		Equipment: NewEquipmentRepository(db, cfg, log),
		Event:     NewEventRepository(db, cfg, log),
		Complaint: NewComplaintRepository(db, cfg, log),
	}
}

func (r *Repository) GetEquipmentRepository() EquipmentRepositoryInterface {
	return r.Equipment
}

func (r *Repository) GetEventRepository() EventRepositoryInterface {
	return r.Event
}

func (r *Repository) GetComplaintRepository() ComplaintRepositoryInterface {
	return r.Complaint
}
