package services

import (
	"context"
	"maintdesk-backend/models"
	"maintdesk-backend/repository"
	"maintdesk-backend/utils/logger"
	"strings"
	"sync"
	"time"
)

// complaintIDSeed is the first id handed out by an empty complaint registry.
// Complaint ids live in a separate range from equipment and event ids.
const complaintIDSeed = 1001

type ComplaintService struct {
	complaintRepo repository.ComplaintRepositoryInterface
	config        *models.Config
	logger        logger.Logger
	now           func() time.Time

	mu sync.Mutex
}

func NewComplaintService(complaintRepo repository.ComplaintRepositoryInterface, cfg *models.Config, logger logger.Logger) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		config:        cfg,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateComplaint files a new work request. New complaints start in status
// "new" and unassigned; dispatching happens through UpdateComplaint.
func (s *ComplaintService) CreateComplaint(ctx context.Context, req *models.CreateComplaintRequest) (*models.Complaint, error) {
	if err := s.validateCreateComplaint(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.complaintRepo.ListComplaints(ctx)
	if err != nil {
		return nil, err
	}

	complaint := &models.Complaint{
		ID:          nextComplaintID(existing),
		Title:       req.Title,
		Equipment:   req.Equipment,
		Location:    req.Location,
		Priority:    req.Priority,
		Status:      models.ComplaintStatusNew,
		Assignee:    models.ComplaintUnassigned,
		Date:        models.DateOf(s.now()),
		Description: req.Description,
		Contact:     req.Contact,
	}
	if complaint.Title == "" {
		complaint.Title = complaint.Equipment
	}

	return s.complaintRepo.CreateComplaint(ctx, complaint)
}

func (s *ComplaintService) validateCreateComplaint(req *models.CreateComplaintRequest) error {
	if req == nil {
		return models.NewValidationError("", "complaint request is required")
	}
	if strings.TrimSpace(req.Equipment) == "" {
		return models.NewValidationError("equipment", "equipment is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return models.NewValidationError("description", "description is required")
	}
	if strings.TrimSpace(req.Contact) == "" {
		return models.NewValidationError("contact", "contact is required")
	}
	return nil
}

// SearchComplaints filters the registry; empty filters are wildcards. Query is
// a case-insensitive substring over title, equipment and location. Results
// stay newest first.
func (s *ComplaintService) SearchComplaints(ctx context.Context, filter *models.ComplaintFilter) ([]*models.Complaint, error) {
	if filter == nil {
		filter = &models.ComplaintFilter{}
	}

	all, err := s.complaintRepo.ListComplaints(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(filter.Query)
	matched := make([]*models.Complaint, 0, len(all))
	for _, item := range all {
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Title), query) &&
			!strings.Contains(strings.ToLower(item.Equipment), query) &&
			!strings.Contains(strings.ToLower(item.Location), query) {
			continue
		}
		if !isWildcardFilter(string(filter.Status)) && item.Status != filter.Status {
			continue
		}
		if !isWildcardFilter(string(filter.Priority)) && item.Priority != filter.Priority {
			continue
		}
		matched = append(matched, item)
	}

	return matched, nil
}

func (s *ComplaintService) GetComplaintByID(ctx context.Context, id int64) (*models.Complaint, error) {
	return s.complaintRepo.GetComplaint(ctx, id)
}

// UpdateComplaint applies the non-empty fields of the request to the stored
// complaint. Absent fields keep their current values.
func (s *ComplaintService) UpdateComplaint(ctx context.Context, id int64, req *models.UpdateComplaintRequest) (*models.Complaint, error) {
	if req == nil {
		return nil, models.NewValidationError("", "update request is required")
	}

	complaint, err := s.complaintRepo.GetComplaint(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		complaint.Title = req.Title
	}
	if req.Priority != "" {
		complaint.Priority = req.Priority
	}
	if req.Status != "" {
		complaint.Status = req.Status
	}
	if req.Assignee != "" {
		complaint.Assignee = req.Assignee
	}
	if req.Description != "" {
		complaint.Description = req.Description
	}

	return s.complaintRepo.UpdateComplaint(ctx, id, complaint)
}

func nextComplaintID(existing []*models.Complaint) int64 {
	if len(existing) == 0 {
		return complaintIDSeed
	}
	var max int64
	for _, item := range existing {
		if item.ID > max {
			max = item.ID
		}
	}
	if max < complaintIDSeed {
		return complaintIDSeed
	}
	return max + 1
}
