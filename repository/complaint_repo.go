package repository

import (
	"context"
	"errors"
	"maintdesk-backend/dal"
	"maintdesk-backend/models"
	"maintdesk-backend/utils/logger"
	"sort"
	"strconv"
	"time"
)

type ComplaintRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewComplaintRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *ComplaintRepository {
	return &ComplaintRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *ComplaintRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_complaints"
}

func (r *ComplaintRepository) CreateComplaint(ctx context.Context, complaint *models.Complaint) (*models.Complaint, error) {
	r.logger.Infof("Creating complaint %d for %s", complaint.ID, complaint.Equipment)

	now := time.Now()
	complaint.CreatedAt = now
	complaint.UpdatedAt = now

	if err := r.db.PutItem(ctx, r.tableName(), complaint); err != nil {
		r.logger.Errorf("Failed to create complaint: %v", err)
		return nil, err
	}

	return complaint, nil
}

func (r *ComplaintRepository) GetComplaint(ctx context.Context, id int64) (*models.Complaint, error) {
	if id <= 0 {
		return nil, errors.New("complaint id is required")
	}

	complaint := models.Complaint{}
	cfg := models.QueryConfig{
		TableName: r.tableName(),
		KeyName:   "id",
		KeyValue:  strconv.FormatInt(id, 10),
		KeyType:   models.NumberType,
	}

	if err := r.db.GetItem(ctx, cfg, &complaint); err != nil {
		r.logger.Errorf("Failed to get complaint %d: %v", id, err)
		return nil, err
	}

	if complaint.ID == 0 {
		return nil, &models.NotFoundError{Resource: "complaint", ID: id}
	}

	return &complaint, nil
}

func (r *ComplaintRepository) ListComplaints(ctx context.Context) ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	if err := r.db.ScanTable(ctx, r.tableName(), &complaints); err != nil {
		r.logger.Errorf("Failed to list complaints: %v", err)
		return nil, err
	}

	// Newest first, matching the admin panel ordering.
	sort.Slice(complaints, func(i, j int) bool {
		return complaints[i].ID > complaints[j].ID
	})

	return complaints, nil
}

func (r *ComplaintRepository) UpdateComplaint(ctx context.Context, id int64, complaint *models.Complaint) (*models.Complaint, error) {
	if id <= 0 {
		return nil, errors.New("complaint id is required")
	}

	existing, err := r.GetComplaint(ctx, id)
	if err != nil {
		return nil, err
	}

	complaint.ID = id
	complaint.CreatedAt = existing.CreatedAt
	complaint.UpdatedAt = time.Now()

	if err := r.db.PutItem(ctx, r.tableName(), complaint); err != nil {
		r.logger.Errorf("Failed to update complaint %d: %v", id, err)
		return nil, err
	}

	return complaint, nil
}
