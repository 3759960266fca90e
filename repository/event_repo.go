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

type EventRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewEventRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *EventRepository {
	return &EventRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *EventRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_events"
}

func (r *EventRepository) CreateEvent(ctx context.Context, event *models.MaintenanceEvent) (*models.MaintenanceEvent, error) {
	r.logger.Infof("Creating maintenance event %d on %s for %s", event.ID, event.Date, event.Equipment)

	event.CreatedAt = time.Now()

	if err := r.db.PutItem(ctx, r.tableName(), event); err != nil {
		r.logger.Errorf("Failed to create maintenance event: %v", err)
		return nil, err
	}

	return event, nil
}

func (r *EventRepository) GetEvent(ctx context.Context, id int64) (*models.MaintenanceEvent, error) {
	if id <= 0 {
		return nil, errors.New("event id is required")
	}

	event := models.MaintenanceEvent{}
	cfg := models.QueryConfig{
		TableName: r.tableName(),
		KeyName:   "id",
		KeyValue:  strconv.FormatInt(id, 10),
		KeyType:   models.NumberType,
	}

	if err := r.db.GetItem(ctx, cfg, &event); err != nil {
		r.logger.Errorf("Failed to get event %d: %v", id, err)
		return nil, err
	}

	if event.ID == 0 {
		return nil, &models.NotFoundError{Resource: "maintenance event", ID: id}
	}

	return &event, nil
}

func (r *EventRepository) ListEvents(ctx context.Context) ([]*models.MaintenanceEvent, error) {
	var events []*models.MaintenanceEvent
	if err := r.db.ScanTable(ctx, r.tableName(), &events); err != nil {
		r.logger.Errorf("Failed to list events: %v", err)
		return nil, err
	}

	sortEventsByID(events)
	return events, nil
}

func (r *EventRepository) ListEventsByDate(ctx context.Context, date models.Date) ([]*models.MaintenanceEvent, error) {
	var events []*models.MaintenanceEvent
	err := r.db.QueryByIndex(ctx,
		r.tableName(),
		"date-index",
		"date", date.String(),
		&events)
	if err != nil {
		r.logger.Errorf("Failed to list events on %s: %v", date, err)
		return nil, err
	}

	sortEventsByID(events)
	return events, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, id int64, event *models.MaintenanceEvent) (*models.MaintenanceEvent, error) {
	if id <= 0 {
		return nil, errors.New("event id is required")
	}

	existing, err := r.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	event.ID = id
	event.CreatedAt = existing.CreatedAt

	if err := r.db.PutItem(ctx, r.tableName(), event); err != nil {
		r.logger.Errorf("Failed to update event %d: %v", id, err)
		return nil, err
	}

	return event, nil
}

// sortEventsByID restores scheduling order after an unordered scan or query.
func sortEventsByID(events []*models.MaintenanceEvent) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].ID < events[j].ID
	})
}
