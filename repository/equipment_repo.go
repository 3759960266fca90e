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

type EquipmentRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewEquipmentRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *EquipmentRepository {
	return &EquipmentRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *EquipmentRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_equipment"
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment *models.Equipment) (*models.Equipment, error) {
	r.logger.Infof("Creating equipment %d: %s", equipment.ID, equipment.Name)

	now := time.Now()
	equipment.CreatedAt = now
	equipment.UpdatedAt = now

	if err := r.db.PutItem(ctx, r.tableName(), equipment); err != nil {
		r.logger.Errorf("Failed to create equipment: %v", err)
		return nil, err
	}

	return equipment, nil
}

func (r *EquipmentRepository) GetEquipment(ctx context.Context, id int64) (*models.Equipment, error) {
	if id <= 0 {
		return nil, errors.New("equipment id is required")
	}

	equipment := models.Equipment{}
	cfg := models.QueryConfig{
		TableName: r.tableName(),
		KeyName:   "id",
		KeyValue:  strconv.FormatInt(id, 10),
		KeyType:   models.NumberType,
	}

	if err := r.db.GetItem(ctx, cfg, &equipment); err != nil {
		r.logger.Errorf("Failed to get equipment %d: %v", id, err)
		return nil, err
	}

	if equipment.ID == 0 {
		return nil, &models.NotFoundError{Resource: "equipment", ID: id}
	}

	return &equipment, nil
}

func (r *EquipmentRepository) GetEquipmentBySerial(ctx context.Context, serialNumber string) ([]*models.Equipment, error) {
	if serialNumber == "" {
		return nil, errors.New("serial number is required")
	}

	var equipment []*models.Equipment
	err := r.db.QueryByIndex(ctx,
		r.tableName(),
		"serialNumber-index",
		"serialNumber", serialNumber,
		&equipment)
	if err != nil {
		r.logger.Errorf("Failed to get equipment by serial %s: %v", serialNumber, err)
		return nil, err
	}

	return equipment, nil
}

func (r *EquipmentRepository) ListEquipment(ctx context.Context) ([]*models.Equipment, error) {
	var equipment []*models.Equipment
	if err := r.db.ScanTable(ctx, r.tableName(), &equipment); err != nil {
		r.logger.Errorf("Failed to list equipment: %v", err)
		return nil, err
	}

	// Ids are assigned monotonically, so id order is registration order.
	sort.Slice(equipment, func(i, j int) bool {
		return equipment[i].ID < equipment[j].ID
	})

	return equipment, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id int64, equipment *models.Equipment) (*models.Equipment, error) {
	if id <= 0 {
		return nil, errors.New("equipment id is required")
	}

	existing, err := r.GetEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	equipment.ID = id
	equipment.CreatedAt = existing.CreatedAt
	equipment.UpdatedAt = time.Now()

	if err := r.db.PutItem(ctx, r.tableName(), equipment); err != nil {
		r.logger.Errorf("Failed to update equipment %d: %v", id, err)
		return nil, err
	}

	return equipment, nil
}
