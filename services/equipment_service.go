package services

import (
	"context"
	"maintdesk-backend/models"
	"maintdesk-backend/repository"
	"maintdesk-backend/utils/logger"
	"sort"
	"strings"
	"sync"
	"time"
)

// DefaultMaintenanceIntervalDays is the fixed interval between the last
// completed maintenance and the next planned one.
const DefaultMaintenanceIntervalDays = 90

type EquipmentService struct {
	equipmentRepo repository.EquipmentRepositoryInterface
	config        *models.Config
	logger        logger.Logger
	now           func() time.Time

	// mu serializes read-max-then-append id assignment; two concurrent
	// registrations must never compute the same next id.
	mu sync.Mutex
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepositoryInterface, cfg *models.Config, logger logger.Logger) *EquipmentService {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		config:        cfg,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *EquipmentService) today() models.Date {
	return models.DateOf(s.now())
}

// RegisterEquipment creates a new equipment record with a fresh identity.
// The new id is max(existing ids)+1, or 1 for an empty registry.
func (s *EquipmentService) RegisterEquipment(ctx context.Context, req *models.RegisterEquipmentRequest) (*models.Equipment, error) {
	if err := s.validateRegisterEquipment(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config.StrictSerialDedup {
		matches, err := s.equipmentRepo.GetEquipmentBySerial(ctx, req.SerialNumber)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			return nil, &models.DuplicateSerialError{SerialNumber: req.SerialNumber}
		}
	}

	existing, err := s.equipmentRepo.ListEquipment(ctx)
	if err != nil {
		return nil, err
	}

	today := s.today()
	installDate := req.InstallDate
	if installDate.IsZero() {
		installDate = today
	}

	equipment := &models.Equipment{
		ID:                 nextEquipmentID(existing),
		Name:               req.Name,
		Type:               req.Type,
		Location:           req.Location,
		Status:             models.EquipmentWorking,
		SerialNumber:       req.SerialNumber,
		Manufacturer:       req.Manufacturer,
		InstallDate:        installDate,
		OperatingHours:     req.OperatingHours,
		LastMaintenance:    today,
		NextMaintenance:    today.AddDays(DefaultMaintenanceIntervalDays),
		MaintenanceHistory: []models.MaintenanceRecord{},
	}

	return s.equipmentRepo.CreateEquipment(ctx, equipment)
}

func (s *EquipmentService) validateRegisterEquipment(req *models.RegisterEquipmentRequest) error {
	if req == nil {
		return models.NewValidationError("", "registration request is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return models.NewValidationError("name", "equipment name is required")
	}
	if strings.TrimSpace(req.SerialNumber) == "" {
		return models.NewValidationError("serialNumber", "serial number is required")
	}
	if req.OperatingHours < 0 {
		return models.NewValidationError("operatingHours", "operating hours cannot be negative")
	}
	return nil
}

// SearchEquipment filters the registry. Query is a case-insensitive substring
// over name, location and serial number; type and status are exact matches.
// Empty filters and "all" are wildcards. Registration order is preserved.
func (s *EquipmentService) SearchEquipment(ctx context.Context, filter *models.EquipmentFilter) ([]*models.Equipment, error) {
	if filter == nil {
		filter = &models.EquipmentFilter{}
	}

	all, err := s.equipmentRepo.ListEquipment(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(filter.Query)
	matched := make([]*models.Equipment, 0, len(all))
	for _, item := range all {
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Location), query) &&
			!strings.Contains(strings.ToLower(item.SerialNumber), query) {
			continue
		}
		if !isWildcardFilter(filter.Type) && item.Type != filter.Type {
			continue
		}
		if !isWildcardFilter(filter.Status) && string(item.Status) != filter.Status {
			continue
		}
		matched = append(matched, item)
	}

	return matched, nil
}

func (s *EquipmentService) GetEquipmentByID(ctx context.Context, id int64) (*models.Equipment, error) {
	return s.equipmentRepo.GetEquipment(ctx, id)
}

// DistinctTypes returns all unique equipment type values, for filter menus.
func (s *EquipmentService) DistinctTypes(ctx context.Context) ([]string, error) {
	all, err := s.equipmentRepo.ListEquipment(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	types := []string{}
	for _, item := range all {
		if item.Type == "" || seen[item.Type] {
			continue
		}
		seen[item.Type] = true
		types = append(types, item.Type)
	}

	sort.Strings(types)
	return types, nil
}

// RecomputeDueStatus transitions every scheduled history record whose date has
// passed to overdue. The sweep is idempotent: a second run with the same asOf
// finds nothing left to mark. Returns the number of records marked.
func (s *EquipmentService) RecomputeDueStatus(ctx context.Context, asOf models.Date) (int, error) {
	all, err := s.equipmentRepo.ListEquipment(ctx)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, item := range all {
		changed := false
		for i := range item.MaintenanceHistory {
			record := &item.MaintenanceHistory[i]
			if record.Status == models.MaintenanceScheduled && record.Date.Before(asOf.Time) {
				record.Status = models.MaintenanceOverdue
				changed = true
				marked++
			}
		}
		if !changed {
			continue
		}
		s.refreshMaintenanceDates(item)
		if _, err := s.equipmentRepo.UpdateEquipment(ctx, item.ID, item); err != nil {
			return marked, err
		}
	}

	if marked > 0 {
		s.logger.Infof("Marked %d maintenance records overdue as of %s", marked, asOf)
	}
	return marked, nil
}

// AddMaintenanceRecord plans a maintenance action on the equipment's history.
func (s *EquipmentService) AddMaintenanceRecord(ctx context.Context, id int64, req *models.AddMaintenanceRecordRequest) (*models.Equipment, error) {
	if req == nil || strings.TrimSpace(req.Type) == "" {
		return nil, models.NewValidationError("type", "maintenance type is required")
	}
	if req.Date.IsZero() {
		return nil, models.NewValidationError("date", "maintenance date is required")
	}

	equipment, err := s.equipmentRepo.GetEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	equipment.MaintenanceHistory = append(equipment.MaintenanceHistory, models.MaintenanceRecord{
		Date:   req.Date,
		Type:   req.Type,
		Status: models.MaintenanceScheduled,
	})
	sortHistoryNewestFirst(equipment.MaintenanceHistory)
	s.refreshMaintenanceDates(equipment)

	return s.equipmentRepo.UpdateEquipment(ctx, id, equipment)
}

// CompleteMaintenanceRecord marks a planned (or overdue) history entry as
// performed and moves lastMaintenance forward.
func (s *EquipmentService) CompleteMaintenanceRecord(ctx context.Context, id int64, req *models.CompleteMaintenanceRecordRequest) (*models.Equipment, error) {
	if req == nil || strings.TrimSpace(req.Type) == "" {
		return nil, models.NewValidationError("type", "maintenance type is required")
	}
	if req.Date.IsZero() {
		return nil, models.NewValidationError("date", "maintenance date is required")
	}

	equipment, err := s.equipmentRepo.GetEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	completed := false
	for i := range equipment.MaintenanceHistory {
		record := &equipment.MaintenanceHistory[i]
		if record.Type != req.Type || !record.Date.SameDay(req.Date) {
			continue
		}
		if record.Status == models.MaintenanceCompleted {
			continue
		}
		record.Status = models.MaintenanceCompleted
		completed = true
		break
	}
	if !completed {
		return nil, models.NewValidationError("record", "no pending maintenance record matches the given date and type")
	}

	s.refreshMaintenanceDates(equipment)
	return s.equipmentRepo.UpdateEquipment(ctx, id, equipment)
}

// refreshMaintenanceDates rederives lastMaintenance and nextMaintenance from
// the history: last is the latest completed record, next is the earliest
// record still pending, falling back to last + the default interval.
func (s *EquipmentService) refreshMaintenanceDates(equipment *models.Equipment) {
	for _, record := range equipment.MaintenanceHistory {
		if record.Status == models.MaintenanceCompleted && record.Date.After(equipment.LastMaintenance.Time) {
			equipment.LastMaintenance = record.Date
		}
	}

	var next models.Date
	for _, record := range equipment.MaintenanceHistory {
		if record.Status != models.MaintenanceScheduled && record.Status != models.MaintenanceOverdue {
			continue
		}
		if next.IsZero() || record.Date.Before(next.Time) {
			next = record.Date
		}
	}
	if next.IsZero() {
		next = equipment.LastMaintenance.AddDays(DefaultMaintenanceIntervalDays)
	}
	equipment.NextMaintenance = next
}

func nextEquipmentID(existing []*models.Equipment) int64 {
	var max int64
	for _, item := range existing {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}

func sortHistoryNewestFirst(history []models.MaintenanceRecord) {
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date.Time)
	})
}

func isWildcardFilter(value string) bool {
	return value == "" || value == "all"
}
