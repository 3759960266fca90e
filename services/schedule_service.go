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

type ScheduleService struct {
	eventRepo repository.EventRepositoryInterface
	config    *models.Config
	logger    logger.Logger
	now       func() time.Time

	// mu serializes id assignment across concurrent scheduling calls.
	mu sync.Mutex
}

func NewScheduleService(eventRepo repository.EventRepositoryInterface, cfg *models.Config, logger logger.Logger) *ScheduleService {
	return &ScheduleService{
		eventRepo: eventRepo,
		config:    cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// ScheduleMaintenance books a maintenance event for a crew on a given date.
// Ids follow max(existing)+1, same as the equipment registry.
func (s *ScheduleService) ScheduleMaintenance(ctx context.Context, req *models.ScheduleEventRequest) (*models.MaintenanceEvent, error) {
	if err := s.validateScheduleRequest(req); err != nil {
		return nil, err
	}

	if s.config.StrictCrewValidation && !s.config.KnowsCrew(req.Crew) {
		return nil, &models.UnknownCrewError{Crew: req.Crew}
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	event := &models.MaintenanceEvent{
		ID:          nextEventID(existing),
		Date:        req.Date,
		Equipment:   req.Equipment,
		Type:        req.Type,
		Crew:        req.Crew,
		Priority:    priority,
		Status:      models.MaintenanceScheduled,
		Description: req.Description,
	}

	return s.eventRepo.CreateEvent(ctx, event)
}

func (s *ScheduleService) validateScheduleRequest(req *models.ScheduleEventRequest) error {
	if req == nil {
		return models.NewValidationError("", "schedule request is required")
	}
	if req.Date.IsZero() {
		return models.NewValidationError("date", "event date is required")
	}
	if strings.TrimSpace(req.Equipment) == "" {
		return models.NewValidationError("equipment", "equipment name is required")
	}
	if strings.TrimSpace(req.Crew) == "" {
		return models.NewValidationError("crew", "crew is required")
	}
	return nil
}

// EventsOn returns all events that fall on the given calendar day.
func (s *ScheduleService) EventsOn(ctx context.Context, date models.Date) ([]*models.MaintenanceEvent, error) {
	return s.eventRepo.ListEventsByDate(ctx, date)
}

// HasEventsOn reports whether any event falls on the given calendar day.
// It agrees with EventsOn by construction.
func (s *ScheduleService) HasEventsOn(ctx context.Context, date models.Date) (bool, error) {
	events, err := s.eventRepo.ListEventsByDate(ctx, date)
	if err != nil {
		return false, err
	}
	return len(events) > 0, nil
}

// CalendarMonth returns one entry per day of the month with an event-presence
// flag, feeding the month view's day indicators.
func (s *ScheduleService) CalendarMonth(ctx context.Context, year int, month time.Month) ([]models.CalendarDay, error) {
	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	busy := make(map[string]bool)
	for _, event := range events {
		busy[event.Date.String()] = true
	}

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	days := make([]models.CalendarDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := models.NewDate(year, month, d)
		days = append(days, models.CalendarDay{
			Date:      date,
			HasEvents: busy[date.String()],
		})
	}
	return days, nil
}

// MarkOverdueEvents transitions scheduled events whose date has passed to
// overdue. Idempotent for a fixed asOf. Returns the number marked.
func (s *ScheduleService) MarkOverdueEvents(ctx context.Context, asOf models.Date) (int, error) {
	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, event := range events {
		if event.Status != models.MaintenanceScheduled || !event.Date.Before(asOf.Time) {
			continue
		}
		event.Status = models.MaintenanceOverdue
		if _, err := s.eventRepo.UpdateEvent(ctx, event.ID, event); err != nil {
			return marked, err
		}
		marked++
	}

	if marked > 0 {
		s.logger.Infof("Marked %d schedule events overdue as of %s", marked, asOf)
	}
	return marked, nil
}

func nextEventID(existing []*models.MaintenanceEvent) int64 {
	var max int64
	for _, event := range existing {
		if event.ID > max {
			max = event.ID
		}
	}
	return max + 1
}
