package services

import (
	"context"
	"maintdesk-backend/models"
)

// crewLoadedMaxEvents is the most events a crew can carry on one day before
// it counts as overloaded.
const crewLoadedMaxEvents = 2

// TierForCount maps a same-day event count to a workload tier.
func TierForCount(count int) models.WorkloadTier {
	switch {
	case count == 0:
		return models.TierFree
	case count <= crewLoadedMaxEvents:
		return models.TierLoaded
	default:
		return models.TierOverloaded
	}
}

// ClassifyCrewWorkload reports, for every configured crew, how many events it
// has on the given day and the resulting tier. Crews with no events are still
// listed as free. Events assigned to crews outside the configured roster are
// ignored.
func (s *ScheduleService) ClassifyCrewWorkload(ctx context.Context, date models.Date) ([]models.CrewWorkload, error) {
	events, err := s.eventRepo.ListEventsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, event := range events {
		counts[event.Crew]++
	}

	workloads := make([]models.CrewWorkload, 0, len(s.config.Crews))
	for _, crew := range s.config.Crews {
		count := counts[crew]
		workloads = append(workloads, models.CrewWorkload{
			Crew:       crew,
			EventCount: count,
			Tier:       TierForCount(count),
		})
	}
	return workloads, nil
}
