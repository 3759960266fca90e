package worker

import (
	"context"
	"fmt"
	"maintdesk-backend/models"
	"maintdesk-backend/utils/logger"
)

// Service wraps the sweep worker for easy integration with the server
type Service struct {
	worker *Worker
	logger logger.Logger
}

// NewService creates a new worker service
func NewService(ctx context.Context, cfg *models.Config, log logger.Logger) (*Service, error) {
	worker, err := NewWorker(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create sweep worker: %w", err)
	}

	return &Service{
		worker: worker,
		logger: log,
	}, nil
}

// StartInBackground starts the sweep worker in the background
func (s *Service) StartInBackground() error {
	s.logger.Info("Starting maintenance sweep worker in background")

	go func() {
		if err := s.worker.Start(); err != nil {
			s.logger.Errorf("Sweep worker failed to start: %v", err)
		}
	}()

	return nil
}

// Stop stops the sweep worker service
func (s *Service) Stop() error {
	s.logger.Info("Stopping maintenance sweep worker service")
	return s.worker.Stop()
}

// GetStatus returns the result of the last sweep
func (s *Service) GetStatus() (*models.ExecutionResult, error) {
	return s.worker.GetStatus()
}

// ForceSweep triggers an immediate sweep (admin function)
func (s *Service) ForceSweep() error {
	s.logger.Info("Forcing maintenance sweep")
	return s.worker.ForceSweep()
}

// GetHealthStatus returns a health status for monitoring
func (s *Service) GetHealthStatus() map[string]interface{} {
	status, err := s.GetStatus()
	if err != nil {
		return map[string]interface{}{
			"status":         "unknown",
			"message":        fmt.Sprintf("Failed to get status: %v", err),
			"healthy":        false,
			"worker_running": s.worker.IsRunning(),
		}
	}

	healthy := status.Status == models.StatusCompleted && status.Success

	return map[string]interface{}{
		"status":                 string(status.Status),
		"healthy":                healthy,
		"worker_running":         s.worker.IsRunning(),
		"tables_ensured":         status.TablesEnsured,
		"records_marked_overdue": status.RecordsMarkedOverdue,
		"events_marked_overdue":  status.EventsMarkedOverdue,
		"retry_count":            status.RetryCount,
		"environment":            status.Environment,
		"start_time":             status.StartTime,
		"duration":               status.Duration.String(),
		"error_message":          status.ErrorMessage,
	}
}
