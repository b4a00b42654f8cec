package scheduler

import (
	"context"
	"fmt"

	"fieldops-backend/models"
	"fieldops-backend/services"
	"fieldops-backend/utils/logger"
)

// Service wraps the recurrence scheduler for easy integration
type Service struct {
	scheduler *Scheduler
	logger    logger.Logger
}

// NewService creates a new scheduler service
func NewService(ctx context.Context, cfg *models.Config, recurrence services.RecurrenceServiceInterface, log logger.Logger) (*Service, error) {
	scheduler, err := NewScheduler(ctx, cfg, recurrence, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create recurrence scheduler: %w", err)
	}

	return &Service{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// StartInBackground starts the recurrence scheduler in the background
func (s *Service) StartInBackground() error {
	s.logger.Info("Starting recurrence scheduler service in background")

	go func() {
		if err := s.scheduler.Start(); err != nil {
			s.logger.Errorf("Recurrence scheduler failed to start: %v", err)
		}
	}()

	return nil
}

// Stop stops the scheduler service
func (s *Service) Stop() error {
	s.logger.Info("Stopping recurrence scheduler service")
	return s.scheduler.Stop()
}

// RunNow triggers a recurrence pass outside the cron schedule. An empty
// orgID covers every active organization.
func (s *Service) RunNow(ctx context.Context, orgID string) (*models.RunResult, error) {
	if orgID != "" {
		s.logger.Infof("Manual recurrence pass requested for org %s", orgID)
	} else {
		s.logger.Info("Manual recurrence pass requested")
	}
	return s.scheduler.RunOnce(ctx, orgID)
}

// GetStatus returns the result of the most recent recurrence run
func (s *Service) GetStatus() (*models.RunResult, error) {
	return s.scheduler.GetStatus()
}

// GetHealthStatus returns a health snapshot for monitoring
func (s *Service) GetHealthStatus() map[string]interface{} {
	status, err := s.GetStatus()
	if err != nil {
		return map[string]interface{}{
			"status":            "unknown",
			"message":           fmt.Sprintf("Failed to get status: %v", err),
			"scheduler_running": s.scheduler.IsRunning(),
		}
	}

	health := map[string]interface{}{
		"status":            string(status.Status),
		"scheduler_running": s.scheduler.IsRunning(),
		"environment":       status.Environment,
		"start_time":        status.StartTime,
		"duration":          status.Duration.String(),
	}
	if status.Summary != nil {
		health["summary"] = status.Summary
	}
	if status.ErrorMessage != "" {
		health["error_message"] = status.ErrorMessage
	}
	return health
}
