package scheduler

import (
	"context"
	"fmt"
	"os"
	"time"

	"fieldops-backend/models"
	"fieldops-backend/services"
	"fieldops-backend/utils/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron"
)

// Scheduler runs the recurrence generator on a cron schedule. A file lock
// keeps the timer and the manual trigger endpoint from running a pass at the
// same time; the generator's idempotency gate makes an accidental double run
// harmless anyway.
type Scheduler struct {
	state      *models.Scheduler
	recurrence services.RecurrenceServiceInterface
	logger     logger.Logger
}

func NewScheduler(ctx context.Context, cfg *models.Config, recurrence services.RecurrenceServiceInterface, log logger.Logger) (*Scheduler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		hostname = "localhost"
	}
	ownerID := fmt.Sprintf("scheduler-%s-%s", hostname, uuid.New().String()[:8])

	schedulerConfig := &models.SchedulerConfig{
		CronSchedule:   cfg.RecurrenceCronSchedule,
		LockTimeout:    cfg.SchedulerLockTimeout,
		Environment:    cfg.AppEnv,
		LockFilePath:   cfg.SchedulerLockFile,
		StatusFilePath: cfg.SchedulerStatusFile,
	}
	if err := validateSchedulerConfig(schedulerConfig); err != nil {
		return nil, fmt.Errorf("invalid scheduler configuration: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)

	state := &models.Scheduler{
		Config:          cfg,
		SchedulerConfig: schedulerConfig,
		CronJob:         cron.New(),
		OwnerID:         ownerID,
		StopChan:        make(chan struct{}),
		Ctx:             runCtx,
		Cancel:          cancel,
	}

	return &Scheduler{
		state:      state,
		recurrence: recurrence,
		logger:     log,
	}, nil
}

// Start registers the cron job and begins ticking.
func (s *Scheduler) Start() error {
	s.state.Mu.Lock()
	defer s.state.Mu.Unlock()

	if s.state.IsRunning {
		return fmt.Errorf("scheduler is already running")
	}

	select {
	case <-s.state.Ctx.Done():
		return fmt.Errorf("scheduler context is cancelled, cannot start")
	default:
	}

	s.logger.Infof("Starting recurrence scheduler with schedule: %s", s.state.SchedulerConfig.CronSchedule)
	s.logger.Infof("Scheduler ID: %s", s.state.OwnerID)

	if err := s.state.CronJob.AddFunc(s.state.SchedulerConfig.CronSchedule, s.runScheduledPass); err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.state.CronJob.Start()
	s.state.IsRunning = true

	s.logger.Info("Recurrence scheduler started successfully")
	return nil
}

// Stop halts the cron job. Safe to call more than once.
func (s *Scheduler) Stop() error {
	s.state.StopOnce.Do(func() {
		s.state.Mu.Lock()
		defer s.state.Mu.Unlock()

		s.logger.Info("Stopping recurrence scheduler")
		if s.state.CronJob != nil {
			s.state.CronJob.Stop()
		}
		s.state.Cancel()
		close(s.state.StopChan)
		s.state.IsRunning = false
	})
	return nil
}

// IsRunning reports whether the cron job is ticking.
func (s *Scheduler) IsRunning() bool {
	s.state.Mu.RLock()
	defer s.state.Mu.RUnlock()
	return s.state.IsRunning
}

func (s *Scheduler) runScheduledPass() {
	ctx, cancel := context.WithTimeout(s.state.Ctx, 15*time.Minute)
	defer cancel()

	if _, err := s.RunOnce(ctx, ""); err != nil {
		s.logger.Errorf("Scheduled recurrence pass failed: %v", err)
	}
}

// RunOnce executes a single recurrence pass under the run lock and records
// the outcome in the status file. Both the cron tick and the manual trigger
// endpoint call this. An empty orgID walks every active organization; a
// non-empty orgID scopes the pass to that tenant.
func (s *Scheduler) RunOnce(ctx context.Context, orgID string) (*models.RunResult, error) {
	lockManager := NewLockManager(
		s.state.SchedulerConfig.LockFilePath,
		s.state.SchedulerConfig.LockTimeout,
		s.state.SchedulerConfig.Environment,
	)
	statusManager := NewStatusManager(s.state.SchedulerConfig.StatusFilePath)

	if err := lockManager.CleanupExpiredLocks(); err != nil {
		s.logger.Warnf("Failed to clean up expired locks: %v", err)
	}

	lockInfo, err := lockManager.AcquireLock(s.state.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("recurrence run lock unavailable: %w", err)
	}
	defer func() {
		if err := lockManager.ReleaseLock(lockInfo); err != nil {
			s.logger.Errorf("Failed to release recurrence run lock: %v", err)
		}
	}()

	result := &models.RunResult{
		Status:      models.RunStatusRunning,
		StartTime:   time.Now(),
		Environment: s.state.SchedulerConfig.Environment,
	}
	if err := statusManager.SaveStatus(result); err != nil {
		s.logger.Warnf("Failed to record run start: %v", err)
	}

	var summary *models.GenerationSummary
	if orgID != "" {
		summary, err = s.recurrence.GenerateForOrg(ctx, orgID)
	} else {
		summary, err = s.recurrence.GenerateAll(ctx)
	}
	if err != nil {
		result.Status = models.RunStatusFailed
		result.ErrorMessage = err.Error()
		if saveErr := statusManager.SaveStatus(result); saveErr != nil {
			s.logger.Errorf("Failed to record run failure: %v", saveErr)
		}
		return result, err
	}

	result.Status = models.RunStatusCompleted
	result.Summary = summary
	if err := statusManager.SaveStatus(result); err != nil {
		s.logger.Errorf("Failed to record run completion: %v", err)
	}

	s.logger.Infof("Recurrence pass completed: %d templates, %d created, %d skipped, %d failed",
		summary.Templates, summary.Created, summary.Skipped, summary.Failed)
	return result, nil
}

// GetStatus reads the persisted result of the most recent run.
func (s *Scheduler) GetStatus() (*models.RunResult, error) {
	statusManager := NewStatusManager(s.state.SchedulerConfig.StatusFilePath)
	return statusManager.LoadStatus()
}

func validateSchedulerConfig(config *models.SchedulerConfig) error {
	if config.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if config.LockTimeout <= 0 {
		return fmt.Errorf("lock timeout must be positive")
	}
	if config.LockFilePath == "" {
		return fmt.Errorf("lock file path is required")
	}
	if config.StatusFilePath == "" {
		return fmt.Errorf("status file path is required")
	}

	if config.CronSchedule != "" {
		cronParser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
		if _, err := cronParser.Parse(config.CronSchedule); err != nil {
			return fmt.Errorf("invalid cron schedule '%s': %w", config.CronSchedule, err)
		}
	}

	return nil
}
