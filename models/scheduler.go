package models

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron"
)

// StatusManager persists the most recent recurrence run status to disk.
type StatusManager struct {
	StatusFilePath string
}

// LockManager guards against overlapping recurrence runs from the timer and
// a manual trigger in the same environment. The idempotency gate in the
// generator is the actual correctness mechanism; the lock only avoids
// needless duplicate table scans.
type LockManager struct {
	LockFilePath string
	LockTimeout  time.Duration
	Environment  string
}

// SchedulerConfig holds configuration for the recurrence scheduler.
type SchedulerConfig struct {
	CronSchedule string        `json:"cron_schedule"`
	LockTimeout  time.Duration `json:"lock_timeout"`
	Environment  string        `json:"environment"`

	LockFilePath   string `json:"lock_file_path"`
	StatusFilePath string `json:"status_file_path"`
}

// Scheduler owns the in-process recurrence cron job.
type Scheduler struct {
	Config          *Config
	SchedulerConfig *SchedulerConfig
	CronJob         *cron.Cron

	OwnerID   string
	IsRunning bool
	StopChan  chan struct{}

	Mu       sync.RWMutex
	Ctx      context.Context
	Cancel   context.CancelFunc
	StopOnce sync.Once
}

// LockInfo represents the on-disk scheduler lock.
type LockInfo struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	AcquiredAt  time.Time `json:"acquired_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Environment string    `json:"environment"`
}

// RunStatus represents the state of the most recent recurrence run.
type RunStatus string

const (
	RunStatusIdle      RunStatus = "idle"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// GenerationSummary accounts for one recurrence pass over an organization's
// templates. Failed counts templates whose processing errored; one failure
// never aborts the rest of the batch.
type GenerationSummary struct {
	OrgID     string   `json:"orgID,omitempty"`
	Templates int      `json:"templates"`
	Created   int      `json:"created"`
	Skipped   int      `json:"skipped"`
	Failed    int      `json:"failed"`
	JobIDs    []string `json:"jobIDs,omitempty"`
}

// Merge folds another summary into this one.
func (s *GenerationSummary) Merge(o *GenerationSummary) {
	if o == nil {
		return
	}
	s.Templates += o.Templates
	s.Created += o.Created
	s.Skipped += o.Skipped
	s.Failed += o.Failed
	s.JobIDs = append(s.JobIDs, o.JobIDs...)
}

// RunResult is what the status file records for a recurrence run.
type RunResult struct {
	Status      RunStatus          `json:"status"`
	StartTime   time.Time          `json:"start_time"`
	EndTime     *time.Time         `json:"end_time,omitempty"`
	Duration    time.Duration      `json:"duration"`
	Environment string             `json:"environment"`
	Summary     *GenerationSummary `json:"summary,omitempty"`

	ErrorMessage string         `json:"error_message,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}
