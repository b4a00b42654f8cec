package scheduler

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"fieldops-backend/models"
	"fieldops-backend/utils/logger"

	"github.com/stretchr/testify/assert"
)

// testLogger is a no-op logger for tests
type testLogger struct{}

func (testLogger) Debug(args ...interface{})                 {}
func (testLogger) Debugf(format string, args ...interface{}) {}
func (testLogger) Info(args ...interface{})                  {}
func (testLogger) Infof(format string, args ...interface{})  {}
func (testLogger) Warn(args ...interface{})                  {}
func (testLogger) Warnf(format string, args ...interface{})  {}
func (testLogger) Error(args ...interface{})                 {}
func (testLogger) Errorf(format string, args ...interface{}) {}
func (testLogger) Fatal(args ...interface{})                 {}
func (testLogger) Fatalf(format string, args ...interface{}) {}
func (l testLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return l
}

// stubRecurrenceService records which generation path a run takes.
type stubRecurrenceService struct {
	allCalls int
	orgCalls []string
}

func (s *stubRecurrenceService) GenerateAll(ctx context.Context) (*models.GenerationSummary, error) {
	s.allCalls++
	return &models.GenerationSummary{Templates: 3, Created: 1, Skipped: 2}, nil
}

func (s *stubRecurrenceService) GenerateForOrg(ctx context.Context, orgID string) (*models.GenerationSummary, error) {
	s.orgCalls = append(s.orgCalls, orgID)
	return &models.GenerationSummary{OrgID: orgID, Templates: 1, Created: 1}, nil
}

func (s *stubRecurrenceService) NextOccurrence(from models.TimeWindow, frequency models.RecurringFrequency) (models.TimeWindow, error) {
	return from, nil
}

func newTestScheduler(t *testing.T, recurrence *stubRecurrenceService) *Scheduler {
	t.Helper()
	dir := t.TempDir()
	cfg := &models.Config{
		AppEnv:               "test",
		SchedulerLockFile:    filepath.Join(dir, "recurrence.lock"),
		SchedulerStatusFile:  filepath.Join(dir, "recurrence-status.json"),
		SchedulerLockTimeout: time.Minute,
	}

	s, err := NewScheduler(context.Background(), cfg, recurrence, testLogger{})
	assert.NoError(t, err)
	return s
}

func TestRunOnceAllOrgs(t *testing.T) {
	recurrence := &stubRecurrenceService{}
	s := newTestScheduler(t, recurrence)

	result, err := s.RunOnce(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, result.Status)
	assert.Equal(t, 1, recurrence.allCalls)
	assert.Empty(t, recurrence.orgCalls)
	assert.Equal(t, 1, result.Summary.Created)
}

func TestRunOnceScopedToOrg(t *testing.T) {
	recurrence := &stubRecurrenceService{}
	s := newTestScheduler(t, recurrence)

	result, err := s.RunOnce(context.Background(), "org-1")
	assert.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, result.Status)
	assert.Equal(t, 0, recurrence.allCalls)
	assert.Equal(t, []string{"org-1"}, recurrence.orgCalls)
	assert.Equal(t, "org-1", result.Summary.OrgID)
}

func TestRunOnceRecordsStatus(t *testing.T) {
	recurrence := &stubRecurrenceService{}
	s := newTestScheduler(t, recurrence)

	_, err := s.RunOnce(context.Background(), "org-1")
	assert.NoError(t, err)

	recorded, err := s.GetStatus()
	assert.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, recorded.Status)
	assert.Equal(t, "org-1", recorded.Summary.OrgID)
}
