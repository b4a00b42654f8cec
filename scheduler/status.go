package scheduler

import (
	"encoding/json"
	"fieldops-backend/models"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// StatusManager persists the result of the most recent recurrence run
type StatusManager struct {
	models.StatusManager
}

// NewStatusManager creates a new status manager
func NewStatusManager(statusPath string) *StatusManager {
	return &StatusManager{
		StatusManager: models.StatusManager{
			StatusFilePath: statusPath,
		},
	}
}

func (sm *StatusManager) SaveStatus(result *models.RunResult) error {
	if err := os.MkdirAll(filepath.Dir(sm.StatusFilePath), 0755); err != nil {
		return fmt.Errorf("failed to create status directory: %w", err)
	}

	if result.EndTime == nil && (result.Status == models.RunStatusCompleted || result.Status == models.RunStatusFailed) {
		now := time.Now()
		result.EndTime = &now
		result.Duration = now.Sub(result.StartTime)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}

	// Write atomically via rename
	tempFile := sm.StatusFilePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp status file: %w", err)
	}
	if err := os.Rename(tempFile, sm.StatusFilePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename status file: %w", err)
	}

	return nil
}

func (sm *StatusManager) LoadStatus() (*models.RunResult, error) {
	data, err := os.ReadFile(sm.StatusFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read status file: %w", err)
	}

	var result models.RunResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal status: %w", err)
	}

	return &result, nil
}

// GetLastRunTime returns the start time of the most recent run
func (sm *StatusManager) GetLastRunTime() (time.Time, error) {
	status, err := sm.LoadStatus()
	if err != nil {
		return time.Time{}, err
	}

	return status.StartTime, nil
}

// ResetStatus removes the status file (useful for forced re-runs)
func (sm *StatusManager) ResetStatus() error {
	return os.Remove(sm.StatusFilePath)
}
