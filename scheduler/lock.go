package scheduler

import (
	"encoding/json"
	"fieldops-backend/models"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LockManager handles file locking for recurrence runs
type LockManager struct {
	models.LockManager
}

// NewLockManager creates a new lock manager
func NewLockManager(lockPath string, timeout time.Duration, env string) *LockManager {
	return &LockManager{
		LockManager: models.LockManager{
			LockFilePath: lockPath,
			LockTimeout:  timeout,
			Environment:  env,
		},
	}
}

// AcquireLock takes the run lock, extending it when this owner already holds
// it. A live lock held by another owner fails the acquisition.
func (lm *LockManager) AcquireLock(ownerID string) (*models.LockInfo, error) {
	if err := os.MkdirAll(filepath.Dir(lm.LockFilePath), 0755); err != nil {
		return nil, err
	}

	if existingLock, err := lm.readLockFile(); err == nil {
		if time.Now().Before(existingLock.ExpiresAt) {
			if existingLock.Owner == ownerID && existingLock.Environment == lm.Environment {
				return lm.extendLock(existingLock, ownerID)
			}
			return nil, fmt.Errorf("recurrence run lock held by %s until %s",
				existingLock.Owner, existingLock.ExpiresAt.Format(time.RFC3339))
		}
	}

	lockInfo := &models.LockInfo{
		ID:          fmt.Sprintf("recurrence-lock-%d", time.Now().UnixNano()),
		Owner:       ownerID,
		AcquiredAt:  time.Now(),
		ExpiresAt:   time.Now().Add(lm.LockTimeout),
		Environment: lm.Environment,
	}

	if err := lm.writeLockFile(lockInfo); err != nil {
		return nil, fmt.Errorf("failed to create lock file: %w", err)
	}
	return lockInfo, nil
}

func (lm *LockManager) readLockFile() (*models.LockInfo, error) {
	data, err := os.ReadFile(lm.LockFilePath)
	if err != nil {
		return nil, err
	}

	var lockInfo models.LockInfo
	if err := json.Unmarshal(data, &lockInfo); err != nil {
		return nil, fmt.Errorf("failed to parse lock file: %w", err)
	}

	return &lockInfo, nil
}

func (lm *LockManager) extendLock(existingLock *models.LockInfo, ownerID string) (*models.LockInfo, error) {
	if existingLock.Owner != ownerID {
		return nil, fmt.Errorf("cannot extend lock owned by %s", existingLock.Owner)
	}

	extendedLock := &models.LockInfo{
		ID:          existingLock.ID,
		Owner:       existingLock.Owner,
		AcquiredAt:  existingLock.AcquiredAt,
		ExpiresAt:   time.Now().Add(lm.LockTimeout),
		Environment: existingLock.Environment,
	}

	if err := lm.writeLockFile(extendedLock); err != nil {
		return nil, fmt.Errorf("failed to extend lock: %w", err)
	}
	return extendedLock, nil
}

func (lm *LockManager) writeLockFile(lockInfo *models.LockInfo) error {
	data, err := json.MarshalIndent(lockInfo, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize lock info: %w", err)
	}

	// Write atomically via rename
	tempFile := lm.LockFilePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp lock file: %w", err)
	}
	if err := os.Rename(tempFile, lm.LockFilePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp lock file: %w", err)
	}
	return nil
}

// CleanupExpiredLocks removes expired lock files
func (lm *LockManager) CleanupExpiredLocks() error {
	lockInfo, err := lm.readLockFile()
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if time.Now().After(lockInfo.ExpiresAt) {
		return os.Remove(lm.LockFilePath)
	}

	return nil
}

// ReleaseLock releases the run lock
func (lm *LockManager) ReleaseLock(lockInfo *models.LockInfo) error {
	currentLock, err := lm.readLockFile()
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read lock file: %w", err)
	}

	if currentLock.Owner != lockInfo.Owner {
		return fmt.Errorf("cannot release lock owned by %s", currentLock.Owner)
	}

	if err := os.Remove(lm.LockFilePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}

	return nil
}
