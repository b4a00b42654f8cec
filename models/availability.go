package models

import "time"

// Conflict reports that a worker is committed to another active job whose
// window overlaps the candidate window. Conflicts are transient: they are
// built per request, returned to the caller, and never persisted.
type Conflict struct {
	WorkerID            string    `json:"workerID"`
	WorkerName          string    `json:"workerName"`
	ConflictingJobID    string    `json:"conflictingJobID"`
	ConflictingJobTitle string    `json:"conflictingJobTitle"`
	ConflictStart       time.Time `json:"conflictStart"`
	ConflictEnd         time.Time `json:"conflictEnd"`
}

// AvailabilityResult is the answer to "can these workers take this window".
// Available is true exactly when Conflicts is empty.
type AvailabilityResult struct {
	Available bool       `json:"available"`
	Conflicts []Conflict `json:"conflicts"`
	Message   string     `json:"message,omitempty"`
}

type CrewAvailabilityRequest struct {
	CrewID       string    `json:"crewID" validate:"required"`
	Start        time.Time `json:"start" validate:"required"`
	End          time.Time `json:"end" validate:"required"`
	ExcludeJobID string    `json:"excludeJobID,omitempty"`
}

type WorkerAvailabilityRequest struct {
	WorkerIDs    []string  `json:"workerIDs" validate:"required,min=1"`
	Start        time.Time `json:"start" validate:"required"`
	End          time.Time `json:"end" validate:"required"`
	ExcludeJobID string    `json:"excludeJobID,omitempty"`
}
