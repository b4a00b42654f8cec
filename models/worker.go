package models

import "time"

// WorkerRole is the caller's role within an organization. Only owner and
// office roles may mutate job assignments.
type WorkerRole string

const (
	WorkerRoleOwner  WorkerRole = "owner"
	WorkerRoleOffice WorkerRole = "office"
	WorkerRoleField  WorkerRole = "field"
)

// CanManageSchedule reports whether the role may run assignment transitions.
func (r WorkerRole) CanManageSchedule() bool {
	return r == WorkerRoleOwner || r == WorkerRoleOffice
}

type WorkerStatus string

const (
	WorkerStatusActive     WorkerStatus = "active"
	WorkerStatusInactive   WorkerStatus = "inactive"
	WorkerStatusTerminated WorkerStatus = "terminated"
)

// Worker is an organization-scoped person on the roster. Only active workers
// are eligible for new assignment; inactive and terminated workers are still
// consulted for historical conflicts but are removed from crew membership by
// the deactivation cascade.
type Worker struct {
	WorkerID  string       `json:"workerID" dynamodbav:"workerID" validate:"omitempty,uuid4"`
	OrgID     string       `json:"orgID" dynamodbav:"orgID" validate:"required"`
	Name      string       `json:"name" dynamodbav:"name" validate:"required,min=2,max=100"`
	Email     string       `json:"email,omitempty" dynamodbav:"email,omitempty" validate:"omitempty,email"`
	Password  string       `json:"-" dynamodbav:"password,omitempty"`
	Color     string       `json:"color,omitempty" dynamodbav:"color,omitempty"`
	Skills    []string     `json:"skills" dynamodbav:"skills"`
	Role      WorkerRole   `json:"role" dynamodbav:"role" validate:"required,oneof=owner office field"`
	Status    WorkerStatus `json:"status" dynamodbav:"status" validate:"required,oneof=active inactive terminated"`
	CreatedAt time.Time    `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt" dynamodbav:"updatedAt"`
}

// IsActive reports whether the worker is on the active roster.
func (w *Worker) IsActive() bool {
	return w.Status == WorkerStatusActive
}

type CreateWorkerRequest struct {
	OrgID    string     `json:"orgID" validate:"required"`
	Name     string     `json:"name" validate:"required,min=2,max=100"`
	Email    string     `json:"email,omitempty" validate:"omitempty,email"`
	Password string     `json:"password,omitempty" validate:"omitempty,min=8"`
	Color    string     `json:"color,omitempty"`
	Skills   []string   `json:"skills,omitempty"`
	Role     WorkerRole `json:"role" validate:"required,oneof=owner office field"`
}

type UpdateWorkerRequest struct {
	Name   string     `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email  string     `json:"email,omitempty" validate:"omitempty,email"`
	Color  string     `json:"color,omitempty"`
	Skills []string   `json:"skills,omitempty"`
	Role   WorkerRole `json:"role,omitempty" validate:"omitempty,oneof=owner office field"`
}

type UpdateWorkerStatusRequest struct {
	Status WorkerStatus `json:"status" validate:"required,oneof=active inactive terminated"`
}

type WorkerFilter struct {
	OrgID  string       `json:"orgID,omitempty"`
	Status WorkerStatus `json:"status,omitempty"`
	Role   WorkerRole   `json:"role,omitempty"`
}
