package services

import (
	"context"
	"fieldops-backend/models"
)

// AvailabilityServiceInterface defines the contract for availability checks
type AvailabilityServiceInterface interface {
	FindConflicts(ctx context.Context, orgID string, workerIDs []string, window models.TimeWindow, excludeJobID string) ([]models.Conflict, error)
	CheckWorkers(ctx context.Context, orgID string, req *models.WorkerAvailabilityRequest) (*models.AvailabilityResult, error)
	CheckCrew(ctx context.Context, orgID string, req *models.CrewAvailabilityRequest) (*models.AvailabilityResult, error)
	ResolveActiveMembers(ctx context.Context, crew *models.Crew) ([]*models.Worker, error)
}

// AssignmentServiceInterface defines the contract for assignment transitions
type AssignmentServiceInterface interface {
	AssignCrew(ctx context.Context, caller *models.Caller, jobID string, req *models.AssignCrewRequest) (*models.Job, error)
	AssignWorkers(ctx context.Context, caller *models.Caller, jobID string, req *models.AssignWorkersRequest) (*models.Job, error)
	Unassign(ctx context.Context, caller *models.Caller, jobID string, req *models.UnassignRequest) (*models.Job, error)
	Override(ctx context.Context, caller *models.Caller, jobID string, req *models.OverrideRequest) (*models.Job, error)
	ClearOverride(ctx context.Context, caller *models.Caller, jobID string) (*models.Job, error)
}

// RecurrenceServiceInterface defines the contract for the recurrence generator
type RecurrenceServiceInterface interface {
	GenerateForOrg(ctx context.Context, orgID string) (*models.GenerationSummary, error)
	GenerateAll(ctx context.Context) (*models.GenerationSummary, error)
	NextOccurrence(from models.TimeWindow, frequency models.RecurringFrequency) (models.TimeWindow, error)
}

// JobServiceInterface defines the contract for job lifecycle operations
type JobServiceInterface interface {
	CreateJob(ctx context.Context, req *models.CreateJobRequest, createdBy string) (*models.Job, error)
	GetJob(id string) (*models.Job, error)
	GetJobs(filter *models.JobFilter) ([]*models.Job, error)
	UpdateJob(ctx context.Context, caller *models.Caller, id string, req *models.UpdateJobRequest) (*models.Job, error)
	UpdateJobStatus(ctx context.Context, caller *models.Caller, id string, status models.JobStatus) (*models.Job, error)
	DeleteJob(caller *models.Caller, id string) error
}

// CrewServiceInterface defines the contract for crew management
type CrewServiceInterface interface {
	CreateCrew(ctx context.Context, req *models.CreateCrewRequest, createdBy string) (*models.Crew, error)
	GetCrew(id string) (*models.Crew, error)
	GetCrews(filter *models.CrewFilter) ([]*models.Crew, error)
	UpdateCrew(ctx context.Context, id string, req *models.UpdateCrewRequest) (*models.Crew, error)
	DeleteCrew(id string) error
}

// WorkerServiceInterface defines the contract for roster management including
// the deactivation cascade
type WorkerServiceInterface interface {
	CreateWorker(ctx context.Context, req *models.CreateWorkerRequest) (*models.Worker, error)
	Authenticate(email, password string) (*models.Worker, error)
	GetWorker(id string) (*models.Worker, error)
	GetWorkers(filter *models.WorkerFilter) ([]*models.Worker, error)
	UpdateWorker(ctx context.Context, id string, req *models.UpdateWorkerRequest) (*models.Worker, error)
	UpdateWorkerStatus(ctx context.Context, id string, status models.WorkerStatus) (*models.Worker, error)
	DeleteWorker(id string) error
}

// OrganizationServiceInterface defines the contract for tenant management
type OrganizationServiceInterface interface {
	CreateOrganization(ctx context.Context, req *models.CreateOrganizationRequest, createdBy string) (*models.Organization, error)
	GetOrganization(id string) (*models.Organization, error)
	GetOrganizations() ([]*models.Organization, error)
	GetActiveOrganizations() ([]*models.Organization, error)
}

// NotificationServiceInterface defines the contract for the outbox enqueue
type NotificationServiceInterface interface {
	NotifyCrewAssigned(job *models.Job, crew *models.Crew, recipientIDs []string)
}

// ServiceContainerInterface defines the main service container contract
type ServiceContainerInterface interface {
	GetAvailabilityService() AvailabilityServiceInterface
	GetAssignmentService() AssignmentServiceInterface
	GetRecurrenceService() RecurrenceServiceInterface
	GetJobService() JobServiceInterface
	GetCrewService() CrewServiceInterface
	GetWorkerService() WorkerServiceInterface
	GetOrganizationService() OrganizationServiceInterface
	GetNotificationService() NotificationServiceInterface
}
