package repository

import (
	"context"
	"fieldops-backend/models"
)

// JobRepositoryInterface defines the contract for job repository operations
type JobRepositoryInterface interface {
	CreateJob(ctx context.Context, job *models.Job) (*models.Job, error)
	GetJob(id string) (*models.Job, error)
	GetJobsByFilter(filter *models.JobFilter) ([]*models.Job, error)
	GetChildJobs(parentJobID string) ([]*models.Job, error)
	UpdateJob(id string, job *models.Job) (*models.Job, error)
	DeleteJob(id string) error
}

// CrewRepositoryInterface defines the contract for crew repository operations
type CrewRepositoryInterface interface {
	CreateCrew(ctx context.Context, crew *models.Crew) (*models.Crew, error)
	GetCrew(id string) (*models.Crew, error)
	GetCrewsByFilter(filter *models.CrewFilter) ([]*models.Crew, error)
	UpdateCrew(id string, crew *models.Crew) (*models.Crew, error)
	DeleteCrew(id string) error
}

// WorkerRepositoryInterface defines the contract for worker repository operations
type WorkerRepositoryInterface interface {
	CreateWorker(ctx context.Context, worker *models.Worker) (*models.Worker, error)
	GetWorker(id string) (*models.Worker, error)
	GetWorkersByFilter(filter *models.WorkerFilter) ([]*models.Worker, error)
	GetWorkersByIDs(orgID string, ids []string) ([]*models.Worker, error)
	GetWorkerByEmail(email string) (*models.Worker, error)
	UpdateWorker(id string, worker *models.Worker) (*models.Worker, error)
	DeleteWorker(id string) error
}

// OrganizationRepositoryInterface defines the contract for the organization repository
type OrganizationRepositoryInterface interface {
	CreateOrganization(ctx context.Context, organization *models.Organization) (*models.Organization, error)
	GetOrganization(id string) (*models.Organization, error)
	GetOrganizations() ([]*models.Organization, error)
	UpdateOrganization(id string, organization *models.Organization) (*models.Organization, error)
	DeleteOrganization(id string) error
}

// NotificationRepositoryInterface defines the contract for the notification outbox
type NotificationRepositoryInterface interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
}

// RepositoryContainerInterface defines the contract for the repository container
type RepositoryContainerInterface interface {
	GetJobRepository() JobRepositoryInterface
	GetCrewRepository() CrewRepositoryInterface
	GetWorkerRepository() WorkerRepositoryInterface
	GetOrganizationRepository() OrganizationRepositoryInterface
	GetNotificationRepository() NotificationRepositoryInterface
}
