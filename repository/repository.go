package repository

import (
	"fieldops-backend/dal"
	"fieldops-backend/models"
	"fieldops-backend/utils/logger"
)

type Repository struct {
	Job          *JobRepository
	Crew         *CrewRepository
	Worker       *WorkerRepository
	Organization *OrganizationRepository
	Notification *NotificationRepository
}

func NewRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *Repository {
	return &Repository{
		Job:          NewJobRepository(db, cfg, log),
		Crew:         NewCrewRepository(db, cfg, log),
		Worker:       NewWorkerRepository(db, cfg, log),
		Organization: NewOrganizationRepository(db, cfg, log),
		Notification: NewNotificationRepository(db, cfg, log),
	}
}

func (r *Repository) GetJobRepository() JobRepositoryInterface {
	return r.Job
}

func (r *Repository) GetCrewRepository() CrewRepositoryInterface {
	return r.Crew
}

func (r *Repository) GetWorkerRepository() WorkerRepositoryInterface {
	return r.Worker
}

func (r *Repository) GetOrganizationRepository() OrganizationRepositoryInterface {
	return r.Organization
}

func (r *Repository) GetNotificationRepository() NotificationRepositoryInterface {
	return r.Notification
}
