package services

import (
	"fieldops-backend/models"
	"fieldops-backend/repository"
	"fieldops-backend/utils/logger"
)

// Service implements ServiceContainerInterface
type Service struct {
	availabilityService AvailabilityServiceInterface
	assignmentService   AssignmentServiceInterface
	recurrenceService   RecurrenceServiceInterface
	jobService          JobServiceInterface
	crewService         CrewServiceInterface
	workerService       WorkerServiceInterface
	organizationService OrganizationServiceInterface
	notificationService NotificationServiceInterface
}

// NewService creates a new service container with all dependencies injected
func NewService(
	repoContainer repository.RepositoryContainerInterface,
	log logger.Logger,
	config *models.Config,
) ServiceContainerInterface {
	jobRepo := repoContainer.GetJobRepository()
	crewRepo := repoContainer.GetCrewRepository()
	workerRepo := repoContainer.GetWorkerRepository()
	orgRepo := repoContainer.GetOrganizationRepository()

	availability := NewAvailabilityService(jobRepo, crewRepo, workerRepo, log)
	notifier := NewNotificationService(repoContainer.GetNotificationRepository(), log)

	return &Service{
		availabilityService: availability,
		assignmentService:   NewAssignmentService(jobRepo, crewRepo, workerRepo, availability, notifier, log),
		recurrenceService:   NewRecurrenceService(jobRepo, orgRepo, config.RecurrenceDueWindow, log),
		jobService:          NewJobService(jobRepo, log),
		crewService:         NewCrewService(crewRepo, workerRepo, log),
		workerService:       NewWorkerService(workerRepo, crewRepo, log),
		organizationService: NewOrganizationService(orgRepo, log),
		notificationService: notifier,
	}
}

func (s *Service) GetAvailabilityService() AvailabilityServiceInterface {
	return s.availabilityService
}

func (s *Service) GetAssignmentService() AssignmentServiceInterface {
	return s.assignmentService
}

func (s *Service) GetRecurrenceService() RecurrenceServiceInterface {
	return s.recurrenceService
}

func (s *Service) GetJobService() JobServiceInterface {
	return s.jobService
}

func (s *Service) GetCrewService() CrewServiceInterface {
	return s.crewService
}

func (s *Service) GetWorkerService() WorkerServiceInterface {
	return s.workerService
}

func (s *Service) GetOrganizationService() OrganizationServiceInterface {
	return s.organizationService
}

func (s *Service) GetNotificationService() NotificationServiceInterface {
	return s.notificationService
}
