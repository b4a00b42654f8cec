package services

import (
	"context"

	"fieldops-backend/models"
	"fieldops-backend/repository"
	"fieldops-backend/utils"
	"fieldops-backend/utils/logger"
)

type WorkerService struct {
	workerRepo repository.WorkerRepositoryInterface
	crewRepo   repository.CrewRepositoryInterface
	logger     logger.Logger
}

func NewWorkerService(
	workerRepo repository.WorkerRepositoryInterface,
	crewRepo repository.CrewRepositoryInterface,
	log logger.Logger,
) *WorkerService {
	return &WorkerService{
		workerRepo: workerRepo,
		crewRepo:   crewRepo,
		logger:     log,
	}
}

func (s *WorkerService) CreateWorker(ctx context.Context, req *models.CreateWorkerRequest) (*models.Worker, error) {
	if req == nil {
		return nil, models.NewInvalidInput("worker request is required")
	}

	worker := &models.Worker{
		OrgID:  req.OrgID,
		Name:   req.Name,
		Email:  req.Email,
		Color:  req.Color,
		Skills: req.Skills,
		Role:   req.Role,
		Status: models.WorkerStatusActive,
	}

	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, models.NewDependencyFailure("failed to hash password", err)
		}
		worker.Password = hashed
	}

	return s.workerRepo.CreateWorker(ctx, worker)
}

// Authenticate resolves a worker by login email and verifies the password.
// Every failure mode returns the same not found error so callers cannot probe
// which emails exist.
func (s *WorkerService) Authenticate(email, password string) (*models.Worker, error) {
	worker, err := s.workerRepo.GetWorkerByEmail(email)
	if err != nil {
		return nil, models.NewNotFound("invalid email or password")
	}

	if worker.Password == "" || !utils.CheckPassword(worker.Password, password) {
		return nil, models.NewNotFound("invalid email or password")
	}

	if !worker.IsActive() {
		return nil, models.NewForbidden("worker account is " + string(worker.Status))
	}

	return worker, nil
}

func (s *WorkerService) GetWorker(id string) (*models.Worker, error) {
	return s.workerRepo.GetWorker(id)
}

func (s *WorkerService) GetWorkers(filter *models.WorkerFilter) ([]*models.Worker, error) {
	if filter == nil {
		filter = &models.WorkerFilter{}
	}
	return s.workerRepo.GetWorkersByFilter(filter)
}

func (s *WorkerService) UpdateWorker(ctx context.Context, id string, req *models.UpdateWorkerRequest) (*models.Worker, error) {
	if req == nil {
		return nil, models.NewInvalidInput("worker request is required")
	}

	worker, err := s.workerRepo.GetWorker(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		worker.Name = req.Name
	}
	if req.Email != "" {
		worker.Email = req.Email
	}
	if req.Color != "" {
		worker.Color = req.Color
	}
	if req.Skills != nil {
		worker.Skills = req.Skills
	}
	if req.Role != "" {
		worker.Role = req.Role
	}

	return s.workerRepo.UpdateWorker(id, worker)
}

// UpdateWorkerStatus changes a worker's roster status. Moving a worker off
// the active roster first runs the deactivation cascade over the org's
// crews; the status flip is only persisted after the cascade succeeds, so a
// failed cascade leaves the worker active and the call retryable.
func (s *WorkerService) UpdateWorkerStatus(ctx context.Context, id string, status models.WorkerStatus) (*models.Worker, error) {
	worker, err := s.workerRepo.GetWorker(id)
	if err != nil {
		return nil, err
	}

	if worker.Status == status {
		return worker, nil
	}

	if status != models.WorkerStatusActive {
		if err := s.cascadeDeactivation(worker); err != nil {
			return nil, err
		}
	}

	worker.Status = status
	return s.workerRepo.UpdateWorker(id, worker)
}

func (s *WorkerService) DeleteWorker(id string) error {
	worker, err := s.workerRepo.GetWorker(id)
	if err != nil {
		return err
	}

	if err := s.cascadeDeactivation(worker); err != nil {
		return err
	}

	return s.workerRepo.DeleteWorker(id)
}

// cascadeDeactivation removes the worker from every crew in the org that
// lists them, clearing crew leadership where they held it. Existing job
// assignments are left alone: history stays intact and the worker's past
// jobs still count for conflict detection.
func (s *WorkerService) cascadeDeactivation(worker *models.Worker) error {
	crews, err := s.crewRepo.GetCrewsByFilter(&models.CrewFilter{OrgID: worker.OrgID, MemberID: worker.WorkerID})
	if err != nil {
		return models.NewDependencyFailure("failed to load crews for deactivation", err)
	}

	for _, crew := range crews {
		crew.UserIDs = utils.DifferenceStrings(crew.UserIDs, []string{worker.WorkerID})
		if crew.LeaderID == worker.WorkerID {
			crew.LeaderID = ""
		}
		if _, err := s.crewRepo.UpdateCrew(crew.CrewID, crew); err != nil {
			return models.NewDependencyFailure("failed to update crew "+crew.CrewID+" during deactivation", err)
		}
		s.logger.Infof("Removed worker %s from crew %s", worker.WorkerID, crew.CrewID)
	}

	return nil
}
