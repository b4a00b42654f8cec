package services

import (
	"context"

	"fieldops-backend/models"
	"fieldops-backend/repository"
	"fieldops-backend/utils"
	"fieldops-backend/utils/logger"
)

type CrewService struct {
	crewRepo   repository.CrewRepositoryInterface
	workerRepo repository.WorkerRepositoryInterface
	logger     logger.Logger
}

func NewCrewService(
	crewRepo repository.CrewRepositoryInterface,
	workerRepo repository.WorkerRepositoryInterface,
	log logger.Logger,
) *CrewService {
	return &CrewService{
		crewRepo:   crewRepo,
		workerRepo: workerRepo,
		logger:     log,
	}
}

func (s *CrewService) CreateCrew(ctx context.Context, req *models.CreateCrewRequest, createdBy string) (*models.Crew, error) {
	if req == nil {
		return nil, models.NewInvalidInput("crew request is required")
	}

	memberIDs := utils.DedupStrings(req.UserIDs)
	if err := s.requireOrgWorkers(req.OrgID, memberIDs); err != nil {
		return nil, err
	}
	if req.LeaderID != "" && !utils.ContainsString(memberIDs, req.LeaderID) {
		return nil, models.NewInvalidInput("leader must be a crew member")
	}

	crew := &models.Crew{
		OrgID:       req.OrgID,
		Name:        req.Name,
		Description: req.Description,
		LeaderID:    req.LeaderID,
		UserIDs:     memberIDs,
		Skills:      req.Skills,
		CreatedBy:   createdBy,
	}

	return s.crewRepo.CreateCrew(ctx, crew)
}

func (s *CrewService) GetCrew(id string) (*models.Crew, error) {
	return s.crewRepo.GetCrew(id)
}

func (s *CrewService) GetCrews(filter *models.CrewFilter) ([]*models.Crew, error) {
	if filter == nil {
		filter = &models.CrewFilter{}
	}
	return s.crewRepo.GetCrewsByFilter(filter)
}

func (s *CrewService) UpdateCrew(ctx context.Context, id string, req *models.UpdateCrewRequest) (*models.Crew, error) {
	if req == nil {
		return nil, models.NewInvalidInput("crew request is required")
	}

	crew, err := s.crewRepo.GetCrew(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		crew.Name = req.Name
	}
	if req.Description != "" {
		crew.Description = req.Description
	}
	if req.UserIDs != nil {
		memberIDs := utils.DedupStrings(req.UserIDs)
		if err := s.requireOrgWorkers(crew.OrgID, memberIDs); err != nil {
			return nil, err
		}
		crew.UserIDs = memberIDs
		if crew.LeaderID != "" && !utils.ContainsString(memberIDs, crew.LeaderID) {
			crew.LeaderID = ""
		}
	}
	if req.LeaderID != nil {
		if *req.LeaderID != "" && !crew.HasMember(*req.LeaderID) {
			return nil, models.NewInvalidInput("leader must be a crew member")
		}
		crew.LeaderID = *req.LeaderID
	}
	if req.Skills != nil {
		crew.Skills = req.Skills
	}
	if req.IsActive != nil {
		crew.IsActive = *req.IsActive
	}

	return s.crewRepo.UpdateCrew(id, crew)
}

func (s *CrewService) DeleteCrew(id string) error {
	if _, err := s.crewRepo.GetCrew(id); err != nil {
		return err
	}
	return s.crewRepo.DeleteCrew(id)
}

// requireOrgWorkers checks that every member id names a worker in the
// organization. Inactive workers may stay on the membership list; they are
// filtered out at resolution time instead.
func (s *CrewService) requireOrgWorkers(orgID string, workerIDs []string) error {
	if len(workerIDs) == 0 {
		return nil
	}

	workers, err := s.workerRepo.GetWorkersByIDs(orgID, workerIDs)
	if err != nil {
		return err
	}
	if len(workers) != len(workerIDs) {
		found := make(map[string]bool, len(workers))
		for _, w := range workers {
			found[w.WorkerID] = true
		}
		for _, id := range workerIDs {
			if !found[id] {
				return models.NewNotFound("worker not found: " + id)
			}
		}
	}
	return nil
}
