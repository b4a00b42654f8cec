package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"fieldops-backend/models"
	"fieldops-backend/repository"
	"fieldops-backend/utils/logger"
)

type AvailabilityService struct {
	jobRepo    repository.JobRepositoryInterface
	crewRepo   repository.CrewRepositoryInterface
	workerRepo repository.WorkerRepositoryInterface
	logger     logger.Logger
}

func NewAvailabilityService(
	jobRepo repository.JobRepositoryInterface,
	crewRepo repository.CrewRepositoryInterface,
	workerRepo repository.WorkerRepositoryInterface,
	log logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		jobRepo:    jobRepo,
		crewRepo:   crewRepo,
		workerRepo: workerRepo,
		logger:     log,
	}
}

// FindConflicts returns every overlap between the candidate window and the
// organization's active jobs for the given workers. excludeJobID skips the
// job being rescheduled so it never conflicts with itself. The result is
// ordered by conflict start time, then worker id, so repeated checks render
// the same way.
func (s *AvailabilityService) FindConflicts(ctx context.Context, orgID string, workerIDs []string, window models.TimeWindow, excludeJobID string) ([]models.Conflict, error) {
	if !window.IsValid() {
		return nil, models.NewInvalidInput("window end must be after window start")
	}
	if len(workerIDs) == 0 {
		return []models.Conflict{}, nil
	}

	jobs, err := s.jobRepo.GetJobsByFilter(&models.JobFilter{OrgID: orgID})
	if err != nil {
		return nil, err
	}

	names, err := s.workerNames(orgID, workerIDs)
	if err != nil {
		return nil, err
	}

	candidate := make(map[string]bool, len(workerIDs))
	for _, id := range workerIDs {
		candidate[id] = true
	}

	var conflicts []models.Conflict
	for _, job := range jobs {
		if job.JobID == excludeJobID {
			continue
		}
		if !job.CountsForConflicts() {
			continue
		}
		if !job.Window().Overlaps(window) {
			continue
		}
		for _, assigned := range job.AssignedUserIDs {
			if !candidate[assigned] {
				continue
			}
			conflicts = append(conflicts, models.Conflict{
				WorkerID:            assigned,
				WorkerName:          names[assigned],
				ConflictingJobID:    job.JobID,
				ConflictingJobTitle: job.Title,
				ConflictStart:       job.StartTime,
				ConflictEnd:         job.EndTime,
			})
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		if !conflicts[i].ConflictStart.Equal(conflicts[j].ConflictStart) {
			return conflicts[i].ConflictStart.Before(conflicts[j].ConflictStart)
		}
		return conflicts[i].WorkerID < conflicts[j].WorkerID
	})

	return conflicts, nil
}

// CheckWorkers answers whether the named workers are free for the window.
func (s *AvailabilityService) CheckWorkers(ctx context.Context, orgID string, req *models.WorkerAvailabilityRequest) (*models.AvailabilityResult, error) {
	if req == nil || len(req.WorkerIDs) == 0 {
		return nil, models.NewInvalidInput("at least one worker ID is required")
	}

	window := models.TimeWindow{Start: req.Start, End: req.End}
	conflicts, err := s.FindConflicts(ctx, orgID, req.WorkerIDs, window, req.ExcludeJobID)
	if err != nil {
		return nil, err
	}

	return s.buildResult(conflicts), nil
}

// CheckCrew answers whether a crew's active members are free for the window.
// A crew with no active members is reported as available; the assignment
// path rejects the empty crew separately.
func (s *AvailabilityService) CheckCrew(ctx context.Context, orgID string, req *models.CrewAvailabilityRequest) (*models.AvailabilityResult, error) {
	if req == nil || req.CrewID == "" {
		return nil, models.NewInvalidInput("crew ID is required")
	}

	window := models.TimeWindow{Start: req.Start, End: req.End}
	if !window.IsValid() {
		return nil, models.NewInvalidInput("window end must be after window start")
	}

	crew, err := s.crewRepo.GetCrew(req.CrewID)
	if err != nil {
		return nil, err
	}
	if crew.OrgID != orgID {
		return nil, models.NewNotFound("crew not found: " + req.CrewID)
	}

	members, err := s.ResolveActiveMembers(ctx, crew)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return &models.AvailabilityResult{Available: true, Conflicts: []models.Conflict{}}, nil
	}

	memberIDs := make([]string, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.WorkerID)
	}

	conflicts, err := s.FindConflicts(ctx, orgID, memberIDs, window, req.ExcludeJobID)
	if err != nil {
		return nil, err
	}

	return s.buildResult(conflicts), nil
}

// ResolveActiveMembers re-reads crew membership and keeps only workers still
// on the active roster. Membership is the source of truth; ids pointing at
// deactivated or deleted workers are dropped silently.
func (s *AvailabilityService) ResolveActiveMembers(ctx context.Context, crew *models.Crew) ([]*models.Worker, error) {
	if len(crew.UserIDs) == 0 {
		return []*models.Worker{}, nil
	}

	workers, err := s.workerRepo.GetWorkersByIDs(crew.OrgID, crew.UserIDs)
	if err != nil {
		return nil, err
	}

	active := make([]*models.Worker, 0, len(workers))
	for _, w := range workers {
		if w.IsActive() {
			active = append(active, w)
		}
	}

	return active, nil
}

func (s *AvailabilityService) buildResult(conflicts []models.Conflict) *models.AvailabilityResult {
	if len(conflicts) == 0 {
		return &models.AvailabilityResult{Available: true, Conflicts: []models.Conflict{}}
	}
	return &models.AvailabilityResult{
		Available: false,
		Conflicts: conflicts,
		Message:   FormatConflictMessage(conflicts),
	}
}

func (s *AvailabilityService) workerNames(orgID string, workerIDs []string) (map[string]string, error) {
	workers, err := s.workerRepo.GetWorkersByIDs(orgID, workerIDs)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(workers))
	for _, w := range workers {
		names[w.WorkerID] = w.Name
	}
	return names, nil
}

// FormatConflictMessage renders a conflict list as one human-readable
// sentence. A single conflict names the worker and the job; one worker with
// several conflicts reports the count; several workers lists their distinct
// names.
func FormatConflictMessage(conflicts []models.Conflict) string {
	if len(conflicts) == 0 {
		return ""
	}

	if len(conflicts) == 1 {
		c := conflicts[0]
		return fmt.Sprintf("%s is already assigned to %q from %s to %s",
			c.WorkerName, c.ConflictingJobTitle,
			c.ConflictStart.Format("Jan 2 15:04"), c.ConflictEnd.Format("15:04"))
	}

	var names []string
	seen := make(map[string]bool)
	for _, c := range conflicts {
		if !seen[c.WorkerID] {
			seen[c.WorkerID] = true
			names = append(names, c.WorkerName)
		}
	}

	if len(names) == 1 {
		return fmt.Sprintf("%s has %d conflicting jobs in this time window", names[0], len(conflicts))
	}

	return fmt.Sprintf("%s have conflicting jobs in this time window", strings.Join(names, ", "))
}
