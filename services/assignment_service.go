package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fieldops-backend/models"
	"fieldops-backend/repository"
	"fieldops-backend/utils"
	"fieldops-backend/utils/logger"
)

// AssignmentService owns every transition of a job's assignment state. Jobs
// never have their AssignedUserIDs or AssignedCrewID mutated anywhere else.
type AssignmentService struct {
	jobRepo      repository.JobRepositoryInterface
	crewRepo     repository.CrewRepositoryInterface
	workerRepo   repository.WorkerRepositoryInterface
	availability AvailabilityServiceInterface
	notifier     NotificationServiceInterface
	logger       logger.Logger
}

func NewAssignmentService(
	jobRepo repository.JobRepositoryInterface,
	crewRepo repository.CrewRepositoryInterface,
	workerRepo repository.WorkerRepositoryInterface,
	availability AvailabilityServiceInterface,
	notifier NotificationServiceInterface,
	log logger.Logger,
) *AssignmentService {
	return &AssignmentService{
		jobRepo:      jobRepo,
		crewRepo:     crewRepo,
		workerRepo:   workerRepo,
		availability: availability,
		notifier:     notifier,
		logger:       log,
	}
}

// loadForScheduling fetches the job and enforces the caller's right to
// change its assignment: same tenant, and a role that manages the schedule.
func (s *AssignmentService) loadForScheduling(caller *models.Caller, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.GetJob(jobID)
	if err != nil {
		return nil, err
	}
	if caller == nil || job.OrgID != caller.OrgID {
		return nil, models.NewNotFound("job not found: " + jobID)
	}
	if !caller.Role.CanManageSchedule() {
		return nil, models.NewForbidden("role " + string(caller.Role) + " may not manage job assignments")
	}
	return job, nil
}

// AssignCrew materializes a crew's active membership onto the job. New
// members are unioned with whoever is already assigned; the crew link is
// replaced. Conflicts among the joining members reject the call unless the
// override flag is set.
func (s *AssignmentService) AssignCrew(ctx context.Context, caller *models.Caller, jobID string, req *models.AssignCrewRequest) (*models.Job, error) {
	if req == nil || req.CrewID == "" {
		return nil, models.NewInvalidInput("crew ID is required")
	}

	job, err := s.loadForScheduling(caller, jobID)
	if err != nil {
		return nil, err
	}

	crew, err := s.crewRepo.GetCrew(req.CrewID)
	if err != nil {
		return nil, err
	}
	if crew.OrgID != job.OrgID {
		return nil, models.NewNotFound("crew not found: " + req.CrewID)
	}

	members, err := s.availability.ResolveActiveMembers(ctx, crew)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, models.NewInvalidState("crew has no active members")
	}

	memberIDs := make([]string, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.WorkerID)
	}

	joining := utils.DifferenceStrings(memberIDs, job.AssignedUserIDs)
	if !req.Override && len(joining) > 0 {
		conflicts, err := s.availability.FindConflicts(ctx, job.OrgID, joining, job.Window(), job.JobID)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			return nil, models.NewSchedulingConflict(FormatConflictMessage(conflicts), conflicts)
		}
	}

	job.AssignedUserIDs = utils.UnionStrings(job.AssignedUserIDs, memberIDs)
	job.AssignedCrewID = crew.CrewID
	job.UpdatedBy = caller.WorkerID

	updated, err := s.jobRepo.UpdateJob(job.JobID, job)
	if err != nil {
		return nil, err
	}

	if len(joining) > 0 {
		s.notifier.NotifyCrewAssigned(updated, crew, joining)
	}

	s.logger.Infof("Assigned crew %s to job %s (%d joining)", crew.CrewID, job.JobID, len(joining))
	return updated, nil
}

// AssignWorkers assigns individual workers. Mode add unions them into the
// current list; mode replace swaps the whole list. Only workers not already
// on the job are conflict-checked.
func (s *AssignmentService) AssignWorkers(ctx context.Context, caller *models.Caller, jobID string, req *models.AssignWorkersRequest) (*models.Job, error) {
	if req == nil || len(req.WorkerIDs) == 0 {
		return nil, models.NewInvalidInput("at least one worker ID is required")
	}
	if req.Mode != models.AssignModeAdd && req.Mode != models.AssignModeReplace {
		return nil, models.NewInvalidInput("mode must be add or replace")
	}

	job, err := s.loadForScheduling(caller, jobID)
	if err != nil {
		return nil, err
	}

	workerIDs := utils.DedupStrings(req.WorkerIDs)
	if err := s.requireActiveWorkers(job.OrgID, workerIDs); err != nil {
		return nil, err
	}

	joining := utils.DifferenceStrings(workerIDs, job.AssignedUserIDs)
	if !req.Override && len(joining) > 0 {
		conflicts, err := s.availability.FindConflicts(ctx, job.OrgID, joining, job.Window(), job.JobID)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			return nil, models.NewSchedulingConflict(FormatConflictMessage(conflicts), conflicts)
		}
	}

	switch req.Mode {
	case models.AssignModeReplace:
		job.AssignedUserIDs = workerIDs
		if job.AssignedCrewID != "" && !s.crewStillAssigned(job) {
			job.AssignedCrewID = ""
		}
	default:
		job.AssignedUserIDs = utils.UnionStrings(job.AssignedUserIDs, workerIDs)
	}
	job.UpdatedBy = caller.WorkerID

	updated, err := s.jobRepo.UpdateJob(job.JobID, job)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("Assigned %d workers to job %s (mode %s)", len(workerIDs), job.JobID, req.Mode)
	return updated, nil
}

// Unassign removes workers from the job. Type all clears everything; type
// crew removes only the crew's current active members and keeps individually
// assigned workers; type users removes the named ids.
func (s *AssignmentService) Unassign(ctx context.Context, caller *models.Caller, jobID string, req *models.UnassignRequest) (*models.Job, error) {
	if req == nil {
		return nil, models.NewInvalidInput("unassign request is required")
	}

	job, err := s.loadForScheduling(caller, jobID)
	if err != nil {
		return nil, err
	}

	switch req.Type {
	case models.UnassignAll:
		job.AssignedUserIDs = []string{}
		job.AssignedCrewID = ""

	case models.UnassignCrew:
		if job.AssignedCrewID == "" {
			return nil, models.NewInvalidState("job has no crew assigned")
		}
		crew, err := s.crewRepo.GetCrew(job.AssignedCrewID)
		if err != nil {
			return nil, err
		}
		members, err := s.availability.ResolveActiveMembers(ctx, crew)
		if err != nil {
			return nil, err
		}
		memberIDs := make([]string, 0, len(members))
		for _, m := range members {
			memberIDs = append(memberIDs, m.WorkerID)
		}
		job.AssignedUserIDs = utils.DifferenceStrings(job.AssignedUserIDs, memberIDs)
		job.AssignedCrewID = ""

	case models.UnassignUsers:
		if len(req.WorkerIDs) == 0 {
			return nil, models.NewInvalidInput("worker IDs are required for type users")
		}
		job.AssignedUserIDs = utils.DifferenceStrings(job.AssignedUserIDs, req.WorkerIDs)
		if job.AssignedCrewID != "" && !s.crewStillAssigned(job) {
			job.AssignedCrewID = ""
		}

	default:
		return nil, models.NewInvalidInput("type must be all, crew or users")
	}

	job.UpdatedBy = caller.WorkerID

	updated, err := s.jobRepo.UpdateJob(job.JobID, job)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("Unassigned (%s) on job %s, %d workers remain", req.Type, job.JobID, len(updated.AssignedUserIDs))
	return updated, nil
}

// Override records an audited bypass of the skill requirement check and may
// add one extra worker in the same step. The added worker is validated for
// existence and active status but is deliberately not conflict-checked: the
// override exists so a dispatcher can force a schedule through.
func (s *AssignmentService) Override(ctx context.Context, caller *models.Caller, jobID string, req *models.OverrideRequest) (*models.Job, error) {
	if req == nil || strings.TrimSpace(req.Reason) == "" {
		return nil, models.NewInvalidInput("override reason is required")
	}

	job, err := s.loadForScheduling(caller, jobID)
	if err != nil {
		return nil, err
	}

	if req.AddWorkerID != "" {
		if err := s.requireActiveWorkers(job.OrgID, []string{req.AddWorkerID}); err != nil {
			return nil, err
		}
		job.AssignedUserIDs = utils.UnionStrings(job.AssignedUserIDs, []string{req.AddWorkerID})
	}

	job.AllowUnqualified = true
	job.UnqualifiedOverride = &models.OverrideData{
		By:     caller.WorkerID,
		At:     time.Now(),
		Reason: strings.TrimSpace(req.Reason),
	}
	job.UpdatedBy = caller.WorkerID

	updated, err := s.jobRepo.UpdateJob(job.JobID, job)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("Override recorded on job %s by %s", job.JobID, caller.WorkerID)
	return updated, nil
}

// ClearOverride resets the bypass flag and its audit record. Clearing a job
// with no override is a no-op, not an error.
func (s *AssignmentService) ClearOverride(ctx context.Context, caller *models.Caller, jobID string) (*models.Job, error) {
	job, err := s.loadForScheduling(caller, jobID)
	if err != nil {
		return nil, err
	}

	if !job.AllowUnqualified && job.UnqualifiedOverride == nil {
		return job, nil
	}

	job.AllowUnqualified = false
	job.UnqualifiedOverride = nil
	job.UpdatedBy = caller.WorkerID

	return s.jobRepo.UpdateJob(job.JobID, job)
}

// requireActiveWorkers verifies every id names an existing, active worker in
// the organization. The error names every bad id so the caller can fix the
// whole request at once.
func (s *AssignmentService) requireActiveWorkers(orgID string, workerIDs []string) error {
	workers, err := s.workerRepo.GetWorkersByIDs(orgID, workerIDs)
	if err != nil {
		return err
	}

	found := make(map[string]*models.Worker, len(workers))
	for _, w := range workers {
		found[w.WorkerID] = w
	}

	var missing, inactive []string
	for _, id := range workerIDs {
		w, ok := found[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		if !w.IsActive() {
			inactive = append(inactive, id)
		}
	}

	if len(missing) > 0 {
		return models.NewNotFound("workers not found: " + strings.Join(missing, ", "))
	}
	if len(inactive) > 0 {
		return models.NewInvalidState(fmt.Sprintf("workers not active: %s", strings.Join(inactive, ", ")))
	}
	return nil
}

// crewStillAssigned reports whether any of the linked crew's members remain
// on the job's assignment list. When the last one goes, the crew link goes
// with it.
func (s *AssignmentService) crewStillAssigned(job *models.Job) bool {
	crew, err := s.crewRepo.GetCrew(job.AssignedCrewID)
	if err != nil {
		return false
	}
	return len(utils.IntersectStrings(job.AssignedUserIDs, crew.UserIDs)) > 0
}
