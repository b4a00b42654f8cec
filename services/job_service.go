package services

import (
	"context"

	"fieldops-backend/models"
	"fieldops-backend/repository"
	"fieldops-backend/utils/logger"
)

// validStatusTransitions is the job lifecycle. A job leaves the schedule
// only through completed or cancelled, both of which are terminal.
var validStatusTransitions = map[models.JobStatus][]models.JobStatus{
	models.JobStatusScheduled:  {models.JobStatusInProgress, models.JobStatusCancelled, models.JobStatusOnHold},
	models.JobStatusInProgress: {models.JobStatusCompleted, models.JobStatusCancelled, models.JobStatusOnHold},
	models.JobStatusOnHold:     {models.JobStatusScheduled, models.JobStatusCancelled},
	models.JobStatusCompleted:  {},
	models.JobStatusCancelled:  {},
}

type JobService struct {
	jobRepo repository.JobRepositoryInterface
	logger  logger.Logger
}

func NewJobService(jobRepo repository.JobRepositoryInterface, log logger.Logger) *JobService {
	return &JobService{
		jobRepo: jobRepo,
		logger:  log,
	}
}

func (s *JobService) CreateJob(ctx context.Context, req *models.CreateJobRequest, createdBy string) (*models.Job, error) {
	if req == nil {
		return nil, models.NewInvalidInput("job request is required")
	}

	window := models.TimeWindow{Start: req.StartTime, End: req.EndTime}
	if !window.IsValid() {
		return nil, models.NewInvalidInput("end time must be after start time")
	}
	if req.IsRecurring && req.RecurringFrequency == "" {
		return nil, models.NewInvalidInput("recurring jobs require a frequency")
	}

	job := &models.Job{
		OrgID:              req.OrgID,
		ClientID:           req.ClientID,
		Title:              req.Title,
		JobType:            req.JobType,
		JobStatus:          models.JobStatusScheduled,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		Address:            req.Address,
		Price:              req.Price,
		Instructions:       req.Instructions,
		Notes:              req.Notes,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: req.RecurringFrequency,
		RecurringEndDate:   req.RecurringEndDate,
		CreatedBy:          createdBy,
	}

	return s.jobRepo.CreateJob(ctx, job)
}

func (s *JobService) GetJob(id string) (*models.Job, error) {
	return s.jobRepo.GetJob(id)
}

func (s *JobService) GetJobs(filter *models.JobFilter) ([]*models.Job, error) {
	if filter == nil {
		filter = &models.JobFilter{}
	}
	return s.jobRepo.GetJobsByFilter(filter)
}

func (s *JobService) UpdateJob(ctx context.Context, caller *models.Caller, id string, req *models.UpdateJobRequest) (*models.Job, error) {
	if req == nil {
		return nil, models.NewInvalidInput("job request is required")
	}

	job, err := s.loadForCaller(caller, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		job.Title = req.Title
	}
	if req.JobType != "" {
		job.JobType = req.JobType
	}
	if req.StartTime != nil {
		job.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		job.EndTime = *req.EndTime
	}
	if req.Address != "" {
		job.Address = req.Address
	}
	if req.Instructions != "" {
		job.Instructions = req.Instructions
	}
	if req.Notes != "" {
		job.Notes = req.Notes
	}
	if req.RecurringEndDate != nil {
		job.RecurringEndDate = req.RecurringEndDate
	}

	if !job.Window().IsValid() {
		return nil, models.NewInvalidInput("end time must be after start time")
	}

	job.UpdatedBy = caller.WorkerID
	return s.jobRepo.UpdateJob(id, job)
}

func (s *JobService) UpdateJobStatus(ctx context.Context, caller *models.Caller, id string, status models.JobStatus) (*models.Job, error) {
	job, err := s.loadForCaller(caller, id)
	if err != nil {
		return nil, err
	}

	if job.JobStatus == status {
		return job, nil
	}
	if !isValidTransition(job.JobStatus, status) {
		return nil, models.NewInvalidState("cannot move job from " + string(job.JobStatus) + " to " + string(status))
	}

	job.JobStatus = status
	job.UpdatedBy = caller.WorkerID
	return s.jobRepo.UpdateJob(id, job)
}

func (s *JobService) DeleteJob(caller *models.Caller, id string) error {
	if _, err := s.loadForCaller(caller, id); err != nil {
		return err
	}
	return s.jobRepo.DeleteJob(id)
}

func (s *JobService) loadForCaller(caller *models.Caller, id string) (*models.Job, error) {
	job, err := s.jobRepo.GetJob(id)
	if err != nil {
		return nil, err
	}
	if caller == nil || job.OrgID != caller.OrgID {
		return nil, models.NewNotFound("job not found: " + id)
	}
	if !caller.Role.CanManageSchedule() {
		return nil, models.NewForbidden("role " + string(caller.Role) + " may not modify jobs")
	}
	return job, nil
}

func isValidTransition(from, to models.JobStatus) bool {
	for _, allowed := range validStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
