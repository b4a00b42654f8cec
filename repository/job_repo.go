package repository

import (
	"context"
	"fieldops-backend/dal"
	"fieldops-backend/models"
	"fieldops-backend/utils"
	"fieldops-backend/utils/logger"
	"time"
)

type JobRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewJobRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *JobRepository {
	return &JobRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *JobRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_jobs"
}

func (r *JobRepository) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	r.logger.Infof("Creating job: %s", job.Title)

	now := time.Now()
	job.JobID = utils.GenerateUUID()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.JobStatus == "" {
		job.JobStatus = models.JobStatusScheduled
	}
	if job.AssignedUserIDs == nil {
		job.AssignedUserIDs = []string{}
	}

	err := r.db.PutItem(ctx, r.tableName(), job)
	if err != nil {
		r.logger.Errorf("Failed to create job: %v", err)
		return nil, models.NewDependencyFailure("failed to create job", err)
	}

	r.logger.Infof("Job created successfully: %s", job.JobID)
	return job, nil
}

func (r *JobRepository) GetJob(id string) (*models.Job, error) {
	ctx := context.Background()

	if id == "" {
		return nil, models.NewInvalidInput("job ID is required")
	}

	job := models.Job{}
	config := models.QueryConfig{
		TableName: r.tableName(),
		KeyName:   "jobID",
		KeyValue:  id,
	}

	err := r.db.GetItem(ctx, config, &job)
	if err != nil {
		r.logger.Errorf("Failed to get job %s: %v", id, err)
		return nil, models.NewDependencyFailure("failed to get job", err)
	}

	if job.JobID == "" {
		return nil, models.NewNotFound("job not found: " + id)
	}

	return &job, nil
}

func (r *JobRepository) GetJobsByFilter(filter *models.JobFilter) ([]*models.Job, error) {
	ctx := context.Background()

	var jobs []*models.Job
	var err error

	if filter != nil && filter.ParentJobID != "" {
		return r.GetChildJobs(filter.ParentJobID)
	}

	if filter != nil && filter.OrgID != "" {
		err = r.db.QueryByIndex(ctx, r.tableName(), "orgID-index", "orgID", filter.OrgID, &jobs)
	} else if filter != nil && filter.ClientID != "" {
		err = r.db.QueryByIndex(ctx, r.tableName(), "clientID-index", "clientID", filter.ClientID, &jobs)
	} else {
		// Scan all jobs (use with caution in production)
		err = r.db.ScanTable(ctx, r.tableName(), &jobs)
	}

	if err != nil {
		r.logger.Errorf("Failed to get jobs: %v", err)
		return nil, models.NewDependencyFailure("failed to get jobs", err)
	}

	filteredJobs := r.applyAdditionalFilters(jobs, filter)

	r.logger.Infof("Found %d jobs", len(filteredJobs))
	return filteredJobs, nil
}

func (r *JobRepository) GetChildJobs(parentJobID string) ([]*models.Job, error) {
	ctx := context.Background()

	if parentJobID == "" {
		return nil, models.NewInvalidInput("parent job ID is required")
	}

	var jobs []*models.Job
	err := r.db.QueryByIndex(ctx, r.tableName(), "parentJobID-index", "parentRecurringJobID", parentJobID, &jobs)
	if err != nil {
		r.logger.Errorf("Failed to get child jobs for %s: %v", parentJobID, err)
		return nil, models.NewDependencyFailure("failed to get child jobs", err)
	}

	return jobs, nil
}

func (r *JobRepository) UpdateJob(id string, job *models.Job) (*models.Job, error) {
	ctx := context.Background()
	r.logger.Infof("Updating job: %s", id)

	if id == "" {
		return nil, models.NewInvalidInput("job ID is required")
	}

	existing, err := r.GetJob(id)
	if err != nil {
		return nil, err
	}

	job.JobID = id
	job.CreatedAt = existing.CreatedAt
	job.UpdatedAt = time.Now()
	if job.AssignedUserIDs == nil {
		job.AssignedUserIDs = []string{}
	}

	err = r.db.PutItem(ctx, r.tableName(), job)
	if err != nil {
		r.logger.Errorf("Failed to update job: %v", err)
		return nil, models.NewDependencyFailure("failed to update job", err)
	}

	r.logger.Infof("Job updated successfully: %s", id)
	return job, nil
}

func (r *JobRepository) DeleteJob(id string) error {
	ctx := context.Background()
	r.logger.Infof("Deleting job: %s", id)

	if id == "" {
		return models.NewInvalidInput("job ID is required")
	}

	err := r.db.DeleteItem(ctx, r.tableName(), "jobID", id)
	if err != nil {
		r.logger.Errorf("Failed to delete job: %v", err)
		return models.NewDependencyFailure("failed to delete job", err)
	}

	return nil
}

func (r *JobRepository) applyAdditionalFilters(jobs []*models.Job, filter *models.JobFilter) []*models.Job {
	if filter == nil {
		return jobs
	}

	var filtered []*models.Job
	for _, job := range jobs {
		if filter.ClientID != "" && job.ClientID != filter.ClientID {
			continue
		}
		if filter.JobStatus != "" && job.JobStatus != filter.JobStatus {
			continue
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, job.JobStatus) {
			continue
		}
		if filter.JobType != "" && job.JobType != filter.JobType {
			continue
		}
		if filter.IsRecurring != nil && job.IsRecurring != *filter.IsRecurring {
			continue
		}
		if filter.CreatedBy != "" && job.CreatedBy != filter.CreatedBy {
			continue
		}
		if !filter.FromDate.IsZero() && job.EndTime.Before(filter.FromDate) {
			continue
		}
		if !filter.ToDate.IsZero() && job.StartTime.After(filter.ToDate) {
			continue
		}

		filtered = append(filtered, job)
	}

	return filtered
}

func containsStatus(statuses []models.JobStatus, status models.JobStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
