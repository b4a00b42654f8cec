package services

import (
	"context"
	"testing"
	"time"

	"fieldops-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JobServiceTestSuite struct {
	suite.Suite
	svc     *JobService
	jobRepo *MockJobRepository
	caller  *models.Caller
	ctx     context.Context
}

func (suite *JobServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.jobRepo = &MockJobRepository{}
	suite.svc = NewJobService(suite.jobRepo, testLogger{})
	suite.caller = &models.Caller{WorkerID: "dispatcher-1", OrgID: "org-1", Role: models.WorkerRoleOffice}
}

func TestJobServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JobServiceTestSuite))
}

func TestStatusTransitionMatrix(t *testing.T) {
	cases := []struct {
		from    models.JobStatus
		to      models.JobStatus
		allowed bool
	}{
		{models.JobStatusScheduled, models.JobStatusInProgress, true},
		{models.JobStatusScheduled, models.JobStatusCancelled, true},
		{models.JobStatusScheduled, models.JobStatusOnHold, true},
		{models.JobStatusScheduled, models.JobStatusCompleted, false},
		{models.JobStatusInProgress, models.JobStatusCompleted, true},
		{models.JobStatusInProgress, models.JobStatusCancelled, true},
		{models.JobStatusInProgress, models.JobStatusOnHold, true},
		{models.JobStatusInProgress, models.JobStatusScheduled, false},
		{models.JobStatusOnHold, models.JobStatusScheduled, true},
		{models.JobStatusOnHold, models.JobStatusCancelled, true},
		{models.JobStatusOnHold, models.JobStatusInProgress, false},
		{models.JobStatusCompleted, models.JobStatusScheduled, false},
		{models.JobStatusCompleted, models.JobStatusInProgress, false},
		{models.JobStatusCancelled, models.JobStatusScheduled, false},
	}
	for _, tc := range cases {
		got := isValidTransition(tc.from, tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func (suite *JobServiceTestSuite) TestUpdateJobStatusPersistsValidTransition() {
	job := activeJob("job-1", "Lawn care", 9, 12)
	suite.jobRepo.On("GetJob", "job-1").Return(job, nil)
	suite.jobRepo.On("UpdateJob", "job-1", mock.Anything).Return(job, nil)

	updated, err := suite.svc.UpdateJobStatus(suite.ctx, suite.caller, "job-1", models.JobStatusInProgress)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.JobStatusInProgress, updated.JobStatus)
	assert.Equal(suite.T(), "dispatcher-1", updated.UpdatedBy)
}

func (suite *JobServiceTestSuite) TestUpdateJobStatusRejectsInvalidTransition() {
	job := activeJob("job-1", "Lawn care", 9, 12)
	job.JobStatus = models.JobStatusCompleted
	suite.jobRepo.On("GetJob", "job-1").Return(job, nil)

	_, err := suite.svc.UpdateJobStatus(suite.ctx, suite.caller, "job-1", models.JobStatusScheduled)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), models.ErrKindInvalidState, models.KindOf(err))
	suite.jobRepo.AssertNotCalled(suite.T(), "UpdateJob", mock.Anything, mock.Anything)
}

func (suite *JobServiceTestSuite) TestUpdateJobStatusSameStatusNoOp() {
	job := activeJob("job-1", "Lawn care", 9, 12)
	suite.jobRepo.On("GetJob", "job-1").Return(job, nil)

	updated, err := suite.svc.UpdateJobStatus(suite.ctx, suite.caller, "job-1", models.JobStatusScheduled)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.JobStatusScheduled, updated.JobStatus)
	suite.jobRepo.AssertNotCalled(suite.T(), "UpdateJob", mock.Anything, mock.Anything)
}

func (suite *JobServiceTestSuite) TestCreateJobRejectsInvertedWindow() {
	w := hourWindow(12, 9)
	_, err := suite.svc.CreateJob(suite.ctx, &models.CreateJobRequest{
		OrgID:     "org-1",
		ClientID:  "client-1",
		Title:     "Backwards",
		JobType:   models.JobTypeService,
		StartTime: w.Start,
		EndTime:   w.End,
	}, "dispatcher-1")

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), models.ErrKindInvalidInput, models.KindOf(err))
}

func (suite *JobServiceTestSuite) TestCreateJobRecurringRequiresFrequency() {
	w := hourWindow(9, 12)
	_, err := suite.svc.CreateJob(suite.ctx, &models.CreateJobRequest{
		OrgID:       "org-1",
		ClientID:    "client-1",
		Title:       "Weekly mow",
		JobType:     models.JobTypeService,
		StartTime:   w.Start,
		EndTime:     w.End,
		IsRecurring: true,
	}, "dispatcher-1")

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), models.ErrKindInvalidInput, models.KindOf(err))
}

func (suite *JobServiceTestSuite) TestCreateJobDefaultsToScheduled() {
	w := hourWindow(9, 12)
	var created *models.Job
	suite.jobRepo.On("CreateJob", mock.Anything, mock.Anything).Return(
		&models.Job{JobID: "job-new"}, nil).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.Job)
	})

	_, err := suite.svc.CreateJob(suite.ctx, &models.CreateJobRequest{
		OrgID:     "org-1",
		ClientID:  "client-1",
		Title:     "Lawn care",
		JobType:   models.JobTypeService,
		StartTime: w.Start,
		EndTime:   w.End,
	}, "dispatcher-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.JobStatusScheduled, created.JobStatus)
	assert.Equal(suite.T(), "dispatcher-1", created.CreatedBy)
}

func (suite *JobServiceTestSuite) TestUpdateJobRejectsWindowInversion() {
	job := activeJob("job-1", "Lawn care", 9, 12)
	suite.jobRepo.On("GetJob", "job-1").Return(job, nil)

	badEnd := job.StartTime.Add(-time.Hour)
	_, err := suite.svc.UpdateJob(suite.ctx, suite.caller, "job-1", &models.UpdateJobRequest{EndTime: &badEnd})

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), models.ErrKindInvalidInput, models.KindOf(err))
}

func (suite *JobServiceTestSuite) TestFieldRoleMayNotModifyJobs() {
	job := activeJob("job-1", "Lawn care", 9, 12)
	suite.jobRepo.On("GetJob", "job-1").Return(job, nil)

	fieldCaller := &models.Caller{WorkerID: "w-field", OrgID: "org-1", Role: models.WorkerRoleField}
	err := suite.svc.DeleteJob(fieldCaller, "job-1")

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), models.ErrKindForbidden, models.KindOf(err))
	suite.jobRepo.AssertNotCalled(suite.T(), "DeleteJob", mock.Anything)
}
