package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"fieldops-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// recordingNotifier captures NotifyCrewAssigned calls synchronously
type recordingNotifier struct {
	mu         sync.Mutex
	recipients []string
}

func (n *recordingNotifier) NotifyCrewAssigned(job *models.Job, crew *models.Crew, recipientIDs []string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.recipients = append(n.recipients, recipientIDs...)
}

func (n *recordingNotifier) notified() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.recipients...)
}

type AssignmentServiceTestSuite struct {
	suite.Suite
	svc        *AssignmentService
	jobRepo    *MockJobRepository
	crewRepo   *MockCrewRepository
	workerRepo *MockWorkerRepository
	notifier   *recordingNotifier
	caller     *models.Caller
	ctx        context.Context
}

func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.jobRepo = &MockJobRepository{}
	suite.crewRepo = &MockCrewRepository{}
	suite.workerRepo = &MockWorkerRepository{}
	suite.notifier = &recordingNotifier{}
	availability := NewAvailabilityService(suite.jobRepo, suite.crewRepo, suite.workerRepo, testLogger{})
	suite.svc = NewAssignmentService(suite.jobRepo, suite.crewRepo, suite.workerRepo, availability, suite.notifier, testLogger{})
	suite.caller = &models.Caller{WorkerID: "dispatcher-1", OrgID: "org-1", Role: models.WorkerRoleOffice}
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}

func (suite *AssignmentServiceTestSuite) targetJob(assigned ...string) *models.Job {
	job := activeJob("job-target", "Target job", 9, 12, assigned...)
	if job.AssignedUserIDs == nil {
		job.AssignedUserIDs = []string{}
	}
	return job
}

func activeWorker(id, name string) *models.Worker {
	return &models.Worker{WorkerID: id, OrgID: "org-1", Name: name, Status: models.WorkerStatusActive}
}

// expectUpdateEcho mirrors the repository echoing the stored job back. The
// service mutates the job in place, so returning the same pointer is accurate.
func (suite *AssignmentServiceTestSuite) expectUpdateEcho(job *models.Job) {
	suite.jobRepo.On("UpdateJob", "job-target", mock.Anything).Return(job, nil)
}

func (suite *AssignmentServiceTestSuite) TestAssignCrewUnionsMembership() {
	job := suite.targetJob("w-existing")
	crew := &models.Crew{CrewID: "crew-1", OrgID: "org-1", Name: "Alpha", UserIDs: []string{"w-1", "w-2"}}

	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)
	suite.crewRepo.On("GetCrew", "crew-1").Return(crew, nil)
	suite.workerRepo.On("GetWorkersByIDs", "org-1", []string{"w-1", "w-2"}).Return(
		[]*models.Worker{activeWorker("w-1", "Ana"), activeWorker("w-2", "Bo")}, nil)
	suite.workerRepo.On("GetWorkersByIDs", "org-1", mock.Anything).Return(
		[]*models.Worker{activeWorker("w-1", "Ana"), activeWorker("w-2", "Bo")}, nil)
	suite.jobRepo.On("GetJobsByFilter", mock.Anything).Return([]*models.Job{}, nil)
	suite.expectUpdateEcho(job)

	updated, err := suite.svc.AssignCrew(suite.ctx, suite.caller, "job-target", &models.AssignCrewRequest{CrewID: "crew-1"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"w-existing", "w-1", "w-2"}, updated.AssignedUserIDs)
	assert.Equal(suite.T(), "crew-1", updated.AssignedCrewID)
	assert.ElementsMatch(suite.T(), []string{"w-1", "w-2"}, suite.notifier.notified())
}

func (suite *AssignmentServiceTestSuite) TestAssignCrewSecondCallIsNoOp() {
	job := suite.targetJob()
	crew := &models.Crew{CrewID: "crew-1", OrgID: "org-1", Name: "Alpha", UserIDs: []string{"w-1", "w-2"}}

	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)
	suite.crewRepo.On("GetCrew", "crew-1").Return(crew, nil)
	suite.workerRepo.On("GetWorkersByIDs", "org-1", mock.Anything).Return(
		[]*models.Worker{activeWorker("w-1", "Ana"), activeWorker("w-2", "Bo")}, nil)
	suite.jobRepo.On("GetJobsByFilter", mock.Anything).Return([]*models.Job{}, nil)
	suite.expectUpdateEcho(job)

	first, err := suite.svc.AssignCrew(suite.ctx, suite.caller, "job-target", &models.AssignCrewRequest{CrewID: "crew-1"})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"w-1", "w-2"}, first.AssignedUserIDs)

	second, err := suite.svc.AssignCrew(suite.ctx, suite.caller, "job-target", &models.AssignCrewRequest{CrewID: "crew-1"})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"w-1", "w-2"}, second.AssignedUserIDs)
	assert.Equal(suite.T(), "crew-1", second.AssignedCrewID)

	// no member joined the second time, so no re-check and no re-notify
	suite.jobRepo.AssertNumberOfCalls(suite.T(), "GetJobsByFilter", 1)
	assert.ElementsMatch(suite.T(), []string{"w-1", "w-2"}, suite.notifier.notified())
}

func (suite *AssignmentServiceTestSuite) TestAssignCrewEmptyCrewRejected() {
	job := suite.targetJob()
	crew := &models.Crew{CrewID: "crew-1", OrgID: "org-1", UserIDs: []string{"w-ghost"}}

	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)
	suite.crewRepo.On("GetCrew", "crew-1").Return(crew, nil)
	suite.workerRepo.On("GetWorkersByIDs", "org-1", []string{"w-ghost"}).Return(
		[]*models.Worker{{WorkerID: "w-ghost", OrgID: "org-1", Status: models.WorkerStatusTerminated}}, nil)

	_, err := suite.svc.AssignCrew(suite.ctx, suite.caller, "job-target", &models.AssignCrewRequest{CrewID: "crew-1"})

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), models.ErrKindInvalidState, models.KindOf(err))
	assert.Empty(suite.T(), suite.notifier.notified())
}

func (suite *AssignmentServiceTestSuite) TestAssignCrewConflictRejectedWithOverrideHint() {
	job := suite.targetJob()
	crew := &models.Crew{CrewID: "crew-1", OrgID: "org-1", UserIDs: []string{"w-1"}}

	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)
	suite.crewRepo.On("GetCrew", "crew-1").Return(crew, nil)
	suite.workerRepo.On("GetWorkersByIDs", "org-1", mock.Anything).Return(
		[]*models.Worker{activeWorker("w-1", "Ana")}, nil)
	suite.jobRepo.On("GetJobsByFilter", mock.Anything).Return(
		[]*models.Job{activeJob("job-other", "Other job", 10, 13, "w-1")}, nil)

	_, err := suite.svc.AssignCrew(suite.ctx, suite.caller, "job-target", &models.AssignCrewRequest{CrewID: "crew-1"})

	assert.Error(suite.T(), err)
	var appErr *models.AppError
	assert.True(suite.T(), errors.As(err, &appErr))
	assert.Equal(suite.T(), models.ErrKindSchedulingConflict, appErr.Kind)
	assert.True(suite.T(), appErr.RequiresOverride)
	assert.Len(suite.T(), appErr.Conflicts, 1)
	assert.Equal(suite.T(), "job-other", appErr.Conflicts[0].ConflictingJobID)
}

func (suite *AssignmentServiceTestSuite) TestAssignCrewOverrideBypassesConflicts() {
	job := suite.targetJob()
	crew := &models.Crew{CrewID: "crew-1", OrgID: "org-1", UserIDs: []string{"w-1"}}

	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)
	suite.crewRepo.On("GetCrew", "crew-1").Return(crew, nil)
	suite.workerRepo.On("GetWorkersByIDs", "org-1", mock.Anything).Return(
		[]*models.Worker{activeWorker("w-1", "Ana")}, nil)
	suite.expectUpdateEcho(job)

	updated, err := suite.svc.AssignCrew(suite.ctx, suite.caller, "job-target",
		&models.AssignCrewRequest{CrewID: "crew-1", Override: true})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"w-1"}, updated.AssignedUserIDs)
	suite.jobRepo.AssertNotCalled(suite.T(), "GetJobsByFilter", mock.Anything)
}

func (suite *AssignmentServiceTestSuite) TestAssignCrewFieldRoleForbidden() {
	job := suite.targetJob()
	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)

	fieldCaller := &models.Caller{WorkerID: "w-field", OrgID: "org-1", Role: models.WorkerRoleField}
	_, err := suite.svc.AssignCrew(suite.ctx, fieldCaller, "job-target", &models.AssignCrewRequest{CrewID: "crew-1"})

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), models.ErrKindForbidden, models.KindOf(err))
}

func (suite *AssignmentServiceTestSuite) TestAssignCrewCrossTenantHidden() {
	job := suite.targetJob()
	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)

	otherOrg := &models.Caller{WorkerID: "w-x", OrgID: "org-2", Role: models.WorkerRoleOwner}
	_, err := suite.svc.AssignCrew(suite.ctx, otherOrg, "job-target", &models.AssignCrewRequest{CrewID: "crew-1"})

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), models.ErrKindNotFound, models.KindOf(err), "cross-tenant reads as not found")
}

func (suite *AssignmentServiceTestSuite) TestAssignWorkersAddMode() {
	job := suite.targetJob("w-1")

	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)
	suite.workerRepo.On("GetWorkersByIDs", "org-1", mock.Anything).Return(
		[]*models.Worker{activeWorker("w-1", "Ana"), activeWorker("w-2", "Bo")}, nil)
	suite.jobRepo.On("GetJobsByFilter", mock.Anything).Return([]*models.Job{}, nil)
	suite.expectUpdateEcho(job)

	updated, err := suite.svc.AssignWorkers(suite.ctx, suite.caller, "job-target",
		&models.AssignWorkersRequest{WorkerIDs: []string{"w-1", "w-2"}, Mode: models.AssignModeAdd})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"w-1", "w-2"}, updated.AssignedUserIDs)
}

func (suite *AssignmentServiceTestSuite) TestAssignWorkersReplaceModeClearsStaleCrewLink() {
	job := suite.targetJob("w-1", "w-2")
	job.AssignedCrewID = "crew-1"

	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)
	suite.workerRepo.On("GetWorkersByIDs", "org-1", mock.Anything).Return(
		[]*models.Worker{activeWorker("w-3", "Cal")}, nil)
	suite.jobRepo.On("GetJobsByFilter", mock.Anything).Return([]*models.Job{}, nil)
	suite.crewRepo.On("GetCrew", "crew-1").Return(
		&models.Crew{CrewID: "crew-1", OrgID: "org-1", UserIDs: []string{"w-1", "w-2"}}, nil)
	suite.expectUpdateEcho(job)

	updated, err := suite.svc.AssignWorkers(suite.ctx, suite.caller, "job-target",
		&models.AssignWorkersRequest{WorkerIDs: []string{"w-3"}, Mode: models.AssignModeReplace})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"w-3"}, updated.AssignedUserIDs)
	assert.Empty(suite.T(), updated.AssignedCrewID, "no crew member remains assigned")
}

func (suite *AssignmentServiceTestSuite) TestAssignWorkersUnknownWorkerNamed() {
	job := suite.targetJob()

	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)
	suite.workerRepo.On("GetWorkersByIDs", "org-1", mock.Anything).Return(
		[]*models.Worker{activeWorker("w-1", "Ana")}, nil)

	_, err := suite.svc.AssignWorkers(suite.ctx, suite.caller, "job-target",
		&models.AssignWorkersRequest{WorkerIDs: []string{"w-1", "w-missing"}, Mode: models.AssignModeAdd})

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), models.ErrKindNotFound, models.KindOf(err))
	assert.Contains(suite.T(), err.Error(), "w-missing")
}

func (suite *AssignmentServiceTestSuite) TestAssignWorkersInactiveWorkerRejected() {
	job := suite.targetJob()

	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)
	suite.workerRepo.On("GetWorkersByIDs", "org-1", mock.Anything).Return(
		[]*models.Worker{{WorkerID: "w-1", OrgID: "org-1", Name: "Ana", Status: models.WorkerStatusInactive}}, nil)

	_, err := suite.svc.AssignWorkers(suite.ctx, suite.caller, "job-target",
		&models.AssignWorkersRequest{WorkerIDs: []string{"w-1"}, Mode: models.AssignModeAdd})

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), models.ErrKindInvalidState, models.KindOf(err))
}

func (suite *AssignmentServiceTestSuite) TestAssignWorkersOnlyNewOnesConflictChecked() {
	job := suite.targetJob("w-1")

	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)
	suite.workerRepo.On("GetWorkersByIDs", "org-1", mock.Anything).Return(
		[]*models.Worker{activeWorker("w-1", "Ana")}, nil)
	suite.expectUpdateEcho(job)

	// w-1 is already on the job; no conflict query should happen
	updated, err := suite.svc.AssignWorkers(suite.ctx, suite.caller, "job-target",
		&models.AssignWorkersRequest{WorkerIDs: []string{"w-1"}, Mode: models.AssignModeAdd})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"w-1"}, updated.AssignedUserIDs)
	suite.jobRepo.AssertNotCalled(suite.T(), "GetJobsByFilter", mock.Anything)
}

func (suite *AssignmentServiceTestSuite) TestUnassignAll() {
	job := suite.targetJob("w-1", "w-2")
	job.AssignedCrewID = "crew-1"

	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)
	suite.expectUpdateEcho(job)

	updated, err := suite.svc.Unassign(suite.ctx, suite.caller, "job-target",
		&models.UnassignRequest{Type: models.UnassignAll})

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), updated.AssignedUserIDs)
	assert.Empty(suite.T(), updated.AssignedCrewID)
}

func (suite *AssignmentServiceTestSuite) TestUnassignCrewKeepsIndividuals() {
	job := suite.targetJob("w-1", "w-2", "w-solo")
	job.AssignedCrewID = "crew-1"
	crew := &models.Crew{CrewID: "crew-1", OrgID: "org-1", UserIDs: []string{"w-1", "w-2"}}

	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)
	suite.crewRepo.On("GetCrew", "crew-1").Return(crew, nil)
	suite.workerRepo.On("GetWorkersByIDs", "org-1", []string{"w-1", "w-2"}).Return(
		[]*models.Worker{activeWorker("w-1", "Ana"), activeWorker("w-2", "Bo")}, nil)
	suite.expectUpdateEcho(job)

	updated, err := suite.svc.Unassign(suite.ctx, suite.caller, "job-target",
		&models.UnassignRequest{Type: models.UnassignCrew})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"w-solo"}, updated.AssignedUserIDs)
	assert.Empty(suite.T(), updated.AssignedCrewID)
}

func (suite *AssignmentServiceTestSuite) TestUnassignCrewWithoutCrewInvalid() {
	job := suite.targetJob("w-1")
	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)

	_, err := suite.svc.Unassign(suite.ctx, suite.caller, "job-target",
		&models.UnassignRequest{Type: models.UnassignCrew})

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), models.ErrKindInvalidState, models.KindOf(err))
}

func (suite *AssignmentServiceTestSuite) TestUnassignUsersClearsCrewWhenLastMemberLeaves() {
	job := suite.targetJob("w-1", "w-solo")
	job.AssignedCrewID = "crew-1"
	crew := &models.Crew{CrewID: "crew-1", OrgID: "org-1", UserIDs: []string{"w-1", "w-2"}}

	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)
	suite.crewRepo.On("GetCrew", "crew-1").Return(crew, nil)
	suite.expectUpdateEcho(job)

	updated, err := suite.svc.Unassign(suite.ctx, suite.caller, "job-target",
		&models.UnassignRequest{Type: models.UnassignUsers, WorkerIDs: []string{"w-1"}})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"w-solo"}, updated.AssignedUserIDs)
	assert.Empty(suite.T(), updated.AssignedCrewID)
}

func (suite *AssignmentServiceTestSuite) TestOverrideRequiresReason() {
	_, err := suite.svc.Override(suite.ctx, suite.caller, "job-target",
		&models.OverrideRequest{Reason: "   "})

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), models.ErrKindInvalidInput, models.KindOf(err))
	suite.jobRepo.AssertNotCalled(suite.T(), "GetJob", mock.Anything)
}

func (suite *AssignmentServiceTestSuite) TestOverrideRecordsAuditAndAddsWorkerWithoutConflictCheck() {
	job := suite.targetJob()

	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)
	suite.workerRepo.On("GetWorkersByIDs", "org-1", []string{"w-1"}).Return(
		[]*models.Worker{activeWorker("w-1", "Ana")}, nil)
	suite.expectUpdateEcho(job)

	updated, err := suite.svc.Override(suite.ctx, suite.caller, "job-target",
		&models.OverrideRequest{Reason: "client insisted", AddWorkerID: "w-1"})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), updated.AllowUnqualified)
	assert.NotNil(suite.T(), updated.UnqualifiedOverride)
	assert.Equal(suite.T(), "dispatcher-1", updated.UnqualifiedOverride.By)
	assert.Equal(suite.T(), "client insisted", updated.UnqualifiedOverride.Reason)
	assert.Equal(suite.T(), []string{"w-1"}, updated.AssignedUserIDs)
	suite.jobRepo.AssertNotCalled(suite.T(), "GetJobsByFilter", mock.Anything)
}

func (suite *AssignmentServiceTestSuite) TestClearOverrideIdempotent() {
	job := suite.targetJob()
	suite.jobRepo.On("GetJob", "job-target").Return(job, nil)

	cleared, err := suite.svc.ClearOverride(suite.ctx, suite.caller, "job-target")

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), cleared.AllowUnqualified)
	suite.jobRepo.AssertNotCalled(suite.T(), "UpdateJob", mock.Anything, mock.Anything)
}
