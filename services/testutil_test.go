package services

import (
	"context"

	"fieldops-backend/models"
	"fieldops-backend/utils/logger"

	"github.com/stretchr/testify/mock"
)

// MockJobRepository implements JobRepositoryInterface for testing
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) GetJob(id string) (*models.Job, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) GetJobsByFilter(filter *models.JobFilter) ([]*models.Job, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Job), args.Error(1)
}

func (m *MockJobRepository) GetChildJobs(parentJobID string) ([]*models.Job, error) {
	args := m.Called(parentJobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateJob(id string, job *models.Job) (*models.Job, error) {
	args := m.Called(id, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) DeleteJob(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCrewRepository implements CrewRepositoryInterface for testing
type MockCrewRepository struct {
	mock.Mock
}

func (m *MockCrewRepository) CreateCrew(ctx context.Context, crew *models.Crew) (*models.Crew, error) {
	args := m.Called(ctx, crew)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Crew), args.Error(1)
}

func (m *MockCrewRepository) GetCrew(id string) (*models.Crew, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Crew), args.Error(1)
}

func (m *MockCrewRepository) GetCrewsByFilter(filter *models.CrewFilter) ([]*models.Crew, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Crew), args.Error(1)
}

func (m *MockCrewRepository) UpdateCrew(id string, crew *models.Crew) (*models.Crew, error) {
	args := m.Called(id, crew)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Crew), args.Error(1)
}

func (m *MockCrewRepository) DeleteCrew(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockWorkerRepository implements WorkerRepositoryInterface for testing
type MockWorkerRepository struct {
	mock.Mock
}

func (m *MockWorkerRepository) CreateWorker(ctx context.Context, worker *models.Worker) (*models.Worker, error) {
	args := m.Called(ctx, worker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetWorker(id string) (*models.Worker, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetWorkersByFilter(filter *models.WorkerFilter) ([]*models.Worker, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetWorkerByEmail(email string) (*models.Worker, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetWorkersByIDs(orgID string, ids []string) ([]*models.Worker, error) {
	args := m.Called(orgID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Worker), args.Error(1)
}

func (m *MockWorkerRepository) UpdateWorker(id string, worker *models.Worker) (*models.Worker, error) {
	args := m.Called(id, worker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Worker), args.Error(1)
}

func (m *MockWorkerRepository) DeleteWorker(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockOrganizationRepository implements OrganizationRepositoryInterface for testing
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) CreateOrganization(ctx context.Context, organization *models.Organization) (*models.Organization, error) {
	args := m.Called(ctx, organization)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) GetOrganization(id string) (*models.Organization, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) GetOrganizations() ([]*models.Organization, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) UpdateOrganization(id string, organization *models.Organization) (*models.Organization, error) {
	args := m.Called(id, organization)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) DeleteOrganization(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockNotificationRepository implements NotificationRepositoryInterface for testing
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

// testLogger is a no-op logger for tests
type testLogger struct{}

func (testLogger) Debug(args ...interface{})                 {}
func (testLogger) Debugf(format string, args ...interface{}) {}
func (testLogger) Info(args ...interface{})                  {}
func (testLogger) Infof(format string, args ...interface{})  {}
func (testLogger) Warn(args ...interface{})                  {}
func (testLogger) Warnf(format string, args ...interface{})  {}
func (testLogger) Error(args ...interface{})                 {}
func (testLogger) Errorf(format string, args ...interface{}) {}
func (testLogger) Fatal(args ...interface{})                 {}
func (testLogger) Fatalf(format string, args ...interface{}) {}
func (l testLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return l
}
