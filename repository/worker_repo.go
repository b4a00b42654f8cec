package repository

import (
	"context"
	"fieldops-backend/dal"
	"fieldops-backend/models"
	"fieldops-backend/utils"
	"fieldops-backend/utils/logger"
	"time"
)

type WorkerRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewWorkerRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *WorkerRepository {
	return &WorkerRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *WorkerRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_workers"
}

func (r *WorkerRepository) CreateWorker(ctx context.Context, worker *models.Worker) (*models.Worker, error) {
	r.logger.Infof("Creating worker: %s", worker.Name)

	now := time.Now()
	worker.WorkerID = utils.GenerateUUID()
	worker.CreatedAt = now
	worker.UpdatedAt = now
	if worker.Status == "" {
		worker.Status = models.WorkerStatusActive
	}
	if worker.Skills == nil {
		worker.Skills = []string{}
	}

	err := r.db.PutItem(ctx, r.tableName(), worker)
	if err != nil {
		r.logger.Errorf("Failed to create worker: %v", err)
		return nil, models.NewDependencyFailure("failed to create worker", err)
	}

	r.logger.Infof("Worker created successfully: %s", worker.WorkerID)
	return worker, nil
}

func (r *WorkerRepository) GetWorker(id string) (*models.Worker, error) {
	ctx := context.Background()

	if id == "" {
		return nil, models.NewInvalidInput("worker ID is required")
	}

	worker := models.Worker{}
	config := models.QueryConfig{
		TableName: r.tableName(),
		KeyName:   "workerID",
		KeyValue:  id,
	}

	err := r.db.GetItem(ctx, config, &worker)
	if err != nil {
		r.logger.Errorf("Failed to get worker %s: %v", id, err)
		return nil, models.NewDependencyFailure("failed to get worker", err)
	}

	if worker.WorkerID == "" {
		return nil, models.NewNotFound("worker not found: " + id)
	}

	return &worker, nil
}

func (r *WorkerRepository) GetWorkersByFilter(filter *models.WorkerFilter) ([]*models.Worker, error) {
	ctx := context.Background()

	var workers []*models.Worker
	var err error

	if filter != nil && filter.OrgID != "" {
		err = r.db.QueryByIndex(ctx, r.tableName(), "orgID-index", "orgID", filter.OrgID, &workers)
	} else {
		err = r.db.ScanTable(ctx, r.tableName(), &workers)
	}

	if err != nil {
		r.logger.Errorf("Failed to get workers: %v", err)
		return nil, models.NewDependencyFailure("failed to get workers", err)
	}

	filtered := r.applyAdditionalFilters(workers, filter)

	r.logger.Infof("Found %d workers", len(filtered))
	return filtered, nil
}

// GetWorkersByIDs loads the organization roster once and picks the requested
// ids from it. Missing ids are simply absent from the result; callers decide
// whether that is an error.
func (r *WorkerRepository) GetWorkersByIDs(orgID string, ids []string) ([]*models.Worker, error) {
	if len(ids) == 0 {
		return []*models.Worker{}, nil
	}

	roster, err := r.GetWorkersByFilter(&models.WorkerFilter{OrgID: orgID})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Worker, len(roster))
	for _, w := range roster {
		byID[w.WorkerID] = w
	}

	var workers []*models.Worker
	for _, id := range ids {
		if w, ok := byID[id]; ok {
			workers = append(workers, w)
		}
	}

	return workers, nil
}

// GetWorkerByEmail resolves the login identity through the email index.
func (r *WorkerRepository) GetWorkerByEmail(email string) (*models.Worker, error) {
	ctx := context.Background()

	if email == "" {
		return nil, models.NewInvalidInput("email is required")
	}

	worker := models.Worker{}
	config := models.QueryConfig{
		TableName: r.tableName(),
		IndexName: "email-index",
		KeyName:   "email",
		KeyValue:  email,
	}

	err := r.db.GetItem(ctx, config, &worker)
	if err != nil {
		r.logger.Errorf("Failed to get worker by email: %v", err)
		return nil, models.NewDependencyFailure("failed to get worker by email", err)
	}

	if worker.WorkerID == "" {
		return nil, models.NewNotFound("worker not found for email")
	}

	return &worker, nil
}

func (r *WorkerRepository) UpdateWorker(id string, worker *models.Worker) (*models.Worker, error) {
	ctx := context.Background()
	r.logger.Infof("Updating worker: %s", id)

	if id == "" {
		return nil, models.NewInvalidInput("worker ID is required")
	}

	existing, err := r.GetWorker(id)
	if err != nil {
		return nil, err
	}

	worker.WorkerID = id
	worker.CreatedAt = existing.CreatedAt
	worker.UpdatedAt = time.Now()
	if worker.Skills == nil {
		worker.Skills = []string{}
	}

	err = r.db.PutItem(ctx, r.tableName(), worker)
	if err != nil {
		r.logger.Errorf("Failed to update worker: %v", err)
		return nil, models.NewDependencyFailure("failed to update worker", err)
	}

	r.logger.Infof("Worker updated successfully: %s", id)
	return worker, nil
}

func (r *WorkerRepository) DeleteWorker(id string) error {
	ctx := context.Background()
	r.logger.Infof("Deleting worker: %s", id)

	if id == "" {
		return models.NewInvalidInput("worker ID is required")
	}

	err := r.db.DeleteItem(ctx, r.tableName(), "workerID", id)
	if err != nil {
		r.logger.Errorf("Failed to delete worker: %v", err)
		return models.NewDependencyFailure("failed to delete worker", err)
	}

	return nil
}

func (r *WorkerRepository) applyAdditionalFilters(workers []*models.Worker, filter *models.WorkerFilter) []*models.Worker {
	if filter == nil {
		return workers
	}

	var filtered []*models.Worker
	for _, worker := range workers {
		if filter.Status != "" && worker.Status != filter.Status {
			continue
		}
		if filter.Role != "" && worker.Role != filter.Role {
			continue
		}

		filtered = append(filtered, worker)
	}

	return filtered
}
