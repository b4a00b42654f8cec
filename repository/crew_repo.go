package repository

import (
	"context"
	"fieldops-backend/dal"
	"fieldops-backend/models"
	"fieldops-backend/utils"
	"fieldops-backend/utils/logger"
	"time"
)

type CrewRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewCrewRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *CrewRepository {
	return &CrewRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *CrewRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_crews"
}

func (r *CrewRepository) CreateCrew(ctx context.Context, crew *models.Crew) (*models.Crew, error) {
	r.logger.Infof("Creating crew: %s", crew.Name)

	now := time.Now()
	crew.CrewID = utils.GenerateUUID()
	crew.CreatedAt = now
	crew.UpdatedAt = now
	crew.IsActive = true
	if crew.UserIDs == nil {
		crew.UserIDs = []string{}
	}
	if crew.Skills == nil {
		crew.Skills = []string{}
	}

	err := r.db.PutItem(ctx, r.tableName(), crew)
	if err != nil {
		r.logger.Errorf("Failed to create crew: %v", err)
		return nil, models.NewDependencyFailure("failed to create crew", err)
	}

	r.logger.Infof("Crew created successfully: %s", crew.CrewID)
	return crew, nil
}

func (r *CrewRepository) GetCrew(id string) (*models.Crew, error) {
	ctx := context.Background()

	if id == "" {
		return nil, models.NewInvalidInput("crew ID is required")
	}

	crew := models.Crew{}
	config := models.QueryConfig{
		TableName: r.tableName(),
		KeyName:   "crewID",
		KeyValue:  id,
	}

	err := r.db.GetItem(ctx, config, &crew)
	if err != nil {
		r.logger.Errorf("Failed to get crew %s: %v", id, err)
		return nil, models.NewDependencyFailure("failed to get crew", err)
	}

	if crew.CrewID == "" {
		return nil, models.NewNotFound("crew not found: " + id)
	}

	return &crew, nil
}

func (r *CrewRepository) GetCrewsByFilter(filter *models.CrewFilter) ([]*models.Crew, error) {
	ctx := context.Background()

	var crews []*models.Crew
	var err error

	if filter != nil && filter.OrgID != "" {
		err = r.db.QueryByIndex(ctx, r.tableName(), "orgID-index", "orgID", filter.OrgID, &crews)
	} else {
		err = r.db.ScanTable(ctx, r.tableName(), &crews)
	}

	if err != nil {
		r.logger.Errorf("Failed to get crews: %v", err)
		return nil, models.NewDependencyFailure("failed to get crews", err)
	}

	filtered := r.applyAdditionalFilters(crews, filter)

	r.logger.Infof("Found %d crews", len(filtered))
	return filtered, nil
}

func (r *CrewRepository) UpdateCrew(id string, crew *models.Crew) (*models.Crew, error) {
	ctx := context.Background()
	r.logger.Infof("Updating crew: %s", id)

	if id == "" {
		return nil, models.NewInvalidInput("crew ID is required")
	}

	existing, err := r.GetCrew(id)
	if err != nil {
		return nil, err
	}

	crew.CrewID = id
	crew.CreatedAt = existing.CreatedAt
	crew.UpdatedAt = time.Now()
	if crew.UserIDs == nil {
		crew.UserIDs = []string{}
	}
	if crew.Skills == nil {
		crew.Skills = []string{}
	}

	err = r.db.PutItem(ctx, r.tableName(), crew)
	if err != nil {
		r.logger.Errorf("Failed to update crew: %v", err)
		return nil, models.NewDependencyFailure("failed to update crew", err)
	}

	r.logger.Infof("Crew updated successfully: %s", id)
	return crew, nil
}

func (r *CrewRepository) DeleteCrew(id string) error {
	ctx := context.Background()
	r.logger.Infof("Deleting crew: %s", id)

	if id == "" {
		return models.NewInvalidInput("crew ID is required")
	}

	err := r.db.DeleteItem(ctx, r.tableName(), "crewID", id)
	if err != nil {
		r.logger.Errorf("Failed to delete crew: %v", err)
		return models.NewDependencyFailure("failed to delete crew", err)
	}

	return nil
}

func (r *CrewRepository) applyAdditionalFilters(crews []*models.Crew, filter *models.CrewFilter) []*models.Crew {
	if filter == nil {
		return crews
	}

	var filtered []*models.Crew
	for _, crew := range crews {
		if filter.LeaderID != "" && crew.LeaderID != filter.LeaderID {
			continue
		}
		if filter.IsActive != nil && crew.IsActive != *filter.IsActive {
			continue
		}
		if filter.MemberID != "" && !crew.HasMember(filter.MemberID) {
			continue
		}

		filtered = append(filtered, crew)
	}

	return filtered
}
