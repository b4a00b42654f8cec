package repository

import (
	"context"
	"fieldops-backend/dal"
	"fieldops-backend/models"
	"fieldops-backend/utils"
	"fieldops-backend/utils/logger"
	"time"
)

type OrganizationRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewOrganizationRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *OrganizationRepository {
	return &OrganizationRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *OrganizationRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_organizations"
}

func (r *OrganizationRepository) CreateOrganization(ctx context.Context, organization *models.Organization) (*models.Organization, error) {
	r.logger.Infof("Creating organization: %s", organization.Name)

	now := time.Now()
	organization.ID = utils.GenerateUUID()
	organization.CreatedAt = now
	organization.UpdatedAt = now
	if organization.Status == "" {
		organization.Status = models.OrganizationStatusActive
	}

	err := r.db.PutItem(ctx, r.tableName(), organization)
	if err != nil {
		r.logger.Errorf("Failed to create organization: %v", err)
		return nil, models.NewDependencyFailure("failed to create organization", err)
	}

	r.logger.Infof("Organization created successfully: %s", organization.ID)
	return organization, nil
}

func (r *OrganizationRepository) GetOrganization(id string) (*models.Organization, error) {
	ctx := context.Background()

	if id == "" {
		return nil, models.NewInvalidInput("organization ID is required")
	}

	organization := models.Organization{}
	config := models.QueryConfig{
		TableName: r.tableName(),
		KeyName:   "id",
		KeyValue:  id,
	}

	err := r.db.GetItem(ctx, config, &organization)
	if err != nil {
		r.logger.Errorf("Failed to get organization %s: %v", id, err)
		return nil, models.NewDependencyFailure("failed to get organization", err)
	}

	if organization.ID == "" {
		return nil, models.NewNotFound("organization not found: " + id)
	}

	return &organization, nil
}

func (r *OrganizationRepository) GetOrganizations() ([]*models.Organization, error) {
	ctx := context.Background()

	var organizations []*models.Organization
	err := r.db.ScanTable(ctx, r.tableName(), &organizations)
	if err != nil {
		r.logger.Errorf("Failed to list organizations: %v", err)
		return nil, models.NewDependencyFailure("failed to list organizations", err)
	}

	return organizations, nil
}

func (r *OrganizationRepository) UpdateOrganization(id string, organization *models.Organization) (*models.Organization, error) {
	ctx := context.Background()
	r.logger.Infof("Updating organization: %s", id)

	if id == "" {
		return nil, models.NewInvalidInput("organization ID is required")
	}

	existing, err := r.GetOrganization(id)
	if err != nil {
		return nil, err
	}

	organization.ID = id
	organization.CreatedAt = existing.CreatedAt
	organization.UpdatedAt = time.Now()

	err = r.db.PutItem(ctx, r.tableName(), organization)
	if err != nil {
		r.logger.Errorf("Failed to update organization: %v", err)
		return nil, models.NewDependencyFailure("failed to update organization", err)
	}

	return organization, nil
}

func (r *OrganizationRepository) DeleteOrganization(id string) error {
	ctx := context.Background()
	r.logger.Infof("Deleting organization: %s", id)

	if id == "" {
		return models.NewInvalidInput("organization ID is required")
	}

	err := r.db.DeleteItem(ctx, r.tableName(), "id", id)
	if err != nil {
		r.logger.Errorf("Failed to delete organization: %v", err)
		return models.NewDependencyFailure("failed to delete organization", err)
	}

	return nil
}
