package services

import (
	"context"

	"fieldops-backend/models"
	"fieldops-backend/repository"
	"fieldops-backend/utils/logger"
)

type OrganizationService struct {
	orgRepo repository.OrganizationRepositoryInterface
	logger  logger.Logger
}

func NewOrganizationService(orgRepo repository.OrganizationRepositoryInterface, log logger.Logger) *OrganizationService {
	return &OrganizationService{
		orgRepo: orgRepo,
		logger:  log,
	}
}

func (s *OrganizationService) CreateOrganization(ctx context.Context, req *models.CreateOrganizationRequest, createdBy string) (*models.Organization, error) {
	if req == nil {
		return nil, models.NewInvalidInput("organization request is required")
	}

	organization := &models.Organization{
		Name:      req.Name,
		Status:    models.OrganizationStatusActive,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		CreatedBy: createdBy,
	}

	return s.orgRepo.CreateOrganization(ctx, organization)
}

func (s *OrganizationService) GetOrganization(id string) (*models.Organization, error) {
	return s.orgRepo.GetOrganization(id)
}

func (s *OrganizationService) GetOrganizations() ([]*models.Organization, error) {
	return s.orgRepo.GetOrganizations()
}

func (s *OrganizationService) GetActiveOrganizations() ([]*models.Organization, error) {
	organizations, err := s.orgRepo.GetOrganizations()
	if err != nil {
		return nil, err
	}

	active := make([]*models.Organization, 0, len(organizations))
	for _, org := range organizations {
		if org.Status == models.OrganizationStatusActive {
			active = append(active, org)
		}
	}
	return active, nil
}
