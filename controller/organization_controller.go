package controller

import (
	"context"
	"net/http"

	"fieldops-backend/models"
	"fieldops-backend/services"
	"fieldops-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type OrganizationController struct {
	ctx                 context.Context
	organizationService services.OrganizationServiceInterface
	logger              logger.Logger
	validator           *validator.Validate
}

func NewOrganizationController(ctx context.Context, organizationService services.OrganizationServiceInterface, log logger.Logger) *OrganizationController {
	return &OrganizationController{
		ctx:                 ctx,
		organizationService: organizationService,
		logger:              log,
		validator:           validator.New(),
	}
}

// CreateOrganization handles POST /api/v1/organizations
// @Summary Create a new organization
// @Tags Organization Management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateOrganizationRequest true "Create organization request"
// @Success 201 {object} models.APIResponse "Organization created successfully"
// @Router /organizations [post]
func (h *OrganizationController) CreateOrganization(c *gin.Context) {
	var req models.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		respondBadRequest(c, formatValidationErrors(err))
		return
	}

	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	if caller.Role != models.WorkerRoleOwner {
		respondError(c, models.NewForbidden("only owners may create organizations"))
		return
	}

	organization, err := h.organizationService.CreateOrganization(h.ctx, &req, caller.WorkerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Organization created successfully", organization)
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get an organization by ID
// @Tags Organization Management
// @Security BearerAuth
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} models.APIResponse "Organization retrieved successfully"
// @Router /organizations/{id} [get]
func (h *OrganizationController) GetOrganization(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	if c.Param("id") != caller.OrgID {
		respondError(c, models.NewNotFound("organization not found: "+c.Param("id")))
		return
	}

	organization, err := h.organizationService.GetOrganization(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Organization retrieved successfully", organization)
}
