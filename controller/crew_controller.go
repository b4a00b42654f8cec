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

type CrewController struct {
	ctx         context.Context
	crewService services.CrewServiceInterface
	logger      logger.Logger
	validator   *validator.Validate
}

func NewCrewController(ctx context.Context, crewService services.CrewServiceInterface, log logger.Logger) *CrewController {
	return &CrewController{
		ctx:         ctx,
		crewService: crewService,
		logger:      log,
		validator:   validator.New(),
	}
}

// CreateCrew handles POST /api/v1/crews
// @Summary Create a new crew
// @Tags Crew Management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateCrewRequest true "Create crew request"
// @Success 201 {object} models.APIResponse "Crew created successfully"
// @Router /crews [post]
func (h *CrewController) CreateCrew(c *gin.Context) {
	var req models.CreateCrewRequest
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
	if req.OrgID != caller.OrgID {
		respondError(c, models.NewForbidden("cannot create crews for another organization"))
		return
	}

	crew, err := h.crewService.CreateCrew(h.ctx, &req, caller.WorkerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Crew created successfully", crew)
}

// GetCrew handles GET /api/v1/crews/:id
// @Summary Get a crew by ID
// @Tags Crew Management
// @Security BearerAuth
// @Produce json
// @Param id path string true "Crew ID"
// @Success 200 {object} models.APIResponse "Crew retrieved successfully"
// @Router /crews/{id} [get]
func (h *CrewController) GetCrew(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	crew, err := h.crewService.GetCrew(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if crew.OrgID != caller.OrgID {
		respondError(c, models.NewNotFound("crew not found: "+c.Param("id")))
		return
	}

	respondSuccess(c, http.StatusOK, "Crew retrieved successfully", crew)
}

// GetCrews handles GET /api/v1/crews
// @Summary List crews with optional filtering
// @Tags Crew Management
// @Security BearerAuth
// @Produce json
// @Param leaderID query string false "Filter by crew leader"
// @Param memberID query string false "Filter by member"
// @Param isActive query bool false "Filter by active flag"
// @Success 200 {object} models.APIResponse "Crews retrieved successfully"
// @Router /crews [get]
func (h *CrewController) GetCrews(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	filter := &models.CrewFilter{
		OrgID:    caller.OrgID,
		LeaderID: c.Query("leaderID"),
		MemberID: c.Query("memberID"),
	}
	if isActive := c.Query("isActive"); isActive != "" {
		active := isActive == "true"
		filter.IsActive = &active
	}

	crews, err := h.crewService.GetCrews(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Crews retrieved successfully", crews)
}

// UpdateCrew handles PATCH /api/v1/crews/:id
// @Summary Update crew details or membership
// @Tags Crew Management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Crew ID"
// @Param request body models.UpdateCrewRequest true "Update crew request"
// @Success 200 {object} models.APIResponse "Crew updated successfully"
// @Router /crews/{id} [patch]
func (h *CrewController) UpdateCrew(c *gin.Context) {
	var req models.UpdateCrewRequest
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

	existing, err := h.crewService.GetCrew(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if existing.OrgID != caller.OrgID {
		respondError(c, models.NewNotFound("crew not found: "+c.Param("id")))
		return
	}

	crew, err := h.crewService.UpdateCrew(h.ctx, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Crew updated successfully", crew)
}

// DeleteCrew handles DELETE /api/v1/crews/:id
// @Summary Delete a crew
// @Tags Crew Management
// @Security BearerAuth
// @Produce json
// @Param id path string true "Crew ID"
// @Success 200 {object} models.APIResponse "Crew deleted successfully"
// @Router /crews/{id} [delete]
func (h *CrewController) DeleteCrew(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	existing, err := h.crewService.GetCrew(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if existing.OrgID != caller.OrgID {
		respondError(c, models.NewNotFound("crew not found: "+c.Param("id")))
		return
	}

	if err := h.crewService.DeleteCrew(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Crew deleted successfully", nil)
}
