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

type AssignmentController struct {
	ctx               context.Context
	assignmentService services.AssignmentServiceInterface
	logger            logger.Logger
	validator         *validator.Validate
}

func NewAssignmentController(ctx context.Context, assignmentService services.AssignmentServiceInterface, log logger.Logger) *AssignmentController {
	return &AssignmentController{
		ctx:               ctx,
		assignmentService: assignmentService,
		logger:            log,
		validator:         validator.New(),
	}
}

// AssignCrew handles POST /api/v1/jobs/:id/assign-crew
// @Summary Assign a crew to a job
// @Description Materializes the crew's active membership onto the job. Rejected with 409 when joining members have overlapping active jobs, unless override is set.
// @Tags Assignment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body models.AssignCrewRequest true "Assign crew request"
// @Success 200 {object} models.APIResponse "Crew assigned successfully"
// @Failure 409 {object} models.APIResponse "Scheduling conflict"
// @Failure 422 {object} models.APIResponse "Crew has no active members"
// @Router /jobs/{id}/assign-crew [post]
func (h *AssignmentController) AssignCrew(c *gin.Context) {
	var req models.AssignCrewRequest
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

	job, err := h.assignmentService.AssignCrew(h.ctx, caller, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Crew assigned successfully", job)
}

// AssignWorkers handles POST /api/v1/jobs/:id/assign-workers
// @Summary Assign individual workers to a job
// @Tags Assignment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body models.AssignWorkersRequest true "Assign workers request"
// @Success 200 {object} models.APIResponse "Workers assigned successfully"
// @Failure 409 {object} models.APIResponse "Scheduling conflict"
// @Router /jobs/{id}/assign-workers [post]
func (h *AssignmentController) AssignWorkers(c *gin.Context) {
	var req models.AssignWorkersRequest
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

	job, err := h.assignmentService.AssignWorkers(h.ctx, caller, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Workers assigned successfully", job)
}

// Unassign handles POST /api/v1/jobs/:id/unassign
// @Summary Remove workers from a job
// @Tags Assignment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body models.UnassignRequest true "Unassign request"
// @Success 200 {object} models.APIResponse "Workers unassigned successfully"
// @Router /jobs/{id}/unassign [post]
func (h *AssignmentController) Unassign(c *gin.Context) {
	var req models.UnassignRequest
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

	job, err := h.assignmentService.Unassign(h.ctx, caller, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Workers unassigned successfully", job)
}

// Override handles POST /api/v1/jobs/:id/override
// @Summary Record an audited qualification override
// @Description Marks the job as allowed to proceed with unqualified workers, recording who, when and why. Optionally adds one worker in the same step.
// @Tags Assignment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body models.OverrideRequest true "Override request"
// @Success 200 {object} models.APIResponse "Override recorded successfully"
// @Failure 400 {object} models.APIResponse "Override reason is required"
// @Router /jobs/{id}/override [post]
func (h *AssignmentController) Override(c *gin.Context) {
	var req models.OverrideRequest
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

	job, err := h.assignmentService.Override(h.ctx, caller, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Override recorded successfully", job)
}

// ClearOverride handles DELETE /api/v1/jobs/:id/override
// @Summary Clear a qualification override
// @Tags Assignment
// @Security BearerAuth
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} models.APIResponse "Override cleared"
// @Router /jobs/{id}/override [delete]
func (h *AssignmentController) ClearOverride(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	job, err := h.assignmentService.ClearOverride(h.ctx, caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Override cleared", job)
}
