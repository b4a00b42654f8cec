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

type AvailabilityController struct {
	ctx                 context.Context
	availabilityService services.AvailabilityServiceInterface
	logger              logger.Logger
	validator           *validator.Validate
}

func NewAvailabilityController(ctx context.Context, availabilityService services.AvailabilityServiceInterface, log logger.Logger) *AvailabilityController {
	return &AvailabilityController{
		ctx:                 ctx,
		availabilityService: availabilityService,
		logger:              log,
		validator:           validator.New(),
	}
}

// CheckCrew handles POST /api/v1/availability/crew
// @Summary Check whether a crew is free for a time window
// @Description Resolves the crew's active membership and reports every overlap with active jobs. A crew with no active members is reported available.
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CrewAvailabilityRequest true "Crew availability request"
// @Success 200 {object} models.APIResponse "Availability result"
// @Router /availability/crew [post]
func (h *AvailabilityController) CheckCrew(c *gin.Context) {
	var req models.CrewAvailabilityRequest
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

	result, err := h.availabilityService.CheckCrew(h.ctx, caller.OrgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Availability checked", result)
}

// CheckWorkers handles POST /api/v1/availability/workers
// @Summary Check whether workers are free for a time window
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.WorkerAvailabilityRequest true "Worker availability request"
// @Success 200 {object} models.APIResponse "Availability result"
// @Router /availability/workers [post]
func (h *AvailabilityController) CheckWorkers(c *gin.Context) {
	var req models.WorkerAvailabilityRequest
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

	result, err := h.availabilityService.CheckWorkers(h.ctx, caller.OrgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Availability checked", result)
}
