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

type WorkerController struct {
	ctx           context.Context
	workerService services.WorkerServiceInterface
	logger        logger.Logger
	validator     *validator.Validate
}

func NewWorkerController(ctx context.Context, workerService services.WorkerServiceInterface, log logger.Logger) *WorkerController {
	return &WorkerController{
		ctx:           ctx,
		workerService: workerService,
		logger:        log,
		validator:     validator.New(),
	}
}

// CreateWorker handles POST /api/v1/workers
// @Summary Add a worker to the roster
// @Tags Worker Management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateWorkerRequest true "Create worker request"
// @Success 201 {object} models.APIResponse "Worker created successfully"
// @Router /workers [post]
func (h *WorkerController) CreateWorker(c *gin.Context) {
	var req models.CreateWorkerRequest
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
		respondError(c, models.NewForbidden("cannot create workers for another organization"))
		return
	}

	worker, err := h.workerService.CreateWorker(h.ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Worker created successfully", worker)
}

// GetWorker handles GET /api/v1/workers/:id
// @Summary Get a worker by ID
// @Tags Worker Management
// @Security BearerAuth
// @Produce json
// @Param id path string true "Worker ID"
// @Success 200 {object} models.APIResponse "Worker retrieved successfully"
// @Router /workers/{id} [get]
func (h *WorkerController) GetWorker(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	worker, err := h.workerService.GetWorker(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if worker.OrgID != caller.OrgID {
		respondError(c, models.NewNotFound("worker not found: "+c.Param("id")))
		return
	}

	respondSuccess(c, http.StatusOK, "Worker retrieved successfully", worker)
}

// GetWorkers handles GET /api/v1/workers
// @Summary List workers with optional filtering
// @Tags Worker Management
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by roster status"
// @Param role query string false "Filter by role"
// @Success 200 {object} models.APIResponse "Workers retrieved successfully"
// @Router /workers [get]
func (h *WorkerController) GetWorkers(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	filter := &models.WorkerFilter{
		OrgID:  caller.OrgID,
		Status: models.WorkerStatus(c.Query("status")),
		Role:   models.WorkerRole(c.Query("role")),
	}

	workers, err := h.workerService.GetWorkers(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Workers retrieved successfully", workers)
}

// UpdateWorker handles PATCH /api/v1/workers/:id
// @Summary Update worker details
// @Tags Worker Management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Worker ID"
// @Param request body models.UpdateWorkerRequest true "Update worker request"
// @Success 200 {object} models.APIResponse "Worker updated successfully"
// @Router /workers/{id} [patch]
func (h *WorkerController) UpdateWorker(c *gin.Context) {
	var req models.UpdateWorkerRequest
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
	if err := h.requireSameOrg(caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	worker, err := h.workerService.UpdateWorker(h.ctx, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Worker updated successfully", worker)
}

// UpdateWorkerStatus handles PATCH /api/v1/workers/:id/status
// @Summary Change a worker's roster status
// @Description Deactivating or terminating a worker first removes them from every crew and clears any crew leadership they hold.
// @Tags Worker Management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Worker ID"
// @Param request body models.UpdateWorkerStatusRequest true "Status change request"
// @Success 200 {object} models.APIResponse "Status updated successfully"
// @Failure 502 {object} models.APIResponse "Deactivation cascade failed"
// @Router /workers/{id}/status [patch]
func (h *WorkerController) UpdateWorkerStatus(c *gin.Context) {
	var req models.UpdateWorkerStatusRequest
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
	if err := h.requireSameOrg(caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	worker, err := h.workerService.UpdateWorkerStatus(h.ctx, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Worker status updated successfully", worker)
}

// DeleteWorker handles DELETE /api/v1/workers/:id
// @Summary Remove a worker from the roster
// @Tags Worker Management
// @Security BearerAuth
// @Produce json
// @Param id path string true "Worker ID"
// @Success 200 {object} models.APIResponse "Worker deleted successfully"
// @Router /workers/{id} [delete]
func (h *WorkerController) DeleteWorker(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	if err := h.requireSameOrg(caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	if err := h.workerService.DeleteWorker(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Worker deleted successfully", nil)
}

func (h *WorkerController) requireSameOrg(caller *models.Caller, workerID string) error {
	worker, err := h.workerService.GetWorker(workerID)
	if err != nil {
		return err
	}
	if worker.OrgID != caller.OrgID {
		return models.NewNotFound("worker not found: " + workerID)
	}
	return nil
}
