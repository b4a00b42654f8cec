package controller

import (
	"context"
	"net/http"
	"time"

	"fieldops-backend/models"
	"fieldops-backend/services"
	"fieldops-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type JobController struct {
	ctx        context.Context
	jobService services.JobServiceInterface
	logger     logger.Logger
	validator  *validator.Validate
}

func NewJobController(ctx context.Context, jobService services.JobServiceInterface, log logger.Logger) *JobController {
	return &JobController{
		ctx:        ctx,
		jobService: jobService,
		logger:     log,
		validator:  validator.New(),
	}
}

// CreateJob handles POST /api/v1/jobs
// @Summary Create a new job
// @Tags Job Management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateJobRequest true "Create job request"
// @Success 201 {object} models.APIResponse "Job created successfully"
// @Failure 400 {object} models.APIResponse "Invalid job data"
// @Router /jobs [post]
func (h *JobController) CreateJob(c *gin.Context) {
	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
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
		respondError(c, models.NewForbidden("cannot create jobs for another organization"))
		return
	}

	job, err := h.jobService.CreateJob(h.ctx, &req, caller.WorkerID)
	if err != nil {
		h.logger.Error("Failed to create job:", err)
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Job created successfully", job)
}

// GetJob handles GET /api/v1/jobs/:id
// @Summary Get a job by ID
// @Tags Job Management
// @Security BearerAuth
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} models.APIResponse "Job retrieved successfully"
// @Failure 404 {object} models.APIResponse "Job not found"
// @Router /jobs/{id} [get]
func (h *JobController) GetJob(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if job.OrgID != caller.OrgID {
		respondError(c, models.NewNotFound("job not found: "+c.Param("id")))
		return
	}

	respondSuccess(c, http.StatusOK, "Job retrieved successfully", job)
}

// GetJobs handles GET /api/v1/jobs
// @Summary Get jobs with optional filtering
// @Tags Job Management
// @Security BearerAuth
// @Produce json
// @Param clientID query string false "Filter by client ID"
// @Param jobStatus query string false "Filter by job status"
// @Param jobType query string false "Filter by job type"
// @Param isRecurring query bool false "Filter recurring templates"
// @Param fromDate query string false "Filter by window start (RFC3339)"
// @Param toDate query string false "Filter by window end (RFC3339)"
// @Success 200 {object} models.APIResponse "Jobs retrieved successfully"
// @Router /jobs [get]
func (h *JobController) GetJobs(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	filter := &models.JobFilter{
		OrgID:     caller.OrgID,
		ClientID:  c.Query("clientID"),
		CreatedBy: c.Query("createdBy"),
	}

	if jobStatus := c.Query("jobStatus"); jobStatus != "" {
		filter.JobStatus = models.JobStatus(jobStatus)
	}
	if jobType := c.Query("jobType"); jobType != "" {
		filter.JobType = models.JobType(jobType)
	}
	if isRecurring := c.Query("isRecurring"); isRecurring != "" {
		recurring := isRecurring == "true"
		filter.IsRecurring = &recurring
	}
	if fromDateStr := c.Query("fromDate"); fromDateStr != "" {
		if fromDate, err := time.Parse(time.RFC3339, fromDateStr); err == nil {
			filter.FromDate = fromDate
		} else {
			respondBadRequest(c, "fromDate must be RFC3339")
			return
		}
	}
	if toDateStr := c.Query("toDate"); toDateStr != "" {
		if toDate, err := time.Parse(time.RFC3339, toDateStr); err == nil {
			filter.ToDate = toDate
		} else {
			respondBadRequest(c, "toDate must be RFC3339")
			return
		}
	}

	jobs, err := h.jobService.GetJobs(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Jobs retrieved successfully", jobs)
}

// UpdateJob handles PATCH /api/v1/jobs/:id
// @Summary Update job details
// @Tags Job Management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body models.UpdateJobRequest true "Update job request"
// @Success 200 {object} models.APIResponse "Job updated successfully"
// @Router /jobs/{id} [patch]
func (h *JobController) UpdateJob(c *gin.Context) {
	var req models.UpdateJobRequest
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

	job, err := h.jobService.UpdateJob(h.ctx, caller, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Job updated successfully", job)
}

// UpdateJobStatus handles PATCH /api/v1/jobs/:id/status
// @Summary Transition a job's lifecycle status
// @Tags Job Management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} models.APIResponse "Status updated successfully"
// @Failure 422 {object} models.APIResponse "Invalid status transition"
// @Router /jobs/{id}/status [patch]
func (h *JobController) UpdateJobStatus(c *gin.Context) {
	var req struct {
		Status models.JobStatus `json:"status" validate:"required,oneof=scheduled in_progress completed cancelled on_hold"`
	}
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

	job, err := h.jobService.UpdateJobStatus(h.ctx, caller, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Job status updated successfully", job)
}

// DeleteJob handles DELETE /api/v1/jobs/:id
// @Summary Delete a job
// @Tags Job Management
// @Security BearerAuth
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} models.APIResponse "Job deleted successfully"
// @Router /jobs/{id} [delete]
func (h *JobController) DeleteJob(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Job deleted successfully", nil)
}
