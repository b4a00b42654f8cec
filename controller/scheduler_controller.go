package controller

import (
	"context"
	"net/http"
	"time"

	"fieldops-backend/scheduler"
	"fieldops-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type SchedulerController struct {
	ctx              context.Context
	schedulerService *scheduler.Service
	logger           logger.Logger
}

func NewSchedulerController(ctx context.Context, schedulerService *scheduler.Service, log logger.Logger) *SchedulerController {
	return &SchedulerController{
		ctx:              ctx,
		schedulerService: schedulerService,
		logger:           log,
	}
}

// Run handles POST /api/v1/scheduler/run
// @Summary Trigger a recurrence generation pass
// @Description Runs the recurrence generator immediately. Guarded by the X-Cron-Secret header; intended for external cron services and operators. Without orgID the pass covers every active organization.
// @Tags Scheduler
// @Produce json
// @Param X-Cron-Secret header string true "Shared cron secret"
// @Param orgID query string false "Limit the pass to one organization"
// @Success 200 {object} models.APIResponse "Run completed"
// @Failure 401 {object} models.APIResponse "Invalid cron secret"
// @Failure 409 {object} models.APIResponse "A run is already in progress"
// @Router /scheduler/run [post]
func (h *SchedulerController) Run(c *gin.Context) {
	ctx, cancel := context.WithTimeout(h.ctx, 10*time.Minute)
	defer cancel()

	result, err := h.schedulerService.RunNow(ctx, c.Query("orgID"))
	if err != nil {
		h.logger.Errorf("Manual recurrence run failed: %v", err)
		status := http.StatusInternalServerError
		if result == nil {
			// Lock unavailable, another run is in flight
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	respondSuccess(c, http.StatusOK, "Recurrence pass completed", result)
}

// Status handles GET /api/v1/scheduler/status
// @Summary Get the result of the most recent recurrence run
// @Tags Scheduler
// @Produce json
// @Param X-Cron-Secret header string true "Shared cron secret"
// @Success 200 {object} models.APIResponse "Run status"
// @Router /scheduler/status [get]
func (h *SchedulerController) Status(c *gin.Context) {
	status, err := h.schedulerService.GetStatus()
	if err != nil {
		respondSuccess(c, http.StatusOK, "No recurrence run recorded yet", h.schedulerService.GetHealthStatus())
		return
	}

	respondSuccess(c, http.StatusOK, "Scheduler status retrieved", status)
}
