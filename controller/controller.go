package controller

import (
	"context"
	"net/http"

	"fieldops-backend/middelware"
	"fieldops-backend/models"
	"fieldops-backend/scheduler"
	"fieldops-backend/services"
	"fieldops-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	Auth         *AuthController
	Job          *JobController
	Assignment   *AssignmentController
	Availability *AvailabilityController
	Crew         *CrewController
	Worker       *WorkerController
	Organization *OrganizationController
	Scheduler    *SchedulerController

	jwtManager *middelware.JWTManager
	config     *models.Config
	logger     logger.Logger
}

func NewController(
	ctx context.Context,
	cfg *models.Config,
	svc services.ServiceContainerInterface,
	schedulerService *scheduler.Service,
	log logger.Logger,
) *Controller {
	jwtManager := middelware.NewJWTManager(cfg, log)

	return &Controller{
		Auth:         NewAuthController(ctx, svc.GetWorkerService(), jwtManager, log),
		Job:          NewJobController(ctx, svc.GetJobService(), log),
		Assignment:   NewAssignmentController(ctx, svc.GetAssignmentService(), log),
		Availability: NewAvailabilityController(ctx, svc.GetAvailabilityService(), log),
		Crew:         NewCrewController(ctx, svc.GetCrewService(), log),
		Worker:       NewWorkerController(ctx, svc.GetWorkerService(), log),
		Organization: NewOrganizationController(ctx, svc.GetOrganizationService(), log),
		Scheduler:    NewSchedulerController(ctx, schedulerService, log),
		jwtManager:   jwtManager,
		config:       cfg,
		logger:       log,
	}
}

// RegisterRoutes wires the HTTP surface and starts the server. Blocks until
// the server exits.
func (c *Controller) RegisterRoutes(ctx context.Context, r *gin.Engine) error {
	corsMiddleware := middelware.NewCORSMiddleware(c.config)
	loggingMiddleware := middelware.NewLoggingMiddleware(c.logger)

	r.Use(corsMiddleware.CORS())
	r.Use(loggingMiddleware.StructuredLogger())
	r.Use(loggingMiddleware.Recovery())

	v1 := r.Group(c.config.BasePath)

	// Health check endpoint (no auth required)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
			"service": "FieldOps Backend",
		})
	})

	// Login issues the bearer token, so it sits outside the auth group
	v1.POST("/auth/login", c.Auth.Login)

	auth := c.jwtManager.AuthMiddleware()

	jobs := v1.Group("/jobs", auth)
	jobs.POST("", c.Job.CreateJob)
	jobs.GET("", c.Job.GetJobs)
	jobs.GET("/:id", c.Job.GetJob)
	jobs.PATCH("/:id", c.Job.UpdateJob)
	jobs.PATCH("/:id/status", c.Job.UpdateJobStatus)
	jobs.DELETE("/:id", c.Job.DeleteJob)

	// Assignment transitions
	jobs.POST("/:id/assign-crew", c.Assignment.AssignCrew)
	jobs.POST("/:id/assign-workers", c.Assignment.AssignWorkers)
	jobs.POST("/:id/unassign", c.Assignment.Unassign)
	jobs.POST("/:id/override", c.Assignment.Override)
	jobs.DELETE("/:id/override", c.Assignment.ClearOverride)

	availability := v1.Group("/availability", auth)
	availability.POST("/crew", c.Availability.CheckCrew)
	availability.POST("/workers", c.Availability.CheckWorkers)

	crews := v1.Group("/crews", auth)
	crews.POST("", c.Crew.CreateCrew)
	crews.GET("", c.Crew.GetCrews)
	crews.GET("/:id", c.Crew.GetCrew)
	crews.PATCH("/:id", c.Crew.UpdateCrew)
	crews.DELETE("/:id", c.Crew.DeleteCrew)

	workers := v1.Group("/workers", auth)
	workers.POST("", c.Worker.CreateWorker)
	workers.GET("", c.Worker.GetWorkers)
	workers.GET("/:id", c.Worker.GetWorker)
	workers.PATCH("/:id", c.Worker.UpdateWorker)
	workers.PATCH("/:id/status", c.Worker.UpdateWorkerStatus)
	workers.DELETE("/:id", c.Worker.DeleteWorker)

	organizations := v1.Group("/organizations", auth)
	organizations.POST("", c.Organization.CreateOrganization)
	organizations.GET("/:id", c.Organization.GetOrganization)

	// Machine-to-machine scheduler trigger, guarded by the shared secret
	schedulerGroup := v1.Group("/scheduler", c.jwtManager.CronSecretMiddleware())
	schedulerGroup.POST("/run", c.Scheduler.Run)
	schedulerGroup.GET("/status", c.Scheduler.Status)

	srv := &http.Server{
		Addr:    c.config.AppHost + ":" + c.config.AppPort,
		Handler: r,
	}

	c.logger.Infof("Starting server on %s:%s", c.config.AppHost, c.config.AppPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
