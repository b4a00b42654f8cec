package main

import (
	"context"
	"log"

	"fieldops-backend/controller"
	"fieldops-backend/dal"
	"fieldops-backend/infrastructure"
	"fieldops-backend/models"
	"fieldops-backend/repository"
	"fieldops-backend/scheduler"
	"fieldops-backend/services"
	"fieldops-backend/utils"
	"fieldops-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

var config *models.Config

func Init() {
	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

// @title FieldOps Backend API
// @version 1.0
// @description Job assignment and scheduling conflict engine for field service organizations.
// @description Detects worker double-bookings, materializes crew assignments, generates
// @description recurring job occurrences and cascades worker deactivation through crews.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme.
func main() {
	Init()

	ctx := context.Background()
	appLogger := logger.NewLogger(config.LogLevel, config.LogFormat)
	appLogger.Debugf("Config loaded: %s", utils.PrintPrettyJSON(config))

	dbclient, err := dal.NewDynamoDBClient(config, appLogger)
	if err != nil {
		appLogger.Fatalf("Failed to initialize DynamoDB client: %v", err)
	}

	if err := infrastructure.EnsureTables(ctx, dbclient, config, appLogger); err != nil {
		appLogger.Fatalf("Failed to ensure tables: %v", err)
	}

	repos := repository.NewRepository(dbclient, config, appLogger)
	svc := services.NewService(repos, appLogger, config)

	schedulerService, err := scheduler.NewService(ctx, config, svc.GetRecurrenceService(), appLogger)
	if err != nil {
		appLogger.Fatalf("Failed to create recurrence scheduler: %v", err)
	}
	if err := schedulerService.StartInBackground(); err != nil {
		appLogger.Fatalf("Failed to start recurrence scheduler: %v", err)
	}

	r := gin.New()
	c := controller.NewController(ctx, config, svc, schedulerService, appLogger)

	if err := c.RegisterRoutes(ctx, r); err != nil {
		appLogger.Fatalf("Server exited with error: %v", err)
	}
}
