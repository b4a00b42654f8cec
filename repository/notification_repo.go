package repository

import (
	"context"
	"fieldops-backend/dal"
	"fieldops-backend/models"
	"fieldops-backend/utils"
	"fieldops-backend/utils/logger"
	"time"
)

type NotificationRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewNotificationRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	notification.ID = utils.GenerateUUID()
	notification.CreatedAt = time.Now()

	err := r.db.PutItem(ctx, r.config.DynamoDBTablePrefix+"_notifications", notification)
	if err != nil {
		r.logger.Errorf("Failed to enqueue notification for %s: %v", notification.RecipientID, err)
		return models.NewDependencyFailure("failed to enqueue notification", err)
	}

	return nil
}
