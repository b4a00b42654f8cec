package services

import (
	"context"
	"time"

	"fieldops-backend/models"
	"fieldops-backend/repository"
	"fieldops-backend/utils/logger"
)

// NotificationService enqueues outbox rows for workers who just joined a
// job. Enqueueing is fire-and-forget: a failed write is logged and dropped,
// never surfaced to the assignment that triggered it.
type NotificationService struct {
	notificationRepo repository.NotificationRepositoryInterface
	logger           logger.Logger
}

func NewNotificationService(notificationRepo repository.NotificationRepositoryInterface, log logger.Logger) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		logger:           log,
	}
}

func (s *NotificationService) NotifyCrewAssigned(job *models.Job, crew *models.Crew, recipientIDs []string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		for _, recipientID := range recipientIDs {
			notification := &models.Notification{
				OrgID:       job.OrgID,
				RecipientID: recipientID,
				Kind:        models.NotificationCrewAssigned,
				JobID:       job.JobID,
				CrewID:      crew.CrewID,
				CrewName:    crew.Name,
			}
			if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
				s.logger.Errorf("Failed to notify worker %s about job %s: %v", recipientID, job.JobID, err)
			}
		}
	}()
}
