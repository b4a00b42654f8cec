package models

import "time"

type NotificationKind string

const (
	NotificationCrewAssigned NotificationKind = "crew_assigned"
)

// Notification is an outbox row. The engine only enqueues; delivery belongs
// to an external fan-out consumer and a failed enqueue never rolls back the
// assignment that produced it.
type Notification struct {
	ID          string           `json:"id" dynamodbav:"id"`
	OrgID       string           `json:"orgID" dynamodbav:"orgID"`
	RecipientID string           `json:"recipientID" dynamodbav:"recipientID"`
	Kind        NotificationKind `json:"kind" dynamodbav:"kind"`
	JobID       string           `json:"jobID" dynamodbav:"jobID"`
	CrewID      string           `json:"crewID,omitempty" dynamodbav:"crewID,omitempty"`
	CrewName    string           `json:"crewName,omitempty" dynamodbav:"crewName,omitempty"`
	CreatedAt   time.Time        `json:"createdAt" dynamodbav:"createdAt"`
}
