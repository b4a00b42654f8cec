package models

import "time"

// Crew is a named, mutable group of workers within an organization. Crew
// membership is the source of truth for who a crew contains; a job's
// AssignedUserIDs is a copy taken when the crew is assigned and is only
// synced back through the explicit assignment transitions.
type Crew struct {
	CrewID      string    `json:"crewID" dynamodbav:"crewID"`
	OrgID       string    `json:"orgID" dynamodbav:"orgID" validate:"required"`
	Name        string    `json:"name" dynamodbav:"name" validate:"required,min=2,max=100"`
	Description string    `json:"description,omitempty" dynamodbav:"description,omitempty" validate:"omitempty,max=500"`
	LeaderID    string    `json:"leaderID,omitempty" dynamodbav:"leaderID,omitempty"`
	UserIDs     []string  `json:"userIDs" dynamodbav:"userIDs"`
	Skills      []string  `json:"skills" dynamodbav:"skills"`
	IsActive    bool      `json:"isActive" dynamodbav:"isActive"`
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
	CreatedBy   string    `json:"createdBy" dynamodbav:"createdBy"`
}

// HasMember reports whether the worker id is on the crew's membership list.
func (c *Crew) HasMember(workerID string) bool {
	for _, id := range c.UserIDs {
		if id == workerID {
			return true
		}
	}
	return false
}

type CreateCrewRequest struct {
	OrgID       string   `json:"orgID" validate:"required"`
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=500"`
	LeaderID    string   `json:"leaderID,omitempty"`
	UserIDs     []string `json:"userIDs,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

type UpdateCrewRequest struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=500"`
	LeaderID    *string  `json:"leaderID,omitempty"`
	UserIDs     []string `json:"userIDs,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

type CrewFilter struct {
	OrgID    string `json:"orgID,omitempty"`
	LeaderID string `json:"leaderID,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
	MemberID string `json:"memberID,omitempty"`
}
