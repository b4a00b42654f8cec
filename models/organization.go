package models

import "time"

type OrganizationStatus string

const (
	OrganizationStatusActive    OrganizationStatus = "active"
	OrganizationStatusInactive  OrganizationStatus = "inactive"
	OrganizationStatusSuspended OrganizationStatus = "suspended"
)

// Organization is a tenant. Every job, crew and worker belongs to exactly
// one organization, and the timed recurrence run walks active organizations.
type Organization struct {
	ID        string             `json:"id" dynamodbav:"id" validate:"omitempty,uuid4"`
	Name      string             `json:"name" dynamodbav:"name" validate:"required,min=2,max=100"`
	Status    OrganizationStatus `json:"status" dynamodbav:"status" validate:"required,oneof=active inactive suspended"`
	Email     string             `json:"email,omitempty" dynamodbav:"email,omitempty" validate:"omitempty,email"`
	Phone     string             `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Address   string             `json:"address,omitempty" dynamodbav:"address,omitempty" validate:"omitempty,max=200"`
	CreatedAt time.Time          `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" dynamodbav:"updatedAt"`
	CreatedBy string             `json:"createdBy,omitempty" dynamodbav:"createdBy,omitempty"`
}

type CreateOrganizationRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty" validate:"omitempty,max=200"`
}
