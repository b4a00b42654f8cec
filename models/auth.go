package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Caller identifies the authenticated worker performing a request. It is
// built from validated JWT claims by the auth middleware and passed down to
// the services that enforce role and tenant checks.
type Caller struct {
	WorkerID string     `json:"workerID"`
	OrgID    string     `json:"orgID"`
	Role     WorkerRole `json:"role"`
}

// JWTClaims is the token payload issued by the external session layer.
type JWTClaims struct {
	WorkerID string       `json:"worker_id"`
	OrgID    string       `json:"org_id"`
	Email    string       `json:"email"`
	Name     string       `json:"name"`
	Role     WorkerRole   `json:"role"`
	Status   WorkerStatus `json:"status"`

	jwt.RegisteredClaims
}

// Caller converts validated claims into the engine's caller identity.
func (c *JWTClaims) Caller() Caller {
	return Caller{
		WorkerID: c.WorkerID,
		OrgID:    c.OrgID,
		Role:     c.Role,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token  string  `json:"token"`
	Worker *Worker `json:"worker"`
}
