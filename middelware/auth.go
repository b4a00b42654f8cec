package middelware

import (
	"fieldops-backend/models"
	"fieldops-backend/utils/logger"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CallerContextKey is the gin context key holding the authenticated caller.
const CallerContextKey = "caller"

// JWTManager handles JWT token operations
type JWTManager struct {
	Config *models.Config
	Logger logger.Logger
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(cfg *models.Config, log logger.Logger) *JWTManager {
	return &JWTManager{
		Config: cfg,
		Logger: log,
	}
}

// GenerateToken generates a JWT token for a worker
func (j *JWTManager) GenerateToken(worker *models.Worker) (string, error) {
	claims := models.JWTClaims{
		WorkerID: worker.WorkerID,
		OrgID:    worker.OrgID,
		Email:    worker.Email,
		Name:     worker.Name,
		Role:     worker.Role,
		Status:   worker.Status,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   worker.WorkerID,
			Issuer:    j.Config.AppName,
			Audience:  jwt.ClaimStrings{j.Config.AppName},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.Config.JWTExpiresIn)),
			NotBefore: jwt.NewNumericDate(time.Now()),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(j.Config.JWTSecret))
	if err != nil {
		j.Logger.Errorf("Failed to sign JWT token: %v", err)
		return "", err
	}

	j.Logger.Debugf("Generated JWT token for worker: %s", worker.WorkerID)
	return tokenString, nil
}

// ValidateToken parses and validates a signed token string.
func (j *JWTManager) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.Config.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.Status != models.WorkerStatusActive {
		return nil, fmt.Errorf("worker account is %s", claims.Status)
	}

	return claims, nil
}

// AuthMiddleware validates the bearer token and stores the caller identity
// on the request context for the controllers.
func (j *JWTManager) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.APIResponse{
				Status:  "error",
				Message: "Authorization header is required",
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, models.APIResponse{
				Status:  "error",
				Message: "Authorization header must be a bearer token",
			})
			c.Abort()
			return
		}

		claims, err := j.ValidateToken(parts[1])
		if err != nil {
			j.Logger.Debugf("Token validation failed: %v", err)
			c.JSON(http.StatusUnauthorized, models.APIResponse{
				Status:  "error",
				Message: "Invalid or expired token",
			})
			c.Abort()
			return
		}

		caller := claims.Caller()
		c.Set(CallerContextKey, &caller)
		c.Set("worker_id", caller.WorkerID)
		c.Next()
	}
}

// CronSecretMiddleware guards the manual scheduler trigger. The shared
// secret is for machine callers (the external cron) rather than workers.
func (j *JWTManager) CronSecretMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := c.GetHeader("X-Cron-Secret")
		if j.Config.CronSharedSecret == "" || secret != j.Config.CronSharedSecret {
			c.JSON(http.StatusUnauthorized, models.APIResponse{
				Status:  "error",
				Message: "Invalid cron secret",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerFromContext retrieves the authenticated caller set by AuthMiddleware.
func CallerFromContext(c *gin.Context) (*models.Caller, bool) {
	v, ok := c.Get(CallerContextKey)
	if !ok {
		return nil, false
	}
	caller, ok := v.(*models.Caller)
	return caller, ok
}
