package middelware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldops-backend/models"
	"fieldops-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type noopLogger struct{}

func (noopLogger) Debug(args ...interface{})                 {}
func (noopLogger) Debugf(format string, args ...interface{}) {}
func (noopLogger) Info(args ...interface{})                  {}
func (noopLogger) Infof(format string, args ...interface{})  {}
func (noopLogger) Warn(args ...interface{})                  {}
func (noopLogger) Warnf(format string, args ...interface{})  {}
func (noopLogger) Error(args ...interface{})                 {}
func (noopLogger) Errorf(format string, args ...interface{}) {}
func (noopLogger) Fatal(args ...interface{})                 {}
func (noopLogger) Fatalf(format string, args ...interface{}) {}
func (l noopLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return l
}

type AuthMiddlewareTestSuite struct {
	suite.Suite
	jwtManager *JWTManager
	config     *models.Config
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.config = &models.Config{
		AppName:          "fieldops-backend",
		JWTSecret:        "test-secret-key",
		JWTExpiresIn:     time.Hour,
		CronSharedSecret: "cron-secret",
	}
	suite.jwtManager = NewJWTManager(suite.config, noopLogger{})
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (suite *AuthMiddlewareTestSuite) activeWorker() *models.Worker {
	return &models.Worker{
		WorkerID: "w-1",
		OrgID:    "org-1",
		Name:     "Ana",
		Email:    "ana@example.com",
		Role:     models.WorkerRoleOffice,
		Status:   models.WorkerStatusActive,
	}
}

func (suite *AuthMiddlewareTestSuite) TestGenerateAndValidateToken() {
	token, err := suite.jwtManager.GenerateToken(suite.activeWorker())
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), token)

	claims, err := suite.jwtManager.ValidateToken(token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "w-1", claims.WorkerID)
	assert.Equal(suite.T(), "org-1", claims.OrgID)
	assert.Equal(suite.T(), models.WorkerRoleOffice, claims.Role)
}

func (suite *AuthMiddlewareTestSuite) TestValidateTokenWrongSecret() {
	token, err := suite.jwtManager.GenerateToken(suite.activeWorker())
	assert.NoError(suite.T(), err)

	other := NewJWTManager(&models.Config{JWTSecret: "different-secret"}, noopLogger{})
	_, err = other.ValidateToken(token)
	assert.Error(suite.T(), err)
}

func (suite *AuthMiddlewareTestSuite) TestValidateTokenInactiveWorker() {
	worker := suite.activeWorker()
	worker.Status = models.WorkerStatusTerminated

	token, err := suite.jwtManager.GenerateToken(worker)
	assert.NoError(suite.T(), err)

	_, err = suite.jwtManager.ValidateToken(token)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "terminated")
}

func (suite *AuthMiddlewareTestSuite) TestValidateTokenExpired() {
	suite.config.JWTExpiresIn = -time.Minute
	token, err := suite.jwtManager.GenerateToken(suite.activeWorker())
	assert.NoError(suite.T(), err)

	_, err = suite.jwtManager.ValidateToken(token)
	assert.Error(suite.T(), err)
}

func (suite *AuthMiddlewareTestSuite) TestAuthMiddlewareSetsCaller() {
	token, err := suite.jwtManager.GenerateToken(suite.activeWorker())
	assert.NoError(suite.T(), err)

	router := gin.New()
	router.GET("/probe", suite.jwtManager.AuthMiddleware(), func(c *gin.Context) {
		caller, ok := CallerFromContext(c)
		assert.True(suite.T(), ok)
		c.JSON(http.StatusOK, caller)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "w-1")
}

func (suite *AuthMiddlewareTestSuite) TestAuthMiddlewareMissingHeader() {
	router := gin.New()
	router.GET("/probe", suite.jwtManager.AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestAuthMiddlewareMalformedHeader() {
	router := gin.New()
	router.GET("/probe", suite.jwtManager.AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Token abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestCronSecretMiddleware() {
	router := gin.New()
	router.POST("/run", suite.jwtManager.CronSecretMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusAccepted)
	})

	req := httptest.NewRequest(http.MethodPost, "/run", nil)
	req.Header.Set("X-Cron-Secret", "cron-secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(suite.T(), http.StatusAccepted, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/run", nil)
	req.Header.Set("X-Cron-Secret", "wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestCronSecretMiddlewareUnconfigured() {
	suite.config.CronSharedSecret = ""

	router := gin.New()
	router.POST("/run", suite.jwtManager.CronSecretMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusAccepted)
	})

	// no configured secret means the endpoint is closed, even to empty headers
	req := httptest.NewRequest(http.MethodPost, "/run", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}
