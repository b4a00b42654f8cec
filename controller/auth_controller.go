package controller

import (
	"context"
	"net/http"

	"fieldops-backend/middelware"
	"fieldops-backend/models"
	"fieldops-backend/services"
	"fieldops-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthController struct {
	ctx           context.Context
	workerService services.WorkerServiceInterface
	jwtManager    *middelware.JWTManager
	logger        logger.Logger
	validator     *validator.Validate
}

func NewAuthController(ctx context.Context, workerService services.WorkerServiceInterface, jwtManager *middelware.JWTManager, log logger.Logger) *AuthController {
	return &AuthController{
		ctx:           ctx,
		workerService: workerService,
		jwtManager:    jwtManager,
		logger:        log,
		validator:     validator.New(),
	}
}

// Login handles POST /api/v1/auth/login
// @Summary Authenticate a worker and issue a session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.APIResponse "Login successful"
// @Failure 401 {object} models.APIResponse "Invalid email or password"
// @Router /auth/login [post]
func (h *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		respondBadRequest(c, formatValidationErrors(err))
		return
	}

	worker, err := h.workerService.Authenticate(req.Email, req.Password)
	if err != nil {
		h.logger.Debugf("Login failed for %s: %v", req.Email, err)
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Invalid email or password",
			Error: &models.APIError{
				Type: "AuthenticationError",
			},
		})
		return
	}

	token, err := h.jwtManager.GenerateToken(worker)
	if err != nil {
		respondError(c, models.NewDependencyFailure("failed to issue token", err))
		return
	}

	h.logger.Infof("Worker %s logged in", worker.WorkerID)
	respondSuccess(c, http.StatusOK, "Login successful", models.LoginResponse{
		Token:  token,
		Worker: worker,
	})
}
