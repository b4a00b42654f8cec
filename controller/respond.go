package controller

import (
	"errors"
	"net/http"
	"strings"

	"fieldops-backend/middelware"
	"fieldops-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// statusForKind maps engine error kinds to HTTP statuses. Anything that is
// not an AppError is treated as an internal error.
func statusForKind(kind models.ErrorKind) int {
	switch kind {
	case models.ErrKindNotFound:
		return http.StatusNotFound
	case models.ErrKindForbidden:
		return http.StatusForbidden
	case models.ErrKindInvalidInput:
		return http.StatusBadRequest
	case models.ErrKindInvalidState:
		return http.StatusUnprocessableEntity
	case models.ErrKindSchedulingConflict:
		return http.StatusConflict
	case models.ErrKindDependencyFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders an engine error. Scheduling conflicts additionally
// carry the conflict list and the requiresOverride hint in the data payload
// so clients can offer a forced retry.
func respondError(c *gin.Context, err error) {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
			Error: &models.APIError{
				Type:    "InternalError",
				Details: err.Error(),
			},
		})
		return
	}

	status := statusForKind(appErr.Kind)
	resp := models.APIResponse{
		Status:  "error",
		Code:    status,
		Message: appErr.Message,
		Error: &models.APIError{
			Type:    string(appErr.Kind),
			Details: appErr.Message,
		},
	}

	if appErr.Kind == models.ErrKindSchedulingConflict {
		resp.Data = gin.H{
			"conflicts":        appErr.Conflicts,
			"message":          appErr.Message,
			"requiresOverride": appErr.RequiresOverride,
		}
	}

	c.JSON(status, resp)
}

func respondSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, models.APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

func respondBadRequest(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, models.APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Invalid request",
		Error: &models.APIError{
			Type:    "ValidationError",
			Details: details,
		},
	})
}

// requireCaller pulls the authenticated caller off the context; the auth
// middleware always sets it on protected routes.
func requireCaller(c *gin.Context) (*models.Caller, bool) {
	caller, ok := middelware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Authentication required",
			Error: &models.APIError{
				Type:    "AuthenticationError",
				Details: "Caller not authenticated",
			},
		})
		return nil, false
	}
	return caller, true
}

func formatValidationErrors(err error) string {
	var errorMessages []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			switch fieldError.Tag() {
			case "required":
				errorMessages = append(errorMessages, fieldError.Field()+" is required")
			case "min":
				errorMessages = append(errorMessages, fieldError.Field()+" must be at least "+fieldError.Param()+" characters/items")
			case "max":
				errorMessages = append(errorMessages, fieldError.Field()+" must be at most "+fieldError.Param()+" characters/items")
			case "oneof":
				errorMessages = append(errorMessages, fieldError.Field()+" must be one of: "+strings.ReplaceAll(fieldError.Param(), " ", ", "))
			case "email":
				errorMessages = append(errorMessages, fieldError.Field()+" must be a valid email address")
			default:
				errorMessages = append(errorMessages, fieldError.Field()+" is invalid")
			}
		}
	}

	if len(errorMessages) == 0 {
		return err.Error()
	}
	return strings.Join(errorMessages, "; ")
}
