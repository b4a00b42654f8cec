package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldops-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusForKind(t *testing.T) {
	cases := []struct {
		kind models.ErrorKind
		want int
	}{
		{models.ErrKindNotFound, http.StatusNotFound},
		{models.ErrKindForbidden, http.StatusForbidden},
		{models.ErrKindInvalidInput, http.StatusBadRequest},
		{models.ErrKindInvalidState, http.StatusUnprocessableEntity},
		{models.ErrKindSchedulingConflict, http.StatusConflict},
		{models.ErrKindDependencyFailure, http.StatusBadGateway},
		{"something_else", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusForKind(tc.kind), string(tc.kind))
	}
}

func performError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, err)
	return w
}

func TestRespondErrorConflictCarriesPayload(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	conflicts := []models.Conflict{{
		WorkerID:         "w-1",
		WorkerName:       "Ana",
		ConflictingJobID: "job-2",
		ConflictStart:    now,
		ConflictEnd:      now.Add(2 * time.Hour),
	}}

	w := performError(models.NewSchedulingConflict("Ana is busy", conflicts))
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp models.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, true, data["requiresOverride"])
	assert.NotEmpty(t, data["conflicts"])
}

func TestRespondErrorUnknownErrorIsInternal(t *testing.T) {
	w := performError(errors.New("socket closed"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp models.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "InternalError", resp.Error.Type)
}

func TestRespondErrorNotFound(t *testing.T) {
	w := performError(models.NewNotFound("job not found: job-9"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp models.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "job not found: job-9", resp.Message)
	assert.Nil(t, resp.Data)
}
