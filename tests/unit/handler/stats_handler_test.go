package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"recettes/internal/domain"
	"recettes/internal/handler"
	"recettes/mocks"
)

func TestStatsHandler_Get_Success(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepo)
	h := handler.NewStatsHandler(mockRepo)

	stats := &domain.Stats{
		TotalRecipes:      12,
		Confident:         8,
		Partial:           3,
		Incomplete:        1,
		ExactDuplicates:   2,
		AvgKcalPerPortion: 412.5,
	}
	mockRepo.On("IndexStats", mock.Anything).Return(stats, nil)

	w := getRequest(t, h.Get, "/api/v1/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, w.Body.String(), `"total_recipes":12`)
	mockRepo.AssertExpectations(t)
}

func TestStatsHandler_Get_RepositoryError(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepo)
	h := handler.NewStatsHandler(mockRepo)

	mockRepo.On("IndexStats", mock.Anything).Return(nil, errors.New("db down"))

	w := getRequest(t, h.Get, "/api/v1/stats", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
}
