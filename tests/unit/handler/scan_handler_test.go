package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"recettes/internal/domain"
	"recettes/internal/handler"
	"recettes/mocks"
)

func TestScanHandler_Create_Accepted(t *testing.T) {
	mockSvc := new(mocks.MockScanService)
	h := handler.NewScanHandler(mockSvc)

	run := &domain.ScanRun{
		ID:        uuid.New(),
		Status:    domain.ScanStatusRunning,
		StartedAt: time.Now().UTC(),
	}
	mockSvc.On("Start", mock.Anything).Return(run, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/scans", nil)
	h.Create(c)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestScanHandler_Create_Conflict(t *testing.T) {
	mockSvc := new(mocks.MockScanService)
	h := handler.NewScanHandler(mockSvc)

	mockSvc.On("Start", mock.Anything).Return(nil, domain.ErrScanInProgress)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/scans", nil)
	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SCAN_IN_PROGRESS", resp.Error.Code)
}

func TestScanHandler_List_DefaultLimit(t *testing.T) {
	mockSvc := new(mocks.MockScanService)
	h := handler.NewScanHandler(mockSvc)

	runs := []domain.ScanRun{{ID: uuid.New(), Status: domain.ScanStatusCompleted}}
	mockSvc.On("ListRuns", mock.Anything, 20).Return(runs, nil)

	w := getRequest(t, h.List, "/api/v1/scans", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestScanHandler_Get_Success(t *testing.T) {
	mockSvc := new(mocks.MockScanService)
	h := handler.NewScanHandler(mockSvc)

	id := uuid.New()
	run := &domain.ScanRun{ID: id, Status: domain.ScanStatusCompleted}
	mockSvc.On("GetRun", mock.Anything, id).Return(run, nil)

	w := getRequest(t, h.Get, "/api/v1/scans/"+id.String(),
		gin.Params{{Key: "id", Value: id.String()}})

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestScanHandler_Get_NotFound(t *testing.T) {
	mockSvc := new(mocks.MockScanService)
	h := handler.NewScanHandler(mockSvc)

	id := uuid.New()
	mockSvc.On("GetRun", mock.Anything, id).Return(nil, domain.ErrScanRunNotFound)

	w := getRequest(t, h.Get, "/api/v1/scans/"+id.String(),
		gin.Params{{Key: "id", Value: id.String()}})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScanHandler_Get_InvalidID(t *testing.T) {
	mockSvc := new(mocks.MockScanService)
	h := handler.NewScanHandler(mockSvc)

	w := getRequest(t, h.Get, "/api/v1/scans/nope",
		gin.Params{{Key: "id", Value: "nope"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "GetRun")
}
