package assets

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"assettrack/pkg/auditlog"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/metadata"
	"assettrack/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAssetsRepository to mock implementation of AssetsRepository
type MockAssetsRepository struct {
	mock.Mock
}

func (m *MockAssetsRepository) GetAsset(id int) (*models.Asset, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockAssetsRepository) GetAssetList(filter models.AssetFilter) (*[]models.Asset, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]models.Asset), args.Error(1)
}

func (m *MockAssetsRepository) GetAssetHistory(assetID int) ([]models.Transaction, error) {
	args := m.Called(assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockAssetsRepository) PersistAsset(req models.AssetRequest) (*models.Asset, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockAssetsRepository) UpdateAsset(id int, req models.AssetRequest) error {
	args := m.Called(id, req)
	return args.Error(0)
}

func (m *MockAssetsRepository) ResetStatus(id int, status metadata.Status) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockAssetsRepository) RemoveAsset(id int) (string, error) {
	args := m.Called(id)
	return args.String(0), args.Error(1)
}

// noopAuditLog swallows audit calls. The handler logs on a goroutine, so
// asserting on it from tests would race.
type noopAuditLog struct{}

func (noopAuditLog) Log(action string, data interface{}, item auditlog.Auditable) {}

// SetupTestRouter creates a new gin router for testing
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	return router
}

func setupHandler() (*AssetHandler, *MockAssetsRepository) {
	mockRepo := new(MockAssetsRepository)
	handler := NewAssetHandler(mockRepo, noopAuditLog{})
	return handler, mockRepo
}

func TestListAssets_StatusFilter(t *testing.T) {
	router := SetupTestRouter()
	handler, mockRepo := setupHandler()
	router.GET("/assets", handler.ListAssets)

	expected := []models.Asset{
		{ID: 1, Code: "IT-0001", Name: "ThinkPad T14", Status: "AVAILABLE"},
	}
	mockRepo.On("GetAssetList", models.AssetFilter{Status: "AVAILABLE"}).Return(&expected, nil)

	req, _ := http.NewRequest("GET", "/assets?status=AVAILABLE", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []models.Asset
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.Nil(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "IT-0001", response[0].Code)

	mockRepo.AssertExpectations(t)
}

func TestListAssets_InvalidStatusFilter(t *testing.T) {
	router := SetupTestRouter()
	handler, mockRepo := setupHandler()
	router.GET("/assets", handler.ListAssets)

	req, _ := http.NewRequest("GET", "/assets?status=BROKEN", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "GetAssetList", mock.Anything)
}

func TestGetAsset_WithHistory(t *testing.T) {
	router := SetupTestRouter()
	handler, mockRepo := setupHandler()
	router.GET("/assets/:id", handler.GetAsset)

	asset := &models.Asset{ID: 7, Code: "IT-0007", Name: "Dell U2720Q", Status: "IN_USE"}
	history := []models.Transaction{
		{ID: 2, AssetID: 7, EmployeeID: 3, Action: "CHECK_OUT"},
		{ID: 1, AssetID: 7, EmployeeID: 3, Action: "CHECK_IN"},
	}
	mockRepo.On("GetAsset", 7).Return(asset, nil)
	mockRepo.On("GetAssetHistory", 7).Return(history, nil)

	req, _ := http.NewRequest("GET", "/assets/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.Nil(t, err)

	transactions, ok := response["transactions"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, transactions, 2)

	mockRepo.AssertExpectations(t)
}

func TestGetAsset_NotFound(t *testing.T) {
	router := SetupTestRouter()
	handler, mockRepo := setupHandler()
	router.GET("/assets/:id", handler.GetAsset)

	mockRepo.On("GetAsset", 42).Return(nil, &custom_error.NotFoundError{Entity: "asset", ID: 42})

	req, _ := http.NewRequest("GET", "/assets/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.Nil(t, err)
	assert.Equal(t, "Asset not found", response["error"])

	mockRepo.AssertExpectations(t)
}

func TestCreateAsset_Success(t *testing.T) {
	router := SetupTestRouter()
	handler, mockRepo := setupHandler()
	router.POST("/assets", handler.CreateAsset)

	reqBody := models.AssetRequest{Code: "IT-0100", Name: "MacBook Air", TypeID: 2}
	created := &models.Asset{
		ID:     100,
		Code:   "IT-0100",
		Name:   "MacBook Air",
		Status: "AVAILABLE",
		Type:   models.AssetType{ID: 2, Name: "Laptop"},
	}
	mockRepo.On("PersistAsset", reqBody).Return(created, nil)

	jsonData, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/assets", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response models.Asset
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.Nil(t, err)
	assert.Equal(t, 100, response.ID)
	assert.Equal(t, "AVAILABLE", response.Status)

	mockRepo.AssertExpectations(t)
}

func TestCreateAsset_MissingFields(t *testing.T) {
	router := SetupTestRouter()
	handler, mockRepo := setupHandler()
	router.POST("/assets", handler.CreateAsset)

	// Name and type missing
	jsonData, _ := json.Marshal(models.AssetRequest{Code: "IT-0100"})
	req, _ := http.NewRequest("POST", "/assets", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.Nil(t, err)
	assert.Equal(t, "Missing required fields (Code, Name, Type)", response["error"])

	mockRepo.AssertNotCalled(t, "PersistAsset", mock.Anything)
}

func TestCreateAsset_DuplicateCode(t *testing.T) {
	router := SetupTestRouter()
	handler, mockRepo := setupHandler()
	router.POST("/assets", handler.CreateAsset)

	reqBody := models.AssetRequest{Code: "IT-0001", Name: "ThinkPad T14", TypeID: 2}
	mockRepo.On("PersistAsset", reqBody).Return(nil, &custom_error.UniqueViolationError{})

	jsonData, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/assets", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.Nil(t, err)
	assert.Equal(t, "Asset with code 'IT-0001' already exists.", response["error"])

	mockRepo.AssertExpectations(t)
}

func TestResetAssetStatus_RejectsInUseTarget(t *testing.T) {
	router := SetupTestRouter()
	handler, mockRepo := setupHandler()
	router.PATCH("/assets/:id/status", handler.ResetAssetStatus)

	jsonData, _ := json.Marshal(map[string]string{"status": "IN_USE"})
	req, _ := http.NewRequest("PATCH", "/assets/5/status", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "ResetStatus", mock.Anything, mock.Anything)
}

func TestResetAssetStatus_ConflictWhenCheckedOut(t *testing.T) {
	router := SetupTestRouter()
	handler, mockRepo := setupHandler()
	router.PATCH("/assets/:id/status", handler.ResetAssetStatus)

	mockRepo.On("ResetStatus", 5, metadata.StatusAvailable).Return(&custom_error.InvalidTransitionError{
		AssetID: 5,
		From:    "IN_USE",
		Message: "Asset in use must be checked in before its status can change",
	})

	jsonData, _ := json.Marshal(map[string]string{"status": "AVAILABLE"})
	req, _ := http.NewRequest("PATCH", "/assets/5/status", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.Nil(t, err)
	assert.Equal(t, "Asset in use must be checked in before its status can change", response["error"])

	mockRepo.AssertExpectations(t)
}

func TestRemoveAsset_Success(t *testing.T) {
	router := SetupTestRouter()
	handler, mockRepo := setupHandler()
	router.DELETE("/assets/:id", handler.RemoveAsset)

	mockRepo.On("RemoveAsset", 9).Return("IT-0009", nil)

	req, _ := http.NewRequest("DELETE", "/assets/9", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.Nil(t, err)
	assert.Equal(t, "Asset deleted successfully", response["message"])

	mockRepo.AssertExpectations(t)
}
