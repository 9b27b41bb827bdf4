package dashboard

import (
	"errors"
	"testing"

	"assettrack/pkg/metadata"
	"assettrack/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) CountAssets() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountAssetsByStatus(status metadata.Status) (int, error) {
	args := m.Called(status)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) GetRecentTransactions(limit uint) ([]models.Transaction, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func TestGetStats(t *testing.T) {
	mockRepo := new(MockDashboardRepository)
	service := NewService(mockRepo)

	mockRepo.On("CountAssets").Return(100, nil).Once()
	mockRepo.On("CountAssetsByStatus", metadata.StatusAvailable).Return(50, nil).Once()
	mockRepo.On("CountAssetsByStatus", metadata.StatusInUse).Return(30, nil).Once()
	mockRepo.On("CountAssetsByStatus", metadata.StatusMaintenance).Return(10, nil).Once()

	stats, err := service.GetStats()

	assert.NoError(t, err)
	assert.Equal(t, &models.DashboardStats{
		TotalAssets: 100,
		Available:   50,
		InUse:       30,
		Maintenance: 10,
	}, stats)
	mockRepo.AssertExpectations(t)
}

func TestGetStatsCountFailure(t *testing.T) {
	mockRepo := new(MockDashboardRepository)
	service := NewService(mockRepo)

	mockRepo.On("CountAssets").Return(0, errors.New("connection refused")).Once()

	stats, err := service.GetStats()

	assert.Nil(t, stats)
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "CountAssetsByStatus", mock.Anything)
}
