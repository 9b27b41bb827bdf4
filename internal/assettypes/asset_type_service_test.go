package assettypes

import (
	"errors"
	"testing"

	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAssetTypeRepository struct {
	mock.Mock
}

func (m *MockAssetTypeRepository) GetAssetTypes() (*[]models.AssetType, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]models.AssetType), args.Error(1)
}

func (m *MockAssetTypeRepository) GetAssetType(id int) (*models.AssetType, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssetType), args.Error(1)
}

func (m *MockAssetTypeRepository) PersistAssetType(req models.AssetTypeRequest) (*models.AssetType, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssetType), args.Error(1)
}

func (m *MockAssetTypeRepository) UpdateAssetType(id int, req models.AssetTypeRequest) error {
	args := m.Called(id, req)
	return args.Error(0)
}

func (m *MockAssetTypeRepository) CountAssetsByType(tx *goqu.TxDatabase, typeID int) (int, error) {
	args := m.Called(tx, typeID)
	return args.Int(0), args.Error(1)
}

func (m *MockAssetTypeRepository) DeleteAssetType(tx *goqu.TxDatabase, typeID int) error {
	args := m.Called(tx, typeID)
	return args.Error(0)
}

func newTestService(r AssetTypeRepository) *AssetTypeService {
	return &AssetTypeService{
		r: r,
		runTx: func(fn func(tx *goqu.TxDatabase) error) error {
			return fn(nil)
		},
	}
}

func TestDeleteAssetTypeBlockedByReferences(t *testing.T) {
	mockRepo := new(MockAssetTypeRepository)
	service := newTestService(mockRepo)

	mockRepo.On("CountAssetsByType", (*goqu.TxDatabase)(nil), 1).Return(5, nil).Once()

	err := service.DeleteAssetType(1)

	var referenced *custom_error.ReferencedEntityError
	assert.ErrorAs(t, err, &referenced)
	assert.Equal(t, "Cannot delete asset type heavily used by assets.", referenced.Error())
	assert.Equal(t, 5, referenced.Count)

	// the row must survive a blocked delete
	mockRepo.AssertNotCalled(t, "DeleteAssetType", mock.Anything, mock.Anything)
}

func TestDeleteAssetTypeWithoutReferences(t *testing.T) {
	mockRepo := new(MockAssetTypeRepository)
	service := newTestService(mockRepo)

	mockRepo.On("CountAssetsByType", (*goqu.TxDatabase)(nil), 2).Return(0, nil).Once()
	mockRepo.On("DeleteAssetType", (*goqu.TxDatabase)(nil), 2).Return(nil).Once()

	err := service.DeleteAssetType(2)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestDeleteAssetTypeCountFailure(t *testing.T) {
	mockRepo := new(MockAssetTypeRepository)
	service := newTestService(mockRepo)

	mockRepo.On("CountAssetsByType", (*goqu.TxDatabase)(nil), 3).Return(0, errors.New("connection reset")).Once()

	err := service.DeleteAssetType(3)

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "DeleteAssetType", mock.Anything, mock.Anything)
}
