package employees

import (
	"testing"

	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) GetEmployees() (*[]models.Employee, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetEmployee(id int) (*models.Employee, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetEmployeeHistory(employeeID int) ([]models.Transaction, error) {
	args := m.Called(employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockEmployeeRepository) PersistEmployee(req models.EmployeeRequest) (*models.Employee, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(id int, req models.EmployeeRequest) error {
	args := m.Called(id, req)
	return args.Error(0)
}

func (m *MockEmployeeRepository) CountTransactionsByEmployee(tx *goqu.TxDatabase, employeeID int) (int, error) {
	args := m.Called(tx, employeeID)
	return args.Int(0), args.Error(1)
}

func (m *MockEmployeeRepository) DeleteEmployee(tx *goqu.TxDatabase, employeeID int) error {
	args := m.Called(tx, employeeID)
	return args.Error(0)
}

func newTestService(r EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		r: r,
		runTx: func(fn func(tx *goqu.TxDatabase) error) error {
			return fn(nil)
		},
	}
}

func TestDeleteEmployeeBlockedByLedger(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	service := newTestService(mockRepo)

	mockRepo.On("CountTransactionsByEmployee", (*goqu.TxDatabase)(nil), 1).Return(3, nil).Once()

	err := service.DeleteEmployee(1)

	var referenced *custom_error.ReferencedEntityError
	assert.ErrorAs(t, err, &referenced)
	assert.Equal(t, "Cannot delete employee with transaction history.", referenced.Error())
	mockRepo.AssertNotCalled(t, "DeleteEmployee", mock.Anything, mock.Anything)
}

func TestDeleteEmployeeWithoutHistory(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	service := newTestService(mockRepo)

	mockRepo.On("CountTransactionsByEmployee", (*goqu.TxDatabase)(nil), 2).Return(0, nil).Once()
	mockRepo.On("DeleteEmployee", (*goqu.TxDatabase)(nil), 2).Return(nil).Once()

	err := service.DeleteEmployee(2)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
