package employees

import (
	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"

	"github.com/doug-martin/goqu/v9"
)

type TxRunner func(fn func(tx *goqu.TxDatabase) error) error

// EmployeeService wraps the delete guard: an employee that appears in the
// transaction ledger cannot be removed, their history must stay intact.
// Count and delete share one transaction so a concurrent check-out cannot
// create a ledger row between them.
type EmployeeService struct {
	r     EmployeeRepository
	runTx TxRunner
}

func NewService(repo *repository.Repository, r EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		r: r,
		runTx: func(fn func(tx *goqu.TxDatabase) error) error {
			return repository.WithTransaction(repo.GoquDBWrapper, fn)
		},
	}
}

func (s *EmployeeService) DeleteEmployee(id int) error {
	return s.runTx(func(tx *goqu.TxDatabase) error {
		count, err := s.r.CountTransactionsByEmployee(tx, id)
		if err != nil {
			return err
		}

		if count > 0 {
			return &custom_error.ReferencedEntityError{
				Message: "Cannot delete employee with transaction history.",
				Count:   count,
			}
		}

		return s.r.DeleteEmployee(tx, id)
	})
}
