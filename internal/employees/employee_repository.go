package employees

import (
	"fmt"

	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type EmployeeRepository interface {
	GetEmployees() (*[]models.Employee, error)
	GetEmployee(id int) (*models.Employee, error)
	GetEmployeeHistory(employeeID int) ([]models.Transaction, error)
	PersistEmployee(req models.EmployeeRequest) (*models.Employee, error)
	UpdateEmployee(id int, req models.EmployeeRequest) error
	CountTransactionsByEmployee(tx *goqu.TxDatabase, employeeID int) (int, error)
	DeleteEmployee(tx *goqu.TxDatabase, employeeID int) error
}

type employeeRepository struct {
	Repo *repository.Repository
}

func NewRepository(r *repository.Repository) EmployeeRepository {
	return &employeeRepository{Repo: r}
}

func (r *employeeRepository) GetEmployees() (*[]models.Employee, error) {
	query := r.Repo.GoquDBWrapper.
		Select(
			goqu.I("e.id").As("employee_id"),
			goqu.I("e.first_name").As("first_name"),
			goqu.I("e.last_name").As("last_name"),
			goqu.I("e.email").As("email"),
			goqu.I("e.department").As("department"),
			goqu.COUNT(goqu.I("tx.id")).As("transaction_count"),
		).
		From(goqu.T("employees").As("e")).
		LeftJoin(
			goqu.T("transactions").As("tx"),
			goqu.On(goqu.Ex{"tx.employee_id": goqu.I("e.id")}),
		).
		GroupBy(
			goqu.I("e.id"),
			goqu.I("e.first_name"),
			goqu.I("e.last_name"),
			goqu.I("e.email"),
			goqu.I("e.department"),
		).
		Order(goqu.I("e.last_name").Asc())

	var employees []models.Employee
	if err := query.Executor().ScanStructs(&employees); err != nil {
		return nil, fmt.Errorf("unable to select employees from database: %w", err)
	}

	return &employees, nil
}

func (r *employeeRepository) GetEmployee(id int) (*models.Employee, error) {
	var employee models.Employee

	query := r.Repo.GoquDBWrapper.
		Select(
			goqu.I("id").As("employee_id"),
			"first_name",
			"last_name",
			"email",
			"department",
		).
		From("employees").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&employee)
	if err != nil {
		return nil, fmt.Errorf("unable to select employee: %w", err)
	}
	if !found {
		return nil, &custom_error.NotFoundError{Entity: "employee", ID: id}
	}

	return &employee, nil
}

// GetEmployeeHistory returns the employee's ledger entries newest first,
// each with the asset and its type attached.
func (r *employeeRepository) GetEmployeeHistory(employeeID int) ([]models.Transaction, error) {
	query := r.Repo.GoquDBWrapper.
		Select(
			goqu.I("tx.id").As("transaction_id"),
			goqu.I("tx.asset_id").As("asset_id"),
			goqu.I("tx.employee_id").As("employee_id"),
			goqu.I("tx.action").As("action"),
			goqu.I("tx.date").As("date"),
			goqu.I("tx.notes").As("notes"),
			goqu.I("a.code").As("asset_code"),
			goqu.I("a.name").As("asset_name"),
			goqu.I("a.status").As("asset_status"),
			goqu.I("t.id").As("type_id"),
			goqu.I("t.name").As("type_name"),
			goqu.I("e.first_name").As("first_name"),
			goqu.I("e.last_name").As("last_name"),
			goqu.I("e.email").As("email"),
			goqu.I("e.department").As("department"),
		).
		From(goqu.T("transactions").As("tx")).
		InnerJoin(
			goqu.T("assets").As("a"),
			goqu.On(goqu.Ex{"tx.asset_id": goqu.I("a.id")}),
		).
		InnerJoin(
			goqu.T("asset_types").As("t"),
			goqu.On(goqu.Ex{"a.asset_type_id": goqu.I("t.id")}),
		).
		InnerJoin(
			goqu.T("employees").As("e"),
			goqu.On(goqu.Ex{"tx.employee_id": goqu.I("e.id")}),
		).
		Where(goqu.Ex{"tx.employee_id": employeeID}).
		Order(goqu.I("tx.date").Desc(), goqu.I("tx.id").Desc())

	var flatTransactions []models.FlatTransactionRecord
	if err := query.Executor().ScanStructs(&flatTransactions); err != nil {
		return nil, fmt.Errorf("unable to select employee history: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(flatTransactions))
	for _, flat := range flatTransactions {
		transactions = append(transactions, flat.TransformToTransaction())
	}

	return transactions, nil
}

func (r *employeeRepository) PersistEmployee(req models.EmployeeRequest) (*models.Employee, error) {
	employee := models.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
	}

	record := goqu.Record{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"email":      req.Email,
	}
	if req.Department != nil {
		record["department"] = *req.Department
	}

	query := r.Repo.GoquDBWrapper.Insert("employees").
		Rows(record).
		Returning("id")

	if _, err := query.Executor().ScanVal(&employee.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, custom_error.WrapDBError("Duplicate email for employee", string(pqErr.Code))
		}
		return nil, fmt.Errorf("failed to insert employee record: %w", err)
	}

	return &employee, nil
}

func (r *employeeRepository) UpdateEmployee(id int, req models.EmployeeRequest) error {
	record := goqu.Record{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"email":      req.Email,
	}
	if req.Department != nil {
		record["department"] = *req.Department
	} else {
		record["department"] = nil
	}

	result, err := r.Repo.GoquDBWrapper.
		Update("employees").
		Set(record).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("Duplicate email for employee", string(pqErr.Code))
		}
		return fmt.Errorf("failed to update employee record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &custom_error.NotFoundError{Entity: "employee", ID: id}
	}

	return nil
}

func (r *employeeRepository) CountTransactionsByEmployee(tx *goqu.TxDatabase, employeeID int) (int, error) {
	var count int

	query := tx.Select(goqu.COUNT("id")).
		From("transactions").
		Where(goqu.Ex{"employee_id": employeeID})

	if _, err := query.Executor().ScanVal(&count); err != nil {
		return 0, fmt.Errorf("failed to count dependent transactions: %w", err)
	}

	return count, nil
}

func (r *employeeRepository) DeleteEmployee(tx *goqu.TxDatabase, employeeID int) error {
	result, err := tx.Delete("employees").
		Where(goqu.Ex{"id": employeeID}).
		Executor().
		Exec()

	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &custom_error.NotFoundError{Entity: "employee", ID: employeeID}
	}

	return nil
}
