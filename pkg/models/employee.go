package models

type Employee struct {
	ID               int     `json:"id" db:"employee_id"`
	FirstName        string  `json:"first_name" db:"first_name"`
	LastName         string  `json:"last_name" db:"last_name"`
	Email            string  `json:"email" db:"email"`
	Department       *string `json:"department,omitempty" db:"department"`
	TransactionCount int     `json:"transaction_count" db:"transaction_count"`
}

func (e *Employee) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   e.ID,
		ResourceType: "employee",
	}
}
