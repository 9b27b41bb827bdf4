package models

import (
	"database/sql"
	"time"
)

// Transaction is one entry of the append-only check-out/check-in ledger.
// Rows are never updated or deleted once written.
type Transaction struct {
	ID         int       `json:"id" db:"transaction_id"`
	AssetID    int       `json:"asset_id" db:"asset_id"`
	EmployeeID int       `json:"employee_id" db:"employee_id"`
	Action     string    `json:"action" db:"action"`
	Date       time.Time `json:"date" db:"date"`
	Notes      *string   `json:"notes,omitempty" db:"notes"`

	Asset    *Asset    `json:"asset,omitempty"`
	Employee *Employee `json:"employee,omitempty"`
}

type FlatTransactionRecord struct {
	ID         int            `db:"transaction_id"`
	AssetID    int            `db:"asset_id"`
	EmployeeID int            `db:"employee_id"`
	Action     string         `db:"action"`
	Date       time.Time      `db:"date"`
	Notes      sql.NullString `db:"notes"`

	AssetCode   string `db:"asset_code"`
	AssetName   string `db:"asset_name"`
	AssetStatus string `db:"asset_status"`
	TypeID      int    `db:"type_id"`
	TypeName    string `db:"type_name"`

	FirstName  string         `db:"first_name"`
	LastName   string         `db:"last_name"`
	Email      string         `db:"email"`
	Department sql.NullString `db:"department"`
}

func (ft *FlatTransactionRecord) TransformToTransaction() Transaction {
	tx := Transaction{
		ID:         ft.ID,
		AssetID:    ft.AssetID,
		EmployeeID: ft.EmployeeID,
		Action:     ft.Action,
		Date:       ft.Date,
		Asset: &Asset{
			ID:     ft.AssetID,
			Code:   ft.AssetCode,
			Name:   ft.AssetName,
			Status: ft.AssetStatus,
			Type: AssetType{
				ID:   ft.TypeID,
				Name: ft.TypeName,
			},
		},
		Employee: &Employee{
			ID:        ft.EmployeeID,
			FirstName: ft.FirstName,
			LastName:  ft.LastName,
			Email:     ft.Email,
		},
	}

	if ft.Notes.Valid {
		tx.Notes = &ft.Notes.String
	}
	if ft.Department.Valid {
		tx.Employee.Department = &ft.Department.String
	}

	return tx
}
