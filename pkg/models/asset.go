package models

import (
	"database/sql"
	"time"
)

type Asset struct {
	ID           int        `json:"id" db:"asset_id"`
	Code         string     `json:"code" db:"code"`
	Name         string     `json:"name" db:"name"`
	SerialNumber *string    `json:"serial_number,omitempty" db:"serial_number"`
	Type         AssetType  `json:"type"`
	// Price is scanned out of numeric(12,2) into a float64. Lossy in
	// representation, exact for displayed currency precision.
	Price        *float64   `json:"price,omitempty" db:"price"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty" db:"purchase_date"`
	Status       string     `json:"status" db:"status"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`

	// LastTransaction carries the single most recent ledger entry when the
	// query joined it, nil otherwise.
	LastTransaction *Transaction `json:"last_transaction,omitempty"`
}

type FlatAssetRecord struct {
	ID           int             `db:"asset_id"`
	Code         string          `db:"code"`
	Name         string          `db:"name"`
	SerialNumber sql.NullString  `db:"serial_number"`
	Price        sql.NullFloat64 `db:"price"`
	PurchaseDate sql.NullTime    `db:"purchase_date"`
	Status       string          `db:"status"`
	CreatedAt    time.Time       `db:"created_at"`

	TypeID          int            `db:"type_id"`
	TypeName        string         `db:"type_name"`
	TypeDescription sql.NullString `db:"type_description"`

	TxID         sql.NullInt64  `db:"tx_id"`
	TxAction     sql.NullString `db:"tx_action"`
	TxDate       sql.NullTime   `db:"tx_date"`
	TxNotes      sql.NullString `db:"tx_notes"`
	TxEmployeeID sql.NullInt64  `db:"tx_employee_id"`
	TxFirstName  sql.NullString `db:"tx_first_name"`
	TxLastName   sql.NullString `db:"tx_last_name"`
	TxEmail      sql.NullString `db:"tx_email"`
}

func (fa *FlatAssetRecord) TransformToAsset() Asset {
	asset := Asset{
		ID:        fa.ID,
		Code:      fa.Code,
		Name:      fa.Name,
		Status:    fa.Status,
		CreatedAt: fa.CreatedAt,
		Type: AssetType{
			ID:   fa.TypeID,
			Name: fa.TypeName,
		},
	}

	if fa.SerialNumber.Valid {
		asset.SerialNumber = &fa.SerialNumber.String
	}
	if fa.Price.Valid {
		asset.Price = &fa.Price.Float64
	}
	if fa.PurchaseDate.Valid {
		asset.PurchaseDate = &fa.PurchaseDate.Time
	}
	if fa.TypeDescription.Valid {
		asset.Type.Description = &fa.TypeDescription.String
	}

	if fa.TxID.Valid {
		tx := Transaction{
			ID:         int(fa.TxID.Int64),
			AssetID:    fa.ID,
			EmployeeID: int(fa.TxEmployeeID.Int64),
			Action:     fa.TxAction.String,
			Date:       fa.TxDate.Time,
		}
		if fa.TxNotes.Valid {
			tx.Notes = &fa.TxNotes.String
		}
		if fa.TxEmployeeID.Valid {
			tx.Employee = &Employee{
				ID:        int(fa.TxEmployeeID.Int64),
				FirstName: fa.TxFirstName.String,
				LastName:  fa.TxLastName.String,
				Email:     fa.TxEmail.String,
			}
		}
		asset.LastTransaction = &tx
	}

	return asset
}

func (a *Asset) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   a.ID,
		ResourceType: "asset",
	}
}
