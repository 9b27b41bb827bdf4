package models

import "time"

type AssetTypeRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type AssetRequest struct {
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	TypeID       int      `json:"type_id"`
	SerialNumber *string  `json:"serial_number"`
	Price        *float64 `json:"price"`
	PurchaseDate *string  `json:"purchase_date"` // yyyy-mm-dd
}

type EmployeeRequest struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	Department *string `json:"department"`
}

type CheckOutRequest struct {
	AssetID    int        `json:"asset_id"`
	EmployeeID int        `json:"employee_id"`
	Date       *time.Time `json:"date"`
	Notes      *string    `json:"notes"`
}

type CheckInRequest struct {
	AssetID    int        `json:"asset_id"`
	EmployeeID int        `json:"employee_id"`
	NewStatus  string     `json:"new_status"`
	Date       *time.Time `json:"date"`
	Notes      *string    `json:"notes"`
}

type AssetFilter struct {
	Text   string
	Status string
	TypeID int
}
