package operations

import (
	"fmt"
	"time"

	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/metadata"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

type OperationRepository interface {
	GetAssetStatusForUpdate(tx *goqu.TxDatabase, assetID int) (metadata.Status, error)
	UpdateAssetStatus(tx *goqu.TxDatabase, assetID int, status metadata.Status) error
	InsertTransaction(tx *goqu.TxDatabase, assetID, employeeID int, action metadata.Action, date time.Time, notes *string) (int, error)
}

type operationRepository struct {
	Repo *repository.Repository
}

func NewRepository(r *repository.Repository) OperationRepository {
	return &operationRepository{Repo: r}
}

// GetAssetStatusForUpdate reads the asset status under a row lock. Two
// concurrent transitions on the same asset serialize here, so the loser
// re-reads the already-updated status and fails its precondition.
func (r *operationRepository) GetAssetStatusForUpdate(tx *goqu.TxDatabase, assetID int) (metadata.Status, error) {
	var status string

	query := tx.Select("status").
		From("assets").
		Where(goqu.Ex{"id": assetID}).
		ForUpdate(exp.Wait)

	found, err := query.Executor().ScanVal(&status)
	if err != nil {
		return "", fmt.Errorf("failed to read asset status: %w", err)
	}
	if !found {
		return "", &custom_error.NotFoundError{Entity: "asset", ID: assetID}
	}

	return metadata.Status(status), nil
}

func (r *operationRepository) UpdateAssetStatus(tx *goqu.TxDatabase, assetID int, status metadata.Status) error {
	result, err := tx.Update("assets").
		Set(goqu.Record{"status": status.String()}).
		Where(goqu.Ex{"id": assetID}).
		Executor().
		Exec()

	if err != nil {
		return fmt.Errorf("failed to update asset status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &custom_error.NotFoundError{Entity: "asset", ID: assetID}
	}

	return nil
}

// InsertTransaction appends one ledger row. Ledger rows are never
// updated or deleted after this.
func (r *operationRepository) InsertTransaction(tx *goqu.TxDatabase, assetID, employeeID int, action metadata.Action, date time.Time, notes *string) (int, error) {
	var transactionID int

	record := goqu.Record{
		"asset_id":    assetID,
		"employee_id": employeeID,
		"action":      action.String(),
		"date":        date,
	}
	if notes != nil && *notes != "" {
		record["notes"] = *notes
	}

	query := tx.Insert("transactions").
		Rows(record).
		Returning("id")

	if _, err := query.Executor().ScanVal(&transactionID); err != nil {
		return 0, fmt.Errorf("failed to insert transaction record: %w", err)
	}

	return transactionID, nil
}
