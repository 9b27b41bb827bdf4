package operations

import (
	"time"

	"assettrack/internal/assets"
	"assettrack/internal/repository"
	"assettrack/pkg/auditlog"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/metadata"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type TxRunner func(fn func(tx *goqu.TxDatabase) error) error

type AssetReader interface {
	GetAssetsBy(conditions repository.QueryBuilder, checkOutOnly bool) (*[]models.Asset, error)
}

type AuditLogger interface {
	Log(action string, data interface{}, item auditlog.Auditable)
}

// OperationService owns the asset lifecycle: an asset moves
// AVAILABLE -> IN_USE through CheckOut and IN_USE -> {AVAILABLE,
// MAINTENANCE, RETIRED} through CheckIn. Each transition commits the
// status write and the ledger append as one transaction.
type OperationService struct {
	or       OperationRepository
	ar       AssetReader
	auditLog AuditLogger
	runTx    TxRunner
}

func NewService(r *repository.Repository, or OperationRepository, ar *assets.AssetsRepository, a AuditLogger) *OperationService {
	return &OperationService{
		or:       or,
		ar:       ar,
		auditLog: a,
		runTx: func(fn func(tx *goqu.TxDatabase) error) error {
			return repository.WithTransaction(r.GoquDBWrapper, fn)
		},
	}
}

func (s *OperationService) CheckOut(req models.CheckOutRequest) (*models.Transaction, error) {
	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	record := models.Transaction{
		AssetID:    req.AssetID,
		EmployeeID: req.EmployeeID,
		Action:     metadata.ActionCheckOut.String(),
		Date:       date,
		Notes:      req.Notes,
	}

	err := s.runTx(func(tx *goqu.TxDatabase) error {
		status, err := s.or.GetAssetStatusForUpdate(tx, req.AssetID)
		if err != nil {
			return err
		}

		if status != metadata.StatusAvailable {
			return &custom_error.InvalidTransitionError{
				AssetID: req.AssetID,
				From:    status.String(),
				To:      metadata.StatusInUse.String(),
				Message: "Asset is not available for checkout",
			}
		}

		if err := s.or.UpdateAssetStatus(tx, req.AssetID, metadata.StatusInUse); err != nil {
			return err
		}

		record.ID, err = s.or.InsertTransaction(tx, req.AssetID, req.EmployeeID, metadata.ActionCheckOut, date, req.Notes)
		return err
	})

	if err != nil {
		return nil, err
	}

	asset := models.Asset{ID: req.AssetID}
	go s.auditLog.Log(
		"check_out",
		map[string]interface{}{
			"employee_id":    req.EmployeeID,
			"transaction_id": record.ID,
			"msg":            "Asset checked out",
		},
		&asset,
	)

	return &record, nil
}

func (s *OperationService) CheckIn(req models.CheckInRequest) (*models.Transaction, error) {
	newStatus, err := metadata.NewStatus(req.NewStatus)
	if err != nil {
		return nil, &custom_error.InvalidTransitionError{
			AssetID: req.AssetID,
			From:    metadata.StatusInUse.String(),
			To:      req.NewStatus,
			Message: "Invalid status for check-in: " + req.NewStatus,
		}
	}
	if !newStatus.IsCheckInTarget() {
		return nil, &custom_error.InvalidTransitionError{
			AssetID: req.AssetID,
			From:    metadata.StatusInUse.String(),
			To:      newStatus.String(),
			Message: "Invalid status for check-in: " + newStatus.String(),
		}
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	record := models.Transaction{
		AssetID:    req.AssetID,
		EmployeeID: req.EmployeeID,
		Action:     metadata.ActionCheckIn.String(),
		Date:       date,
		Notes:      req.Notes,
	}

	err = s.runTx(func(tx *goqu.TxDatabase) error {
		status, err := s.or.GetAssetStatusForUpdate(tx, req.AssetID)
		if err != nil {
			return err
		}

		if status != metadata.StatusInUse {
			return &custom_error.InvalidTransitionError{
				AssetID: req.AssetID,
				From:    status.String(),
				To:      newStatus.String(),
				Message: "Asset is not currently in use",
			}
		}

		if err := s.or.UpdateAssetStatus(tx, req.AssetID, newStatus); err != nil {
			return err
		}

		record.ID, err = s.or.InsertTransaction(tx, req.AssetID, req.EmployeeID, metadata.ActionCheckIn, date, req.Notes)
		return err
	})

	if err != nil {
		return nil, err
	}

	asset := models.Asset{ID: req.AssetID}
	go s.auditLog.Log(
		"check_in",
		map[string]interface{}{
			"employee_id":    req.EmployeeID,
			"new_status":     newStatus.String(),
			"transaction_id": record.ID,
			"msg":            "Asset checked in",
		},
		&asset,
	)

	return &record, nil
}

// GetAvailableAssets lists checkout candidates, ordered by code.
func (s *OperationService) GetAvailableAssets() (*[]models.Asset, error) {
	conditions := repository.NewQueryBuilder()
	conditions.AddCondition("status", metadata.StatusAvailable.String())

	return s.ar.GetAssetsBy(conditions, false)
}

// GetAssetsInUse lists check-in candidates with the latest CHECK_OUT
// entry joined in; that entry's employee is the current holder.
func (s *OperationService) GetAssetsInUse() (*[]models.Asset, error) {
	conditions := repository.NewQueryBuilder()
	conditions.AddCondition("status", metadata.StatusInUse.String())

	return s.ar.GetAssetsBy(conditions, true)
}
