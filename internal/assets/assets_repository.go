package assets

import (
	"fmt"

	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/metadata"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type AssetsRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AssetsRepository {
	return &AssetsRepository{
		repository: r,
	}
}

// getAssetQuery is the shared projection: asset joined with its type and
// the single most recent ledger entry (plus that entry's employee).
// checkOutOnly narrows the joined entry to the latest CHECK_OUT, which
// names the current holder for IN_USE assets.
func (r *AssetsRepository) getAssetQuery(checkOutOnly bool) *goqu.SelectDataset {
	latestTx := r.repository.GoquDBWrapper.
		From(goqu.T("transactions").As("lt")).
		Select("id").
		Where(goqu.I("lt.asset_id").Eq(goqu.I("a.id"))).
		Order(goqu.I("lt.date").Desc(), goqu.I("lt.id").Desc()).
		Limit(1)

	if checkOutOnly {
		latestTx = latestTx.Where(goqu.Ex{"lt.action": metadata.ActionCheckOut.String()})
	}

	return r.repository.GoquDBWrapper.
		Select(
			goqu.I("a.id").As("asset_id"),
			goqu.I("a.code").As("code"),
			goqu.I("a.name").As("name"),
			goqu.I("a.serial_number").As("serial_number"),
			goqu.I("a.price").As("price"),
			goqu.I("a.purchase_date").As("purchase_date"),
			goqu.I("a.status").As("status"),
			goqu.I("a.created_at").As("created_at"),
			goqu.I("t.id").As("type_id"),
			goqu.I("t.name").As("type_name"),
			goqu.I("t.description").As("type_description"),
			goqu.I("tx.id").As("tx_id"),
			goqu.I("tx.action").As("tx_action"),
			goqu.I("tx.date").As("tx_date"),
			goqu.I("tx.notes").As("tx_notes"),
			goqu.I("e.id").As("tx_employee_id"),
			goqu.I("e.first_name").As("tx_first_name"),
			goqu.I("e.last_name").As("tx_last_name"),
			goqu.I("e.email").As("tx_email"),
		).
		From(goqu.T("assets").As("a")).
		InnerJoin(
			goqu.T("asset_types").As("t"),
			goqu.On(goqu.Ex{"a.asset_type_id": goqu.I("t.id")}),
		).
		LeftJoin(
			goqu.T("transactions").As("tx"),
			goqu.On(goqu.I("tx.id").Eq(latestTx)),
		).
		LeftJoin(
			goqu.T("employees").As("e"),
			goqu.On(goqu.Ex{"tx.employee_id": goqu.I("e.id")}),
		)
}

func (r *AssetsRepository) GetAsset(id int) (*models.Asset, error) {
	var flatAsset models.FlatAssetRecord

	query := r.getAssetQuery(false).Where(goqu.Ex{"a.id": id})

	found, err := query.Executor().ScanStruct(&flatAsset)
	if err != nil {
		return nil, fmt.Errorf("unable to select asset from database: %w", err)
	}
	if !found {
		return nil, &custom_error.NotFoundError{Entity: "asset", ID: id}
	}

	asset := flatAsset.TransformToAsset()
	return &asset, nil
}

func (r *AssetsRepository) GetAssetList(filter models.AssetFilter) (*[]models.Asset, error) {
	query := r.getAssetQuery(false)

	if filter.Text != "" {
		pattern := "%" + filter.Text + "%"
		query = query.Where(goqu.Or(
			goqu.I("a.name").ILike(pattern),
			goqu.I("a.code").ILike(pattern),
			goqu.I("a.serial_number").ILike(pattern),
		))
	}
	if filter.Status != "" {
		query = query.Where(goqu.Ex{"a.status": filter.Status})
	}
	if filter.TypeID != 0 {
		query = query.Where(goqu.Ex{"a.asset_type_id": filter.TypeID})
	}

	query = query.Order(goqu.I("a.created_at").Desc())

	return r.scanAssets(query)
}

// GetAssetsBy returns the operational views: status-filtered, ordered by
// code for pick lists rather than by creation time.
func (r *AssetsRepository) GetAssetsBy(conditions repository.QueryBuilder, checkOutOnly bool) (*[]models.Asset, error) {
	aliases := map[string]string{
		"status":  "a.status",
		"type_id": "a.asset_type_id",
	}

	query := r.getAssetQuery(checkOutOnly).
		Where(conditions.BuildConditions(aliases)).
		Order(goqu.I("a.code").Asc())

	return r.scanAssets(query)
}

func (r *AssetsRepository) scanAssets(query *goqu.SelectDataset) (*[]models.Asset, error) {
	var flatAssets []models.FlatAssetRecord
	err := query.Executor().ScanStructs(&flatAssets)
	if err != nil {
		return nil, fmt.Errorf("unable to select assets from database: %w", err)
	}

	var assets []models.Asset
	for _, flatAsset := range flatAssets {
		assets = append(assets, flatAsset.TransformToAsset())
	}

	return &assets, nil
}

func (r *AssetsRepository) PersistAsset(req models.AssetRequest) (*models.Asset, error) {
	var assetID int

	record := goqu.Record{
		"code":          req.Code,
		"name":          req.Name,
		"asset_type_id": req.TypeID,
		"status":        metadata.StatusAvailable.String(),
	}
	if req.SerialNumber != nil {
		record["serial_number"] = *req.SerialNumber
	}
	if req.Price != nil {
		record["price"] = *req.Price
	}
	if req.PurchaseDate != nil {
		record["purchase_date"] = *req.PurchaseDate
	}

	query := r.repository.GoquDBWrapper.Insert("assets").
		Rows(record).
		Returning("id")

	if _, err := query.Executor().ScanVal(&assetID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, custom_error.WrapDBError("Duplicate code for asset", string(pqErr.Code))
		}
		return nil, fmt.Errorf("failed to insert asset record: %w", err)
	}

	return r.GetAsset(assetID)
}

func (r *AssetsRepository) UpdateAsset(id int, req models.AssetRequest) error {
	record := goqu.Record{
		"code":          req.Code,
		"name":          req.Name,
		"asset_type_id": req.TypeID,
	}
	if req.SerialNumber != nil {
		record["serial_number"] = *req.SerialNumber
	} else {
		record["serial_number"] = nil
	}
	if req.Price != nil {
		record["price"] = *req.Price
	} else {
		record["price"] = nil
	}
	if req.PurchaseDate != nil {
		record["purchase_date"] = *req.PurchaseDate
	} else {
		record["purchase_date"] = nil
	}

	result, err := r.repository.GoquDBWrapper.
		Update("assets").
		Set(record).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("Duplicate code for asset", string(pqErr.Code))
		}
		return fmt.Errorf("failed to update asset record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &custom_error.NotFoundError{Entity: "asset", ID: id}
	}

	return nil
}

// ResetStatus puts a non-IN_USE asset back into circulation. IN_USE assets
// must go through check-in instead, so their ledger stays consistent.
func (r *AssetsRepository) ResetStatus(id int, status metadata.Status) error {
	result, err := r.repository.GoquDBWrapper.
		Update("assets").
		Set(goqu.Record{"status": status.String()}).
		Where(goqu.Ex{"id": id}).
		Where(goqu.I("status").Neq(metadata.StatusInUse.String())).
		Executor().
		Exec()

	if err != nil {
		return fmt.Errorf("failed to update asset status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &custom_error.InvalidTransitionError{
			AssetID: id,
			From:    metadata.StatusInUse.String(),
			To:      status.String(),
			Message: "Asset in use must be checked in before its status can change",
		}
	}

	return nil
}

// RemoveAsset deletes the asset row. Ledger rows referencing it are removed
// by the ON DELETE CASCADE on transactions.asset_id.
func (r *AssetsRepository) RemoveAsset(id int) (string, error) {
	var code string

	query := r.repository.GoquDBWrapper.
		Delete("assets").
		Where(goqu.Ex{"id": id}).
		Returning("code")

	found, err := query.Executor().ScanVal(&code)
	if err != nil {
		return "", fmt.Errorf("failed to delete asset: %w", err)
	}
	if !found {
		return "", &custom_error.NotFoundError{Entity: "asset", ID: id}
	}

	return code, nil
}
