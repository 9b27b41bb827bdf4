package assettypes

import (
	"fmt"

	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type AssetTypeRepository interface {
	GetAssetTypes() (*[]models.AssetType, error)
	GetAssetType(id int) (*models.AssetType, error)
	PersistAssetType(req models.AssetTypeRequest) (*models.AssetType, error)
	UpdateAssetType(id int, req models.AssetTypeRequest) error
	CountAssetsByType(tx *goqu.TxDatabase, typeID int) (int, error)
	DeleteAssetType(tx *goqu.TxDatabase, typeID int) error
}

type assetTypeRepository struct {
	Repo *repository.Repository
}

func NewRepository(r *repository.Repository) AssetTypeRepository {
	return &assetTypeRepository{Repo: r}
}

func (r *assetTypeRepository) GetAssetTypes() (*[]models.AssetType, error) {
	query := r.Repo.GoquDBWrapper.
		Select(
			goqu.I("t.id").As("asset_type_id"),
			goqu.I("t.name").As("name"),
			goqu.I("t.description").As("description"),
			goqu.COUNT(goqu.I("a.id")).As("asset_count"),
		).
		From(goqu.T("asset_types").As("t")).
		LeftJoin(
			goqu.T("assets").As("a"),
			goqu.On(goqu.Ex{"a.asset_type_id": goqu.I("t.id")}),
		).
		GroupBy(goqu.I("t.id"), goqu.I("t.name"), goqu.I("t.description")).
		Order(goqu.I("t.name").Asc())

	var assetTypes []models.AssetType
	if err := query.Executor().ScanStructs(&assetTypes); err != nil {
		return nil, fmt.Errorf("unable to select asset types from database: %w", err)
	}

	return &assetTypes, nil
}

func (r *assetTypeRepository) GetAssetType(id int) (*models.AssetType, error) {
	var assetType models.AssetType

	query := r.Repo.GoquDBWrapper.
		Select(
			goqu.I("id").As("asset_type_id"),
			"name",
			"description",
		).
		From("asset_types").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&assetType)
	if err != nil {
		return nil, fmt.Errorf("unable to select asset type: %w", err)
	}
	if !found {
		return nil, &custom_error.NotFoundError{Entity: "asset type", ID: id}
	}

	return &assetType, nil
}

func (r *assetTypeRepository) PersistAssetType(req models.AssetTypeRequest) (*models.AssetType, error) {
	assetType := models.AssetType{
		Name:        req.Name,
		Description: req.Description,
	}

	record := goqu.Record{"name": req.Name}
	if req.Description != nil {
		record["description"] = *req.Description
	}

	query := r.Repo.GoquDBWrapper.Insert("asset_types").
		Rows(record).
		Returning("id")

	if _, err := query.Executor().ScanVal(&assetType.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, custom_error.WrapDBError("Duplicate name for asset type", string(pqErr.Code))
		}
		return nil, fmt.Errorf("failed to insert asset type record: %w", err)
	}

	return &assetType, nil
}

func (r *assetTypeRepository) UpdateAssetType(id int, req models.AssetTypeRequest) error {
	record := goqu.Record{"name": req.Name}
	if req.Description != nil {
		record["description"] = *req.Description
	} else {
		record["description"] = nil
	}

	result, err := r.Repo.GoquDBWrapper.
		Update("asset_types").
		Set(record).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("Duplicate name for asset type", string(pqErr.Code))
		}
		return fmt.Errorf("failed to update asset type record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &custom_error.NotFoundError{Entity: "asset type", ID: id}
	}

	return nil
}

func (r *assetTypeRepository) CountAssetsByType(tx *goqu.TxDatabase, typeID int) (int, error) {
	var count int

	query := tx.Select(goqu.COUNT("id")).
		From("assets").
		Where(goqu.Ex{"asset_type_id": typeID})

	if _, err := query.Executor().ScanVal(&count); err != nil {
		return 0, fmt.Errorf("failed to count dependent assets: %w", err)
	}

	return count, nil
}

func (r *assetTypeRepository) DeleteAssetType(tx *goqu.TxDatabase, typeID int) error {
	result, err := tx.Delete("asset_types").
		Where(goqu.Ex{"id": typeID}).
		Executor().
		Exec()

	if err != nil {
		return fmt.Errorf("failed to delete asset type: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &custom_error.NotFoundError{Entity: "asset type", ID: typeID}
	}

	return nil
}
