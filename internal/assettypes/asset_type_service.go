package assettypes

import (
	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"

	"github.com/doug-martin/goqu/v9"
)

type TxRunner func(fn func(tx *goqu.TxDatabase) error) error

// AssetTypeService wraps the delete guard: a type referenced by any asset
// cannot be removed. The count and the delete run in one transaction so a
// concurrently created asset cannot slip in between them.
type AssetTypeService struct {
	r     AssetTypeRepository
	runTx TxRunner
}

func NewService(repo *repository.Repository, r AssetTypeRepository) *AssetTypeService {
	return &AssetTypeService{
		r: r,
		runTx: func(fn func(tx *goqu.TxDatabase) error) error {
			return repository.WithTransaction(repo.GoquDBWrapper, fn)
		},
	}
}

func (s *AssetTypeService) DeleteAssetType(id int) error {
	return s.runTx(func(tx *goqu.TxDatabase) error {
		count, err := s.r.CountAssetsByType(tx, id)
		if err != nil {
			return err
		}

		if count > 0 {
			return &custom_error.ReferencedEntityError{
				Message: "Cannot delete asset type heavily used by assets.",
				Count:   count,
			}
		}

		return s.r.DeleteAssetType(tx, id)
	})
}
