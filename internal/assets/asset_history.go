package assets

import (
	"fmt"

	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// GetAssetHistory returns the full ledger for one asset, newest first,
// with each entry's employee attached.
func (r *AssetsRepository) GetAssetHistory(assetID int) ([]models.Transaction, error) {
	query := r.repository.GoquDBWrapper.
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
		Where(goqu.Ex{"tx.asset_id": assetID}).
		Order(goqu.I("tx.date").Desc(), goqu.I("tx.id").Desc())

	var flatTransactions []models.FlatTransactionRecord
	if err := query.Executor().ScanStructs(&flatTransactions); err != nil {
		return nil, fmt.Errorf("unable to select asset history: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(flatTransactions))
	for _, flat := range flatTransactions {
		transactions = append(transactions, flat.TransformToTransaction())
	}

	return transactions, nil
}
