package dashboard

import (
	"fmt"

	"assettrack/internal/repository"
	"assettrack/pkg/metadata"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type DashboardRepository interface {
	CountAssets() (int, error)
	CountAssetsByStatus(status metadata.Status) (int, error)
	GetRecentTransactions(limit uint) ([]models.Transaction, error)
}

type dashboardRepository struct {
	Repo *repository.Repository
}

func NewRepository(r *repository.Repository) DashboardRepository {
	return &dashboardRepository{Repo: r}
}

func (r *dashboardRepository) CountAssets() (int, error) {
	var count int

	query := r.Repo.GoquDBWrapper.Select(goqu.COUNT("id")).From("assets")
	if _, err := query.Executor().ScanVal(&count); err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}

	return count, nil
}

func (r *dashboardRepository) CountAssetsByStatus(status metadata.Status) (int, error) {
	var count int

	query := r.Repo.GoquDBWrapper.
		Select(goqu.COUNT("id")).
		From("assets").
		Where(goqu.Ex{"status": status.String()})

	if _, err := query.Executor().ScanVal(&count); err != nil {
		return 0, fmt.Errorf("failed to count assets by status: %w", err)
	}

	return count, nil
}

func (r *dashboardRepository) GetRecentTransactions(limit uint) ([]models.Transaction, error) {
	query := r.Repo.GoquDBWrapper.
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
		Order(goqu.I("tx.date").Desc(), goqu.I("tx.id").Desc()).
		Limit(limit)

	var flatTransactions []models.FlatTransactionRecord
	if err := query.Executor().ScanStructs(&flatTransactions); err != nil {
		return nil, fmt.Errorf("unable to select recent transactions: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(flatTransactions))
	for _, flat := range flatTransactions {
		transactions = append(transactions, flat.TransformToTransaction())
	}

	return transactions, nil
}
