package dashboard

import (
	"assettrack/pkg/metadata"
	"assettrack/pkg/models"
)

type DashboardService struct {
	r DashboardRepository
}

func NewService(r DashboardRepository) *DashboardService {
	return &DashboardService{r: r}
}

// GetStats runs four independent counts. They are not taken under one
// snapshot, so concurrent transitions may skew single counts slightly.
func (s *DashboardService) GetStats() (*models.DashboardStats, error) {
	total, err := s.r.CountAssets()
	if err != nil {
		return nil, err
	}

	available, err := s.r.CountAssetsByStatus(metadata.StatusAvailable)
	if err != nil {
		return nil, err
	}

	inUse, err := s.r.CountAssetsByStatus(metadata.StatusInUse)
	if err != nil {
		return nil, err
	}

	maintenance, err := s.r.CountAssetsByStatus(metadata.StatusMaintenance)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalAssets: total,
		Available:   available,
		InUse:       inUse,
		Maintenance: maintenance,
	}, nil
}
