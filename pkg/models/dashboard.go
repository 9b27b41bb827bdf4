package models

type DashboardStats struct {
	TotalAssets int `json:"total_assets"`
	Available   int `json:"available"`
	InUse       int `json:"in_use"`
	Maintenance int `json:"maintenance"`
}
