package models

type AssetType struct {
	ID          int     `json:"id,omitempty" db:"asset_type_id"`
	Name        string  `json:"name" binding:"required" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
	AssetCount  int     `json:"asset_count" db:"asset_count"`
}

func (t *AssetType) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   t.ID,
		ResourceType: "asset_type",
	}
}
