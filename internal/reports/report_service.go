package reports

import (
	"bytes"
	"fmt"

	"assettrack/pkg/models"

	"github.com/xuri/excelize/v2"
)

type AssetLister interface {
	GetAssetList(filter models.AssetFilter) (*[]models.Asset, error)
}

type ReportService struct {
	assets AssetLister
}

func NewService(assets AssetLister) *ReportService {
	return &ReportService{assets: assets}
}

var registerHeader = []string{"Code", "Name", "Type", "Serial Number", "Status", "Price", "Purchase Date", "Current Holder"}

// BuildAssetRegister renders the full asset list into an XLSX workbook.
func (s *ReportService) BuildAssetRegister() (*bytes.Buffer, error) {
	assetList, err := s.assets.GetAssetList(models.AssetFilter{})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Assets"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range registerHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, asset := range *assetList {
		row := i + 2
		values := []interface{}{
			asset.Code,
			asset.Name,
			asset.Type.Name,
			deref(asset.SerialNumber),
			asset.Status,
			priceValue(asset.Price),
			purchaseDate(asset),
			holderName(asset),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	return f.WriteToBuffer()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func priceValue(p *float64) interface{} {
	if p == nil {
		return ""
	}
	return *p
}

func purchaseDate(asset models.Asset) string {
	if asset.PurchaseDate == nil {
		return ""
	}
	return asset.PurchaseDate.Format("2006-01-02")
}

// holderName resolves the current holder from the latest CHECK_OUT entry:
// only meaningful while the asset is IN_USE.
func holderName(asset models.Asset) string {
	if asset.Status != "IN_USE" || asset.LastTransaction == nil || asset.LastTransaction.Employee == nil {
		return ""
	}
	e := asset.LastTransaction.Employee
	return e.FirstName + " " + e.LastName
}
