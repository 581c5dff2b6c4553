// Package tabular reads and writes the sales and campaign ledgers as CSV or
// XLSX files.
package tabular

import (
	"context"

	"campaign-roi/internal/core/domain"
)

// FileSource loads the two ledgers from files. It implements
// port.DatasetSource. The file format is picked from the extension: .xlsx
// and .xlsm are read with excelize (first sheet), anything else as CSV.
type FileSource struct {
	SalesPath     string
	CampaignsPath string
}

// NewFileSource returns a source reading the given files.
func NewFileSource(salesPath, campaignsPath string) *FileSource {
	return &FileSource{SalesPath: salesPath, CampaignsPath: campaignsPath}
}

// Load reads and validates both files.
func (s *FileSource) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st, err := readTable(s.SalesPath)
	if err != nil {
		return nil, err
	}
	sales, err := parseSales(st)
	if err != nil {
		return nil, err
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	ct, err := readTable(s.CampaignsPath)
	if err != nil {
		return nil, err
	}
	campaigns, err := parseCampaigns(ct)
	if err != nil {
		return nil, err
	}
	return &domain.Dataset{Sales: sales, Campaigns: campaigns}, nil
}
