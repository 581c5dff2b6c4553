package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"campaign-roi/internal/core/domain"
)

// FileWriter stores a dataset as two files in the layout FileSource reads.
// It implements port.DatasetWriter.
type FileWriter struct {
	SalesPath     string
	CampaignsPath string
}

// NewFileWriter returns a writer for the given files.
func NewFileWriter(salesPath, campaignsPath string) *FileWriter {
	return &FileWriter{SalesPath: salesPath, CampaignsPath: campaignsPath}
}

// Replace writes both files. Each file is written to a temporary file in
// the same directory and renamed over the target, so readers never observe
// a partially written ledger.
func (w *FileWriter) Replace(ctx context.Context, ds *domain.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeTable(w.SalesPath, salesColumns, saleRows(ds.Sales)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeTable(w.CampaignsPath, campaignColumns, campaignRows(ds.Campaigns))
}

// row is one output line; amounts stay typed so spreadsheets get numbers.
type row []any

func saleRows(sales []domain.Sale) []row {
	rows := make([]row, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, row{
			s.OrderID, s.OrderDate.Format(time.DateOnly), s.Country, s.ProductCategory, s.Revenue,
		})
	}
	return rows
}

func campaignRows(campaigns []domain.Campaign) []row {
	rows := make([]row, 0, len(campaigns))
	for _, c := range campaigns {
		rows = append(rows, row{
			c.CampaignID, c.TargetRegion, c.TargetProductCategory,
			c.StartDate.Format(time.DateOnly), c.EndDate.Format(time.DateOnly),
			c.CampaignType, c.MarketingSpend,
		})
	}
	return rows
}

func writeTable(path string, header []string, rows []row) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*"+ext)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	switch ext {
	case ".xlsx", ".xlsm":
		err = encodeXLSX(tmp, header, rows)
	default:
		err = encodeCSV(tmp, header, rows)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func encodeCSV(w io.Writer, header []string, rows []row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := make([]string, len(header))
	for _, r := range rows {
		for i, v := range r {
			rec[i] = fmt.Sprint(v)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func encodeXLSX(w io.Writer, header []string, rows []row) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	values := make([]any, len(header))
	for i, h := range header {
		values[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &values); err != nil {
		return err
	}
	for n, r := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return err
		}
		values := make([]any, len(r))
		for i, v := range r {
			if d, ok := v.(decimal.Decimal); ok {
				v = d.InexactFloat64()
			}
			values[i] = v
		}
		if err = f.SetSheetRow(sheet, cellName, &values); err != nil {
			return err
		}
	}
	return f.Write(w)
}
