package tabular

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"campaign-roi/internal/core/domain"
)

// Column names of the input files.
const (
	ColOrderID         = "OrderID"
	ColOrderDate       = "OrderDate"
	ColCountry         = "Country"
	ColProductCategory = "ProductCategory"
	ColRevenue         = "Revenue"

	ColCampaignID            = "Campaign_ID"
	ColTargetRegion          = "Target_Region"
	ColTargetProductCategory = "Target_Product_Category"
	ColStartDate             = "Start_Date"
	ColEndDate               = "End_Date"
	ColCampaignType          = "Campaign_Type"
	ColMarketingSpend        = "Marketing_Spend"
)

var (
	salesColumns = []string{ColOrderID, ColOrderDate, ColCountry, ColProductCategory, ColRevenue}

	campaignColumns = []string{
		ColCampaignID, ColTargetRegion, ColTargetProductCategory,
		ColStartDate, ColEndDate, ColCampaignType, ColMarketingSpend,
	}
)

// dateLayouts are tried in order. Time of day, when present, is dropped.
// Month and day may be written without zero padding.
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"2006-1-2",
	"2006/1/2",
	"1/2/2006",
}

func parseSales(t *table) ([]domain.Sale, error) {
	col, err := t.columns(salesColumns)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.Sale, 0, len(t.rows))
	seen := make(map[string]struct{}, len(t.rows))
	for i, row := range t.rows {
		n := t.nums[i]
		s := domain.Sale{
			OrderID:         cell(row, col[ColOrderID]),
			Country:         cell(row, col[ColCountry]),
			ProductCategory: cell(row, col[ColProductCategory]),
		}
		if s.OrderID == "" {
			return nil, t.errorf(n, ColOrderID, "empty value")
		}
		if _, dup := seen[s.OrderID]; dup {
			return nil, t.errorf(n, ColOrderID, "duplicate id %q", s.OrderID)
		}
		seen[s.OrderID] = struct{}{}

		if s.OrderDate, err = t.date(row, n, col, ColOrderDate); err != nil {
			return nil, err
		}
		if s.Revenue, err = t.amount(row, n, col, ColRevenue); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, nil
}

func parseCampaigns(t *table) ([]domain.Campaign, error) {
	col, err := t.columns(campaignColumns)
	if err != nil {
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(t.rows))
	seen := make(map[string]struct{}, len(t.rows))
	for i, row := range t.rows {
		n := t.nums[i]
		c := domain.Campaign{
			CampaignID:            cell(row, col[ColCampaignID]),
			TargetRegion:          cell(row, col[ColTargetRegion]),
			TargetProductCategory: cell(row, col[ColTargetProductCategory]),
			CampaignType:          cell(row, col[ColCampaignType]),
		}
		if c.CampaignID == "" {
			return nil, t.errorf(n, ColCampaignID, "empty value")
		}
		if _, dup := seen[c.CampaignID]; dup {
			return nil, t.errorf(n, ColCampaignID, "duplicate id %q", c.CampaignID)
		}
		seen[c.CampaignID] = struct{}{}

		if c.StartDate, err = t.date(row, n, col, ColStartDate); err != nil {
			return nil, err
		}
		if c.EndDate, err = t.date(row, n, col, ColEndDate); err != nil {
			return nil, err
		}
		if c.EndDate.Before(c.StartDate) {
			return nil, t.errorf(n, ColEndDate, "end date %s before start date %s",
				c.EndDate.Format(time.DateOnly), c.StartDate.Format(time.DateOnly))
		}
		if c.MarketingSpend, err = t.amount(row, n, col, ColMarketingSpend); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}

func (t *table) date(row []string, n int, col map[string]int, name string) (time.Time, error) {
	v := cell(row, col[name])
	if v == "" {
		return time.Time{}, t.errorf(n, name, "empty value")
	}
	if d, ok := parseDate(v, t.serialDates); ok {
		return d, nil
	}
	return time.Time{}, t.errorf(n, name, "unparsable date %q", v)
}

func (t *table) amount(row []string, n int, col map[string]int, name string) (decimal.Decimal, error) {
	v := cell(row, col[name])
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, t.errorf(n, name, "invalid amount %q", v)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, t.errorf(n, name, "negative amount %s", v)
	}
	return d, nil
}

// parseDate parses v as a calendar date. With serial set, plain numbers are
// read as Excel serial dates.
func parseDate(v string, serial bool) (time.Time, bool) {
	if serial {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			t, err := excelize.ExcelDateToTime(f, false)
			if err != nil {
				return time.Time{}, false
			}
			return calendarDate(t), true
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return calendarDate(t), true
		}
	}
	return time.Time{}, false
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
