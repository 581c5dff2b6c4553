package usecase

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"campaign-roi/internal/core/domain"
	"campaign-roi/internal/core/port"
)

var hundred = decimal.NewFromInt(100)

// ROI returns (revenue - spend) / spend * 100. It fails with
// port.ErrZeroSpend when spend is zero instead of producing an infinite or
// undefined ratio.
func ROI(revenue, spend decimal.Decimal) (decimal.Decimal, error) {
	if spend.IsZero() {
		return decimal.Zero, port.ErrZeroSpend
	}
	return revenue.Sub(spend).Mul(hundred).Div(spend), nil
}

type group struct {
	row       domain.AggregateRow
	campaigns map[string]struct{}
}

// Aggregate groups records by dim and computes the ROI of every group.
//
// Revenue is summed over the group. For DimensionCampaign the spend is the
// campaign's own spend, taken from its first record. For the other
// dimensions the spend of each distinct campaign in the group is added once,
// however many records that campaign contributes.
//
// Rows are sorted by key. A group with zero spend aborts the aggregation
// with a *port.ZeroSpendError.
func Aggregate(records []domain.JoinedRecord, dim domain.Dimension) ([]domain.AggregateRow, error) {
	groups := make(map[string]*group)
	for _, r := range records {
		key := dim.Key(r)
		g, ok := groups[key]
		if !ok {
			g = &group{
				row:       domain.AggregateRow{Dimension: dim, Key: key},
				campaigns: make(map[string]struct{}),
			}
			if dim == domain.DimensionCampaign {
				g.row.MarketingSpend = r.MarketingSpend
				g.row.CampaignType = r.CampaignType
				g.row.Country = r.Country
				g.row.ProductCategory = r.ProductCategory
			}
			groups[key] = g
		}

		g.row.Revenue = g.row.Revenue.Add(r.Revenue)
		g.row.Records++
		if _, seen := g.campaigns[r.CampaignID]; seen {
			continue
		}
		g.campaigns[r.CampaignID] = struct{}{}
		g.row.Campaigns++
		if dim != domain.DimensionCampaign {
			g.row.MarketingSpend = g.row.MarketingSpend.Add(r.MarketingSpend)
		}
	}

	rows := make([]domain.AggregateRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, g.row)
	}
	slices.SortFunc(rows, func(a, b domain.AggregateRow) int {
		return strings.Compare(a.Key, b.Key)
	})

	for i := range rows {
		roi, err := ROI(rows[i].Revenue, rows[i].MarketingSpend)
		if err != nil {
			return nil, &port.ZeroSpendError{Dimension: dim, Key: rows[i].Key, Records: rows[i].Records}
		}
		rows[i].ROI = roi
	}
	return rows, nil
}
