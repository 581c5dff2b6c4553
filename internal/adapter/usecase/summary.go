package usecase

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"campaign-roi/internal/core/domain"
	"campaign-roi/internal/core/port"
)

// topRegionCount is the number of countries listed in SummaryReport.TopRegions.
const topRegionCount = 3

// Summarize computes the dashboard KPIs.
//
// Revenue and spend totals cover attributed sales only: revenue is summed
// over joined records and the spend of each distinct campaign is counted
// once. TopRegions ranks countries by the revenue of every sale, attributed
// or not. Sales left out of the totals are counted in UnattributedSales and
// UnattributedRevenue.
func Summarize(sales []domain.Sale, joined []domain.JoinedRecord) (domain.SummaryReport, error) {
	var rep domain.SummaryReport

	campaigns := make(map[string]struct{})
	attributed := make(map[string]struct{})
	for _, r := range joined {
		rep.TotalRevenue = rep.TotalRevenue.Add(r.Revenue)
		attributed[r.OrderID] = struct{}{}
		if _, ok := campaigns[r.CampaignID]; !ok {
			campaigns[r.CampaignID] = struct{}{}
			rep.TotalMarketingSpend = rep.TotalMarketingSpend.Add(r.MarketingSpend)
		}
	}

	overall, err := ROI(rep.TotalRevenue, rep.TotalMarketingSpend)
	if err != nil {
		return domain.SummaryReport{}, &port.ZeroSpendError{Key: port.TotalKey, Records: len(joined)}
	}
	rep.OverallROI = overall

	byType, err := Aggregate(joined, domain.DimensionCampaignType)
	if err != nil {
		return domain.SummaryReport{}, err
	}
	for i, row := range byType {
		if i == 0 || row.ROI.GreaterThan(rep.BestCampaignROI) {
			rep.BestCampaignType = row.Key
			rep.BestCampaignROI = row.ROI
		}
	}

	for _, s := range sales {
		if _, ok := attributed[s.OrderID]; !ok {
			rep.UnattributedSales++
			rep.UnattributedRevenue = rep.UnattributedRevenue.Add(s.Revenue)
		}
	}
	rep.TopRegions = topRegions(sales, topRegionCount)
	return rep, nil
}

// topRegions ranks countries by raw sales revenue, highest first. Equal
// revenues are ordered by country name.
func topRegions(sales []domain.Sale, n int) []domain.RegionRevenue {
	totals := make(map[string]decimal.Decimal)
	for _, s := range sales {
		totals[s.Country] = totals[s.Country].Add(s.Revenue)
	}

	regions := make([]domain.RegionRevenue, 0, len(totals))
	for country, revenue := range totals {
		regions = append(regions, domain.RegionRevenue{Country: country, Revenue: revenue})
	}
	slices.SortFunc(regions, func(a, b domain.RegionRevenue) int {
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}
		return strings.Compare(a.Country, b.Country)
	})

	if len(regions) > n {
		regions = regions[:n]
	}
	return regions
}
