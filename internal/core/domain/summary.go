package domain

import "github.com/shopspring/decimal"

// SummaryReport holds the top-level KPIs of the dashboard.
//
// TotalRevenue only counts attributed revenue (joined records), while
// TopRegions ranks countries by raw revenue over every sale. The two fields
// therefore use different revenue bases; UnattributedSales and
// UnattributedRevenue describe the gap between them.
type SummaryReport struct {
	TotalRevenue        decimal.Decimal
	TotalMarketingSpend decimal.Decimal
	OverallROI          decimal.Decimal
	BestCampaignType    string
	BestCampaignROI     decimal.Decimal
	TopRegions          []RegionRevenue
	UnattributedSales   int
	UnattributedRevenue decimal.Decimal
}

// RegionRevenue is the raw sales revenue of one country.
type RegionRevenue struct {
	Country string
	Revenue decimal.Decimal
}
