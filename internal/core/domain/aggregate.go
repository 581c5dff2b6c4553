package domain

import "github.com/shopspring/decimal"

// AggregateRow is the ROI of one group of joined records.
//
// For per-campaign rows MarketingSpend is the campaign's own spend and
// CampaignType, Country and ProductCategory describe the campaign. For the
// other dimensions MarketingSpend is the sum over the distinct campaigns in
// the group and the descriptive fields are empty.
type AggregateRow struct {
	Dimension      Dimension
	Key            string
	Revenue        decimal.Decimal
	MarketingSpend decimal.Decimal
	ROI            decimal.Decimal

	CampaignType    string
	Country         string
	ProductCategory string

	Records   int // joined records in the group
	Campaigns int // distinct campaigns in the group
}
