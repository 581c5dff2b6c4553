package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign represents a marketing campaign targeting one region and one
// product category for an inclusive date range. MarketingSpend is the
// total spend of the campaign and is constant for its lifetime.
type Campaign struct {
	CampaignID            string
	TargetRegion          string
	TargetProductCategory string
	StartDate             time.Time
	EndDate               time.Time
	CampaignType          string // Social, Email, Search, ...
	MarketingSpend        decimal.Decimal
}

// Active reports whether the campaign runs on the given date. Both ends of
// the range are inclusive.
func (c Campaign) Active(date time.Time) bool {
	return !date.Before(c.StartDate) && !date.After(c.EndDate)
}
