package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JoinedRecord attributes a sale to one campaign that covers it. A sale
// covered by several campaigns yields one record per campaign.
type JoinedRecord struct {
	OrderID         string
	OrderDate       time.Time
	Country         string
	ProductCategory string
	Revenue         decimal.Decimal
	CampaignID      string
	CampaignType    string
	MarketingSpend  decimal.Decimal
}

// NewJoinedRecord builds the attribution of s to c.
func NewJoinedRecord(s Sale, c Campaign) JoinedRecord {
	return JoinedRecord{
		OrderID:         s.OrderID,
		OrderDate:       s.OrderDate,
		Country:         s.Country,
		ProductCategory: s.ProductCategory,
		Revenue:         s.Revenue,
		CampaignID:      c.CampaignID,
		CampaignType:    c.CampaignType,
		MarketingSpend:  c.MarketingSpend,
	}
}
