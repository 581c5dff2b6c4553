package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"campaign-roi/internal/core/domain"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sale(id, date, country, category, revenue string) domain.Sale {
	return domain.Sale{
		OrderID:         id,
		OrderDate:       day(date),
		Country:         country,
		ProductCategory: category,
		Revenue:         dec(revenue),
	}
}

func campaign(id, region, category, start, end, typ, spend string) domain.Campaign {
	return domain.Campaign{
		CampaignID:            id,
		TargetRegion:          region,
		TargetProductCategory: category,
		StartDate:             day(start),
		EndDate:               day(end),
		CampaignType:          typ,
		MarketingSpend:        dec(spend),
	}
}
