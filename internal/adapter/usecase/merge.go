package usecase

import "campaign-roi/internal/core/domain"

// campaignKey is the exact-match part of the attribution rule.
type campaignKey struct {
	region   string
	category string
}

// campaignIndex buckets campaigns by target region and product category.
// Buckets keep ledger order, so a lookup yields candidates in the same order
// a scan over the whole ledger would.
type campaignIndex map[campaignKey][]domain.Campaign

func newCampaignIndex(campaigns []domain.Campaign) campaignIndex {
	idx := make(campaignIndex)
	for _, c := range campaigns {
		k := campaignKey{region: c.TargetRegion, category: c.TargetProductCategory}
		idx[k] = append(idx[k], c)
	}
	return idx
}

// Merge attributes every sale to each campaign that targets the sale's
// country and product category and is active on the order date. A sale
// covered by n campaigns produces n records; a sale covered by none produces
// nothing and is left out of every ROI figure.
//
// Records are emitted in sale order, then campaign ledger order.
func Merge(sales []domain.Sale, campaigns []domain.Campaign) []domain.JoinedRecord {
	idx := newCampaignIndex(campaigns)

	var records []domain.JoinedRecord
	for _, s := range sales {
		for _, c := range idx[campaignKey{region: s.Country, category: s.ProductCategory}] {
			if c.Active(s.OrderDate) {
				records = append(records, domain.NewJoinedRecord(s, c))
			}
		}
	}
	return records
}
