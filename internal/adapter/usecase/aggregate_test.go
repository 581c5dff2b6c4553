package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-roi/internal/core/domain"
	"campaign-roi/internal/core/port"
)

func TestROI(t *testing.T) {
	tests := []struct {
		revenue, spend, want string
	}{
		{"1200", "1000", "20"},
		{"800", "1000", "-20"},
		{"5000", "1000", "400"},
		{"1000", "1000", "0"},
		{"0", "250", "-100"},
	}
	for _, tt := range tests {
		got, err := ROI(dec(tt.revenue), dec(tt.spend))
		require.NoError(t, err)
		assert.Truef(t, got.Equal(dec(tt.want)), "ROI(%s, %s) = %s, want %s", tt.revenue, tt.spend, got, tt.want)
	}
}

func TestROIZeroSpend(t *testing.T) {
	_, err := ROI(dec("100"), dec("0"))
	assert.ErrorIs(t, err, port.ErrZeroSpend)
}

func fixture() ([]domain.Sale, []domain.Campaign) {
	sales := []domain.Sale{
		sale("1", "2024-03-15", "USA", "Electronics", "5000"),
		sale("2", "2024-03-20", "USA", "Electronics", "1000"),
		sale("3", "2024-03-21", "USA", "Clothing", "300"),
		sale("4", "2024-05-02", "Canada", "Electronics", "900"),
		sale("5", "2024-07-01", "Mexico", "Home", "2500"),
	}
	campaigns := []domain.Campaign{
		campaign("C1", "USA", "Electronics", "2024-03-01", "2024-03-31", "Social", "1000"),
		campaign("C2", "USA", "Clothing", "2024-03-01", "2024-03-31", "Email", "200"),
		campaign("C3", "Canada", "Electronics", "2024-05-01", "2024-05-31", "Social", "600"),
		campaign("C4", "USA", "Electronics", "2024-03-18", "2024-04-30", "Search", "500"),
	}
	return sales, campaigns
}

func TestAggregateByCampaign(t *testing.T) {
	sales, campaigns := fixture()
	records := Merge(sales, campaigns)

	rows, err := Aggregate(records, domain.DimensionCampaign)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	for _, row := range rows {
		var want = dec("0")
		for _, r := range records {
			if r.CampaignID == row.Key {
				want = want.Add(r.Revenue)
			}
		}
		assert.Truef(t, row.Revenue.Equal(want), "campaign %s revenue %s, want %s", row.Key, row.Revenue, want)
	}

	c1 := rows[0]
	assert.Equal(t, "C1", c1.Key)
	assert.Equal(t, domain.DimensionCampaign, c1.Dimension)
	assert.True(t, c1.Revenue.Equal(dec("6000")))
	assert.True(t, c1.MarketingSpend.Equal(dec("1000")))
	assert.True(t, c1.ROI.Equal(dec("500")))
	assert.Equal(t, "Social", c1.CampaignType)
	assert.Equal(t, "USA", c1.Country)
	assert.Equal(t, "Electronics", c1.ProductCategory)
	assert.Equal(t, 2, c1.Records)
	assert.Equal(t, 1, c1.Campaigns)
}

func TestAggregateCountsCampaignSpendOnce(t *testing.T) {
	sales, campaigns := fixture()
	records := Merge(sales, campaigns)

	rows, err := Aggregate(records, domain.DimensionRegion)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	canada, usa := rows[0], rows[1]
	assert.Equal(t, "Canada", canada.Key)
	assert.True(t, canada.MarketingSpend.Equal(dec("600")))

	// C1 contributes two records and C4 one; each spend counts once.
	assert.Equal(t, "USA", usa.Key)
	assert.Equal(t, 4, usa.Records)
	assert.Equal(t, 3, usa.Campaigns)
	assert.True(t, usa.Revenue.Equal(dec("7300")), usa.Revenue.String())
	assert.True(t, usa.MarketingSpend.Equal(dec("1700")), usa.MarketingSpend.String())
	assert.Empty(t, usa.CampaignType)
}

func TestAggregateByCategoryAndType(t *testing.T) {
	sales, campaigns := fixture()
	records := Merge(sales, campaigns)

	byCategory, err := Aggregate(records, domain.DimensionCategory)
	require.NoError(t, err)
	require.Len(t, byCategory, 2)
	assert.Equal(t, "Clothing", byCategory[0].Key)
	assert.True(t, byCategory[0].ROI.Equal(dec("50")))
	assert.Equal(t, "Electronics", byCategory[1].Key)
	assert.True(t, byCategory[1].MarketingSpend.Equal(dec("2100")))

	byType, err := Aggregate(records, domain.DimensionCampaignType)
	require.NoError(t, err)
	keys := make([]string, 0, len(byType))
	for _, row := range byType {
		keys = append(keys, row.Key)
	}
	assert.Equal(t, []string{"Email", "Search", "Social"}, keys)
}

func TestAggregateZeroSpend(t *testing.T) {
	records := Merge(
		[]domain.Sale{sale("1", "2024-03-15", "USA", "Electronics", "5000")},
		[]domain.Campaign{campaign("FREE", "USA", "Electronics", "2024-03-01", "2024-03-31", "Referral", "0")},
	)

	for _, dim := range []domain.Dimension{
		domain.DimensionCampaign, domain.DimensionRegion, domain.DimensionCampaignType, domain.DimensionCategory,
	} {
		rows, err := Aggregate(records, dim)
		assert.Nil(t, rows)
		require.ErrorIs(t, err, port.ErrZeroSpend)

		var zs *port.ZeroSpendError
		require.True(t, errors.As(err, &zs))
		assert.Equal(t, dim, zs.Dimension)
	}
}

func TestAggregateEndToEndSocial(t *testing.T) {
	records := Merge(
		[]domain.Sale{sale("1", "2024-03-15", "USA", "Electronics", "5000")},
		[]domain.Campaign{campaign("C1", "USA", "Electronics", "2024-03-01", "2024-03-31", "Social", "1000")},
	)
	require.Len(t, records, 1)

	rows, err := Aggregate(records, domain.DimensionCampaignType)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Social", rows[0].Key)
	assert.True(t, rows[0].Revenue.Equal(dec("5000")))
	assert.True(t, rows[0].MarketingSpend.Equal(dec("1000")))
	assert.True(t, rows[0].ROI.Equal(dec("400")))
}

func TestAggregateEmpty(t *testing.T) {
	rows, err := Aggregate(nil, domain.DimensionRegion)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
