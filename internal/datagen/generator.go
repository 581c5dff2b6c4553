// Package datagen generates synthetic sales and campaign ledgers for demos
// and load testing.
package datagen

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"campaign-roi/internal/core/domain"
)

// Regions, categories and campaign types used by generated ledgers.
var (
	Regions       = []string{"USA", "Canada", "Mexico", "Germany", "UK"}
	Categories    = []string{"Electronics", "Clothing", "Home", "Sports", "Books"}
	CampaignTypes = []string{"Social", "Email", "Search", "Display", "Influencer"}
)

// Options controls the size and shape of a generated dataset.
type Options struct {
	// Seed makes generation reproducible. Zero picks a time-based seed.
	Seed uint64
	// Sales and Campaigns are the number of rows per ledger.
	Sales     int
	Campaigns int
	// Year is the calendar year order and campaign dates fall into.
	Year int
}

// DefaultOptions returns options for a small dashboard-sized dataset.
func DefaultOptions() Options {
	return Options{Seed: 42, Sales: 1000, Campaigns: 40, Year: 2024}
}

// Generator produces datasets with gofakeit. It implements
// port.DatasetSource so it can stand in for a real ledger.
type Generator struct {
	faker *gofakeit.Faker
	opts  Options
}

// NewGenerator creates a generator. Zero-valued options fall back to
// DefaultOptions.
func NewGenerator(opts Options) *Generator {
	def := DefaultOptions()
	if opts.Sales <= 0 {
		opts.Sales = def.Sales
	}
	if opts.Campaigns <= 0 {
		opts.Campaigns = def.Campaigns
	}
	if opts.Year <= 0 {
		opts.Year = def.Year
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{faker: gofakeit.New(seed), opts: opts}
}

// Load generates a new dataset. Successive calls continue the same random
// stream and so return different data.
func (g *Generator) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	yearStart := time.Date(g.opts.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, -1)

	campaigns := make([]domain.Campaign, 0, g.opts.Campaigns)
	for i := 0; i < g.opts.Campaigns; i++ {
		start := g.faker.DateRange(yearStart, yearEnd.AddDate(0, 0, -7))
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, g.faker.IntRange(7, 60))
		if end.After(yearEnd) {
			end = yearEnd
		}
		campaigns = append(campaigns, domain.Campaign{
			CampaignID:            fmt.Sprintf("CMP-%03d", i+1),
			TargetRegion:          g.faker.RandomString(Regions),
			TargetProductCategory: g.faker.RandomString(Categories),
			StartDate:             start,
			EndDate:               end,
			CampaignType:          g.faker.RandomString(CampaignTypes),
			MarketingSpend:        g.amount(500, 20000),
		})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sales := make([]domain.Sale, 0, g.opts.Sales)
	for i := 0; i < g.opts.Sales; i++ {
		date := g.faker.DateRange(yearStart, yearEnd)
		sales = append(sales, domain.Sale{
			OrderID:         fmt.Sprintf("ORD-%06d", i+1),
			OrderDate:       time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			Country:         g.faker.RandomString(Regions),
			ProductCategory: g.faker.RandomString(Categories),
			Revenue:         g.amount(10, 5000),
		})
	}
	return &domain.Dataset{Sales: sales, Campaigns: campaigns}, nil
}

// amount returns a random price in [min, max] rounded to cents.
func (g *Generator) amount(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Price(min, max)).Round(2)
}
