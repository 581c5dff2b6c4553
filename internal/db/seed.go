package db

import (
	"context"

	"campaign-roi/internal/config/configs"
	"campaign-roi/internal/core/domain"
	"campaign-roi/internal/core/port"
	"campaign-roi/internal/datagen"
)

// Seed generates a demo dataset from cfg and stores it with w, replacing
// any previous ledgers. The same cfg always yields the same dataset.
func Seed(ctx context.Context, w port.DatasetWriter, cfg configs.Seed) (*domain.Dataset, error) {
	gen := datagen.NewGenerator(datagen.Options{
		Seed:      cfg.Value,
		Sales:     cfg.Sales,
		Campaigns: cfg.Campaigns,
		Year:      cfg.Year,
	})
	ds, err := gen.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err = w.Replace(ctx, ds); err != nil {
		return nil, err
	}
	return ds, nil
}
