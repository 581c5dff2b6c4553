package usecase

import (
	"context"
	"fmt"

	"campaign-roi/internal/core/domain"
	"campaign-roi/internal/core/port"
)

// ImportDataset loads a dataset from src and stores it in dst, replacing
// whatever dst held before. It returns the imported dataset.
func ImportDataset(ctx context.Context, src port.DatasetSource, dst port.DatasetWriter) (*domain.Dataset, error) {
	data, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err = dst.Replace(ctx, data); err != nil {
		return nil, fmt.Errorf("store dataset: %w", err)
	}
	return data, nil
}
