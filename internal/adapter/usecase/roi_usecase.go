package usecase

import (
	"context"
	"fmt"

	"campaign-roi/internal/core/domain"
	"campaign-roi/internal/core/port"
)

// ROIUseCase answers ROI queries over a loaded dataset. It implements
// port.ROIUseCase. The dataset is referenced, not copied; it must not be
// modified while the use case is in service. Every query merges the
// ledgers again, so the use case holds no mutable state and is safe for
// concurrent use.
type ROIUseCase struct {
	data *domain.Dataset
}

// NewROIUseCase creates a use case over data. A nil dataset is allowed;
// every query then fails with port.ErrNotLoaded.
func NewROIUseCase(data *domain.Dataset) *ROIUseCase {
	return &ROIUseCase{data: data}
}

// LoadROIUseCase loads the dataset from src and returns a use case over it.
func LoadROIUseCase(ctx context.Context, src port.DatasetSource) (*ROIUseCase, error) {
	data, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewROIUseCase(data), nil
}

// Summary returns the dashboard KPIs.
func (u *ROIUseCase) Summary() (domain.SummaryReport, error) {
	joined, err := u.joined()
	if err != nil {
		return domain.SummaryReport{}, err
	}
	return Summarize(u.data.Sales, joined)
}

// ROIBy returns ROI grouped by region, campaign type or category.
func (u *ROIUseCase) ROIBy(dim domain.Dimension) ([]domain.AggregateRow, error) {
	switch dim {
	case domain.DimensionRegion, domain.DimensionCampaignType, domain.DimensionCategory:
	default:
		return nil, fmt.Errorf("%w %q", domain.ErrUnknownDimension, dim)
	}
	joined, err := u.joined()
	if err != nil {
		return nil, err
	}
	return Aggregate(joined, dim)
}

// CampaignROI returns ROI per campaign.
func (u *ROIUseCase) CampaignROI() ([]domain.AggregateRow, error) {
	joined, err := u.joined()
	if err != nil {
		return nil, err
	}
	return Aggregate(joined, domain.DimensionCampaign)
}

func (u *ROIUseCase) joined() ([]domain.JoinedRecord, error) {
	if u.data == nil {
		return nil, port.ErrNotLoaded
	}
	return Merge(u.data.Sales, u.data.Campaigns), nil
}
