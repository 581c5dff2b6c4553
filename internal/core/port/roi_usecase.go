package port

import "campaign-roi/internal/core/domain"

// ROIUseCase defines the ROI queries exposed to the presentation layer. This
// interface represents the primary port into the application domain. Every
// call recomputes its result from the loaded dataset; none of them perform
// I/O. Mock implementations can be generated from this interface for
// testing.
type ROIUseCase interface {
	// Summary returns the dashboard KPIs.
	Summary() (domain.SummaryReport, error)

	// ROIBy returns one row per value of the given dimension. Only the
	// region, campaign-type and category dimensions are accepted.
	ROIBy(dim domain.Dimension) ([]domain.AggregateRow, error)

	// CampaignROI returns one row per campaign with at least one attributed
	// sale.
	CampaignROI() ([]domain.AggregateRow, error)
}
