package port

import (
	"context"

	"campaign-roi/internal/core/domain"
)

// DatasetSource loads the sales and campaign ledgers. It is an outbound port
// in hexagonal architecture. Implementations validate their input and
// return a *LoadError for missing or malformed data.
type DatasetSource interface {
	// Load reads both ledgers into a new Dataset. The returned Dataset is
	// owned by the caller and treated as read-only.
	Load(ctx context.Context) (*domain.Dataset, error)
}

// DatasetWriter stores a dataset so that a DatasetSource can load it later.
type DatasetWriter interface {
	// Replace atomically swaps the stored ledgers for the given dataset.
	Replace(ctx context.Context, ds *domain.Dataset) error
}
