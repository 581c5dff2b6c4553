package domain

import (
	"errors"
	"fmt"
)

// Dimension names a grouping key for ROI aggregation.
type Dimension string

const (
	DimensionCampaign     Dimension = "campaign"
	DimensionRegion       Dimension = "region"
	DimensionCampaignType Dimension = "campaign-type"
	DimensionCategory     Dimension = "category"
)

// ErrUnknownDimension is returned for grouping names ParseDimension does
// not recognise.
var ErrUnknownDimension = errors.New("unknown dimension")

// GroupingDimensions lists the dimensions accepted by ParseDimension in the
// order the API documents them.
var GroupingDimensions = []Dimension{DimensionRegion, DimensionCampaignType, DimensionCategory}

// ParseDimension converts an API grouping name into a Dimension. Only the
// public groupings are accepted; per-campaign detail has its own operation.
func ParseDimension(s string) (Dimension, error) {
	switch d := Dimension(s); d {
	case DimensionRegion, DimensionCampaignType, DimensionCategory:
		return d, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownDimension, s)
	}
}

// Column returns the ledger column name the dimension groups by. These are
// the names used by the input files and the JSON responses.
func (d Dimension) Column() string {
	switch d {
	case DimensionCampaign:
		return "Campaign_ID"
	case DimensionRegion:
		return "Country"
	case DimensionCampaignType:
		return "Campaign_Type"
	case DimensionCategory:
		return "ProductCategory"
	default:
		return string(d)
	}
}

// Key extracts the grouping value of r for d.
func (d Dimension) Key(r JoinedRecord) string {
	switch d {
	case DimensionCampaign:
		return r.CampaignID
	case DimensionRegion:
		return r.Country
	case DimensionCampaignType:
		return r.CampaignType
	case DimensionCategory:
		return r.ProductCategory
	default:
		return ""
	}
}
