package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-roi/internal/core/domain"
)

type summaryResponse struct {
	TotalRevenue        float64         `json:"total_revenue"`
	TotalMarketingSpend float64         `json:"total_marketing_spend"`
	OverallROI          float64         `json:"overall_roi"`
	BestCampaignType    string          `json:"best_campaign_type"`
	BestCampaignROI     float64         `json:"best_campaign_roi"`
	TopRegions          []regionRevenue `json:"top_regions"`
	UnattributedSales   int             `json:"unattributed_sales"`
	UnattributedRevenue float64         `json:"unattributed_revenue"`
}

type regionRevenue struct {
	Country string  `json:"Country"`
	Revenue float64 `json:"Revenue"`
}

type campaignRow struct {
	CampaignID      string  `json:"Campaign_ID"`
	CampaignType    string  `json:"Campaign_Type"`
	Country         string  `json:"Country"`
	ProductCategory string  `json:"ProductCategory"`
	Revenue         float64 `json:"Revenue"`
	MarketingSpend  float64 `json:"Marketing_Spend"`
	ROI             float64 `json:"ROI"`
}

// dimensionRow renders a grouped row keyed by the grouping's column name,
// e.g. {"Country": "USA", "Revenue": ..., "Marketing_Spend": ..., "ROI": ...}.
func dimensionRow(row domain.AggregateRow) map[string]any {
	return map[string]any{
		row.Dimension.Column(): row.Key,
		"Revenue":              row.Revenue.InexactFloat64(),
		"Marketing_Spend":      row.MarketingSpend.InexactFloat64(),
		"ROI":                  row.ROI.InexactFloat64(),
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "healthy", "success": true})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary()
	if err != nil {
		h.fail(w, r, "summary error", err)
		return
	}

	resp := summaryResponse{
		TotalRevenue:        s.TotalRevenue.InexactFloat64(),
		TotalMarketingSpend: s.TotalMarketingSpend.InexactFloat64(),
		OverallROI:          s.OverallROI.InexactFloat64(),
		BestCampaignType:    s.BestCampaignType,
		BestCampaignROI:     s.BestCampaignROI.InexactFloat64(),
		TopRegions:          make([]regionRevenue, 0, len(s.TopRegions)),
		UnattributedSales:   s.UnattributedSales,
		UnattributedRevenue: s.UnattributedRevenue.InexactFloat64(),
	}
	for _, tr := range s.TopRegions {
		resp.TopRegions = append(resp.TopRegions, regionRevenue{Country: tr.Country, Revenue: tr.Revenue.InexactFloat64()})
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleROIBy serves /api/roi/{dimension} for the region, campaign-type and
// category groupings.
func (h *Handler) handleROIBy(w http.ResponseWriter, r *http.Request) {
	dim, err := domain.ParseDimension(chi.URLParam(r, "dimension"))
	if err != nil {
		h.fail(w, r, "roi error", err)
		return
	}
	rows, err := h.svc.ROIBy(dim)
	if err != nil {
		h.fail(w, r, "roi error", err)
		return
	}

	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, dimensionRow(row))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCampaignROI(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.CampaignROI()
	if err != nil {
		h.fail(w, r, "campaign roi error", err)
		return
	}

	out := make([]campaignRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, campaignRow{
			CampaignID:      row.Key,
			CampaignType:    row.CampaignType,
			Country:         row.Country,
			ProductCategory: row.ProductCategory,
			Revenue:         row.Revenue.InexactFloat64(),
			MarketingSpend:  row.MarketingSpend.InexactFloat64(),
			ROI:             row.ROI.InexactFloat64(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
