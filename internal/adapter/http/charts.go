package httpadapter

import (
	"net/http"
	"slices"

	"github.com/shopspring/decimal"

	"campaign-roi/internal/core/domain"
)

// chartConfig describes a chart for the dashboard frontend. The server only
// emits data and presentation hints; rendering happens client side.
type chartConfig struct {
	ChartType   string        `json:"chartType"`
	Title       string        `json:"title"`
	XAxis       string        `json:"xAxis,omitempty"`
	YAxis       string        `json:"yAxis,omitempty"`
	Orientation string        `json:"orientation,omitempty"`
	BarMode     string        `json:"barMode,omitempty"`
	ColorScale  string        `json:"colorScale,omitempty"`
	Series      []chartSeries `json:"series"`
	ShowLegend  bool          `json:"showLegend"`
	Height      int           `json:"height,omitempty"`
}

type chartSeries struct {
	Name   string       `json:"name"`
	Data   []chartPoint `json:"data,omitempty"`
	Points []xyPoint    `json:"points,omitempty"`
	Color  string       `json:"color,omitempty"`
	Dash   string       `json:"dash,omitempty"`
}

type chartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Code  string  `json:"code,omitempty"`
}

type xyPoint struct {
	Label  string            `json:"label,omitempty"`
	X      float64           `json:"x"`
	Y      float64           `json:"y"`
	Size   float64           `json:"size,omitempty"`
	Detail map[string]string `json:"detail,omitempty"`
}

const roiColorScale = "RdYlGn"

// countryCodes maps the ledger's country names to ISO 3166-1 alpha-3 codes.
// Countries missing from the table are emitted without a code.
var countryCodes = map[string]string{
	"USA":     "USA",
	"Canada":  "CAN",
	"Mexico":  "MEX",
	"Germany": "DEU",
	"UK":      "GBR",
}

func roiPoints(rows []domain.AggregateRow) []chartPoint {
	points := make([]chartPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, chartPoint{Label: row.Key, Value: row.ROI.InexactFloat64()})
	}
	return points
}

func (h *Handler) handleChoropleth(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ROIBy(domain.DimensionRegion)
	if err != nil {
		h.fail(w, r, "choropleth error", err)
		return
	}

	points := roiPoints(rows)
	for i := range points {
		points[i].Code = countryCodes[points[i].Label]
	}
	writeJSON(w, http.StatusOK, chartConfig{
		ChartType:  "choropleth",
		Title:      "Marketing ROI by Region",
		ColorScale: roiColorScale,
		Series:     []chartSeries{{Name: "ROI", Data: points}},
		Height:     500,
	})
}

// handleScatter plots spend against revenue per campaign with one series per
// campaign type. Point size is |ROI|. A dashed diagonal marks break-even.
func (h *Handler) handleScatter(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.CampaignROI()
	if err != nil {
		h.fail(w, r, "scatter error", err)
		return
	}

	var (
		series []chartSeries
		index  = map[string]int{}
		maxVal decimal.Decimal
	)
	for _, row := range rows {
		i, ok := index[row.CampaignType]
		if !ok {
			i = len(series)
			index[row.CampaignType] = i
			series = append(series, chartSeries{Name: row.CampaignType})
		}
		series[i].Points = append(series[i].Points, xyPoint{
			Label: row.Key,
			X:     row.MarketingSpend.InexactFloat64(),
			Y:     row.Revenue.InexactFloat64(),
			Size:  row.ROI.Abs().InexactFloat64(),
			Detail: map[string]string{
				"Country":         row.Country,
				"ProductCategory": row.ProductCategory,
				"ROI":             row.ROI.StringFixed(2),
			},
		})
		maxVal = decimal.Max(maxVal, row.MarketingSpend, row.Revenue)
	}
	series = append(series, chartSeries{
		Name:   "Break-even",
		Points: []xyPoint{{X: 0, Y: 0}, {X: maxVal.InexactFloat64(), Y: maxVal.InexactFloat64()}},
		Color:  "gray",
		Dash:   "dash",
	})

	writeJSON(w, http.StatusOK, chartConfig{
		ChartType:  "scatter",
		Title:      "Marketing Spend vs Revenue by Campaign Type",
		XAxis:      "Marketing Spend ($)",
		YAxis:      "Revenue ($)",
		Series:     series,
		ShowLegend: true,
		Height:     500,
	})
}

func (h *Handler) handleCampaignBar(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ROIBy(domain.DimensionCampaignType)
	if err != nil {
		h.fail(w, r, "campaign bar error", err)
		return
	}

	revenue := chartSeries{Name: "Revenue", Color: "lightblue", Data: make([]chartPoint, 0, len(rows))}
	spend := chartSeries{Name: "Marketing Spend", Color: "coral", Data: make([]chartPoint, 0, len(rows))}
	for _, row := range rows {
		revenue.Data = append(revenue.Data, chartPoint{Label: row.Key, Value: row.Revenue.InexactFloat64()})
		spend.Data = append(spend.Data, chartPoint{Label: row.Key, Value: row.MarketingSpend.InexactFloat64()})
	}
	writeJSON(w, http.StatusOK, chartConfig{
		ChartType:  "bar",
		Title:      "Revenue vs Marketing Spend by Campaign Type",
		XAxis:      "Campaign Type",
		YAxis:      "Amount ($)",
		BarMode:    "group",
		Series:     []chartSeries{revenue, spend},
		ShowLegend: true,
		Height:     400,
	})
}

// handleCategoryBar emits horizontal bars ordered by ascending ROI so the
// best category ends up at the top of the chart.
func (h *Handler) handleCategoryBar(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ROIBy(domain.DimensionCategory)
	if err != nil {
		h.fail(w, r, "category bar error", err)
		return
	}

	rows = slices.Clone(rows)
	slices.SortStableFunc(rows, func(a, b domain.AggregateRow) int {
		return a.ROI.Cmp(b.ROI)
	})
	writeJSON(w, http.StatusOK, chartConfig{
		ChartType:   "bar",
		Title:       "ROI by Product Category",
		XAxis:       "ROI (%)",
		YAxis:       "Product Category",
		Orientation: "h",
		ColorScale:  roiColorScale,
		Series:      []chartSeries{{Name: "ROI", Data: roiPoints(rows)}},
		Height:      400,
	})
}

func (h *Handler) handleRegionBar(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ROIBy(domain.DimensionRegion)
	if err != nil {
		h.fail(w, r, "region bar error", err)
		return
	}

	writeJSON(w, http.StatusOK, chartConfig{
		ChartType:  "bar",
		Title:      "ROI Comparison by Region",
		XAxis:      "Country",
		YAxis:      "ROI (%)",
		ColorScale: roiColorScale,
		Series:     []chartSeries{{Name: "ROI", Data: roiPoints(rows)}},
		Height:     300,
	})
}
