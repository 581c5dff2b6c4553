package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-roi/internal/core/domain"
	"campaign-roi/internal/core/port"
	"campaign-roi/internal/core/port/mocks"
)

func newTestServer(t *testing.T) (*mocks.MockROIUseCase, *httptest.Server) {
	t.Helper()
	svc := mocks.NewMockROIUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewHandler(svc, logger).Router())
	t.Cleanup(srv.Close)
	return svc, srv
}

func get(t *testing.T, srv *httptest.Server, path string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func regionRows() []domain.AggregateRow {
	return []domain.AggregateRow{
		{Dimension: domain.DimensionRegion, Key: "Atlantis", Revenue: d("50"), MarketingSpend: d("100"), ROI: d("-50")},
		{Dimension: domain.DimensionRegion, Key: "USA", Revenue: d("5000"), MarketingSpend: d("1000"), ROI: d("400")},
	}
}

func TestHealth(t *testing.T) {
	_, srv := newTestServer(t)

	var body map[string]any
	resp := get(t, srv, "/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, resp.Header.Get(requestIDHeader))
}

func TestSummary(t *testing.T) {
	svc, srv := newTestServer(t)
	svc.EXPECT().Summary().Return(domain.SummaryReport{
		TotalRevenue:        d("5000"),
		TotalMarketingSpend: d("1000"),
		OverallROI:          d("400"),
		BestCampaignType:    "Social",
		BestCampaignROI:     d("400"),
		TopRegions:          []domain.RegionRevenue{{Country: "USA", Revenue: d("5000")}, {Country: "UK", Revenue: d("300")}},
		UnattributedSales:   1,
		UnattributedRevenue: d("300"),
	}, nil)

	var body summaryResponse
	resp := get(t, srv, "/api/summary", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5000.0, body.TotalRevenue)
	assert.Equal(t, 1000.0, body.TotalMarketingSpend)
	assert.Equal(t, 400.0, body.OverallROI)
	assert.Equal(t, "Social", body.BestCampaignType)
	assert.Equal(t, []regionRevenue{{"USA", 5000}, {"UK", 300}}, body.TopRegions)
	assert.Equal(t, 1, body.UnattributedSales)
}

func TestROIBy(t *testing.T) {
	tests := []struct {
		path   string
		dim    domain.Dimension
		column string
	}{
		{"/api/roi/region", domain.DimensionRegion, "Country"},
		{"/api/roi/campaign-type", domain.DimensionCampaignType, "Campaign_Type"},
		{"/api/roi/category", domain.DimensionCategory, "ProductCategory"},
	}
	for _, tt := range tests {
		t.Run(string(tt.dim), func(t *testing.T) {
			svc, srv := newTestServer(t)
			svc.EXPECT().ROIBy(tt.dim).Return([]domain.AggregateRow{
				{Dimension: tt.dim, Key: "k", Revenue: d("1200"), MarketingSpend: d("1000"), ROI: d("20")},
			}, nil)

			var body []map[string]any
			resp := get(t, srv, tt.path, &body)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			require.Len(t, body, 1)
			assert.Equal(t, map[string]any{
				tt.column:         "k",
				"Revenue":         1200.0,
				"Marketing_Spend": 1000.0,
				"ROI":             20.0,
			}, body[0])
		})
	}
}

func TestROIBy_UnknownDimension(t *testing.T) {
	_, srv := newTestServer(t)

	var body errorResponse
	resp := get(t, srv, "/api/roi/planet", &body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body.Error, "unknown dimension")
}

func TestCampaignROI(t *testing.T) {
	svc, srv := newTestServer(t)
	svc.EXPECT().CampaignROI().Return([]domain.AggregateRow{{
		Dimension:       domain.DimensionCampaign,
		Key:             "C1",
		Revenue:         d("800"),
		MarketingSpend:  d("1000"),
		ROI:             d("-20"),
		CampaignType:    "Email",
		Country:         "USA",
		ProductCategory: "Toys",
	}}, nil)

	var body []campaignRow
	resp := get(t, srv, "/api/roi/campaigns", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []campaignRow{{
		CampaignID:      "C1",
		CampaignType:    "Email",
		Country:         "USA",
		ProductCategory: "Toys",
		Revenue:         800,
		MarketingSpend:  1000,
		ROI:             -20,
	}}, body)
}

func TestCoreErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not loaded", port.ErrNotLoaded},
		{"zero spend", &port.ZeroSpendError{Dimension: domain.DimensionRegion, Key: "USA"}},
		{"zero total", &port.ZeroSpendError{Key: port.TotalKey}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, srv := newTestServer(t)
			svc.EXPECT().Summary().Return(domain.SummaryReport{}, tt.err)

			var body errorResponse
			resp := get(t, srv, "/api/summary", &body)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			assert.Equal(t, tt.err.Error(), body.Error)
		})
	}
}

func TestChoropleth(t *testing.T) {
	svc, srv := newTestServer(t)
	svc.EXPECT().ROIBy(domain.DimensionRegion).Return(regionRows(), nil)

	var body chartConfig
	resp := get(t, srv, "/api/viz/choropleth", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "choropleth", body.ChartType)
	require.Len(t, body.Series, 1)
	assert.Equal(t, []chartPoint{
		{Label: "Atlantis", Value: -50},
		{Label: "USA", Value: 400, Code: "USA"},
	}, body.Series[0].Data)
}

func TestScatter(t *testing.T) {
	svc, srv := newTestServer(t)
	svc.EXPECT().CampaignROI().Return([]domain.AggregateRow{
		{Key: "C1", CampaignType: "Email", Revenue: d("800"), MarketingSpend: d("1000"), ROI: d("-20")},
		{Key: "C2", CampaignType: "Social", Revenue: d("5000"), MarketingSpend: d("1000"), ROI: d("400")},
		{Key: "C3", CampaignType: "Email", Revenue: d("300"), MarketingSpend: d("200"), ROI: d("50")},
	}, nil)

	var body chartConfig
	resp := get(t, srv, "/api/viz/scatter", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body.Series, 3)

	assert.Equal(t, "Email", body.Series[0].Name)
	require.Len(t, body.Series[0].Points, 2)
	assert.Equal(t, 20.0, body.Series[0].Points[0].Size)
	assert.Equal(t, "-20.00", body.Series[0].Points[0].Detail["ROI"])
	assert.Equal(t, "Social", body.Series[1].Name)

	breakEven := body.Series[2]
	assert.Equal(t, "Break-even", breakEven.Name)
	assert.Equal(t, "dash", breakEven.Dash)
	assert.Equal(t, []xyPoint{{X: 0, Y: 0}, {X: 5000, Y: 5000}}, breakEven.Points)
}

func TestCampaignBar(t *testing.T) {
	svc, srv := newTestServer(t)
	svc.EXPECT().ROIBy(domain.DimensionCampaignType).Return([]domain.AggregateRow{
		{Key: "Email", Revenue: d("800"), MarketingSpend: d("1000"), ROI: d("-20")},
		{Key: "Social", Revenue: d("5000"), MarketingSpend: d("1000"), ROI: d("400")},
	}, nil)

	var body chartConfig
	resp := get(t, srv, "/api/viz/campaign-bar", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "group", body.BarMode)
	require.Len(t, body.Series, 2)
	assert.Equal(t, []chartPoint{{"Email", 800, ""}, {"Social", 5000, ""}}, body.Series[0].Data)
	assert.Equal(t, []chartPoint{{"Email", 1000, ""}, {"Social", 1000, ""}}, body.Series[1].Data)
}

func TestCategoryBar_SortedByROI(t *testing.T) {
	svc, srv := newTestServer(t)
	svc.EXPECT().ROIBy(domain.DimensionCategory).Return([]domain.AggregateRow{
		{Key: "Books", ROI: d("30")},
		{Key: "Electronics", ROI: d("400")},
		{Key: "Toys", ROI: d("-20")},
	}, nil)

	var body chartConfig
	resp := get(t, srv, "/api/viz/category-bar", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "h", body.Orientation)
	require.Len(t, body.Series, 1)
	assert.Equal(t, []chartPoint{{"Toys", -20, ""}, {"Books", 30, ""}, {"Electronics", 400, ""}}, body.Series[0].Data)
}

func TestRegionBar_Error(t *testing.T) {
	svc, srv := newTestServer(t)
	svc.EXPECT().ROIBy(domain.DimensionRegion).Return(nil, port.ErrNotLoaded)

	resp := get(t, srv, "/api/viz/region", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestRequestIDPropagated(t *testing.T) {
	_, srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set(requestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get(requestIDHeader))
}

func TestNotFound(t *testing.T) {
	_, srv := newTestServer(t)
	resp := get(t, srv, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
