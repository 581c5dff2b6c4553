package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"campaign-roi/internal/adapter/usecase"
	"campaign-roi/internal/core/domain"
)

var reportBy string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the ROI summary and one grouping as a table",
	Long: `Load the dataset and print the summary KPIs followed by ROI rows for
one grouping: campaign, region, campaign-type or category.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportBy, "by", string(domain.DimensionCampaignType),
		"grouping: campaign, region, campaign-type or category")
}

func runReport(cmd *cobra.Command, args []string) error {
	dim := domain.DimensionCampaign
	if reportBy != string(domain.DimensionCampaign) {
		var err error
		if dim, err = domain.ParseDimension(reportBy); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	src, closeSrc, err := openSource(ctx)
	if err != nil {
		return err
	}
	svc, err := usecase.LoadROIUseCase(ctx, src)
	closeSrc()
	if err != nil {
		return err
	}

	summary, err := svc.Summary()
	if err != nil {
		return err
	}
	var rows []domain.AggregateRow
	if dim == domain.DimensionCampaign {
		rows, err = svc.CampaignROI()
	} else {
		rows, err = svc.ROIBy(dim)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err = writeSummary(out, summary); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return writeRows(out, dim, rows)
}

func writeSummary(w io.Writer, s domain.SummaryReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total revenue\t%s\n", s.TotalRevenue.StringFixed(2))
	fmt.Fprintf(tw, "Total marketing spend\t%s\n", s.TotalMarketingSpend.StringFixed(2))
	fmt.Fprintf(tw, "Overall ROI\t%s%%\n", s.OverallROI.StringFixed(1))
	fmt.Fprintf(tw, "Best campaign type\t%s (%s%%)\n", s.BestCampaignType, s.BestCampaignROI.StringFixed(1))
	for i, r := range s.TopRegions {
		fmt.Fprintf(tw, "Top region #%d\t%s %s\n", i+1, r.Country, r.Revenue.StringFixed(2))
	}
	fmt.Fprintf(tw, "Unattributed sales\t%d (%s)\n", s.UnattributedSales, s.UnattributedRevenue.StringFixed(2))
	return tw.Flush()
}

func writeRows(w io.Writer, dim domain.Dimension, rows []domain.AggregateRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\tRevenue\tMarketing_Spend\tROI\tRecords\t\n", dim.Column())
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t\n",
			r.Key, r.Revenue.StringFixed(2), r.MarketingSpend.StringFixed(2), r.ROI.StringFixed(2), r.Records)
	}
	return tw.Flush()
}
