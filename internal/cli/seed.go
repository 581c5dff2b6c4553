package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"campaign-roi/internal/adapter/tabular"
	"campaign-roi/internal/config/configs"
	"campaign-roi/internal/core/port"
	"campaign-roi/internal/db"
)

var (
	seedTo        string
	seedValue     uint64
	seedSales     int
	seedCampaigns int
	seedYear      int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a synthetic dataset",
	Long: `Generate a deterministic synthetic dataset and write it either to the
ledger files or to PostgreSQL. Equal seeds produce equal datasets.

Example:
  campaign-roi seed --to file --sales out/sales.csv --campaigns out/campaigns.xlsx`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedTo, "to", "",
		"destination: file or postgres (default from DATASET_SOURCE)")
	seedCmd.Flags().Uint64Var(&seedValue, "seed", 0,
		"random seed (default from SEED_VALUE)")
	seedCmd.Flags().IntVar(&seedSales, "sales-count", 0,
		"number of sales (default from SEED_SALES)")
	seedCmd.Flags().IntVar(&seedCampaigns, "campaign-count", 0,
		"number of campaigns (default from SEED_CAMPAIGNS)")
	seedCmd.Flags().IntVar(&seedYear, "year", 0,
		"calendar year of the generated dates (default from SEED_YEAR)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if seedValue != 0 {
		cfg.Seed.Value = seedValue
	}
	if seedSales > 0 {
		cfg.Seed.Sales = seedSales
	}
	if seedCampaigns > 0 {
		cfg.Seed.Campaigns = seedCampaigns
	}
	if seedYear > 0 {
		cfg.Seed.Year = seedYear
	}
	to := cfg.Dataset.Source
	if seedTo != "" {
		to = seedTo
	}

	ctx := cmd.Context()
	var w port.DatasetWriter
	switch to {
	case configs.SourceFile:
		w = tabular.NewFileWriter(cfg.Dataset.SalesPath, cfg.Dataset.CampaignsPath)
	case configs.SourcePostgres:
		repo, closeRepo, err := openRepository(ctx)
		if err != nil {
			return err
		}
		defer closeRepo()
		w = repo
	default:
		return fmt.Errorf("unknown seed destination %q", to)
	}

	ds, err := db.Seed(ctx, w, cfg.Seed)
	if err != nil {
		return err
	}
	logDataset("dataset seeded", ds)
	return nil
}
