package cli

import (
	"github.com/spf13/cobra"

	"campaign-roi/internal/adapter/tabular"
	"campaign-roi/internal/adapter/usecase"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy the ledger files into PostgreSQL",
	Long: `Read the sales and campaign files and replace the contents of the
sales and campaigns tables with them in a single transaction.

Example:
  campaign-roi import --sales data-1.csv --campaigns data-2.xlsx --db "postgres://..."`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		repo, closeRepo, err := openRepository(ctx)
		if err != nil {
			return err
		}
		defer closeRepo()

		src := tabular.NewFileSource(cfg.Dataset.SalesPath, cfg.Dataset.CampaignsPath)
		ds, err := usecase.ImportDataset(ctx, src, repo)
		if err != nil {
			return err
		}
		logDataset("dataset imported", ds)
		return nil
	},
}
