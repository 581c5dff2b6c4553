package cli

import (
	"github.com/spf13/cobra"

	"campaign-roi/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return err
		}
		logMigration(res)
		return nil
	},
}
