// Package cli implements the command-line interface for campaign-roi.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"runtime"

	"github.com/spf13/cobra"

	"campaign-roi/internal/config"
)

// Build information set at compile time via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var (
	// Global flags
	source        string
	salesPath     string
	campaignsPath string
	dbAddr        string
	logLevel      string
	logFormat     string

	cfg    config.Config
	logger *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "campaign-roi",
		Short: "Marketing ROI over a sales ledger and a campaign ledger",
		Long: `campaign-roi joins a sales ledger with a marketing campaign ledger by
region, product category and date, then reports return on investment per
campaign, region, campaign type and product category.

The ledgers are read from CSV/XLSX files or from PostgreSQL. Settings come
from the environment (HTTP_*, LOG_*, PSQL_*, DATASET_*, SEED_*); flags
override them.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd.ErrOrStderr())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&source, "source", "",
		"dataset source: file or postgres (default from DATASET_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&salesPath, "sales", "",
		"sales ledger path, .csv or .xlsx (default from DATASET_SALES_PATH)")
	rootCmd.PersistentFlags().StringVar(&campaignsPath, "campaigns", "",
		"campaign ledger path, .csv or .xlsx (default from DATASET_CAMPAIGNS_PATH)")
	rootCmd.PersistentFlags().StringVar(&dbAddr, "db", "",
		"PostgreSQL connection string (default from PSQL_ADDRESS)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format (text, json)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(reportCmd)
}

func initConfig(logOut io.Writer) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override with CLI flags
	if source != "" {
		cfg.Dataset.Source = source
		if err = cfg.Dataset.Validate(); err != nil {
			return err
		}
	}
	if salesPath != "" {
		cfg.Dataset.SalesPath = salesPath
	}
	if campaignsPath != "" {
		cfg.Dataset.CampaignsPath = campaignsPath
	}
	if dbAddr != "" {
		u, err := url.Parse(dbAddr)
		if err != nil {
			return fmt.Errorf("invalid --db: %w", err)
		}
		cfg.Psql.Addr = *u
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}

	logger = slog.New(cfg.Log.Handler(logOut)).With(slog.String("env", cfg.Env))
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("campaign-roi %s (commit: %s, built: %s, go: %s)\n",
			Version, Commit, BuildDate, runtime.Version())
	},
}
