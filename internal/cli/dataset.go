package cli

import (
	"context"
	"log/slog"

	"campaign-roi/internal/adapter/postgres"
	"campaign-roi/internal/adapter/tabular"
	"campaign-roi/internal/config/configs"
	"campaign-roi/internal/core/domain"
	"campaign-roi/internal/core/port"
	"campaign-roi/internal/db"
)

// openSource returns the configured dataset source. The returned func
// releases any database pool; call it once the dataset is in memory.
func openSource(ctx context.Context) (port.DatasetSource, func(), error) {
	if cfg.Dataset.Source != configs.SourcePostgres {
		logger.Debug("reading dataset from files",
			slog.String("sales", cfg.Dataset.SalesPath),
			slog.String("campaigns", cfg.Dataset.CampaignsPath))
		return tabular.NewFileSource(cfg.Dataset.SalesPath, cfg.Dataset.CampaignsPath), func() {}, nil
	}
	logger.Debug("reading dataset from postgres")
	repo, closeRepo, err := openRepository(ctx)
	if err != nil {
		return nil, nil, err
	}
	return repo, closeRepo, nil
}

// openRepository connects to PostgreSQL, applying migrations first when
// PSQL_RUN_MIGRATIONS is set.
func openRepository(ctx context.Context) (*postgres.DatasetRepository, func(), error) {
	if cfg.Psql.RunMigrations {
		res, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return nil, nil, err
		}
		logMigration(res)
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewDatasetRepository(pool), pool.Close, nil
}

func logDataset(msg string, ds *domain.Dataset) {
	logger.Info(msg,
		slog.Int("sales", len(ds.Sales)),
		slog.Int("campaigns", len(ds.Campaigns)))
}

func logMigration(res db.MigrationResult) {
	if !res.Applied() {
		logger.Info("schema up to date", slog.Uint64("version", uint64(res.To)))
		return
	}
	logger.Info("migrations applied successfully",
		slog.Uint64("from", uint64(res.From)),
		slog.Uint64("to", uint64(res.To)))
}
