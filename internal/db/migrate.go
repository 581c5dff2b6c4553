package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"campaign-roi/db/migrations"
)

// ErrDirtySchema is returned when a previous migration of the ledger
// tables failed halfway and needs manual repair.
var ErrDirtySchema = errors.New("ledger schema is dirty")

// MigrationResult reports the ledger schema version before and after
// Migrate. From is zero for an empty database.
type MigrationResult struct {
	From uint
	To   uint
}

// Applied reports whether Migrate changed the schema.
func (r MigrationResult) Applied() bool { return r.From != r.To }

// Migrate brings the sales and campaigns tables at addr to
// migrations.Version.
func Migrate(addr string) (MigrationResult, error) {
	var res MigrationResult

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return res, err
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return res, err
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return res, err
	case dirty:
		return res, fmt.Errorf("%w at version %d", ErrDirtySchema, current)
	default:
		res.From = current
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return res, err
	}
	res.To = migrations.Version
	return res, nil
}
