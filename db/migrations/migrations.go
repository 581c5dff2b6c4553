// Package migrations holds the schema of the sales and campaigns ledger
// tables.
package migrations

import "embed"

// FS holds the numbered up/down SQL files applied by db.Migrate.
//
//go:embed *.sql
var FS embed.FS

// Version is the latest schema version. Version 2 stores amounts as
// unscaled NUMERIC so values load back exactly as they were written.
const Version = 2
