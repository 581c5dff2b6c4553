package db

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-roi/db/migrations"
)

func TestMigrationResultApplied(t *testing.T) {
	assert.True(t, MigrationResult{From: 0, To: migrations.Version}.Applied())
	assert.False(t, MigrationResult{From: migrations.Version, To: migrations.Version}.Applied())
}

// TestMigrationsEmbedded checks every version up to migrations.Version has
// both directions embedded.
func TestMigrationsEmbedded(t *testing.T) {
	up, err := fs.Glob(migrations.FS, "*.up.sql")
	require.NoError(t, err)
	down, err := fs.Glob(migrations.FS, "*.down.sql")
	require.NoError(t, err)
	assert.Len(t, up, migrations.Version)
	assert.Len(t, down, migrations.Version)
}
