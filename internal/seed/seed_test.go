package seed

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/zaikoban/zaikoban/internal/db"
	"github.com/zaikoban/zaikoban/internal/migrations"
)

func TestRunIsIdempotent(t *testing.T) {
	database, err := db.Open(filepath.Join(t.TempDir(), "seed-test.db"))
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, migrations.Up(database, "../../migrations"))

	cfg := Config{
		AdminEmail:    "admin@zaikoban.jp",
		AdminPassword: "hunter22",
	}

	for i := 0; i < 5; i++ {
		stats, err := Run(database, cfg)
		require.NoError(t, err, "iteration %d", i)
		if i == 0 {
			require.Equal(t, 3, stats.Inserts)
			continue
		}
		require.Zero(t, stats.Inserts, "iteration %d", i)
	}

	assertCount(t, database, `SELECT COUNT(*) FROM users WHERE email = 'admin@zaikoban.jp'`, 1)
	assertCount(t, database, `SELECT COUNT(*) FROM settings WHERE id = 1`, 1)
	assertCount(t, database, `SELECT COUNT(*) FROM stores`, 1)

	var rate float64
	require.NoError(t, database.Get(&rate, `SELECT exchange_rate FROM settings WHERE id = 1`))
	require.Equal(t, 20.0, rate)
}

func TestRunWithoutAdminCredentialsSkipsUser(t *testing.T) {
	database, err := db.Open(filepath.Join(t.TempDir(), "seed-test.db"))
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, migrations.Up(database, "../../migrations"))

	stats, err := Run(database, Config{})
	require.NoError(t, err)
	require.Equal(t, 2, stats.Inserts)
	assertCount(t, database, `SELECT COUNT(*) FROM users`, 0)
}

func assertCount(t *testing.T, database *sqlx.DB, query string, expected int) {
	t.Helper()

	var count int
	require.NoError(t, database.Get(&count, query))
	require.Equal(t, expected, count)
}
