package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zaikoban/zaikoban/internal/db"
	"github.com/zaikoban/zaikoban/internal/migrations"
	"github.com/zaikoban/zaikoban/internal/pricing"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "store-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, migrations.Up(database, "../../migrations"))

	return NewRepository(database)
}

func testSettings() pricing.Settings {
	return pricing.Settings{
		ExchangeRate:          23,
		InternationalShipping: 1000,
		DomesticShipping:      1000,
		TargetProfit:          6000,
		PlatformFeeRate:       0.22,
	}
}
