package main

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zaikoban/zaikoban/internal/db"
	"github.com/zaikoban/zaikoban/internal/migrations"
	"github.com/zaikoban/zaikoban/internal/pricing"
	"github.com/zaikoban/zaikoban/internal/store"
)

func newTestServer(t *testing.T) *server {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "server-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, migrations.Up(database, "../../migrations"))

	return &server{
		logger:   zap.NewNop(),
		auth:     newAuthService(database, "test-session-secret"),
		repo:     store.NewRepository(database),
		validate: validator.New(),
	}
}

func seedTestSettings(t *testing.T, srv *server) pricing.Settings {
	t.Helper()

	settings := pricing.Settings{
		ExchangeRate:          23,
		InternationalShipping: 1000,
		DomesticShipping:      1000,
		TargetProfit:          6000,
		PlatformFeeRate:       0.22,
	}
	require.NoError(t, srv.repo.SaveSettings(context.Background(), settings))
	return settings
}

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
