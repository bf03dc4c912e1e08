package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/zaikoban/zaikoban/internal/config"
	"github.com/zaikoban/zaikoban/internal/db"
	"github.com/zaikoban/zaikoban/internal/migrations"
	"github.com/zaikoban/zaikoban/internal/seed"
	"github.com/zaikoban/zaikoban/internal/store"
)

type server struct {
	logger   *zap.Logger
	auth     *authService
	repo     *store.Repository
	validate *validator.Validate
}

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer database.Close()

	if err := migrations.Up(database, "migrations"); err != nil {
		logger.Fatal("run database migrations", zap.Error(err))
	}

	stats, err := seed.Run(database, seed.Config{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	})
	if err != nil {
		logger.Fatal("run startup seed", zap.Error(err))
	}
	logger.Info("startup seed complete", zap.Int("inserts", stats.Inserts))

	repo := store.NewRepository(database)
	if err := repo.EnsureSettings(context.Background()); err != nil {
		logger.Fatal("ensure settings singleton", zap.Error(err))
	}

	srv := &server{
		logger:   logger,
		auth:     newAuthService(database, cfg.SessionSecret),
		repo:     repo,
		validate: validator.New(),
	}

	r := chi.NewRouter()
	r.Use(httprate.Limit(120, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))

	r.Post("/login", srv.handleLogin)
	r.Post("/logout", srv.handleLogout)

	r.Route("/api", func(api chi.Router) {
		api.Use(srv.requireSession)

		api.Get("/settings", srv.handleGetSettings)
		api.Put("/settings", srv.handleUpdateSettings)
		api.Post("/recalculate", srv.handleRecalculate)

		api.Get("/stores", srv.handleListStores)
		api.Post("/stores", srv.handleCreateStore)
		api.Route("/stores/{storeID}", func(sr chi.Router) {
			sr.Get("/", srv.handleGetStore)
			sr.Put("/", srv.handleRenameStore)
			sr.Delete("/", srv.handleDeleteStore)

			sr.Get("/inventory", srv.handleListInventory)
			sr.Post("/inventory", srv.handleCreateInventoryItem)
			sr.Patch("/inventory/{itemID}", srv.handleUpdateInventoryItem)
			sr.Delete("/inventory/{itemID}", srv.handleDeleteInventoryItem)

			sr.Get("/orders", srv.handleListOrders)
			sr.Post("/orders", srv.handleCreateOrder)
			sr.Patch("/orders/{orderID}", srv.handleUpdateOrder)
			sr.Delete("/orders/{orderID}", srv.handleDeleteOrder)
			sr.Get("/orders/export", srv.handleExportOrders)
		})
	})

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsDev() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
