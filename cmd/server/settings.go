package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/zaikoban/zaikoban/internal/httpx"
	"github.com/zaikoban/zaikoban/internal/pricing"
	"github.com/zaikoban/zaikoban/internal/store"
)

func (s *server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.repo.GetSettings(r.Context())
	if err != nil {
		s.logger.Error("load settings", zap.Error(err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, settings)
}

type settingsResponse struct {
	Settings pricing.Settings  `json:"settings"`
	Recalc   store.RecalcStats `json:"recalculated"`
}

// handleUpdateSettings persists new global settings and immediately sweeps
// every stored item so no derived field is left computed under the old
// settings. A rejected body changes nothing.
func (s *server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings pricing.Settings
	if err := httpx.DecodeJSON(r, &settings); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", "request body must be JSON")
		return
	}
	if err := s.validate.Struct(settings); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	if err := s.repo.SaveSettings(r.Context(), settings); err != nil {
		s.logger.Error("save settings", zap.Error(err))
		httpx.RespondError(w, err)
		return
	}

	stats, err := s.repo.RecalculateAll(r.Context(), settings)
	if err != nil {
		s.logger.Error("recalculate after settings change", zap.Error(err))
		httpx.RespondError(w, err)
		return
	}
	s.logger.Info("settings updated",
		zap.Float64("exchangeRate", settings.ExchangeRate),
		zap.Int("inventoryUpdated", stats.InventoryUpdated),
		zap.Int("ordersUpdated", stats.OrdersUpdated),
	)

	httpx.JSON(w, http.StatusOK, settingsResponse{Settings: settings, Recalc: stats})
}

func (s *server) handleRecalculate(w http.ResponseWriter, r *http.Request) {
	settings, err := s.repo.GetSettings(r.Context())
	if err != nil {
		s.logger.Error("load settings", zap.Error(err))
		httpx.RespondError(w, err)
		return
	}

	stats, err := s.repo.RecalculateAll(r.Context(), settings)
	if err != nil {
		s.logger.Error("recalculate all", zap.Error(err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}
