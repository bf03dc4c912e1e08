package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zaikoban/zaikoban/internal/export"
	"github.com/zaikoban/zaikoban/internal/httpx"
	"github.com/zaikoban/zaikoban/internal/store"
)

func (s *server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.repo.ListOrders(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, orders)
}

func (s *server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var in store.CreateOrderInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", "request body must be JSON")
		return
	}
	if err := s.validate.Struct(in); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	settings, err := s.repo.GetSettings(r.Context())
	if err != nil {
		s.logger.Error("load settings", zap.Error(err))
		httpx.RespondError(w, err)
		return
	}

	order, err := s.repo.CreateOrder(r.Context(), chi.URLParam(r, "storeID"), in, settings)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, order)
}

func (s *server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	var patch store.OrderPatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", "request body must be JSON")
		return
	}
	if err := s.validate.Struct(patch); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	settings, err := s.repo.GetSettings(r.Context())
	if err != nil {
		s.logger.Error("load settings", zap.Error(err))
		httpx.RespondError(w, err)
		return
	}

	order, err := s.repo.UpdateOrder(r.Context(), chi.URLParam(r, "storeID"), chi.URLParam(r, "orderID"), patch, settings)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

func (s *server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.DeleteOrder(r.Context(), chi.URLParam(r, "storeID"), chi.URLParam(r, "orderID")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleExportOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.repo.ListOrders(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)
	if err := export.WriteOrdersCSV(w, orders); err != nil {
		s.logger.Error("write orders csv", zap.Error(err))
	}
}
