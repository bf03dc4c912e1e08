package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zaikoban/zaikoban/internal/httpx"
	"github.com/zaikoban/zaikoban/internal/store"
)

func (s *server) handleListInventory(w http.ResponseWriter, r *http.Request) {
	items, err := s.repo.ListInventory(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (s *server) handleCreateInventoryItem(w http.ResponseWriter, r *http.Request) {
	var in store.CreateInventoryInput
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

	item, err := s.repo.CreateInventoryItem(r.Context(), chi.URLParam(r, "storeID"), in, settings)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}

func (s *server) handleUpdateInventoryItem(w http.ResponseWriter, r *http.Request) {
	var patch store.InventoryPatch
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

	item, err := s.repo.UpdateInventoryItem(r.Context(), chi.URLParam(r, "storeID"), chi.URLParam(r, "itemID"), patch, settings)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (s *server) handleDeleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.DeleteInventoryItem(r.Context(), chi.URLParam(r, "storeID"), chi.URLParam(r, "itemID")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
