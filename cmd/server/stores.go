package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zaikoban/zaikoban/internal/httpx"
)

type storeRequest struct {
	Name string `json:"name" validate:"required"`
}

func (s *server) handleListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := s.repo.ListStores(r.Context())
	if err != nil {
		s.logger.Error("list stores", zap.Error(err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stores)
}

func (s *server) handleCreateStore(w http.ResponseWriter, r *http.Request) {
	var req storeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", "request body must be JSON")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	created, err := s.repo.CreateStore(r.Context(), req.Name)
	if err != nil {
		s.logger.Error("create store", zap.Error(err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (s *server) handleGetStore(w http.ResponseWriter, r *http.Request) {
	st, err := s.repo.GetStore(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, st)
}

func (s *server) handleRenameStore(w http.ResponseWriter, r *http.Request) {
	var req storeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", "request body must be JSON")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	st, err := s.repo.RenameStore(r.Context(), chi.URLParam(r, "storeID"), req.Name)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, st)
}

func (s *server) handleDeleteStore(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.DeleteStore(r.Context(), chi.URLParam(r, "storeID")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
