package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Leonardo777l/Finanzas-Leo/internal/response"
	"github.com/Leonardo777l/Finanzas-Leo/internal/sync"
)

type SyncStatusSource interface {
	Status() sync.Status
}

type syncHandlers struct {
	ResponseHandler response.ResponseHandler
	Sync            SyncStatusSource
}

func NewSyncHandlers(deps *Deps) *syncHandlers {
	return &syncHandlers{
		ResponseHandler: deps.ResponseHandler,
		Sync:            deps.Sync,
	}
}

func (h *syncHandlers) SyncRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/status", h.Status)
	return r
}

func (h *syncHandlers) Status(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.Sync.Status())
}
