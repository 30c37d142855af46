package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/errs"
	"github.com/Leonardo777l/Finanzas-Leo/internal/response"
)

// import payloads are user-supplied files; cap the read
const maxImportBytes = 10 << 20

type BackupService interface {
	Export(ctx context.Context) ([]byte, error)
	ImportJSON(ctx context.Context, data []byte) error
	ImportCSV(ctx context.Context, data []byte) (int, error)
	CSVTemplate() string
	Reset(ctx context.Context)
}

type backupHandlers struct {
	ResponseHandler response.ResponseHandler
	BackupSvc       BackupService
}

func NewBackupHandlers(deps *Deps) *backupHandlers {
	return &backupHandlers{
		ResponseHandler: deps.ResponseHandler,
		BackupSvc:       deps.BackupSvc,
	}
}

func (h *backupHandlers) BackupRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/export", h.Export)
	r.Post("/import", h.ImportJSON)
	r.Post("/import-csv", h.ImportCSV)
	r.Get("/csv-template", h.CSVTemplate)
	r.Post("/reset", h.Reset)
	return r
}

func (h *backupHandlers) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.BackupSvc.Export(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="finance-backup.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *backupHandlers) ImportJSON(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("failed to read request body"))
		return
	}
	if err := h.BackupSvc.ImportJSON(r.Context(), data); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *backupHandlers) ImportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("failed to read request body"))
		return
	}
	count, err := h.BackupSvc.ImportCSV(r.Context(), data)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.ImportResult{Imported: count})
}

func (h *backupHandlers) CSVTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="plantilla-transacciones.csv"`)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, h.BackupSvc.CSVTemplate())
}

func (h *backupHandlers) Reset(w http.ResponseWriter, r *http.Request) {
	h.BackupSvc.Reset(r.Context())
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
