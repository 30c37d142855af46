package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/errs"
)

type stubBackupService struct {
	exportData []byte
	exportErr  error

	importedJSON []byte
	importErr    error

	importedCSV []byte
	csvCount    int
	csvErr      error

	template    string
	resetCalled bool
}

func (s *stubBackupService) Export(ctx context.Context) ([]byte, error) {
	return s.exportData, s.exportErr
}

func (s *stubBackupService) ImportJSON(ctx context.Context, data []byte) error {
	s.importedJSON = data
	return s.importErr
}

func (s *stubBackupService) ImportCSV(ctx context.Context, data []byte) (int, error) {
	s.importedCSV = data
	return s.csvCount, s.csvErr
}

func (s *stubBackupService) CSVTemplate() string { return s.template }

func (s *stubBackupService) Reset(ctx context.Context) { s.resetCalled = true }

func TestExportSetsDownloadHeaders(t *testing.T) {
	svc := &stubBackupService{exportData: []byte(`{"transactions":[]}`)}
	h := NewBackupHandlers(&Deps{ResponseHandler: &stubResponseHandler{}, BackupSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()
	h.BackupRoutes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "finance-backup.json") {
		t.Fatalf("content-disposition %q", got)
	}
	if rec.Body.String() != `{"transactions":[]}` {
		t.Fatalf("body %q", rec.Body.String())
	}
}

func TestImportJSONForwardsBody(t *testing.T) {
	svc := &stubBackupService{}
	resp := &stubResponseHandler{}
	h := NewBackupHandlers(&Deps{ResponseHandler: resp, BackupSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(`{"transactions":[],"assets":[]}`))
	rec := httptest.NewRecorder()
	h.BackupRoutes().ServeHTTP(rec, req)

	if string(svc.importedJSON) != `{"transactions":[],"assets":[]}` {
		t.Fatalf("body not forwarded: %q", svc.importedJSON)
	}
	if !resp.writeSuccessCalled {
		t.Fatalf("expected success response")
	}
}

func TestImportJSONErrorForwarded(t *testing.T) {
	svc := &stubBackupService{importErr: errs.NewMalformedImportError("bad payload")}
	resp := &stubResponseHandler{}
	h := NewBackupHandlers(&Deps{ResponseHandler: resp, BackupSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(`garbage`))
	rec := httptest.NewRecorder()
	h.BackupRoutes().ServeHTTP(rec, req)

	if !resp.handleErrorCalled || resp.handleError != svc.importErr {
		t.Fatalf("service error not forwarded: %+v", resp)
	}
}

func TestImportCSVReportsCount(t *testing.T) {
	svc := &stubBackupService{csvCount: 3}
	resp := &stubResponseHandler{}
	h := NewBackupHandlers(&Deps{ResponseHandler: resp, BackupSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/import-csv", strings.NewReader("a,b,c"))
	rec := httptest.NewRecorder()
	h.BackupRoutes().ServeHTTP(rec, req)

	if result, ok := resp.writeSuccessData.(dto.ImportResult); !ok || result.Imported != 3 {
		t.Fatalf("unexpected payload: %#v", resp.writeSuccessData)
	}
}

func TestCSVTemplateDownload(t *testing.T) {
	svc := &stubBackupService{template: "header\nexample"}
	h := NewBackupHandlers(&Deps{ResponseHandler: &stubResponseHandler{}, BackupSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/csv-template", nil)
	rec := httptest.NewRecorder()
	h.BackupRoutes().ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Fatalf("content-type %q", got)
	}
	if rec.Body.String() != "header\nexample" {
		t.Fatalf("body %q", rec.Body.String())
	}
}

func TestResetEndpoint(t *testing.T) {
	svc := &stubBackupService{}
	resp := &stubResponseHandler{}
	h := NewBackupHandlers(&Deps{ResponseHandler: resp, BackupSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/reset", nil)
	rec := httptest.NewRecorder()
	h.BackupRoutes().ServeHTTP(rec, req)

	if !svc.resetCalled || !resp.writeSuccessCalled {
		t.Fatalf("reset not executed: %+v", resp)
	}
}
