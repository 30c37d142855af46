package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/sync"
)

type stubSettingsStore struct {
	currency string
}

func (s *stubSettingsStore) SetCurrency(currency string) { s.currency = currency }
func (s *stubSettingsStore) Currency() string            { return s.currency }

func TestGetCurrency(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewSettingsHandlers(&Deps{ResponseHandler: resp, Settings: &stubSettingsStore{currency: "MXN"}})

	req := httptest.NewRequest(http.MethodGet, "/currency", nil)
	rec := httptest.NewRecorder()
	h.SettingsRoutes().ServeHTTP(rec, req)

	if got, ok := resp.writeSuccessData.(dto.UpdateCurrencyRequest); !ok || got.Currency != "MXN" {
		t.Fatalf("unexpected payload: %#v", resp.writeSuccessData)
	}
}

func TestUpdateCurrency(t *testing.T) {
	store := &stubSettingsStore{currency: "MXN"}
	resp := &stubResponseHandler{}
	h := NewSettingsHandlers(&Deps{ResponseHandler: resp, Settings: store})

	req := httptest.NewRequest(http.MethodPut, "/currency", strings.NewReader(`{"currency":"USD"}`))
	rec := httptest.NewRecorder()
	h.SettingsRoutes().ServeHTTP(rec, req)

	if store.currency != "USD" {
		t.Fatalf("currency not updated: %q", store.currency)
	}
}

func TestUpdateCurrencyRequiresValue(t *testing.T) {
	store := &stubSettingsStore{currency: "MXN"}
	resp := &stubResponseHandler{}
	h := NewSettingsHandlers(&Deps{ResponseHandler: resp, Settings: store})

	req := httptest.NewRequest(http.MethodPut, "/currency", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.SettingsRoutes().ServeHTTP(rec, req)

	if !resp.handleErrorCalled || store.currency != "MXN" {
		t.Fatalf("empty currency accepted")
	}
}

type stubSyncSource struct {
	status sync.Status
}

func (s *stubSyncSource) Status() sync.Status { return s.status }

func TestSyncStatus(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewSyncHandlers(&Deps{ResponseHandler: resp, Sync: &stubSyncSource{status: sync.Status{State: sync.StateSynced}}})

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	h.SyncRoutes().ServeHTTP(rec, req)

	if got, ok := resp.writeSuccessData.(sync.Status); !ok || got.State != sync.StateSynced {
		t.Fatalf("unexpected payload: %#v", resp.writeSuccessData)
	}
}
