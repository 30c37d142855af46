package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"firebase.google.com/go/v4/auth"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
)

type stubVerifier struct {
	token *auth.Token
	err   error
	seen  string
}

func (s *stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	s.seen = idToken
	return s.token, s.err
}

type stubIdentity struct {
	loginUID  string
	loggedOut bool
}

func (s *stubIdentity) Login(uid string) { s.loginUID = uid }
func (s *stubIdentity) Logout()          { s.loggedOut = true }

func TestLoginSuccess(t *testing.T) {
	verifier := &stubVerifier{token: &auth.Token{UID: "uid-1"}}
	identity := &stubIdentity{}
	resp := &stubResponseHandler{}
	h := NewAuthHandlers(&Deps{ResponseHandler: resp, Verifier: verifier, Identity: identity})

	req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(`{"idToken":"tok-123"}`))
	rec := httptest.NewRecorder()
	h.AuthRoutes().ServeHTTP(rec, req)

	if verifier.seen != "tok-123" {
		t.Fatalf("token not forwarded: %q", verifier.seen)
	}
	if identity.loginUID != "uid-1" {
		t.Fatalf("identity not notified: %q", identity.loginUID)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if sess, ok := resp.writeSuccessData.(dto.SessionResponse); !ok || sess.UID != "uid-1" {
		t.Fatalf("unexpected payload: %#v", resp.writeSuccessData)
	}
}

func TestLoginInvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("expired")}
	identity := &stubIdentity{}
	resp := &stubResponseHandler{}
	h := NewAuthHandlers(&Deps{ResponseHandler: resp, Verifier: verifier, Identity: identity})

	req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(`{"idToken":"bad"}`))
	rec := httptest.NewRecorder()
	h.AuthRoutes().ServeHTTP(rec, req)

	if !resp.writeErrorCalled || resp.writeErrorStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %+v", resp)
	}
	if identity.loginUID != "" {
		t.Fatalf("identity notified despite invalid token")
	}
}

func TestLoginMissingToken(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewAuthHandlers(&Deps{ResponseHandler: resp, Verifier: &stubVerifier{}, Identity: &stubIdentity{}})

	req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.AuthRoutes().ServeHTTP(rec, req)

	if !resp.handleErrorCalled {
		t.Fatalf("expected HandleError for missing idToken")
	}
}

func TestLogout(t *testing.T) {
	identity := &stubIdentity{}
	resp := &stubResponseHandler{}
	h := NewAuthHandlers(&Deps{ResponseHandler: resp, Verifier: &stubVerifier{}, Identity: identity})

	req := httptest.NewRequest(http.MethodDelete, "/session", nil)
	rec := httptest.NewRecorder()
	h.AuthRoutes().ServeHTTP(rec, req)

	if !identity.loggedOut {
		t.Fatalf("identity not notified of logout")
	}
	if !resp.writeSuccessCalled {
		t.Fatalf("expected success response")
	}
}
