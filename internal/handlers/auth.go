package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/errs"
	"github.com/Leonardo777l/Finanzas-Leo/internal/response"
	"github.com/Leonardo777l/Finanzas-Leo/pkg/logger"
)

// TokenVerifier validates a Firebase ID token. *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// IdentityNotifier receives the verified identity transitions that drive
// remote sync.
type IdentityNotifier interface {
	Login(uid string)
	Logout()
}

type authHandlers struct {
	ResponseHandler response.ResponseHandler
	Verifier        TokenVerifier
	Identity        IdentityNotifier
}

func NewAuthHandlers(deps *Deps) *authHandlers {
	return &authHandlers{
		ResponseHandler: deps.ResponseHandler,
		Verifier:        deps.Verifier,
		Identity:        deps.Identity,
	}
}

func (h *authHandlers) AuthRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/session", h.Login)
	r.Delete("/session", h.Logout)
	return r
}

// Login verifies the supplied Firebase ID token and announces the identity.
// The remote load it triggers runs in the sync loop; this call does not wait
// for it.
func (h *authHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("idToken is required"))
		return
	}

	token, err := h.Verifier.VerifyIDToken(r.Context(), req.IDToken)
	if err != nil {
		log := logger.FromContext(r.Context())
		log.Warn("token verification failed", "error", err)
		h.ResponseHandler.WriteError(w, r, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
		return
	}

	h.Identity.Login(token.UID)
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.SessionResponse{UID: token.UID})
}

func (h *authHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.Identity.Logout()
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
