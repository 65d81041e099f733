package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/qatth/careerscan/internal/auth"
	"github.com/qatth/careerscan/internal/types"
)

// AuthHandler handles authentication endpoints over the session store.
type AuthHandler struct {
	store      *auth.Store
	jwtService *JWTService
	validator  *validator.Validate
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(store *auth.Store, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		store:      store,
		jwtService: jwtService,
		validator:  validator.New(),
	}
}

// Register handles account creation requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.store.Register(req.Email, req.Password, req.FullName)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}
	h.respondWithToken(w, session, http.StatusCreated)
}

// Login handles login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.store.Login(req.Email, req.Password)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}
	h.respondWithToken(w, session, http.StatusOK)
}

// Logout clears the current session. Idempotent.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	if err := h.store.Logout(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the current session for a valid token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := h.Authorize(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Authorize validates the bearer token and checks it names the current
// session. On failure it writes the error response and returns false.
func (h *AuthHandler) Authorize(w http.ResponseWriter, r *http.Request) (*types.Session, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		http.Error(w, "Missing bearer token", http.StatusUnauthorized)
		return nil, false
	}

	claims, err := h.jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return nil, false
	}

	session := h.store.Session()
	if session == nil || session.ID != claims.AccountID {
		http.Error(w, "Not logged in", http.StatusUnauthorized)
		return nil, false
	}
	return session, true
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, session *types.Session, status int) {
	token, err := h.jwtService.GenerateToken(session.ID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, status, types.LoginResponse{Session: session, Token: token})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
