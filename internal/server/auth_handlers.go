package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/credwise/credwise/internal/auth"
	"github.com/credwise/credwise/internal/profile"
	"go.uber.org/zap"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string        `json:"token"`
	User  *profile.User `json:"user"`
}

func (h *handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleRegister"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req registerRequest
	if err := h.decodeRequest(w, r, &req); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		h.respondErrorWithOp(w, http.StatusBadRequest, "name and email are required", op)
		return
	}

	user, err := h.authenticator.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, auth.ErrWeakPassword) || errors.Is(err, profile.ErrEmailExists) {
			status = http.StatusBadRequest
		}
		h.respondErrorWithOp(w, status, err.Error(), op)
		return
	}

	h.issueSession(w, user, http.StatusCreated, op)
}

func (h *handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleLogin"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if err := h.decodeRequest(w, r, &req); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	user, err := h.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusUnauthorized, err.Error(), op)
		return
	}

	h.issueSession(w, user, http.StatusOK, op)
}

func (h *handler) issueSession(w http.ResponseWriter, user *profile.User, status int, op string) {
	token, err := h.sessions.Generate(user)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to create session: %v", err), op)
		return
	}

	h.logger.Info("session issued",
		zap.String("op", op),
		zap.String("userID", user.ID),
	)

	h.writeJSON(w, status, sessionResponse{Token: token, User: user})
}

func (h *handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProfile"

	claims, err := h.authorize(r)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusUnauthorized, err.Error(), op)
		return
	}

	switch r.Method {
	case http.MethodGet:
		user, err := h.store.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), op)
			return
		}
		h.writeJSON(w, http.StatusOK, user)

	case http.MethodPut:
		var data profile.Financial
		if err := h.decodeRequest(w, r, &data); err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
			return
		}

		user, err := h.store.UpdateFinancial(r.Context(), claims.UserID, data)
		if err != nil {
			h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), op)
			return
		}
		h.writeJSON(w, http.StatusOK, user)

	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

// authorize extracts and validates the bearer token from a request.
func (h *handler) authorize(r *http.Request) (*auth.Claims, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, auth.ErrMissingToken
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return nil, auth.ErrMissingToken
	}

	return h.sessions.Validate(token)
}
