package auth

import (
	"encoding/json"
	"net/http"

	"github.com/antibyte/retrobasic/pkg/logger"

	"github.com/google/uuid"
)

type sessionRequest struct {
	Password string `json:"password"`
}

type sessionResponse struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
}

// HandleSession issues a session ID and token. When auth is enabled the
// request must carry the operator password.
func HandleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && Enabled() {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if !CheckPassword(req.Password) {
		logger.AuthWarn("session request rejected: wrong password from %s", r.RemoteAddr)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sessionID := uuid.NewString()
	token, err := GenerateSessionToken(sessionID)
	if err != nil {
		logger.AuthError("token generation failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessionResponse{SessionID: sessionID, Token: token})
}
