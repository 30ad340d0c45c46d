package accounts

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"kirieshka/infrastructure"
)

type JSONHandler struct {
	useCase         UseCase
	emailConfigured func() bool
}

func NewJSONHandler(useCase UseCase, emailConfigured func() bool) *JSONHandler {
	return &JSONHandler{useCase: useCase, emailConfigured: emailConfigured}
}

func (h *JSONHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, infrastructure.ErrInvalidInput.Error())
		return
	}

	if err := h.useCase.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		writeFailure(w, err)
		return
	}

	payload := map[string]any{"success": true}
	if h.emailConfigured() {
		payload["message"] = "Code sent to email"
	} else {
		payload["message"] = "Code generated (check logs)"
		payload["note"] = "email delivery is not configured; the code was logged server-side"
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *JSONHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, infrastructure.ErrInvalidInput.Error())
		return
	}

	if err := h.useCase.VerifyEmail(r.Context(), req.Email, req.Code); err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Email verified!",
	})
}

func (h *JSONHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, infrastructure.ErrInvalidInput.Error())
		return
	}

	profile, token, err := h.useCase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"user":      profile,
		"sessionId": token,
	})
}

func (h *JSONHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, infrastructure.ErrInvalidInput.Error())
		return
	}

	if err := h.useCase.RequestPasswordReset(r.Context(), req.Email); err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Reset code sent to email",
	})
}

func (h *JSONHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, infrastructure.ErrInvalidInput.Error())
		return
	}

	if err := h.useCase.ResetPassword(r.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Password updated",
	})
}

// SetupAccountRoutes registers the auth endpoints.
func SetupAccountRoutes(r *mux.Router, h *JSONHandler) {
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/verify-email", h.VerifyEmail).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/forgot-password", h.ForgotPassword).Methods("POST")
	r.HandleFunc("/reset-password", h.ResetPassword).Methods("POST")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

// writeFailure maps client-caused errors to 400 with the taxonomy message and
// everything else to an opaque 500.
func writeFailure(w http.ResponseWriter, err error) {
	if infrastructure.ClientFault(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	slog.Error("unexpected handler error", "error", err)
	writeError(w, http.StatusInternalServerError, infrastructure.ErrInternalServer.Error())
}
