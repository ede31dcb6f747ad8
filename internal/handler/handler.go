package handler

import (
	"encoding/json"
	"net/http"
)

// errorResponse é o corpo comum de toda falha: {error:true, message, details?}.
type errorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Handler agrupa a configuração comum dos endpoints (CORS).
type Handler struct {
	corsOrigin string
}

// New cria o Handler base.
func New(corsOrigin string) *Handler {
	return &Handler{corsOrigin: corsOrigin}
}

// CORS libera o frontend configurado e resolve o preflight OPTIONS sem
// passar pelo pipeline de pagamento.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, details any) {
	writeJSON(w, status, errorResponse{Error: true, Message: message, Details: details})
}
