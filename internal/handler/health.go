package handler

import "net/http"

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health atende GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "OK",
		Message: "API Rio Bonito SOS Online",
	})
}

// Home atende GET / com os metadados do serviço e a lista de endpoints.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "API Rio Bonito SOS",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":         "/health (GET)",
			"create_payment": "/create-payment (POST)",
			"test_ghostpay":  "/test-ghostpay (GET)",
			"debug_config":   "/debug-config (GET)",
		},
	})
}
