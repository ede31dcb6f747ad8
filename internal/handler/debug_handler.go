package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/riobonito-sos/backend/internal/config"
	"github.com/riobonito-sos/backend/internal/model"
	"github.com/riobonito-sos/backend/internal/service"
	"github.com/riobonito-sos/backend/pkg/ghostpay"
)

// DebugHandler expõe os endpoints de diagnóstico do operador. Nenhum deles
// devolve credenciais sem máscara.
type DebugHandler struct {
	svc service.PaymentService
	cfg config.Config
}

// NewDebugHandler cria um DebugHandler.
func NewDebugHandler(svc service.PaymentService, cfg config.Config) *DebugHandler {
	return &DebugHandler{svc: svc, cfg: cfg}
}

// credentialsCheck são os fatos não-secretos das credenciais configuradas.
type credentialsCheck struct {
	SecretKeyLength int    `json:"secret_key_length"`
	SecretKeyPrefix string `json:"secret_key_prefix"`
	CompanyID       string `json:"company_id"`
}

// TestGhostPay handles GET /test-ghostpay.
// Envia uma doação mínima fixa pelo pipeline completo e devolve o resultado
// bruto, para validar credenciais e formato de payload fora do fluxo real.
func (h *DebugHandler) TestGhostPay(w http.ResponseWriter, r *http.Request) {
	amount := int64(1000)
	req := model.DonationRequest{
		Customer: &model.Customer{
			Name:  "João Silva",
			Email: "joao@teste.com",
		},
		Amount:      &amount,
		Description: "Teste de conexão com GhostPay",
	}

	check := credentialsCheck{
		SecretKeyLength: len(h.cfg.SecretKey),
		SecretKeyPrefix: h.cfg.MaskedSecret(),
		CompanyID:       h.cfg.CompanyID,
	}

	result, err := h.svc.CreatePayment(r.Context(), req)
	if err != nil {
		var apiErr *ghostpay.APIError
		if errors.As(err, &apiErr) {
			writeJSON(w, http.StatusOK, map[string]any{
				"status_code":       apiErr.StatusCode,
				"ghostpay_response": string(apiErr.Body),
				"credentials_check": check,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Erro no teste: %v", err), nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status_code":       result.StatusCode,
		"ghostpay_response": string(result.Body),
		"credentials_check": check,
	})
}

// DebugConfig handles GET /debug-config.
// Ecoa a configuração com a secret mascarada, para troubleshooting.
func (h *DebugHandler) DebugConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ghostpay_url":      h.cfg.GhostPayURL,
		"auth_scheme":       h.cfg.AuthScheme,
		"company_id":        h.cfg.CompanyID,
		"secret_key_length": len(h.cfg.SecretKey),
		"secret_key_prefix": h.cfg.MaskedSecret(),
		"debug_payloads":    h.cfg.DebugPayloads,
	})
}
