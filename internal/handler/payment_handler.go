package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/riobonito-sos/backend/internal/model"
	"github.com/riobonito-sos/backend/internal/service"
	"github.com/riobonito-sos/backend/pkg/ghostpay"
)

// msg401 orienta o operador sobre as causas prováveis de um 401 da GhostPay.
const msg401 = "Não autorizado pela GhostPay. Verifique: 1. a secret key está correta? 2. o company ID está correto? 3. a chave está ativa? 4. o ambiente (produção vs sandbox) é o esperado?"

// PaymentHandler atende os endpoints de pagamento.
type PaymentHandler struct {
	svc service.PaymentService
}

// NewPaymentHandler cria um PaymentHandler.
func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// CreatePayment handles POST /create-payment.
// Valida a doação, repassa à GhostPay e traduz a resposta do processador.
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req model.DonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Dados inválidos. Envie um JSON válido.", nil)
		return
	}

	result, err := h.svc.CreatePayment(r.Context(), req)
	if err != nil {
		h.writePaymentError(w, err)
		return
	}

	// 201 da GhostPay: corpo repassado sem alteração (QR code PIX etc).
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(result.Body)
}

// writePaymentError mapeia cada classe de falha para a resposta do relay.
func (h *PaymentHandler) writePaymentError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.Message, nil)
		return
	}

	var apiErr *ghostpay.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusUnauthorized {
			slog.Error("ghostpay rejected credentials", "status", apiErr.StatusCode)
			writeError(w, http.StatusUnauthorized, msg401, string(apiErr.Body))
			return
		}
		// Status do processador espelhado; detalhe estruturado quando houver.
		slog.Error("ghostpay rejected transaction", "status", apiErr.StatusCode)
		writeError(w, apiErr.StatusCode,
			fmt.Sprintf("Erro na API GhostPay: %d", apiErr.StatusCode),
			apiErr.Detail())
		return
	}

	if errors.Is(err, ghostpay.ErrNotConfigured) {
		slog.Error("ghostpay credentials not configured")
		writeError(w, http.StatusInternalServerError,
			"Pagamentos indisponíveis: credenciais da GhostPay não configuradas.", nil)
		return
	}

	// Falha de rede ou timeout na chamada ao processador.
	slog.Error("ghostpay call failed", "error", err)
	writeError(w, http.StatusInternalServerError,
		fmt.Sprintf("Erro de conexão: %v", err), nil)
}
