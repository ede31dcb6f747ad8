package service

import (
	"context"

	"github.com/riobonito-sos/backend/internal/model"
	"github.com/riobonito-sos/backend/pkg/ghostpay"
)

// Mensagens de validação retornadas ao frontend. Uma mensagem distinta por
// regra, para o doador saber exatamente o que corrigir.
const (
	MsgIncompleteData    = "Dados incompletos. Customer e amount são obrigatórios."
	MsgNameEmailRequired = "Nome e email do cliente são obrigatórios."
	MsgMinimumAmount     = "Valor mínimo é R$ 10,00 (1000 centavos)"
)

// minimumAmount é o valor mínimo de doação em centavos (R$ 10,00).
const minimumAmount = 1000

// ValidationError é uma falha de validação do request do doador. Vira 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// PaymentService é a lógica de negócio da criação de pagamento PIX.
type PaymentService interface {
	// CreatePayment valida a doação e a envia à GhostPay. Erros de
	// validação são *ValidationError; erros do processador são
	// *ghostpay.APIError; o resto é falha de transporte.
	CreatePayment(ctx context.Context, req model.DonationRequest) (*ghostpay.Result, error)
}

// PaymentServiceImpl é a implementação de PaymentService.
type PaymentServiceImpl struct {
	client ghostpay.Client
}

// NewPaymentService cria um PaymentServiceImpl.
func NewPaymentService(client ghostpay.Client) PaymentService {
	return &PaymentServiceImpl{client: client}
}

// CreatePayment valida, monta o payload e faz a chamada síncrona à GhostPay.
func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, req model.DonationRequest) (*ghostpay.Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	payload := ghostpay.BuildPayload(ghostpay.TransactionParams{
		Name:        req.Customer.Name,
		Email:       req.Customer.Email,
		Phone:       req.Customer.Phone,
		Document:    req.Customer.Document,
		Amount:      *req.Amount,
		Description: req.Description,
	})
	return s.client.CreateTransaction(ctx, payload)
}

// validate aplica as regras na ordem do contrato: presença dos blocos,
// presença de nome/email, valor mínimo. amount == 1000 passa.
func validate(req model.DonationRequest) error {
	if req.Customer == nil || req.Amount == nil {
		return &ValidationError{Message: MsgIncompleteData}
	}
	if req.Customer.Name == "" || req.Customer.Email == "" {
		return &ValidationError{Message: MsgNameEmailRequired}
	}
	if *req.Amount < minimumAmount {
		return &ValidationError{Message: MsgMinimumAmount}
	}
	return nil
}
