package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riobonito-sos/backend/internal/model"
	"github.com/riobonito-sos/backend/internal/service"
	"github.com/riobonito-sos/backend/pkg/ghostpay"
)

// ---------------------------------------------------------------------------
// Mock PaymentService
// ---------------------------------------------------------------------------

type mockPaymentService struct {
	createPaymentFunc func(ctx context.Context, req model.DonationRequest) (*ghostpay.Result, error)
	calls             int
}

func (m *mockPaymentService) CreatePayment(ctx context.Context, req model.DonationRequest) (*ghostpay.Result, error) {
	m.calls++
	if m.createPaymentFunc != nil {
		return m.createPaymentFunc(ctx, req)
	}
	return &ghostpay.Result{StatusCode: 201, Body: []byte(`{}`)}, nil
}

func postPayment(t *testing.T, h *PaymentHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/create-payment", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreatePayment(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if !resp.Error {
		t.Error("expected error=true in body")
	}
	return resp
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestCreatePayment_InvalidJSON(t *testing.T) {
	mock := &mockPaymentService{}
	h := NewPaymentHandler(mock)

	rec := postPayment(t, h, `{"amount": "dez reais"`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if mock.calls != 0 {
		t.Errorf("expected no service call, got %d", mock.calls)
	}
}

func TestCreatePayment_NonNumericAmount(t *testing.T) {
	h := NewPaymentHandler(&mockPaymentService{})
	rec := postPayment(t, h, `{"customer":{"name":"João","email":"j@t.com"},"amount":"1000"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric amount, got %d", rec.Code)
	}
}

func TestCreatePayment_ValidationError(t *testing.T) {
	mock := &mockPaymentService{
		createPaymentFunc: func(ctx context.Context, req model.DonationRequest) (*ghostpay.Result, error) {
			return nil, &service.ValidationError{Message: service.MsgIncompleteData}
		},
	}
	h := NewPaymentHandler(mock)

	rec := postPayment(t, h, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Message != service.MsgIncompleteData {
		t.Errorf("expected incomplete-data message, got %q", resp.Message)
	}
}

func TestCreatePayment_SuccessPassesBodyThrough(t *testing.T) {
	processorBody := `{"id":"tx_9","pix":{"qrCode":"00020126580014br.gov.bcb.pix"}}`
	mock := &mockPaymentService{
		createPaymentFunc: func(ctx context.Context, req model.DonationRequest) (*ghostpay.Result, error) {
			return &ghostpay.Result{StatusCode: 201, Body: []byte(processorBody)}, nil
		},
	}
	h := NewPaymentHandler(mock)

	rec := postPayment(t, h, `{"customer":{"name":"João","email":"j@t.com"},"amount":1000}`)
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if rec.Body.String() != processorBody {
		t.Errorf("expected processor body unchanged, got %s", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
}

func TestCreatePayment_Upstream401(t *testing.T) {
	mock := &mockPaymentService{
		createPaymentFunc: func(ctx context.Context, req model.DonationRequest) (*ghostpay.Result, error) {
			return nil, &ghostpay.APIError{StatusCode: 401, Body: []byte(`{"error":"invalid api key"}`)}
		},
	}
	h := NewPaymentHandler(mock)

	rec := postPayment(t, h, `{"customer":{"name":"João","email":"j@t.com"},"amount":1000}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if !strings.Contains(resp.Message, "Não autorizado") {
		t.Errorf("expected auth-failure message, got %q", resp.Message)
	}
	details, ok := resp.Details.(string)
	if !ok || !strings.Contains(details, "invalid api key") {
		t.Errorf("expected raw processor body in details, got %v", resp.Details)
	}
}

func TestCreatePayment_UpstreamRejectionMirrorsStatus(t *testing.T) {
	mock := &mockPaymentService{
		createPaymentFunc: func(ctx context.Context, req model.DonationRequest) (*ghostpay.Result, error) {
			return nil, &ghostpay.APIError{StatusCode: 422, Body: []byte(`{"message":"documento inválido"}`)}
		},
	}
	h := NewPaymentHandler(mock)

	rec := postPayment(t, h, `{"customer":{"name":"João","email":"j@t.com"},"amount":1000}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected mirrored 422, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Details != "documento inválido" {
		t.Errorf("expected structured detail, got %v", resp.Details)
	}
}

func TestCreatePayment_TransportError(t *testing.T) {
	mock := &mockPaymentService{
		createPaymentFunc: func(ctx context.Context, req model.DonationRequest) (*ghostpay.Result, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}
	h := NewPaymentHandler(mock)

	rec := postPayment(t, h, `{"customer":{"name":"João","email":"j@t.com"},"amount":1000}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if !strings.Contains(resp.Message, "Erro de conexão") {
		t.Errorf("expected transport-error message, got %q", resp.Message)
	}
}

func TestCreatePayment_NotConfigured(t *testing.T) {
	mock := &mockPaymentService{
		createPaymentFunc: func(ctx context.Context, req model.DonationRequest) (*ghostpay.Result, error) {
			return nil, ghostpay.ErrNotConfigured
		},
	}
	h := NewPaymentHandler(mock)

	rec := postPayment(t, h, `{"customer":{"name":"João","email":"j@t.com"},"amount":1000}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
