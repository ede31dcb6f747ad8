package ghostpay

import (
	"strings"
	"testing"
)

func TestNormalizeDocument(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123.456.789-09", "12345678909"},
		{"12345678909", "12345678909"}, // já limpo: idempotente
		{"12.345.678/0001-95", "12345678000195"},
		{"", DefaultDocumentNumber},
		{"---", DefaultDocumentNumber},
	}
	for _, tt := range tests {
		if got := NormalizeDocument(tt.in); got != tt.want {
			t.Errorf("NormalizeDocument(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDocument_Idempotent(t *testing.T) {
	once := NormalizeDocument("123.456.789-09")
	twice := NormalizeDocument(once)
	if once != twice {
		t.Errorf("expected idempotence, got %q then %q", once, twice)
	}
}

func TestBuildPayload_Defaults(t *testing.T) {
	p := BuildPayload(TransactionParams{
		Name:   "Maria Souza",
		Email:  "maria@example.com",
		Amount: 2500,
	})

	if p.PaymentMethod != "PIX" {
		t.Errorf("expected PIX, got %q", p.PaymentMethod)
	}
	if p.Customer.Phone != defaultPhone {
		t.Errorf("expected default phone, got %q", p.Customer.Phone)
	}
	if p.Customer.Document.Number != DefaultDocumentNumber {
		t.Errorf("expected default document, got %q", p.Customer.Document.Number)
	}
	if p.Customer.Document.Type != DocumentTypeCPF {
		t.Errorf("expected document type cpf, got %q", p.Customer.Document.Type)
	}
	if p.Description != defaultDescription {
		t.Errorf("expected default description, got %q", p.Description)
	}
	if len(p.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(p.Items))
	}
	item := p.Items[0]
	if item.UnitPrice != 2500 || item.Quantity != 1 {
		t.Errorf("expected unitPrice=2500 quantity=1, got %d/%d", item.UnitPrice, item.Quantity)
	}
	if p.Amount != 2500 {
		t.Errorf("expected amount mirrored, got %d", p.Amount)
	}
	if p.Metadata.Campaign != "rio-bonito-sos" || p.Metadata.Source != "website" {
		t.Errorf("unexpected metadata: %+v", p.Metadata)
	}
}

func TestBuildPayload_ProvidedValues(t *testing.T) {
	p := BuildPayload(TransactionParams{
		Name:        "Maria Souza",
		Email:       "maria@example.com",
		Phone:       "21988887777",
		Document:    "123.456.789-09",
		Amount:      1000,
		Description: "Doação especial",
	})

	if p.Customer.Phone != "21988887777" {
		t.Errorf("expected provided phone, got %q", p.Customer.Phone)
	}
	if p.Customer.Document.Number != "12345678909" {
		t.Errorf("expected normalized document, got %q", p.Customer.Document.Number)
	}
	if p.Description != "Doação especial" {
		t.Errorf("expected provided description, got %q", p.Description)
	}
}

func TestBuildPayload_ExternalRefUnique(t *testing.T) {
	a := BuildPayload(testParams()).Items[0].ExternalRef
	b := BuildPayload(testParams()).Items[0].ExternalRef

	if !strings.HasPrefix(a, externalRefPrefix+"-") {
		t.Errorf("expected prefix %q, got %q", externalRefPrefix, a)
	}
	if a == b {
		t.Errorf("expected unique external refs, both were %q", a)
	}
}
