package ghostpay

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Valores fixos do payload de doação.
const (
	paymentMethodPIX   = "PIX"
	donationTitle      = "Doação para Rio Bonito SOS"
	defaultDescription = "Doação para Rio Bonito SOS"
	defaultPhone       = "11999999999"
	metadataCampaign   = "rio-bonito-sos"
	metadataSource     = "website"
	externalRefPrefix  = "doacao"
)

// TransactionParams são os dados já validados de uma doação.
type TransactionParams struct {
	Name        string
	Email       string
	Phone       string // opcional
	Document    string // opcional, CPF/CNPJ com ou sem pontuação
	Amount      int64  // centavos
	Description string // opcional
}

// Payload is the transaction body the GhostPay API expects.
type Payload struct {
	PaymentMethod string          `json:"paymentMethod"`
	Customer      PayloadCustomer `json:"customer"`
	Items         []Item          `json:"items"`
	Amount        int64           `json:"amount"`
	Description   string          `json:"description"`
	Metadata      Metadata        `json:"metadata"`
	Pix           struct{}        `json:"pix"`
}

// PayloadCustomer é o bloco de cliente no formato da GhostPay.
type PayloadCustomer struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Document Document `json:"document"`
}

// Document segue o contrato atual da API: objeto {number, type}.
type Document struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

// Item é o único line item sintético da doação.
type Item struct {
	Title       string `json:"title"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	ExternalRef string `json:"externalRef"`
}

// Metadata são as tags fixas de campanha anexadas a toda transação.
type Metadata struct {
	Campaign string `json:"campaign"`
	Source   string `json:"source"`
}

// BuildPayload monta o payload da GhostPay a partir de uma doação validada.
// Determinístico exceto pelo externalRef, que muda a cada chamada.
func BuildPayload(p TransactionParams) Payload {
	phone := p.Phone
	if phone == "" {
		phone = defaultPhone
	}
	description := p.Description
	if description == "" {
		description = defaultDescription
	}

	return Payload{
		PaymentMethod: paymentMethodPIX,
		Customer: PayloadCustomer{
			Name:  p.Name,
			Email: p.Email,
			Phone: phone,
			Document: Document{
				Number: NormalizeDocument(p.Document),
				Type:   DocumentTypeCPF,
			},
		},
		Items: []Item{
			{
				Title:       donationTitle,
				UnitPrice:   p.Amount,
				Quantity:    1,
				ExternalRef: newExternalRef(),
			},
		},
		Amount:      p.Amount,
		Description: description,
		Metadata: Metadata{
			Campaign: metadataCampaign,
			Source:   metadataSource,
		},
	}
}

// newExternalRef gera a referência externa do line item: prefixo fixo, hora
// atual em segundos e um sufixo aleatório para chamadas no mesmo segundo.
func newExternalRef() string {
	return fmt.Sprintf("%s-%d-%s", externalRefPrefix, time.Now().Unix(), uuid.NewString()[:8])
}
