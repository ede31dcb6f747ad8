package model

// Customer é o bloco de dados do doador enviado pelo frontend.
type Customer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Document string `json:"document,omitempty"` // CPF/CNPJ, com ou sem pontuação
}

// DonationRequest is the inbound body of POST /create-payment. Customer and
// Amount are pointers so validation can tell a missing key from a zero value.
type DonationRequest struct {
	Customer    *Customer `json:"customer"`
	Amount      *int64    `json:"amount"` // centavos
	Description string    `json:"description,omitempty"`
}
