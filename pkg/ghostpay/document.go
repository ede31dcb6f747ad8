package ghostpay

// DocumentTypeCPF é o único tipo de documento enviado pelo relay.
const DocumentTypeCPF = "cpf"

// DefaultDocumentNumber substitui o documento quando o doador não informa um.
// A API exige um número de documento em toda transação.
const DefaultDocumentNumber = "12345678909"

// NormalizeDocument remove tudo que não for dígito de um CPF/CNPJ. Entrada
// vazia (ou sem nenhum dígito) vira o documento padrão. Nunca falha.
func NormalizeDocument(doc string) string {
	digits := make([]byte, 0, len(doc))
	for i := 0; i < len(doc); i++ {
		if doc[i] >= '0' && doc[i] <= '9' {
			digits = append(digits, doc[i])
		}
	}
	if len(digits) == 0 {
		return DefaultDocumentNumber
	}
	return string(digits)
}
