// Package financeapi provides the HTTP client for the finance tracker server.
package financeapi

import "fmt"

// Server routes.
const (
	TransactionsPath = "/api/transactions"
	TransactionsPage = "/transacoes"
)

// Form field names the server reads from the transaction form.
const (
	FieldDescription = "descricao"
	FieldAmount      = "valor"
	FieldCategory    = "categoria"
)

// APIError is returned for non-success responses.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("finance API error: %s %s returned status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("finance API error: %s %s returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}
