// Package formguard blocks submission of the transaction form while a
// required field is empty.
package formguard

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shunichi-ikebuchi/finance-page/pkg/page"
)

// EmptyFieldsMessage is shown when a required field is empty.
const EmptyFieldsMessage = "Por favor, preencha todos os campos."

// ErrEmptyFields is returned by Validate when description or amount is blank.
var ErrEmptyFields = errors.New("description and amount are required")

// Validate checks the required fields. Whitespace-only values count as empty;
// the amount is not checked for being numeric.
func Validate(description, amount string) error {
	if strings.TrimSpace(description) == "" || strings.TrimSpace(amount) == "" {
		return ErrEmptyFields
	}
	return nil
}

// Guard validates the transaction form on submit.
type Guard struct {
	window page.Window
	logger *slog.Logger
}

// New creates a Guard that notifies through window.
func New(window page.Window, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{window: window, logger: logger}
}

// Attach registers the submit listener on the transaction form.
func (g *Guard) Attach(doc *page.Document) {
	doc.On(page.ByID(page.TransactionFormID), page.EventSubmit, func(_ context.Context, ev *page.Event) {
		description, _ := doc.Value(page.DescriptionFieldID)
		amount, _ := doc.Value(page.AmountFieldID)

		if err := Validate(description, amount); err != nil {
			ev.PreventDefault()
			g.logger.Debug("Blocked form submission", "form", page.TransactionFormID, "reason", err)
			g.window.Alert(EmptyFieldsMessage)
		}
	})
}
