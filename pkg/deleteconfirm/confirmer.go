// Package deleteconfirm asks for confirmation before a delete link is followed.
package deleteconfirm

import (
	"context"
	"log/slog"

	"github.com/shunichi-ikebuchi/finance-page/pkg/page"
)

// ConfirmMessage is the question asked before deleting a transaction.
const ConfirmMessage = "Tem certeza que deseja excluir esta transação?"

// Confirmer guards every element marked as a delete trigger.
type Confirmer struct {
	window page.Window
	logger *slog.Logger
}

// New creates a Confirmer that asks through window.
func New(window page.Window, logger *slog.Logger) *Confirmer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Confirmer{window: window, logger: logger}
}

// Attach registers the click listener for delete triggers. The listener is
// delegated, so triggers rendered later are guarded too.
func (c *Confirmer) Attach(doc *page.Document) {
	doc.On(page.ByClass(page.DeleteTransactionClass), page.EventClick, func(_ context.Context, ev *page.Event) {
		if !c.window.Confirm(ConfirmMessage) {
			ev.PreventDefault()
			c.logger.Debug("Delete declined", "href", ev.Target.Href)
		}
	})
}
