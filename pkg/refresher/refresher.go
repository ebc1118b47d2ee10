// Package refresher reloads the transactions table when the page becomes ready.
package refresher

import (
	"context"
	"log/slog"

	"github.com/sourcegraph/conc"

	"github.com/shunichi-ikebuchi/finance-page/pkg/page"
	"github.com/shunichi-ikebuchi/finance-page/pkg/transaction"
)

// Lister fetches the transaction list.
type Lister interface {
	ListTransactions(ctx context.Context) ([]transaction.Transaction, error)
}

// RowRenderer maps transactions to table rows.
type RowRenderer interface {
	Rows(txs []transaction.Transaction) []page.Row
}

// Refresher fetches transactions and re-renders the table body.
type Refresher struct {
	lister   Lister
	renderer RowRenderer
	logger   *slog.Logger
	bodyID   string
	wg       conc.WaitGroup
}

// New creates a Refresher that fills the transactions table body.
func New(lister Lister, renderer RowRenderer, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Refresher{
		lister:   lister,
		renderer: renderer,
		logger:   logger,
		bodyID:   page.TransactionsTableBody,
	}
}

// Attach registers the refresh on the page-ready event. The listener returns
// at once; the fetch completes in the background, see Wait.
func (r *Refresher) Attach(doc *page.Document) {
	doc.OnReady(func(ctx context.Context, _ *page.Event) {
		r.wg.Go(func() {
			_ = r.Refresh(ctx, doc)
		})
	})
}

// Wait blocks until every background refresh has finished.
func (r *Refresher) Wait() {
	r.wg.Wait()
}

// Refresh fetches the list and replaces every row of the table body. On
// failure the error is logged and returned and the table is left untouched.
func (r *Refresher) Refresh(ctx context.Context, doc *page.Document) error {
	body := doc.TableBody(r.bodyID)
	if body == nil {
		r.logger.Warn("Table body not found, skipping refresh", "id", r.bodyID)
		return nil
	}

	txs, err := r.lister.ListTransactions(ctx)
	if err != nil {
		r.logger.Error("failed to fetch transactions", "error", err)
		return err
	}

	body.Replace(r.renderer.Rows(txs))
	r.logger.Debug("Refreshed transactions table", "rows", len(txs))

	return nil
}
