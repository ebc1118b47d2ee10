// Package render maps transactions to table rows.
//
// Rendering is pure: the same transaction always yields the same row, and no
// document is needed to produce it.
package render

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shunichi-ikebuchi/finance-page/pkg/page"
	"github.com/shunichi-ikebuchi/finance-page/pkg/transaction"
)

// Action link labels.
const (
	EditLabel   = "Editar"
	DeleteLabel = "Excluir"
)

// EditHref returns the edit link for a transaction id.
func EditHref(id int64) string {
	return fmt.Sprintf("/edit/%d", id)
}

// DeleteHref returns the delete link for a transaction id.
func DeleteHref(id int64) string {
	return fmt.Sprintf("/delete/%d", id)
}

// Options configures a Renderer.
type Options struct {
	// Locale selects the date layout, e.g. "pt-BR". Empty uses the table default.
	Locale string
	// Locales is the locale table. Nil uses the built-in table.
	Locales *LocaleTable
	// Location is where timestamps are displayed. Nil means time.Local.
	Location *time.Location
}

// Renderer turns transactions into table rows.
type Renderer struct {
	dateLayout string
	location   *time.Location
}

// NewRenderer creates a Renderer for the given options.
func NewRenderer(opts Options) (*Renderer, error) {
	locales := opts.Locales
	if locales == nil {
		var err error
		locales, err = LoadLocales("")
		if err != nil {
			return nil, err
		}
	}

	layout, err := locales.DateLayout(opts.Locale)
	if err != nil {
		return nil, err
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	return &Renderer{
		dateLayout: layout,
		location:   loc,
	}, nil
}

// Row renders one transaction: id, description, category, amount and date
// cells, then the edit and delete links.
func (r *Renderer) Row(tx transaction.Transaction) page.Row {
	return page.Row{
		Cells: []string{
			strconv.FormatInt(tx.ID, 10),
			tx.Description,
			tx.Category,
			tx.Amount.String(),
			r.FormatDate(tx.Date),
		},
		Links: []*page.Element{
			{Tag: "a", Href: EditHref(tx.ID), Text: EditLabel},
			{Tag: "a", Href: DeleteHref(tx.ID), Text: DeleteLabel, Classes: []string{page.DeleteTransactionClass}},
		},
	}
}

// Rows renders transactions in order.
func (r *Renderer) Rows(txs []transaction.Transaction) []page.Row {
	rows := make([]page.Row, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, r.Row(tx))
	}
	return rows
}

// FormatDate formats a date with the renderer's locale. Calendar dates and
// zone-less timestamps are printed as read; zoned timestamps are converted to
// the renderer's location first.
func (r *Renderer) FormatDate(d transaction.Date) string {
	if d.IsZero() {
		return ""
	}
	if d.DateOnly || d.WallClock {
		return d.Time.Format(r.dateLayout)
	}
	return d.Time.In(r.location).Format(r.dateLayout)
}
