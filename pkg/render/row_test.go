package render

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shunichi-ikebuchi/finance-page/pkg/page"
	"github.com/shunichi-ikebuchi/finance-page/pkg/transaction"
)

func newTestRenderer(t *testing.T, locale string, loc *time.Location) *Renderer {
	t.Helper()
	r, err := NewRenderer(Options{Locale: locale, Location: loc})
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return r
}

func TestRow(t *testing.T) {
	r := newTestRenderer(t, "pt-BR", time.UTC)

	row := r.Row(transaction.Transaction{
		ID:          1,
		Description: "Coffee",
		Category:    "Food",
		Amount:      decimal.RequireFromString("4.5"),
		Date:        transaction.NewDate(2024, time.January, 2),
	})

	expected := []string{"1", "Coffee", "Food", "4.5", "02/01/2024"}
	if len(row.Cells) != len(expected) {
		t.Fatalf("got %d cells, expected %d", len(row.Cells), len(expected))
	}
	for i, cell := range expected {
		if row.Cells[i] != cell {
			t.Errorf("cell %d = %q, expected %q", i, row.Cells[i], cell)
		}
	}

	if len(row.Links) != 2 {
		t.Fatalf("got %d links, expected 2", len(row.Links))
	}
	if row.Links[0].Href != "/edit/1" || row.Links[0].Text != EditLabel {
		t.Errorf("edit link = %+v", row.Links[0])
	}
	if row.Links[1].Href != "/delete/1" || !row.Links[1].HasClass(page.DeleteTransactionClass) {
		t.Errorf("delete link = %+v", row.Links[1])
	}
}

func TestRowAmountFormatting(t *testing.T) {
	r := newTestRenderer(t, "iso", time.UTC)

	tests := []struct {
		amount   string
		expected string
	}{
		{"4.5", "4.5"},
		{"10", "10"},
		{"10.00", "10"},
		{"-32.10", "-32.1"},
		{"0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			row := r.Row(transaction.Transaction{ID: 1, Amount: decimal.RequireFromString(tt.amount)})
			if row.Cells[3] != tt.expected {
				t.Errorf("amount cell = %q, expected %q", row.Cells[3], tt.expected)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name     string
		locale   string
		date     transaction.Date
		expected string
	}{
		{"pt-BR calendar date", "pt-BR", transaction.NewDate(2024, time.January, 2), "02/01/2024"},
		{"en-US calendar date", "en-US", transaction.NewDate(2024, time.January, 2), "1/2/2024"},
		{"de-DE calendar date", "de-DE", transaction.NewDate(2024, time.March, 9), "9.3.2024"},
		{"calendar date does not shift west", "pt-BR", transaction.NewDate(2024, time.January, 2), "02/01/2024"},
		{"timestamp converted to location", "pt-BR", transaction.Date{Time: time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC)}, "01/01/2024"},
		{"wall clock timestamp not converted", "pt-BR", transaction.Date{Time: time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC), WallClock: true}, "02/01/2024"},
		{"zero date", "pt-BR", transaction.Date{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRenderer(t, tt.locale, saoPaulo)
			if got := r.FormatDate(tt.date); got != tt.expected {
				t.Errorf("FormatDate() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestRowDecodedTimestamps(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skipf("time zone database unavailable: %v", err)
	}
	r := newTestRenderer(t, "pt-BR", saoPaulo)

	tests := []struct {
		name     string
		date     string
		expected string
	}{
		{"form layout", "2024-01-02 01:00:00", "02/01/2024"},
		{"iso without zone", "2024-01-02T01:00:00", "02/01/2024"},
		{"date only", "2024-01-02", "02/01/2024"},
		{"utc timestamp", "2024-01-02T01:00:00Z", "01/01/2024"},
		{"rfc1123 gmt", "Tue, 02 Jan 2024 01:00:00 GMT", "01/01/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tx transaction.Transaction
			input := `{"id":"1","amount":"4.50","date":"` + tt.date + `"}`
			if err := json.Unmarshal([]byte(input), &tx); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}

			row := r.Row(tx)
			if row.Cells[4] != tt.expected {
				t.Errorf("date cell = %q, expected %q", row.Cells[4], tt.expected)
			}
		})
	}
}

// Amounts are shown in shortest decimal form, so trailing zeros sent by the
// server as strings are dropped.
func TestRowDecodedAmountShortestForm(t *testing.T) {
	r := newTestRenderer(t, "pt-BR", time.UTC)

	tests := []struct {
		input    string
		expected string
	}{
		{`"4.50"`, "4.5"},
		{`"1200.00"`, "1200"},
		{`4.50`, "4.5"},
		{`"0.10"`, "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var tx transaction.Transaction
			if err := json.Unmarshal([]byte(`{"id":1,"amount":`+tt.input+`}`), &tx); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got := r.Row(tx).Cells[3]; got != tt.expected {
				t.Errorf("amount cell = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestRows(t *testing.T) {
	r := newTestRenderer(t, "", time.UTC)

	rows := r.Rows([]transaction.Transaction{{ID: 3}, {ID: 1}, {ID: 2}})
	if len(rows) != 3 {
		t.Fatalf("got %d rows, expected 3", len(rows))
	}
	for i, id := range []string{"3", "1", "2"} {
		if rows[i].Cells[0] != id {
			t.Errorf("row %d id = %s, expected %s", i, rows[i].Cells[0], id)
		}
	}

	if empty := r.Rows(nil); len(empty) != 0 {
		t.Errorf("Rows(nil) returned %d rows", len(empty))
	}
}

func TestNewRendererUnknownLocale(t *testing.T) {
	if _, err := NewRenderer(Options{Locale: "xx-YY"}); err == nil {
		t.Error("NewRenderer() expected error for unknown locale")
	}
}
