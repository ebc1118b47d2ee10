// Package transaction provides the transaction record served by the finance tracker API.
package transaction

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single financial record returned by GET /api/transactions.
type Transaction struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
}

// UnmarshalJSON accepts ids encoded either as numbers or as numeric strings.
// The tracker stores its rows in CSV, so both shapes show up in practice.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type alias Transaction
	aux := struct {
		ID json.RawMessage `json:"id"`
		*alias
	}{alias: (*alias)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	id, err := parseID(aux.ID)
	if err != nil {
		return err
	}
	t.ID = id

	return nil
}

func parseID(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}

	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, fmt.Errorf("invalid transaction id %s: %w", raw, err)
		}
		s = strings.TrimSpace(s)
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction id %s", raw)
	}
	return id, nil
}

// Date is a transaction date. DateOnly is set when the wire value carried no
// time of day, in which case Time is midnight UTC of that calendar day.
// WallClock is set when the wire value had a time of day but no zone; Time
// then holds that reading in UTC and must not be converted to another zone.
type Date struct {
	Time      time.Time
	DateOnly  bool
	WallClock bool
}

// Layouts tried in order when decoding a date.
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		time.RFC1123,
		time.RFC1123Z,
	}
	wallClockLayouts = []string{
		"2006-01-02 15:04:05",
		wallClockLayout,
	}
)

const (
	dateOnlyLayout  = "2006-01-02"
	wallClockLayout = "2006-01-02T15:04:05"
)

// NewDate returns a calendar date with no time of day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), DateOnly: true}
}

// ParseDate parses the date formats the tracker is known to emit.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}

	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return Date{Time: t, DateOnly: true}, nil
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}, nil
		}
	}

	for _, layout := range wallClockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t, WallClock: true}, nil
		}
	}

	return Date{}, fmt.Errorf("unrecognized date format: %q", s)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	if d.DateOnly {
		return json.Marshal(d.Time.Format(dateOnlyLayout))
	}
	if d.WallClock {
		return json.Marshal(d.Time.Format(wallClockLayout))
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}
