package invtrack

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// ImportMapping describes how to extract trade events from an arbitrary
// broker JSON export. Rows selects the array of trade rows; the other
// expressions are evaluated against each row. Every expression is a jsonpath.
type ImportMapping struct {
	Rows     string `toml:"rows"`
	Time     string `toml:"time"`
	Asset    string `toml:"asset"`
	Side     string `toml:"side"`
	Quantity string `toml:"quantity"`
	Price    string `toml:"price"`
	Fees     string `toml:"fees"` // optional: missing fees default to zero
	Notes    string `toml:"notes"`
	// Sides translates the broker's side values (lower-cased) to buy/sell.
	// When empty, the row value itself must be "buy" or "sell".
	Sides map[string]Side `toml:"sides"`
	// TimeLayouts lists the time formats to try, first match wins.
	// Defaults to RFC 3339 and plain dates.
	TimeLayouts []string `toml:"time_layouts"`
}

var defaultTimeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// Import reads a broker JSON export and maps it to validated trade events,
// all amounts denominated in the given currency. Each imported event gets a
// fresh id.
func (m ImportMapping) Import(r io.Reader, currency string) ([]TradeEvent, error) {
	if m.Rows == "" {
		return nil, fmt.Errorf("import mapping: rows expression is missing")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read export: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("export is not valid JSON: %w", err)
	}

	jrows, err := jsonpath.Get(m.Rows, jobj)
	if err != nil {
		return nil, fmt.Errorf("rows expression %q: %w", m.Rows, err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		return nil, fmt.Errorf("rows expression %q must select an array, got %T", m.Rows, jrows)
	}

	events := make([]TradeEvent, 0, len(rows))
	for i, row := range rows {
		ev, err := m.importRow(row, currency)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		ev, err = ev.Validate()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func (m ImportMapping) importRow(row any, currency string) (TradeEvent, error) {
	var ev TradeEvent

	at, err := m.rowTime(row)
	if err != nil {
		return ev, err
	}

	asset, err := rowString(row, m.Asset, "asset")
	if err != nil {
		return ev, err
	}

	sideValue, err := rowString(row, m.Side, "side")
	if err != nil {
		return ev, err
	}
	side, err := m.rowSide(sideValue)
	if err != nil {
		return ev, err
	}

	quantity, err := rowNumber(row, m.Quantity, "quantity")
	if err != nil {
		return ev, err
	}
	price, err := rowNumber(row, m.Price, "price")
	if err != nil {
		return ev, err
	}

	fees := decimal.Zero
	if m.Fees != "" {
		if fees, err = rowNumber(row, m.Fees, "fees"); err != nil {
			return ev, err
		}
	}

	ev = NewTradeEvent(at, asset, side, Q(quantity), M(price, currency), M(fees, currency))
	if m.Notes != "" {
		// notes are best effort, a missing field is not an error
		if notes, err := rowString(row, m.Notes, "notes"); err == nil {
			ev.Notes = notes
		}
	}
	return ev, nil
}

func (m ImportMapping) rowTime(row any) (time.Time, error) {
	str, err := rowString(row, m.Time, "time")
	if err != nil {
		return time.Time{}, err
	}
	layouts := m.TimeLayouts
	if len(layouts) == 0 {
		layouts = defaultTimeLayouts
	}
	for _, layout := range layouts {
		if at, err := time.Parse(layout, str); err == nil {
			return at.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("time %q matches none of the layouts %v", str, layouts)
}

func (m ImportMapping) rowSide(value string) (Side, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if side, ok := m.Sides[value]; ok {
		return ParseSide(string(side))
	}
	return ParseSide(value)
}

// rowGet evaluates a jsonpath expression against a row, unwrapping the
// single-element list jsonpath sometimes returns.
func rowGet(row any, path, field string) (any, error) {
	if path == "" {
		return nil, fmt.Errorf("import mapping: %s expression is missing", field)
	}
	jval, err := jsonpath.Get(path, row)
	if err != nil {
		return nil, fmt.Errorf("%s expression %q: %w", field, path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer,
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

func rowString(row any, path, field string) (string, error) {
	jval, err := rowGet(row, path, field)
	if err != nil {
		return "", err
	}
	str, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%s expression %q: expected a string, got %v", field, path, jval)
	}
	return str, nil
}

func rowNumber(row any, path, field string) (decimal.Decimal, error) {
	jval, err := rowGet(row, path, field)
	if err != nil {
		return decimal.Zero, err
	}
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s expression %q: %w", field, path, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("%s expression %q: expected a number, got %v", field, path, jval)
	}
}
