package invtrack

import (
	"strings"
	"testing"
	"time"
)

const brokerExport = `{
  "account": "main",
  "trades": [
    {"executedAt": "2025-03-01T10:00:00Z", "symbol": "BTC", "direction": "BOUGHT", "qty": 0.5, "unitPrice": 94000, "commission": 12.5},
    {"executedAt": "2025-03-02 15:30:00", "symbol": "ETH", "direction": "sold", "qty": "2", "unitPrice": "3100.50", "commission": 1}
  ]
}`

func importMapping() ImportMapping {
	return ImportMapping{
		Rows:     "$.trades",
		Time:     "$.executedAt",
		Asset:    "$.symbol",
		Side:     "$.direction",
		Quantity: "$.qty",
		Price:    "$.unitPrice",
		Fees:     "$.commission",
		Sides:    map[string]Side{"bought": Buy, "sold": Sell},
	}
}

func TestImportMapping(t *testing.T) {
	events, err := importMapping().Import(strings.NewReader(brokerExport), "USD")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	btc := events[0]
	if btc.Asset != "BTC" || btc.Side != Buy {
		t.Errorf("first event = %s %s, want buy BTC", btc.Side, btc.Asset)
	}
	if !btc.Quantity.Equal(Q(0.5)) {
		t.Errorf("quantity = %s, want 0.5", btc.Quantity)
	}
	if !btc.Price.Equal(usd(94000)) {
		t.Errorf("price = %s, want $94000.00", btc.Price)
	}
	if !btc.Fees.Equal(usd(12.5)) {
		t.Errorf("fees = %s, want $12.50", btc.Fees)
	}
	if want := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC); !btc.Time.Equal(want) {
		t.Errorf("time = %s, want %s", btc.Time, want)
	}
	if btc.ID == "" {
		t.Error("imported event has no id")
	}

	// Numbers as strings and the fallback time layout both parse.
	eth := events[1]
	if eth.Side != Sell || !eth.Quantity.Equal(Q(2)) || !eth.Price.Equal(usd(3100.50)) {
		t.Errorf("second event = %+v, want sell 2 ETH at $3100.50", eth)
	}
}

func TestImportMapping_MissingRows(t *testing.T) {
	m := importMapping()
	m.Rows = ""
	if _, err := m.Import(strings.NewReader(brokerExport), "USD"); err == nil {
		t.Error("missing rows expression did not fail")
	}
}

func TestImportMapping_RowsNotArray(t *testing.T) {
	m := importMapping()
	m.Rows = "$.account"
	if _, err := m.Import(strings.NewReader(brokerExport), "USD"); err == nil {
		t.Error("non-array rows expression did not fail")
	}
}

func TestImportMapping_UnknownSide(t *testing.T) {
	m := importMapping()
	m.Sides = nil // "BOUGHT" no longer translates
	if _, err := m.Import(strings.NewReader(brokerExport), "USD"); err == nil {
		t.Error("untranslated side did not fail")
	}
}

func TestImportMapping_BadTime(t *testing.T) {
	m := importMapping()
	m.TimeLayouts = []string{"02/01/2006"}
	if _, err := m.Import(strings.NewReader(brokerExport), "USD"); err == nil {
		t.Error("unparseable time did not fail")
	}
}
