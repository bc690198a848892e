package invtrack

import (
	"strings"
	"testing"
)

func TestDecodeTradeLog(t *testing.T) {
	// Out-of-order lines plus a blank one: decoding sorts and skips.
	input := `{"id":"b","time":"2025-02-01T12:00:00Z","asset":"BTC","side":"sell","quantity":1,"price":110,"currency":"USD","fees":0}

{"id":"a","time":"2025-01-01T12:00:00Z","asset":"BTC","side":"buy","quantity":1,"price":100,"currency":"USD","fees":0.5}
`

	log, err := DecodeTradeLog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeTradeLog: %v", err)
	}
	if log.Len() != 2 {
		t.Fatalf("len = %d, want 2", log.Len())
	}

	events := log.Events()
	if events[0].ID != "a" || events[1].ID != "b" {
		t.Errorf("events not chronologically sorted: %s then %s", events[0].ID, events[1].ID)
	}
	if !events[0].Fees.Equal(usd(0.5)) {
		t.Errorf("fees = %s, want $0.50", events[0].Fees)
	}
}

func TestDecodeTradeLog_BadLine(t *testing.T) {
	if _, err := DecodeTradeLog(strings.NewReader("{not json}\n")); err == nil {
		t.Error("decoding a malformed line did not fail")
	}
}

func TestEncodeTradeLog_Canonical(t *testing.T) {
	log := NewTradeLog()
	log.Append(
		tradeOn("2025-02-01", "BTC", Sell, 1, 110, 0),
		tradeOn("2025-01-01", "BTC", Buy, 1, 100, 0),
	)

	var b strings.Builder
	if err := EncodeTradeLog(&b, log); err != nil {
		t.Fatalf("EncodeTradeLog: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	// Canonical form is chronological, and amounts are plain JSON numbers.
	if !strings.Contains(lines[0], `"side":"buy"`) {
		t.Errorf("first line is not the oldest event: %s", lines[0])
	}
	if !strings.Contains(lines[0], `"price":100`) || strings.Contains(lines[0], `"price":"`) {
		t.Errorf("price not encoded as a bare number: %s", lines[0])
	}

	// Round trip back.
	back, err := DecodeTradeLog(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("decode of encoded log: %v", err)
	}
	if back.Len() != 2 {
		t.Errorf("round trip len = %d, want 2", back.Len())
	}
}

func TestGoalListJSONL(t *testing.T) {
	list := NewGoalList()
	goal := NewInvestmentGoal("House", usd(50000), usd(12000), mustDate("2027-12-31"), "BTC", "ETH")
	list.Append(goal)

	var b strings.Builder
	if err := EncodeGoalList(&b, list); err != nil {
		t.Fatalf("EncodeGoalList: %v", err)
	}

	back, err := DecodeGoalList(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodeGoalList: %v", err)
	}
	if back.Len() != 1 {
		t.Fatalf("len = %d, want 1", back.Len())
	}
	got, ok := back.Get(goal.ID)
	if !ok {
		t.Fatalf("goal %q not found after round trip", goal.ID)
	}
	if !got.Equal(goal) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, goal)
	}
}
