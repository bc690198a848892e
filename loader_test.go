package invtrack

import (
	"testing"
)

func TestLoadTradeLog_Missing(t *testing.T) {
	log, err := LoadTradeLog(t.TempDir())
	if err != nil {
		t.Fatalf("LoadTradeLog on empty dir: %v", err)
	}
	if log.Len() != 0 {
		t.Errorf("len = %d, want 0", log.Len())
	}
}

func TestSaveAndLoadTradeLog(t *testing.T) {
	dir := t.TempDir()

	log := NewTradeLog()
	log.Append(
		tradeOn("2025-01-01", "BTC", Buy, 2, 100, 1),
		tradeOn("2025-01-02", "BTC", Sell, 1, 110, 1),
	)
	if err := SaveTradeLog(dir, log); err != nil {
		t.Fatalf("SaveTradeLog: %v", err)
	}

	back, err := LoadTradeLog(dir)
	if err != nil {
		t.Fatalf("LoadTradeLog: %v", err)
	}
	if back.Len() != 2 {
		t.Fatalf("len = %d, want 2", back.Len())
	}
	for i, want := range log.Events() {
		if got := back.Events()[i]; !got.Equal(want) {
			t.Errorf("events[%d] mismatch:\n got %+v\nwant %+v", i, got, want)
		}
	}
}

func TestAppendTradeEvent(t *testing.T) {
	dir := t.TempDir()

	// Appending twice to a missing file creates and grows it.
	if err := AppendTradeEvent(dir, tradeOn("2025-01-01", "BTC", Buy, 1, 100, 0)); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := AppendTradeEvent(dir, tradeOn("2025-01-02", "ETH", Buy, 1, 50, 0)); err != nil {
		t.Fatalf("second append: %v", err)
	}

	log, err := LoadTradeLog(dir)
	if err != nil {
		t.Fatalf("LoadTradeLog: %v", err)
	}
	if log.Len() != 2 {
		t.Errorf("len = %d, want 2", log.Len())
	}
}

func TestSaveAndLoadGoalList(t *testing.T) {
	dir := t.TempDir()

	list := NewGoalList()
	list.Append(NewInvestmentGoal("Car", usd(20000), usd(5000), mustDate("2026-06-30")))
	if err := SaveGoalList(dir, list); err != nil {
		t.Fatalf("SaveGoalList: %v", err)
	}

	back, err := LoadGoalList(dir)
	if err != nil {
		t.Fatalf("LoadGoalList: %v", err)
	}
	if back.Len() != 1 {
		t.Errorf("len = %d, want 1", back.Len())
	}
}

func TestLoadGoalList_Missing(t *testing.T) {
	list, err := LoadGoalList(t.TempDir())
	if err != nil {
		t.Fatalf("LoadGoalList on empty dir: %v", err)
	}
	if list.Len() != 0 {
		t.Errorf("len = %d, want 0", list.Len())
	}
}
