package date

import "testing"

func TestHistory_AppendSortsAndOverwrites(t *testing.T) {
	var h History[int]
	h.Append(New(2025, 2, 1), 2)
	h.Append(New(2025, 1, 1), 1)
	h.Append(New(2025, 2, 1), 20) // overwrite

	if h.Len() != 2 {
		t.Fatalf("len = %d, want 2", h.Len())
	}

	var days []Date
	var values []int
	for d, v := range h.Values() {
		days = append(days, d)
		values = append(values, v)
	}
	if days[0] != New(2025, 1, 1) || days[1] != New(2025, 2, 1) {
		t.Errorf("days not chronological: %v", days)
	}
	if values[1] != 20 {
		t.Errorf("overwritten value = %d, want 20", values[1])
	}
}

func TestHistory_Merge(t *testing.T) {
	var h History[int]
	sum := func(old, new int) int { return old + new }

	h.Merge(New(2025, 1, 1), 5, sum)
	h.Merge(New(2025, 1, 1), 3, sum)
	h.Merge(New(2025, 1, 2), 1, sum)

	if got, _ := h.Get(New(2025, 1, 1)); got != 8 {
		t.Errorf("merged value = %d, want 8", got)
	}
	if h.Len() != 2 {
		t.Errorf("len = %d, want 2", h.Len())
	}
}

func TestHistory_Latest(t *testing.T) {
	var h History[string]

	if day, value := h.Latest(); !day.IsZero() || value != "" {
		t.Errorf("empty Latest = %s %q, want zero values", day, value)
	}

	h.Append(New(2025, 1, 1), "old")
	h.Append(New(2025, 3, 1), "new")
	if day, value := h.Latest(); day != New(2025, 3, 1) || value != "new" {
		t.Errorf("Latest = %s %q, want 2025-03-01 new", day, value)
	}
}

func TestHistory_ValueAsOf(t *testing.T) {
	var h History[int]
	h.Append(New(2025, 1, 10), 1)
	h.Append(New(2025, 1, 20), 2)

	if _, ok := h.ValueAsOf(New(2025, 1, 9)); ok {
		t.Error("found a value before the first entry")
	}
	if got, ok := h.ValueAsOf(New(2025, 1, 10)); !ok || got != 1 {
		t.Errorf("ValueAsOf(exact) = %d %v, want 1 true", got, ok)
	}
	if got, ok := h.ValueAsOf(New(2025, 1, 15)); !ok || got != 1 {
		t.Errorf("ValueAsOf(between) = %d %v, want 1 true", got, ok)
	}
	if got, ok := h.ValueAsOf(New(2025, 2, 1)); !ok || got != 2 {
		t.Errorf("ValueAsOf(after) = %d %v, want 2 true", got, ok)
	}
}
