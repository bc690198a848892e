package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// time.Time values are usually not comparable (location pointer);
		// canonical UTC construction keeps this property true.
		t.Errorf("invalid time() function: same day gives two different times")
	}
}

func TestNew_Normalizes(t *testing.T) {
	// Day overflow rolls into the next month.
	if got := New(2025, time.January, 32); got != New(2025, time.February, 1) {
		t.Errorf("New(2025, 1, 32) = %s, want 2025-02-01", got)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: New(2025, 7, 1)},
		{in: "2025-7-1", want: New(2025, 7, 1)}, // lenient form
		{in: "2025-13-01", wantErr: true},
		{in: "not a date", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestAddSub(t *testing.T) {
	d := New(2025, 1, 1)

	if got := d.Add(31); got != New(2025, 2, 1) {
		t.Errorf("Add(31) = %s, want 2025-02-01", got)
	}
	if got := New(2025, 12, 31).Sub(d); got != 364 {
		t.Errorf("Dec 31 - Jan 1 = %d days, want 364", got)
	}
	if got := d.Sub(New(2025, 1, 2)); got != -1 {
		t.Errorf("Sub of a later date = %d, want -1", got)
	}
}

func TestStartOfYear(t *testing.T) {
	if got := New(2025, 7, 15).StartOfYear(); got != New(2025, 1, 1) {
		t.Errorf("StartOfYear = %s, want 2025-01-01", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2025, 3, 9)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2025-03-09"` {
		t.Errorf("Marshal = %s, want \"2025-03-09\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
