package invtrack

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Side is a typed string for the direction of a trade event.
type Side string

// Trade sides.
const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown trade side: %q", s)
	}
}

// OrderType qualifies how the order was filled. It is informational only and
// never used by any computation.
type OrderType string

const (
	Maker OrderType = "maker"
	Taker OrderType = "taker"
)

// TradeEvent is the atomic unit of the trade log: a single buy or sell of an
// asset at a point in time. Events are immutable and append-only; an edit is
// a replacement of the event with the same id, a delete removes it from the
// log. All derived state is recomputed from the current full log.
type TradeEvent struct {
	ID       string    // opaque unique identifier
	Time     time.Time // instant the trade occurred
	Asset    string    // asset symbol, case-sensitive
	Side     Side      // buy or sell
	Quantity Quantity  // number of units, always positive
	Price    Money     // per-unit price
	Fees     Money     // absolute fee amount, same currency as Price
	Order    OrderType // optional maker/taker qualifier
	Notes    string    // optional free text
}

// NewTradeEvent creates a trade event with a fresh unique id.
func NewTradeEvent(at time.Time, asset string, side Side, quantity Quantity, price, fees Money) TradeEvent {
	return TradeEvent{
		ID:       uuid.NewString(),
		Time:     at,
		Asset:    asset,
		Side:     side,
		Quantity: quantity,
		Price:    price,
		Fees:     fees,
	}
}

// Day returns the calendar day the event occurred on.
func (t TradeEvent) Day() string { return t.Time.UTC().Format("2006-01-02") }

// Equal reports whether two events are identical.
func (t TradeEvent) Equal(o TradeEvent) bool {
	return t.ID == o.ID &&
		t.Time.Equal(o.Time) &&
		t.Asset == o.Asset &&
		t.Side == o.Side &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price) &&
		t.Fees.Equal(o.Fees) &&
		t.Order == o.Order &&
		t.Notes == o.Notes
}

// Validate checks the event's fields. It sets the time to now if it is zero
// and generates an id if missing. The engine assumes validated events; this
// is the recording surface's gate.
func (t TradeEvent) Validate() (TradeEvent, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Time.IsZero() {
		t.Time = time.Now().UTC()
	}
	if t.Asset == "" {
		return t, errors.New("trade event asset is missing")
	}
	if _, err := ParseSide(string(t.Side)); err != nil {
		return t, err
	}
	if !t.Quantity.IsPositive() {
		return t, fmt.Errorf("trade event quantity must be positive, got %s", t.Quantity)
	}
	if t.Price.IsNegative() {
		return t, fmt.Errorf("trade event price cannot be negative, got %s", t.Price)
	}
	if t.Fees.IsNegative() {
		return t, fmt.Errorf("trade event fees cannot be negative, got %s", t.Fees)
	}
	if t.Order != "" && t.Order != Maker && t.Order != Taker {
		return t, fmt.Errorf("unknown order type: %q", t.Order)
	}
	return t, nil
}

// MarshalJSON implements the json.Marshaler interface for TradeEvent.
func (t TradeEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("time", t.Time.UTC().Format(time.RFC3339))
	w.Append("asset", t.Asset)
	w.Append("side", t.Side)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price.value)
	w.Optional("currency", t.Price.Currency())
	w.Append("fees", t.Fees.value)
	w.Optional("order", t.Order)
	w.Optional("notes", t.Notes)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for TradeEvent.
// It handles the custom structure where amounts and currency are separate fields.
func (t *TradeEvent) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID       string          `json:"id"`
		Time     string          `json:"time"`
		Asset    string          `json:"asset"`
		Side     Side            `json:"side"`
		Quantity Quantity        `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
		Currency string          `json:"currency"`
		Fees     decimal.Decimal `json:"fees"`
		Order    OrderType       `json:"order"`
		Notes    string          `json:"notes"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	at, err := time.Parse(time.RFC3339, temp.Time)
	if err != nil {
		return fmt.Errorf("invalid trade time %q: %w", temp.Time, err)
	}

	t.ID = temp.ID
	t.Time = at
	t.Asset = temp.Asset
	t.Side = temp.Side
	t.Quantity = temp.Quantity
	t.Price = M(temp.Price, temp.Currency)
	t.Fees = M(temp.Fees, temp.Currency)
	t.Order = temp.Order
	t.Notes = temp.Notes
	return nil
}
