package invtrack

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// TradeLog is the append-only record of trade events.
//
// In a TradeLog events are always in chronological order; events sharing the
// same instant keep their insertion order.
type TradeLog struct {
	name   string
	events []TradeEvent
}

// NewTradeLog creates an empty trade log.
func NewTradeLog() *TradeLog {
	return &TradeLog{events: make([]TradeEvent, 0)}
}

// Name returns the log's name, its relative path in the storage directory.
func (l *TradeLog) Name() string { return l.name }

// Len returns the number of events in the log.
func (l *TradeLog) Len() int { return len(l.events) }

// Append adds events to the log, keeping it sorted.
func (l *TradeLog) Append(events ...TradeEvent) {
	l.events = append(l.events, events...)
	l.stableSort()
}

// Get returns the event with this id, or false.
func (l *TradeLog) Get(id string) (TradeEvent, bool) {
	for _, e := range l.events {
		if e.ID == id {
			return e, true
		}
	}
	return TradeEvent{}, false
}

// Replace substitutes the event carrying the same id with the new payload.
// This is the only way to "edit" an event: the log itself is append-only and
// derived state is always recomputed from the current full log.
func (l *TradeLog) Replace(ev TradeEvent) error {
	for i, e := range l.events {
		if e.ID == ev.ID {
			l.events[i] = ev
			l.stableSort()
			return nil
		}
	}
	return fmt.Errorf("no trade event with id %q", ev.ID)
}

// Delete removes the event with this id from the log.
func (l *TradeLog) Delete(id string) error {
	for i, e := range l.events {
		if e.ID == id {
			l.events = slices.Delete(l.events, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("no trade event with id %q", id)
}

// Events returns a snapshot of all events in chronological order.
func (l *TradeLog) Events() []TradeEvent {
	return slices.Clone(l.events)
}

// All returns an iterator over all events in chronological order.
func (l *TradeLog) All() iter.Seq[TradeEvent] {
	return func(yield func(TradeEvent) bool) {
		for _, e := range l.events {
			if !yield(e) {
				return
			}
		}
	}
}

// Assets returns the distinct asset symbols present in the log, sorted.
func (l *TradeLog) Assets() []string {
	seen := make(map[string]bool)
	var assets []string
	for _, e := range l.events {
		if !seen[e.Asset] {
			seen[e.Asset] = true
			assets = append(assets, e.Asset)
		}
	}
	sort.Strings(assets)
	return assets
}

// stableSort sorts events chronologically, preserving insertion order for
// events at the same instant.
func (l *TradeLog) stableSort() {
	sort.SliceStable(l.events, func(i, j int) bool {
		return l.events[i].Time.Before(l.events[j].Time)
	})
}

// groupByAsset partitions events per asset, each group keeping the log's
// chronological order.
func groupByAsset(events []TradeEvent) map[string][]TradeEvent {
	groups := make(map[string][]TradeEvent)
	for _, e := range events {
		if e.Asset == "" {
			continue
		}
		groups[e.Asset] = append(groups[e.Asset], e)
	}
	return groups
}

// sortedByTime returns a copy of events sorted chronologically (stable).
func sortedByTime(events []TradeEvent) []TradeEvent {
	sorted := slices.Clone(events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})
	return sorted
}
