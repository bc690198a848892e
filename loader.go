package invtrack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Default file names inside the storage directory.
const (
	TradesFilename = "trades.jsonl"
	GoalsFilename  = "goals.jsonl"
)

// LoadTradeLog opens and decodes the trade log from the storage directory.
// A missing file yields an empty log, not an error: recording the first trade
// creates it.
func LoadTradeLog(dir string) (*TradeLog, error) {
	path := filepath.Join(dir, TradesFilename)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log := NewTradeLog()
		log.name = TradesFilename
		return log, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open trade log %q: %w", path, err)
	}
	defer f.Close()

	log, err := DecodeTradeLog(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode trade log %q: %w", path, err)
	}
	log.name = TradesFilename
	return log, nil
}

// SaveTradeLog writes the log back to the storage directory in canonical
// sorted JSONL form.
func SaveTradeLog(dir string, log *TradeLog) error {
	path := filepath.Join(dir, TradesFilename)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create storage directory %q: %w", dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening trade log %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeTradeLog(f, log)
}

// AppendTradeEvent appends a single event to the trade log file, creating it
// if needed. This is the cheap recording path: the file is canonicalized only
// by SaveTradeLog.
func AppendTradeEvent(dir string, ev TradeEvent) error {
	path := filepath.Join(dir, TradesFilename)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create storage directory %q: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening trade log %q: %w", path, err)
	}
	defer f.Close()

	return EncodeTradeEvent(f, ev)
}

// LoadGoalList opens and decodes the goals file from the storage directory.
// A missing file yields an empty list.
func LoadGoalList(dir string) (*GoalList, error) {
	path := filepath.Join(dir, GoalsFilename)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		list := NewGoalList()
		list.name = GoalsFilename
		return list, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open goals file %q: %w", path, err)
	}
	defer f.Close()

	list, err := DecodeGoalList(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode goals file %q: %w", path, err)
	}
	list.name = GoalsFilename
	return list, nil
}

// SaveGoalList writes the goal list back to the storage directory.
func SaveGoalList(dir string, list *GoalList) error {
	path := filepath.Join(dir, GoalsFilename)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create storage directory %q: %w", dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening goals file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeGoalList(f, list)
}
