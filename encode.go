package invtrack

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists the trade log and the goal list as JSONL, one record per
// line, so the files stay human-readable, diffable and git-friendly.

// DecodeTradeLog decodes trade events from a stream of JSONL data, one event
// per line, and returns a chronologically sorted TradeLog.
func DecodeTradeLog(r io.Reader) (*TradeLog, error) {
	log := NewTradeLog()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var ev TradeEvent
		if err := json.Unmarshal(lineBytes, &ev); err != nil {
			return nil, fmt.Errorf("could not decode trade event in line %q: %w", string(lineBytes), err)
		}
		log.events = append(log.events, ev)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	// Perform a stable sort based on the event time: events on the same
	// instant keep their file order.
	log.stableSort()
	return log, nil
}

// EncodeTradeEvent marshals a single event to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeTradeEvent(w io.Writer, ev TradeEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal trade event: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write trade event: %w", err)
	}
	return nil
}

// EncodeTradeLog persists the log to an io.Writer in canonical JSONL form:
// chronologically sorted, one event per line.
func EncodeTradeLog(w io.Writer, log *TradeLog) error {
	log.stableSort()
	for _, ev := range log.events {
		if err := EncodeTradeEvent(w, ev); err != nil {
			return err
		}
	}
	return nil
}

// DecodeGoalList decodes investment goals from a stream of JSONL data.
func DecodeGoalList(r io.Reader) (*GoalList, error) {
	list := NewGoalList()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var g InvestmentGoal
		if err := json.Unmarshal(lineBytes, &g); err != nil {
			return nil, fmt.Errorf("could not decode goal in line %q: %w", string(lineBytes), err)
		}
		list.goals = append(list.goals, g)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return list, nil
}

// EncodeGoal marshals a single goal to JSON and writes it to the writer,
// followed by a newline.
func EncodeGoal(w io.Writer, g InvestmentGoal) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal goal: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write goal: %w", err)
	}
	return nil
}

// EncodeGoalList persists the goal list to an io.Writer in JSONL format.
func EncodeGoalList(w io.Writer, list *GoalList) error {
	for _, g := range list.goals {
		if err := EncodeGoal(w, g); err != nil {
			return err
		}
	}
	return nil
}
