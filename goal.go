package invtrack

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"
	"github.com/invtrack/invtrack/date"
	"github.com/shopspring/decimal"
)

// InvestmentGoal is a savings target with a deadline. AssignedAssets is
// informational only: the pacing analyzer does not cross-reference the trade
// log with assigned assets.
type InvestmentGoal struct {
	ID             string
	Name           string
	TargetAmount   Money // always positive
	CurrentAmount  Money // never negative
	Deadline       date.Date
	AssignedAssets []string
}

// NewInvestmentGoal creates a goal with a fresh unique id.
func NewInvestmentGoal(name string, target, current Money, deadline date.Date, assets ...string) InvestmentGoal {
	return InvestmentGoal{
		ID:             uuid.NewString(),
		Name:           name,
		TargetAmount:   target,
		CurrentAmount:  current,
		Deadline:       deadline,
		AssignedAssets: assets,
	}
}

// Progress returns CurrentAmount / TargetAmount × 100. The raw value is used
// by the pacing math; clamping to [0, 100] is a display concern.
func (g InvestmentGoal) Progress() Percent {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	return Percent(g.CurrentAmount.AsFloat() / g.TargetAmount.AsFloat() * 100)
}

// Validate checks the goal's fields, generating an id if missing.
func (g InvestmentGoal) Validate() (InvestmentGoal, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Name == "" {
		return g, errors.New("goal name is missing")
	}
	if !g.TargetAmount.IsPositive() {
		return g, fmt.Errorf("goal target amount must be positive, got %s", g.TargetAmount)
	}
	if g.CurrentAmount.IsNegative() {
		return g, fmt.Errorf("goal current amount cannot be negative, got %s", g.CurrentAmount)
	}
	if g.Deadline.IsZero() {
		return g, errors.New("goal deadline is missing")
	}
	return g, nil
}

// Equal reports whether two goals are identical.
func (g InvestmentGoal) Equal(o InvestmentGoal) bool {
	return g.ID == o.ID &&
		g.Name == o.Name &&
		g.TargetAmount.Equal(o.TargetAmount) &&
		g.CurrentAmount.Equal(o.CurrentAmount) &&
		g.Deadline == o.Deadline &&
		slices.Equal(g.AssignedAssets, o.AssignedAssets)
}

// MarshalJSON implements the json.Marshaler interface for InvestmentGoal.
func (g InvestmentGoal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", g.ID)
	w.Append("name", g.Name)
	w.Append("target", g.TargetAmount.value)
	w.Append("current", g.CurrentAmount.value)
	w.Optional("currency", g.TargetAmount.Currency())
	w.Append("deadline", g.Deadline)
	w.Optional("assets", g.AssignedAssets)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for InvestmentGoal.
func (g *InvestmentGoal) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Target   decimal.Decimal `json:"target"`
		Current  decimal.Decimal `json:"current"`
		Currency string          `json:"currency"`
		Deadline date.Date       `json:"deadline"`
		Assets   []string        `json:"assets"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	g.ID = temp.ID
	g.Name = temp.Name
	g.TargetAmount = M(temp.Target, temp.Currency)
	g.CurrentAmount = M(temp.Current, temp.Currency)
	g.Deadline = temp.Deadline
	g.AssignedAssets = temp.Assets
	return nil
}

// GoalList is the stored collection of investment goals.
type GoalList struct {
	name  string
	goals []InvestmentGoal
}

// NewGoalList creates an empty goal list.
func NewGoalList() *GoalList {
	return &GoalList{goals: make([]InvestmentGoal, 0)}
}

// Name returns the list's name, its relative path in the storage directory.
func (l *GoalList) Name() string { return l.name }

// Len returns the number of goals.
func (l *GoalList) Len() int { return len(l.goals) }

// Append adds goals to the list.
func (l *GoalList) Append(goals ...InvestmentGoal) {
	l.goals = append(l.goals, goals...)
}

// Get returns the goal with this id, or false.
func (l *GoalList) Get(id string) (InvestmentGoal, bool) {
	for _, g := range l.goals {
		if g.ID == id {
			return g, true
		}
	}
	return InvestmentGoal{}, false
}

// Replace substitutes the goal carrying the same id with the new payload.
func (l *GoalList) Replace(goal InvestmentGoal) error {
	for i, g := range l.goals {
		if g.ID == goal.ID {
			l.goals[i] = goal
			return nil
		}
	}
	return fmt.Errorf("no goal with id %q", goal.ID)
}

// Delete removes the goal with this id.
func (l *GoalList) Delete(id string) error {
	for i, g := range l.goals {
		if g.ID == id {
			l.goals = slices.Delete(l.goals, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("no goal with id %q", id)
}

// Goals returns a snapshot of all goals in insertion order.
func (l *GoalList) Goals() []InvestmentGoal {
	return slices.Clone(l.goals)
}

// All returns an iterator over all goals in insertion order.
func (l *GoalList) All() iter.Seq[InvestmentGoal] {
	return func(yield func(InvestmentGoal) bool) {
		for _, g := range l.goals {
			if !yield(g) {
				return
			}
		}
	}
}
