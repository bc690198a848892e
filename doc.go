// Package invtrack provides the core types and computations for tracking a
// personal investment portfolio. It is designed to be local-first and
// auditable: the trade log is the single source of truth, and every view of
// the portfolio is recomputed from it by replay.
//
// The core functionalities include:
//   - Trade Log: an append-only, chronological record of buy and sell events,
//     persisted in a human-readable, version-controllable format (JSONL).
//   - Position Projection: a stateless weighted-average-cost engine that
//     replays the trade log into current holdings and realized closes.
//   - Performance Analytics: profit and loss, return on investment, growth
//     rate, and cash-flow return series derived purely from the log.
//   - Trading Statistics: win/loss breakdowns, profit factor, and maximum
//     drawdown over the realized close history.
//   - Goal Tracking: investment goals with calendar-paced progress analysis
//     and portfolio-wide strategic insights.
//
// This package serves as the foundational logic for the `itk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package invtrack
