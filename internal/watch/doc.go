// Package watch streams scoreboard snapshots to a terminal or a JSONL consumer
// and polls for the scoreboard to catch up with a dealt hand.
package watch
