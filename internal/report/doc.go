// Package report formats shoe summaries for the terminal (tablewriter tables)
// and for machines (JSON and JSONL).
package report
