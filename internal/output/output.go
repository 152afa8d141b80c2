// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/staranto/calcctlgo/internal/batch"
	"github.com/staranto/calcctlgo/internal/engine"
)

// FormatResult renders a single calculation in "a op b = result" form.
func FormatResult(a engine.Value, op engine.Op, b engine.Value, res engine.Value) string {
	return fmt.Sprintf("%s %s %s = %s", a, op.Symbol(), b, res)
}

// BatchLine renders one batch result, substituting the error message for the
// result on failed items.
func BatchLine(r batch.Result) string {
	if r.Err != nil {
		return fmt.Sprintf("%s %s %s = Error: %v", r.A, r.Symbol, r.B, r.Err)
	}
	return FormatResult(r.A, mustOp(r.Symbol), r.B, r.Value)
}

// BatchTable renders batch results as a table.
func BatchTable(results []batch.Result) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		out := r.Value.String()
		if r.Err != nil {
			out = fmt.Sprintf("Error: %v", r.Err)
		}
		rows = append(rows, []string{r.A.String(), r.Symbol, r.B.String(), out})
	}
	return renderTable([]string{"A", "Op", "B", "Result"}, rows)
}

// HistoryTable renders history records as a table, oldest first.
func HistoryTable(records []engine.Record) string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		out := rec.Result
		if rec.Err != "" {
			out = "Error: " + rec.Err
		}
		rows = append(rows, []string{rec.Input, out})
	}
	return renderTable([]string{"Input", "Result"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		Headers(headers...).
		BorderHeader(false).
		Rows(rows...)

	return t.String()
}

// mustOp resolves a symbol known to be valid because the result it came
// from succeeded.
func mustOp(symbol string) engine.Op {
	op, ok := engine.OpForSymbol(symbol)
	if !ok {
		panic(fmt.Sprintf("output: unknown operator %q", symbol))
	}
	return op
}
