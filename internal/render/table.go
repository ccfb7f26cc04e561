// Package render turns evaluation results into terminal output: truth
// tables with rounded borders and two ASCII layouts for expression trees.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/booltab/booltab/internal/eval"
)

// RowFilter selects which truth-table rows to keep.
type RowFilter int

const (
	AllRows RowFilter = iota
	TrueRows
	FalseRows
)

// Keep reports whether a row with the given result passes the filter.
func (f RowFilter) Keep(result bool) bool {
	switch f {
	case TrueRows:
		return result
	case FalseRows:
		return !result
	default:
		return true
	}
}

// WriteTruthTable renders the full enumeration for the evaluator as a
// rounded-border table, one column per identifier in canonical order plus a
// Result column.
func WriteTruthTable(w io.Writer, ev *eval.Evaluator, filter RowFilter) error {
	idents := ev.Identifiers()

	headers := make([]string, 0, len(idents)+1)
	for _, c := range idents {
		headers = append(headers, string(c))
	}
	headers = append(headers, "Result")

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)

	for row := range ev.Rows() {
		if !filter.Keep(row.Result) {
			continue
		}
		cells := make([]string, 0, len(idents)+1)
		for _, c := range idents {
			cells = append(cells, strconv.FormatBool(row.States[c]))
		}
		cells = append(cells, strconv.FormatBool(row.Result))
		t.Row(cells...)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
