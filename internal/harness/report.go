package harness

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

var (
	headerStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Faint(false).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Faint(true).
			PaddingLeft(1).PaddingRight(1)
)

// Render formats results as a table, one row per measurement in Run order.
func Render(results []Result) string {
	alignments := []lipgloss.Position{lipgloss.Left, lipgloss.Left, lipgloss.Right, lipgloss.Right, lipgloss.Right, lipgloss.Right}
	t := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row < 0:
				return headerStyle
			case row%2 == 0:
				s = oddRowStyle
			default:
				s = evenRowStyle
			}

			return s.Align(alignments[col])
		}).
		Headers("strategy", "mode", "size", "elapsed", "throughput", "answer")
	for _, r := range results {
		t.Row(
			r.Strategy,
			string(r.Mode),
			humanize.Comma(int64(r.Size)),
			r.Elapsed.String(),
			humanize.SIWithDigits(r.Throughput(), 2, "cells/s"),
			humanize.Comma(int64(r.Answer)),
		)
	}

	return strings.TrimRight(t.String(), "\n")
}
