// Package chart renders the category breakdown as a PNG bar chart.
// Chart rendering is best-effort: callers treat a failure here as a
// warning, never as a report failure.
package chart

import (
	"fmt"

	"budgeteer/internal/fileutils"
	"budgeteer/internal/models"

	"github.com/wcharczuk/go-chart/v2"
)

// ErrNoExpenses is returned when there is nothing to plot.
var ErrNoExpenses = fmt.Errorf("no expense categories to chart")

// Render draws a bar chart of expense totals per category and writes it
// as a PNG to path. Bars follow the breakdown order (largest first).
func Render(breakdown []models.CategoryTotal, month models.Month, path string) error {
	if len(breakdown) == 0 {
		return ErrNoExpenses
	}

	bars := make([]chart.Value, 0, len(breakdown))
	for _, entry := range breakdown {
		bars = append(bars, chart.Value{
			Label: entry.Category,
			Value: entry.Amount.InexactFloat64(),
		})
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Expenses by Category - %s", month),
		Height:   512,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	file, err := fileutils.CreateFile(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := graph.Render(chart.PNG, file); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}

	return nil
}
