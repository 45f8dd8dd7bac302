package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	t "github.com/evertras/bubble-table/table"
	weatherservice "github.com/redjax/weatherwidget/internal/services/weatherService"
)

const (
	minForecastColWidth = 10
	maxForecastColWidth = 18
)

// buildForecastTable lays the forecast out horizontally: one column per day,
// with the date as header and icon, temperature and status as rows.
func buildForecastTable(days []weatherservice.ForecastDay, width int) t.Model {
	if len(days) == 0 {
		return t.New(nil)
	}

	colWidth := (width - len(days) - 1) / len(days)
	if colWidth < minForecastColWidth {
		colWidth = minForecastColWidth
	}
	if colWidth > maxForecastColWidth {
		colWidth = maxForecastColWidth
	}

	cellStyle := lipgloss.NewStyle().Align(lipgloss.Center)

	cols := make([]t.Column, 0, len(days))
	icons := t.RowData{}
	temps := t.RowData{}
	statuses := t.RowData{}

	for i, day := range days {
		k := fmt.Sprintf("day%d", i)
		cols = append(cols, t.NewColumn(k, day.Date, colWidth).WithStyle(cellStyle))
		icons[k] = day.Icon.Symbol()
		temps[k] = fmt.Sprintf("%d°C", day.Temperature)
		statuses[k] = day.Status
	}

	return t.New(cols).
		WithRows([]t.Row{t.NewRow(icons), t.NewRow(temps), t.NewRow(statuses)}).
		BorderRounded()
}
