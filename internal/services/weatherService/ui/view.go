package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/redjax/weatherwidget/internal/assets"
	weatherservice "github.com/redjax/weatherwidget/internal/services/weatherService"
)

// searchBarRow is the screen row of the search bar; the title sits above it.
const searchBarRow = 1

func (m UIModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Cuaca"))
	b.WriteString("\n")
	b.WriteString(m.searchBar())
	b.WriteString("\n")

	if m.prompt != "" {
		b.WriteString(promptStyle.Render(m.prompt))
		b.WriteString("\n")
	}

	style := contentStyle.Width(m.tuiHelper.GetContentWidth())
	// fade-out while a search is being sent, fade-in once it settles
	if m.transitioning {
		style = style.Faint(true)
	}
	b.WriteString(style.Render(m.content()))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return m.tuiHelper.TruncateContentToHeight(b.String())
}

func (m UIModel) searchBar() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.input.View(), " ", assets.MustIcon(assets.Search))
}

// onSearchIcon reports whether screen cell (x, y) falls on the search glyph.
func (m UIModel) onSearchIcon(x, y int) bool {
	if y != searchBarRow {
		return false
	}
	start := lipgloss.Width(m.input.View()) + 1
	end := start + lipgloss.Width(assets.MustIcon(assets.Search))
	return x >= start && x < end
}

func (m UIModel) content() string {
	switch {
	case m.loading:
		return m.spin.View() + " Memuat..."
	case m.errMsg != "":
		return errorStyle.Render(m.errMsg)
	case m.view != nil:
		return m.renderWeather(*m.view)
	}
	return ""
}

func (m UIModel) renderWeather(v weatherservice.WeatherView) string {
	width := m.tuiHelper.GetContentWidth() - 6

	main := lipgloss.JoinVertical(lipgloss.Center,
		iconStyle.Render(assets.MustIcon(string(v.Current.Icon))),
		"",
		temperatureStyle.Render(fmt.Sprintf("%d°C", v.Current.Temperature)),
		locationStyle.Render(v.Location),
		v.Current.Status,
	)

	humidity := detailColumn(weatherservice.IconHumidity, fmt.Sprintf("%d%%", v.Current.Humidity), "Kelembaban")
	wind := detailColumn(weatherservice.IconWind, v.Current.WindSpeed+" km/h", "Kecepatan Angin")
	details := lipgloss.JoinHorizontal(lipgloss.Top, humidity, "      ", wind)

	feels := fmt.Sprintf("Terasa seperti: %d°C", v.Current.FeelsLike)

	forecast := mutedStyle.Render("Tidak ada data ramalan.")
	if len(v.Forecast) > 0 {
		forecast = buildForecastTable(v.Forecast, width).View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, main),
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, details),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, feels),
		mutedStyle.Render(strings.Repeat("─", width)),
		sectionTitleStyle.Render("Ramalan 5 Hari"),
		forecast,
	)
}

func detailColumn(icon weatherservice.IconKey, value, label string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		assets.MustIcon(string(icon))+" ",
		lipgloss.JoinVertical(lipgloss.Left, temperatureStyle.Render(value), mutedStyle.Render(label)),
	)
}
