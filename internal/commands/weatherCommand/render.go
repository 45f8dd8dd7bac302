package weathercommand

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	weatherservice "github.com/redjax/weatherwidget/internal/services/weatherService"
)

// RenderView prints a WeatherView as two tables: current conditions, then the
// forecast strip with one column per day.
func RenderView(w io.Writer, v weatherservice.WeatherView) {
	cur := table.NewWriter()
	cur.SetOutputMirror(w)
	cur.SetStyle(table.StyleRounded)
	cur.Style().Format.Header = text.FormatDefault
	cur.SetTitle("%s  %s", v.Current.Icon.Symbol(), v.Location)
	cur.AppendRows([]table.Row{
		{"Suhu", fmt.Sprintf("%d°C", v.Current.Temperature)},
		{"Status", v.Current.Status},
		{weatherservice.IconHumidity.Symbol() + " Kelembaban", fmt.Sprintf("%d%%", v.Current.Humidity)},
		{weatherservice.IconWind.Symbol() + " Kecepatan Angin", v.Current.WindSpeed + " km/h"},
		{"Terasa seperti", fmt.Sprintf("%d°C", v.Current.FeelsLike)},
	})
	cur.Render()

	if len(v.Forecast) == 0 {
		fmt.Fprintln(w, "Tidak ada data ramalan.")
		return
	}

	fc := table.NewWriter()
	fc.SetOutputMirror(w)
	fc.SetStyle(table.StyleRounded)
	fc.Style().Format.Header = text.FormatDefault
	fc.SetTitle("Ramalan 5 Hari")

	header := table.Row{}
	icons := table.Row{}
	temps := table.Row{}
	statuses := table.Row{}
	configs := make([]table.ColumnConfig, 0, len(v.Forecast))
	for i, day := range v.Forecast {
		header = append(header, day.Date)
		icons = append(icons, day.Icon.Symbol())
		temps = append(temps, fmt.Sprintf("%d°C", day.Temperature))
		statuses = append(statuses, day.Status)
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: text.AlignCenter, AlignHeader: text.AlignCenter})
	}
	fc.AppendHeader(header)
	fc.AppendRows([]table.Row{icons, temps, statuses})
	fc.SetColumnConfigs(configs)
	fc.Render()
}
