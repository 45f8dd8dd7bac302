package weathercommand

import (
	"bytes"
	"strings"
	"testing"

	weatherservice "github.com/redjax/weatherwidget/internal/services/weatherService"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderView(t *testing.T) {
	var buf bytes.Buffer
	RenderView(&buf, weatherservice.WeatherView{
		Location: "Tibubiyu, ID",
		Current: weatherservice.CurrentConditions{
			Temperature: -1,
			FeelsLike:   -4,
			Humidity:    91,
			WindSpeed:   "9.0",
			Status:      "salju",
			Icon:        weatherservice.IconSnow,
		},
		Forecast: []weatherservice.ForecastDay{
			{Date: "Sen, 15", Temperature: 2, Status: "cerah", Icon: weatherservice.IconClear},
			{Date: "Sel, 16", Temperature: 0, Status: "berawan", Icon: weatherservice.IconCloud},
		},
	})

	out := buf.String()
	for _, want := range []string{"Tibubiyu, ID", "-1°C", "salju", "91%", "9.0 km/h", "-4°C", "Ramalan 5 Hari", "Sen, 15", "Sel, 16", "berawan"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "SEN, 15", "headers keep their case")
}

func TestRenderViewWithoutForecast(t *testing.T) {
	var buf bytes.Buffer
	RenderView(&buf, weatherservice.WeatherView{Location: "X, YZ"})
	assert.Contains(t, buf.String(), "Tidak ada data ramalan.")
}

func TestIconsCommandListsEveryCode(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewIconsCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	out := buf.String()
	for _, code := range weatherservice.IconCodes() {
		assert.Contains(t, out, code)
	}
	assert.Equal(t, 2, strings.Count(out, "drizzle"))
	assert.Contains(t, out, "Code")
	assert.NotContains(t, out, "CODE")
}
