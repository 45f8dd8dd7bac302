package weatherservice

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/redjax/weatherwidget/internal/services/weatherService/owm"
)

const (
	// MaxForecastDays caps the forecast strip.
	MaxForecastDays = 5

	middayMarker = "12:00:00"
	dtTxtLayout  = "2006-01-02 15:04:05"
	msToKmh      = 3.6
)

var shortWeekdays = [...]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}

// CurrentConditions is the display model for the current weather.
type CurrentConditions struct {
	Temperature int     `json:"temperature"`
	FeelsLike   int     `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	WindSpeed   string  `json:"wind_speed"`
	Status      string  `json:"status"`
	Icon        IconKey `json:"icon"`
}

// ForecastDay is one day of the forecast strip, taken from that day's midday sample.
type ForecastDay struct {
	Date        string  `json:"date"`
	Temperature int     `json:"temperature"`
	Status      string  `json:"status"`
	Icon        IconKey `json:"icon"`
}

// WeatherView is everything the widget renders after a successful search.
// It is built once and replaced wholesale on the next search.
type WeatherView struct {
	Location string            `json:"location"`
	Current  CurrentConditions `json:"current"`
	Forecast []ForecastDay     `json:"forecast"`
}

// FloorTemp truncates toward negative infinity: 21.9 -> 21, -0.2 -> -1.
func FloorTemp(celsius float64) int {
	return int(math.Floor(celsius))
}

// WindKmh converts m/s to km/h with exactly one decimal digit.
func WindKmh(metersPerSecond float64) string {
	return strconv.FormatFloat(metersPerSecond*msToKmh, 'f', 1, 64)
}

// MiddayEntries keeps the entries whose timestamp text contains the midday
// marker, in provider order, and at most MaxForecastDays of them.
func MiddayEntries(list []owm.ForecastEntry) []owm.ForecastEntry {
	out := make([]owm.ForecastEntry, 0, MaxForecastDays)
	for _, entry := range list {
		if !strings.Contains(entry.DtTxt, middayMarker) {
			continue
		}
		out = append(out, entry)
		if len(out) == MaxForecastDays {
			break
		}
	}
	return out
}

// FormatDay renders a provider dt_txt as a short weekday and day of month,
// e.g. "2024-01-15 12:00:00" -> "Sen, 15".
func FormatDay(dtTxt string) (string, error) {
	t, err := time.Parse(dtTxtLayout, dtTxt)
	if err != nil {
		return "", fmt.Errorf("parse forecast date %q: %w", dtTxt, err)
	}
	return fmt.Sprintf("%s, %d", shortWeekdays[t.Weekday()], t.Day()), nil
}

// BuildView maps the two provider responses into a WeatherView.
func BuildView(current *owm.CurrentResponse, forecast *owm.ForecastResponse) (WeatherView, error) {
	if current == nil || forecast == nil {
		return WeatherView{}, errors.New("missing weather response")
	}
	if len(current.Weather) == 0 {
		return WeatherView{}, errors.New("current weather has no conditions")
	}

	cond := current.Weather[0]
	view := WeatherView{
		Location: fmt.Sprintf("%s, %s", current.Name, current.Sys.Country),
		Current: CurrentConditions{
			Temperature: FloorTemp(current.Main.Temp),
			FeelsLike:   FloorTemp(current.Main.FeelsLike),
			Humidity:    current.Main.Humidity,
			WindSpeed:   WindKmh(current.Wind.Speed),
			Status:      cond.Description,
			Icon:        ResolveIcon(cond.Icon),
		},
	}

	midday := MiddayEntries(forecast.List)
	view.Forecast = make([]ForecastDay, 0, len(midday))
	for _, entry := range midday {
		if len(entry.Weather) == 0 {
			return WeatherView{}, fmt.Errorf("forecast entry %s has no conditions", entry.DtTxt)
		}
		date, err := FormatDay(entry.DtTxt)
		if err != nil {
			return WeatherView{}, err
		}
		view.Forecast = append(view.Forecast, ForecastDay{
			Date:        date,
			Temperature: FloorTemp(entry.Main.Temp),
			Status:      entry.Weather[0].Description,
			Icon:        ResolveIcon(entry.Weather[0].Icon),
		})
	}

	return view, nil
}
