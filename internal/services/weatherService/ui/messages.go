package ui

import weatherservice "github.com/redjax/weatherwidget/internal/services/weatherService"

// searchStartMsg fires once the fade delay of search seq has elapsed.
type searchStartMsg struct {
	seq  int
	city string
}

// searchResultMsg carries the outcome of search seq.
type searchResultMsg struct {
	seq  int
	city string
	view weatherservice.WeatherView
	err  error
}
