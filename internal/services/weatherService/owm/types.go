package owm

import (
	"encoding/json"
	"fmt"
)

// FlexString decodes a JSON string or number into a string.
//
// The provider is inconsistent: "cod" is a number on /weather success, a string
// on /forecast and on every error, and "message" is 0 on /forecast success.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(b))
	}
	*f = FlexString(n.String())
	return nil
}

// Condition is one element of the provider's "weather" array.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type MainReadings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// CurrentResponse is the body of GET /weather.
type CurrentResponse struct {
	Cod     FlexString   `json:"cod"`
	Message FlexString   `json:"message"`
	Name    string       `json:"name"`
	Dt      int64        `json:"dt"`
	Main    MainReadings `json:"main"`
	Wind    Wind         `json:"wind"`
	Weather []Condition  `json:"weather"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// ForecastEntry is one 3-hour slot of the forecast list.
type ForecastEntry struct {
	Dt      int64        `json:"dt"`
	DtTxt   string       `json:"dt_txt"`
	Main    MainReadings `json:"main"`
	Wind    Wind         `json:"wind"`
	Weather []Condition  `json:"weather"`
}

// ForecastResponse is the body of GET /forecast.
type ForecastResponse struct {
	Cod     FlexString      `json:"cod"`
	Message FlexString      `json:"message"`
	List    []ForecastEntry `json:"list"`
	City    struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}
