package weathercommand

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/redjax/weatherwidget/internal/config"
	weatherservice "github.com/redjax/weatherwidget/internal/services/weatherService"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testdata = filepath.Join("..", "..", "services", "weatherService", "owm", "testdata")

// providerStub answers /weather and /forecast with the named fixtures.
func providerStub(t *testing.T, status int, current, forecast string) {
	t.Helper()

	serve := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			body, err := os.ReadFile(filepath.Join(testdata, name))
			if err != nil {
				t.Errorf("read fixture: %v", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(status)
			_, _ = w.Write(body)
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/weather", serve(current))
	mux.Handle("/forecast", serve(forecast))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	// registered before Setenv so it runs after the variables are restored
	t.Cleanup(func() { _, _ = config.Load(nil, "") })
	t.Setenv(config.EnvPrefix+"API_KEY", "secret")
	t.Setenv(config.EnvPrefix+"API_BASE_URL", srv.URL)
	_, err := config.Load(nil, "")
	require.NoError(t, err)
}

func TestShowPrintsJSON(t *testing.T) {
	providerStub(t, http.StatusOK, "current_ok.json", "forecast_ok.json")

	var out, errOut bytes.Buffer
	cmd := NewShowCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"Tibubiyu", "--json"})
	require.NoError(t, cmd.Execute())

	var v weatherservice.WeatherView
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	assert.Equal(t, "Tibubiyu, ID", v.Location)
	assert.Equal(t, 27, v.Current.Temperature)
	assert.Equal(t, "9.0", v.Current.WindSpeed)
	assert.Len(t, v.Forecast, weatherservice.MaxForecastDays)
}

func TestShowPrintsTables(t *testing.T) {
	providerStub(t, http.StatusOK, "current_ok.json", "forecast_ok.json")

	var out bytes.Buffer
	cmd := NewShowCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Tibubiyu, ID")
	assert.Contains(t, out.String(), "Ramalan 5 Hari")
}

func TestShowNotFoundFails(t *testing.T) {
	providerStub(t, http.StatusNotFound, "not_found.json", "not_found.json")

	var out bytes.Buffer
	cmd := NewShowCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"Atlantis"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, weatherservice.ErrCityNotFound)
	assert.Empty(t, out.String())
}

func TestShowEmptyCityFails(t *testing.T) {
	providerStub(t, http.StatusOK, "current_ok.json", "forecast_ok.json")

	cmd := NewShowCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"   "})

	assert.ErrorIs(t, cmd.Execute(), weatherservice.ErrEmptyQuery)
}
