package owm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/redjax/weatherwidget/internal/utils/logger"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultLang    = "id"

	currentEndpoint  = "/weather"
	forecastEndpoint = "/forecast"

	codNotFound = "404"
	userAgent   = "weatherwidget"
)

// ErrNotFound is returned when the provider answers with cod "404" for a city.
var ErrNotFound = errors.New("city not found")

// APIError is a non-success provider response other than "not found".
type APIError struct {
	StatusCode int
	Cod        string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("weather API returned status %d (cod %s)", e.StatusCode, e.Cod)
	}
	return fmt.Sprintf("weather API returned status %d: %s", e.StatusCode, e.Message)
}

// Options configures a Client. Zero values fall back to the provider defaults.
type Options struct {
	BaseURL string
	APIKey  string
	Lang    string
	// Timeout of zero means no client-side timeout.
	Timeout time.Duration
}

// Client talks to the OpenWeatherMap current-weather and forecast endpoints.
// Every request is sent with metric units and the configured language.
type Client struct {
	rc *resty.Client
}

func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Lang == "" {
		opts.Lang = DefaultLang
	}

	rc := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"units": "metric",
			"lang":  opts.Lang,
			"appid": opts.APIKey,
		}).
		SetRetryCount(0)

	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}

	rc.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debugw("weather API request",
			"method", req.Method,
			"path", req.URL,
			"city", req.QueryParam.Get("q"))
		return nil
	})

	rc.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debugw("weather API response",
			"method", resp.Request.Method,
			"path", resp.Request.RawRequest.URL.Path,
			"status", resp.StatusCode(),
			"latency", resp.Time().String(),
			"bytes", len(resp.Body()))
		return nil
	})

	return &Client{rc: rc}
}

// Current fetches current conditions for a city name.
func (c *Client) Current(ctx context.Context, city string) (*CurrentResponse, error) {
	var out CurrentResponse
	if err := c.get(ctx, currentEndpoint, city, &out, func() (FlexString, FlexString) {
		return out.Cod, out.Message
	}); err != nil {
		return nil, fmt.Errorf("current weather: %w", err)
	}
	return &out, nil
}

// Forecast fetches the 5-day/3-hour forecast for a city name.
func (c *Client) Forecast(ctx context.Context, city string) (*ForecastResponse, error) {
	var out ForecastResponse
	if err := c.get(ctx, forecastEndpoint, city, &out, func() (FlexString, FlexString) {
		return out.Cod, out.Message
	}); err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}
	return &out, nil
}

// get decodes the body into target whatever the HTTP status is, then inspects
// the body's cod. A transport or decode failure is returned as-is, so callers
// can tell it apart from ErrNotFound and *APIError.
func (c *Client) get(ctx context.Context, endpoint, city string, target any, status func() (FlexString, FlexString)) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParam("q", city).
		Get(endpoint)
	if err != nil {
		// url.Error embeds the full URL, which carries the API key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return fmt.Errorf("%s %s: %w", urlErr.Op, endpoint, urlErr.Err)
		}
		return err
	}

	if err := json.Unmarshal(resp.Body(), target); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode(), err)
	}

	cod, message := status()
	if string(cod) == codNotFound {
		return ErrNotFound
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Cod:        string(cod),
			Message:    string(message),
		}
	}

	return nil
}
