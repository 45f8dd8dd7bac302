package weatherservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redjax/weatherwidget/internal/config"
	"github.com/redjax/weatherwidget/internal/services/weatherService/owm"
	"github.com/redjax/weatherwidget/internal/utils/logger"
	"golang.org/x/sync/errgroup"
)

// Provider is the pair of endpoints a search needs.
type Provider interface {
	Current(ctx context.Context, city string) (*owm.CurrentResponse, error)
	Forecast(ctx context.Context, city string) (*owm.ForecastResponse, error)
}

// Service runs searches against a Provider.
type Service struct {
	provider Provider
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// NewFromConfig builds a Service backed by the OpenWeatherMap client.
func NewFromConfig(cfg config.Config) *Service {
	return NewService(owm.New(owm.Options{
		BaseURL: cfg.API.BaseURL,
		APIKey:  cfg.API.Key,
		Lang:    cfg.API.Lang,
		Timeout: cfg.API.Timeout,
	}))
}

// Search validates the city, fetches current weather and the forecast in
// parallel, and builds the view once both have answered.
//
// A transport or decode failure on either side wins over "not found", which
// wins over any other provider error.
func (s *Service) Search(ctx context.Context, city string) (WeatherView, error) {
	q, err := ValidateQuery(city)
	if err != nil {
		return WeatherView{}, err
	}

	reqID := uuid.NewString()
	start := time.Now()
	logger.Debugw("search started", "request_id", reqID, "city", q)

	var (
		g           errgroup.Group
		current     *owm.CurrentResponse
		forecast    *owm.ForecastResponse
		errCurrent  error
		errForecast error
	)
	g.Go(func() error {
		current, errCurrent = s.provider.Current(ctx, q)
		return nil
	})
	g.Go(func() error {
		forecast, errForecast = s.provider.Forecast(ctx, q)
		return nil
	})
	_ = g.Wait()

	if err := classify(errCurrent, errForecast); err != nil {
		logger.Infow("search failed",
			"request_id", reqID,
			"city", q,
			"elapsed", time.Since(start).String(),
			"error", err)
		return WeatherView{}, err
	}

	view, err := BuildView(current, forecast)
	if err != nil {
		logger.Errorw("build view failed", "request_id", reqID, "city", q, "error", err)
		return WeatherView{}, err
	}

	logger.Infow("search finished",
		"request_id", reqID,
		"city", q,
		"location", view.Location,
		"forecast_days", len(view.Forecast),
		"elapsed", time.Since(start).String())

	return view, nil
}

func classify(errs ...error) error {
	notFound := false
	var apiErr error

	for _, err := range errs {
		if err == nil {
			continue
		}
		var ae *owm.APIError
		switch {
		case errors.Is(err, owm.ErrNotFound):
			notFound = true
		case errors.As(err, &ae):
			if apiErr == nil {
				apiErr = err
			}
		default:
			return err
		}
	}

	if notFound {
		return ErrCityNotFound
	}
	return apiErr
}
