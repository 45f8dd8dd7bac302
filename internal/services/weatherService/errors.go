package weatherservice

import (
	"errors"
	"strings"
)

// Messages shown to the user. Locale strings are fixed to Indonesian, except
// the validation prompt which the widget has always shown in English.
const (
	msgEmptyQuery = "Please enter a city name"
	msgNotFound   = "Kota tidak ditemukan."
	msgGeneric    = "Terjadi kesalahan saat mengambil data."
)

var (
	// ErrEmptyQuery is returned for an empty or whitespace-only city. No request is made.
	ErrEmptyQuery = errors.New(msgEmptyQuery)
	// ErrCityNotFound is returned when either provider endpoint reports the city does not exist.
	ErrCityNotFound = errors.New(msgNotFound)
)

// UserMessage turns any search error into the text the widget displays.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyQuery):
		return msgEmptyQuery
	case errors.Is(err, ErrCityNotFound):
		return msgNotFound
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return msgGeneric
}

// ValidateQuery trims the city and rejects empty input.
func ValidateQuery(city string) (string, error) {
	q := strings.TrimSpace(city)
	if q == "" {
		return "", ErrEmptyQuery
	}
	return q, nil
}
