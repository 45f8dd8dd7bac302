package weatherservice

import "sort"

// IconKey names one of the local icon assets.
type IconKey string

const (
	IconClear    IconKey = "clear"
	IconCloud    IconKey = "cloud"
	IconDrizzle  IconKey = "drizzle"
	IconRain     IconKey = "rain"
	IconSnow     IconKey = "snow"
	IconHumidity IconKey = "humidity"
	IconWind     IconKey = "wind"
)

// FallbackIcon is used for any provider icon code outside iconMap.
const FallbackIcon = IconCloud

// iconMap maps OpenWeatherMap icon codes (day and night) to local icons.
// Thunderstorm shares the rain icon and mist shares the cloud icon.
var iconMap = map[string]IconKey{
	"01d": IconClear, "01n": IconClear,
	"02d": IconCloud, "02n": IconCloud,
	"03d": IconCloud, "03n": IconCloud,
	"04d": IconCloud, "04n": IconCloud,
	"09d": IconDrizzle, "09n": IconDrizzle,
	"10d": IconRain, "10n": IconRain,
	"11d": IconRain, "11n": IconRain,
	"13d": IconSnow, "13n": IconSnow,
	"50d": IconCloud, "50n": IconCloud,
}

var iconSymbols = map[IconKey]string{
	IconClear:    "☀",
	IconCloud:    "☁",
	IconDrizzle:  "🌦",
	IconRain:     "🌧",
	IconSnow:     "❄",
	IconHumidity: "💧",
	IconWind:     "💨",
}

// ResolveIcon maps a provider icon code to a local icon. It never returns an
// empty key.
func ResolveIcon(code string) IconKey {
	if key, ok := iconMap[code]; ok {
		return key
	}
	return FallbackIcon
}

// IconCodes returns every mapped provider code in sorted order.
func IconCodes() []string {
	codes := make([]string, 0, len(iconMap))
	for code := range iconMap {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Icons returns all local icon keys, condition icons first.
func Icons() []IconKey {
	return []IconKey{IconClear, IconCloud, IconDrizzle, IconRain, IconSnow, IconHumidity, IconWind}
}

// Symbol is a single-cell glyph for compact rendering, e.g. the forecast strip.
func (k IconKey) Symbol() string {
	if s, ok := iconSymbols[k]; ok {
		return s
	}
	return iconSymbols[FallbackIcon]
}
