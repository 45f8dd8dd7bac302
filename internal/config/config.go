package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/redjax/weatherwidget/internal/utils/path"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
)

const (
	EnvPrefix = "WEATHERWIDGET_"
	// LegacyAPIKeyEnv is the build-time variable the browser widget read its key from.
	LegacyAPIKeyEnv = "VITE_APP_ID"

	DefaultCity    = "Tibubiyu"
	DefaultDelay   = 500 * time.Millisecond
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultLang    = "id"
)

var ErrMissingAPIKey = errors.New("no API key: set " + EnvPrefix + "API_KEY, " + LegacyAPIKeyEnv + " or api.key in the config file")

var (
	mu      sync.RWMutex
	current = Default()
)

type APIConfig struct {
	Key     string        `koanf:"key"`
	BaseURL string        `koanf:"base_url"`
	Lang    string        `koanf:"lang"`
	Timeout time.Duration `koanf:"timeout"`
}

type LogConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"`
}

type Config struct {
	// City is searched automatically when the widget opens.
	City string `koanf:"city"`
	// Delay is the pause between starting a search and sending requests, while
	// the fade-out plays.
	Delay time.Duration `koanf:"delay"`
	API   APIConfig     `koanf:"api"`
	Log   LogConfig     `koanf:"log"`
}

func Default() Config {
	return Config{
		City:  DefaultCity,
		Delay: DefaultDelay,
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Lang:    DefaultLang,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load builds the config from, in increasing precedence: defaults, the config
// file, VITE_APP_ID, WEATHERWIDGET_* variables, and changed command-line flags.
// The result is also stored as the current config.
func Load(flagSet *pflag.FlagSet, configFile string) (Config, error) {
	k := koanf.New(".")

	configFile, err := path.ExpandPath(configFile)
	if err != nil {
		return Config{}, err
	}

	if configFile != "" {
		parser, err := parserForFile(configFile)
		if err != nil {
			return Config{}, fmt.Errorf("unsupported config file format: %w", err)
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return Config{}, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// VITE_APP_ID -> api.key
	if err := k.Load(env.Provider(LegacyAPIKeyEnv, ".", func(s string) string {
		if s != LegacyAPIKeyEnv {
			return ""
		}
		return "api.key"
	}), nil); err != nil {
		return Config{}, err
	}

	// WEATHERWIDGET_API_BASE_URL -> api.base_url, WEATHERWIDGET_CITY -> city
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, err
	}

	if flagSet != nil {
		if err := k.Load(posflag.ProviderWithFlag(flagSet, ".", k, flagKey), nil); err != nil {
			return Config{}, err
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Log.File, err = path.ExpandPath(cfg.Log.File); err != nil {
		return Config{}, fmt.Errorf("log.file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	mu.Lock()
	current = cfg
	mu.Unlock()

	return cfg, nil
}

// Current returns the config from the last successful Load, or the defaults.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Validate checks fields that would otherwise fail later and less clearly.
// A missing API key is reported by RequireAPIKey, not here, so commands that
// never call the provider still work without one.
func (c Config) Validate() error {
	if _, err := language.Parse(c.API.Lang); err != nil {
		return fmt.Errorf("invalid api.lang %q: %w", c.API.Lang, err)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative, got %s", c.API.Timeout)
	}
	return nil
}

func (c Config) RequireAPIKey() error {
	if strings.TrimSpace(c.API.Key) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func envKey(s string) string {
	return strings.Replace(strings.ToLower(
		strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

// flagKey maps changed flags onto config keys. Unchanged flags are skipped so
// they never mask values from the file or the environment.
func flagKey(f *pflag.Flag) (string, interface{}) {
	if !f.Changed {
		return "", nil
	}
	switch f.Name {
	case "city":
		return "city", f.Value.String()
	case "log-file":
		return "log.file", f.Value.String()
	case "lang":
		return "api.lang", f.Value.String()
	case "debug":
		if f.Value.String() == "true" {
			return "log.level", "debug"
		}
	}
	return "", nil
}

func parserForFile(name string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		// API_KEY=... or WEATHERWIDGET_API_KEY=... -> api.key
		return dotenv.ParserEnv("", ".", envKey), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}
