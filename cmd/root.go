// The root command for the CLI.
// Running it with no subcommand opens the weather widget; global flags like
// --config and --debug apply to every subcommand.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	versioncommand "github.com/redjax/weatherwidget/internal/commands/versionCommand"
	weathercommand "github.com/redjax/weatherwidget/internal/commands/weatherCommand"
	"github.com/redjax/weatherwidget/internal/config"
	"github.com/redjax/weatherwidget/internal/utils/logger"
)

var (
	// A path to a file to load configuration from
	cfgFile string
	// Flags mapped onto config keys in config.Load
	debug   bool
	city    string
	lang    string
	logFile string
)

// Cobra root command
var rootCmd = &cobra.Command{
	Use:   "weatherwidget",
	Short: "Current weather and a 5-day forecast for any city",
	Long: `A terminal weather widget backed by OpenWeatherMap.

Type a city and press Enter (or click the search icon) to look it up.
The configured default city is searched when the widget opens.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return weathercommand.RunWidget(config.Current())
	},
}

// Execute the root Cobra command
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentPreRunE = initConfig

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (json, yaml, toml or .env)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "Provider response language (default \"id\")")
	rootCmd.PersistentFlags().StringVarP(&city, "city", "c", "", "City searched on startup (default \""+config.DefaultCity+"\")")

	rootCmd.AddCommand(weathercommand.NewShowCommand())
	rootCmd.AddCommand(weathercommand.NewIconsCommand())
	rootCmd.AddCommand(versioncommand.NewVersionCommand())
}

// initConfig loads .env from the working directory, then the layered config,
// then sets up logging.
func initConfig(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(cmd.Flags(), cfgFile)
	if err != nil {
		return err
	}

	// The widget owns the terminal, so only one-shot commands log to stderr,
	// and only with --debug.
	if err := logger.Init(logger.Options{
		File:    cfg.Log.File,
		Level:   cfg.Log.Level,
		Console: cmd.HasParent() && cfg.Log.Level == "debug",
	}); err != nil {
		return err
	}

	logger.Debugw("config loaded", "city", cfg.City, "lang", cfg.API.Lang, "base_url", cfg.API.BaseURL)
	return nil
}
