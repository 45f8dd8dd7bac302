package weathercommand

import (
	"encoding/json"

	"github.com/redjax/weatherwidget/internal/config"
	weatherservice "github.com/redjax/weatherwidget/internal/services/weatherService"
	"github.com/redjax/weatherwidget/internal/utils/spinner"
	"github.com/spf13/cobra"
)

func NewShowCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [city]",
		Short: "Print current weather and a 5-day forecast once",
		Long: `Search a city once and print the result instead of opening the widget.

Description:
  Uses the configured default city when no argument is given.
  Exits non-zero when the city is empty, not found, or the request fails.
`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Current()
			if err := cfg.RequireAPIKey(); err != nil {
				return err
			}

			city := cfg.City
			if len(args) == 1 {
				city = args[0]
			}

			svc := weatherservice.NewFromConfig(cfg)

			stop := spinner.StartSpinner(cmd.ErrOrStderr(), "Mengambil data cuaca...")
			view, err := svc.Search(cmd.Context(), city)
			stop()
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}

			RenderView(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}
