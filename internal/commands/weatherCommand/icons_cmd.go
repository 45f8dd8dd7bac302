package weathercommand

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	weatherservice "github.com/redjax/weatherwidget/internal/services/weatherService"
	"github.com/spf13/cobra"
)

func NewIconsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "icons",
		Short: "List provider icon codes and the local icon each maps to",
		Run: func(cmd *cobra.Command, args []string) {
			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(table.StyleRounded)
			tw.Style().Format.Header = text.FormatDefault
			tw.Style().Format.Footer = text.FormatDefault
			tw.AppendHeader(table.Row{"Code", "Icon", ""})

			for _, code := range weatherservice.IconCodes() {
				icon := weatherservice.ResolveIcon(code)
				tw.AppendRow(table.Row{code, icon, icon.Symbol()})
			}
			tw.AppendFooter(table.Row{"*", weatherservice.FallbackIcon, weatherservice.FallbackIcon.Symbol()})

			tw.Render()
		},
	}
}
