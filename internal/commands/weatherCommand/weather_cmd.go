package weathercommand

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redjax/weatherwidget/internal/config"
	weatherservice "github.com/redjax/weatherwidget/internal/services/weatherService"
	weatherui "github.com/redjax/weatherwidget/internal/services/weatherService/ui"
)

// RunWidget opens the interactive widget and blocks until the user quits.
func RunWidget(cfg config.Config) error {
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	svc := weatherservice.NewFromConfig(cfg)
	model := weatherui.NewUIModel(svc, cfg.City, cfg.Delay)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("weather widget: %w", err)
	}
	return nil
}
