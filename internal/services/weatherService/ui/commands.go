package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// scheduleSearchCmd waits out the fade-out before the search is sent.
func scheduleSearchCmd(seq int, city string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return searchStartMsg{seq: seq, city: city}
	})
}

// fetchCmd runs the paired provider requests off the UI loop.
func (m UIModel) fetchCmd(seq int, city string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		view, err := svc.Search(context.Background(), city)
		return searchResultMsg{seq: seq, city: city, view: view, err: err}
	}
}
