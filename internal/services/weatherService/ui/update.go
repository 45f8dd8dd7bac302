package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	weatherservice "github.com/redjax/weatherwidget/internal/services/weatherService"
	"github.com/redjax/weatherwidget/internal/utils/logger"
)

func (m UIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.tuiHelper.HandleWindowSizeMsg(msg)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Search):
			return m.search(m.input.Value())
		case key.Matches(msg, m.keys.Clear):
			m.input.Reset()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.onSearchIcon(msg.X, msg.Y) {
			return m.search(m.input.Value())
		}
		return m, nil

	case searchStartMsg:
		if msg.seq != m.seq {
			logger.Debugw("dropping superseded search", "city", msg.city, "seq", msg.seq, "latest", m.seq)
			return m, nil
		}
		return m, m.fetchCmd(msg.seq, msg.city)

	case searchResultMsg:
		if msg.seq != m.seq {
			logger.Debugw("dropping stale search result", "city", msg.city, "seq", msg.seq, "latest", m.seq)
			return m, nil
		}
		m.loading = false
		m.transitioning = false
		if msg.err != nil {
			m.errMsg = weatherservice.UserMessage(msg.err)
			m.view = nil
			return m, nil
		}
		view := msg.view
		m.view = &view
		m.errMsg = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
