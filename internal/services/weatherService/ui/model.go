package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	weatherservice "github.com/redjax/weatherwidget/internal/services/weatherService"
	"github.com/redjax/weatherwidget/internal/utils/terminal"
)

// Searcher runs one search. *weatherservice.Service satisfies it.
type Searcher interface {
	Search(ctx context.Context, city string) (weatherservice.WeatherView, error)
}

type UIModel struct {
	svc   Searcher
	delay time.Duration

	// uncommitted query
	input textinput.Model

	// search state; exactly one of loading, errMsg, view is shown
	view          *weatherservice.WeatherView
	loading       bool
	errMsg        string
	transitioning bool

	// validation prompt for an empty query
	prompt string

	// seq identifies the latest search; older results are dropped
	seq int
	// pending is the first search's continuation, returned by Init
	pending tea.Cmd

	spin      spinner.Model
	keys      keyMap
	help      help.Model
	tuiHelper *terminal.ResponsiveTUIHelper
}

// NewUIModel returns a widget that is already searching defaultCity.
func NewUIModel(svc Searcher, defaultCity string, delay time.Duration) UIModel {
	ti := textinput.New()
	ti.Placeholder = "Cari kota..."
	ti.CharLimit = 64
	ti.Width = 32
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	m := UIModel{
		svc:       svc,
		delay:     delay,
		input:     ti,
		spin:      sp,
		keys:      newKeyMap(),
		help:      help.New(),
		tuiHelper: terminal.NewResponsiveTUIHelper(),
	}

	var cmd tea.Cmd
	m, cmd = m.search(defaultCity)
	m.pending = cmd
	return m
}

func (m UIModel) Init() tea.Cmd {
	return tea.Batch(m.pending, m.spin.Tick, textinput.Blink)
}

// search starts a search for city. An empty city only raises the prompt.
func (m UIModel) search(city string) (UIModel, tea.Cmd) {
	q, err := weatherservice.ValidateQuery(city)
	if err != nil {
		m.prompt = weatherservice.UserMessage(err)
		return m, nil
	}

	m.prompt = ""
	m.seq++
	m.loading = true
	m.transitioning = true
	m.errMsg = ""
	m.view = nil

	return m, scheduleSearchCmd(m.seq, q, m.delay)
}

func (m UIModel) Loading() bool       { return m.loading }
func (m UIModel) Transitioning() bool { return m.transitioning }
func (m UIModel) Err() string         { return m.errMsg }
func (m UIModel) Prompt() string      { return m.prompt }

// Weather returns the committed view, or nil.
func (m UIModel) Weather() *weatherservice.WeatherView { return m.view }
