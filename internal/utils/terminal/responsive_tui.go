package terminal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minContent    = 40
	maxContent    = 100
)

// ResponsiveTUIHelper tracks the terminal size for a bubbletea model so the
// view can size itself before and after the first tea.WindowSizeMsg.
type ResponsiveTUIHelper struct {
	width  int
	height int
}

// NewResponsiveTUIHelper creates a helper with default 80x24 dimensions
func NewResponsiveTUIHelper() *ResponsiveTUIHelper {
	return &ResponsiveTUIHelper{
		width:  defaultWidth,
		height: defaultHeight,
	}
}

// SetSize updates the terminal dimensions
func (h *ResponsiveTUIHelper) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// GetSize returns the current terminal dimensions
func (h *ResponsiveTUIHelper) GetSize() (int, int) {
	return h.width, h.height
}

// GetContentWidth returns the width for a bordered content section, clamped
// so the widget stays readable on very narrow and very wide terminals.
func (h *ResponsiveTUIHelper) GetContentWidth() int {
	contentWidth := h.width - 4 // border and margin
	if contentWidth < minContent {
		contentWidth = minContent
	}
	if contentWidth > maxContent {
		contentWidth = maxContent
	}
	return contentWidth
}

// TruncateContentToHeight ensures content fits within terminal height
func (h *ResponsiveTUIHelper) TruncateContentToHeight(content string) string {
	lines := strings.Split(content, "\n")
	if h.height < 3 || len(lines) <= h.height-1 {
		return content
	}

	lines = lines[:h.height-2]
	lines = append(lines, lipgloss.NewStyle().
		Foreground(lipgloss.Color("#626262")).
		Render("... (content truncated)"))
	return strings.Join(lines, "\n")
}

// HandleWindowSizeMsg records the size carried by a tea.WindowSizeMsg
func (h *ResponsiveTUIHelper) HandleWindowSizeMsg(msg tea.WindowSizeMsg) {
	h.SetSize(msg.Width, msg.Height)
}
