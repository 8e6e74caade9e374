package views

import (
	"strings"

	"logpick/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// ModelReader defines the interface the main view uses to read model
// state. The view never reaches into navigation logic; it only renders
// what the model already computed.
type ModelReader interface {
	Theme() styles.Theme
	PathInputView() string
	ListingView() string
	StatusView() string
	NoticeView() string
	KeyHelpView() string
	Width() int
}

// RenderMainView composes the full screen: title, path input, the
// listing and status panels side by side, the transient notice, and the
// key help line.
func RenderMainView(m ModelReader) string {
	theme := m.Theme()
	var sb strings.Builder

	sb.WriteString(theme.Title.Render("LogSeq Workspace Picker"))
	sb.WriteString("\n")
	sb.WriteString(m.PathInputView())
	sb.WriteString("\n\n")

	listWidth := (m.Width() * 2) / 3
	if listWidth < 40 {
		listWidth = 40
	}
	statusWidth := m.Width() - listWidth - 8
	if statusWidth < 24 {
		statusWidth = 24
	}

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		theme.Panel.Width(listWidth).Render(m.ListingView()),
		theme.Panel.Width(statusWidth).Render(m.StatusView()),
	)
	sb.WriteString(panels)
	sb.WriteString("\n")

	if notice := m.NoticeView(); notice != "" {
		sb.WriteString(notice)
		sb.WriteString("\n")
	}
	sb.WriteString(m.KeyHelpView())

	return theme.App.Render(sb.String())
}
