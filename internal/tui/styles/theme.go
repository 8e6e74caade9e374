package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the core UI styles. Colors come from configuration so
// the palette can be retuned without touching render code.
type Theme struct {
	App      lipgloss.Style
	Title    lipgloss.Style
	Panel    lipgloss.Style
	Help     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Dir      lipgloss.Style
	File     lipgloss.Style
	Nav      lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
}

// New builds a theme from the configured colors.
func New(primary, success, errColor, muted string) Theme {
	return Theme{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(primary)).
			MarginBottom(1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(primary)).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(muted)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(success)).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(errColor)).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(muted)),
		Dir: lipgloss.NewStyle().
			Foreground(lipgloss.Color(primary)).
			Bold(true),
		File: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC")),
		Nav: lipgloss.NewStyle().
			Foreground(lipgloss.Color(success)),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(primary)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(success)).
			Bold(true),
	}
}
