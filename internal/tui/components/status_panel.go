package components

import (
	"fmt"
	"os"
	"strings"

	"logpick/internal/tui/styles"
	"logpick/internal/workspace"

	"github.com/dustin/go-humanize"
)

// StatusPanel renders the workspace validation for the current
// directory: a verdict header, one line per required subdirectory, the
// informational note counts, and the path itself.
type StatusPanel struct {
	path   string
	result workspace.Result
	theme  styles.Theme
}

// NewStatusPanel creates an empty panel.
func NewStatusPanel(theme styles.Theme) *StatusPanel {
	return &StatusPanel{theme: theme}
}

// SetResult updates the displayed validation.
func (sp *StatusPanel) SetResult(path string, result workspace.Result) {
	sp.path = path
	sp.result = result
}

// View renders the panel.
func (sp *StatusPanel) View() string {
	var s strings.Builder

	if sp.result.Valid {
		s.WriteString(sp.theme.Success.Render("Valid LogSeq workspace"))
	} else {
		s.WriteString(sp.theme.Error.Render("Not a LogSeq workspace"))
	}
	s.WriteString("\n\n")

	if sp.result.Err != "" {
		s.WriteString(sp.theme.Error.Render(sp.result.Err))
		s.WriteString("\n")
	}
	for _, c := range sp.result.Checks {
		if c.Present {
			s.WriteString(sp.theme.Success.Render("✓ ") + c.Name + "/\n")
		} else {
			s.WriteString(sp.theme.Error.Render("✗ ") + c.Name + "/\n")
		}
	}
	for _, n := range sp.result.Counts {
		s.WriteString(sp.theme.Muted.Render(fmt.Sprintf("%d %s", n.Count, n.Dir)) + "\n")
	}

	s.WriteString("\n")
	s.WriteString(sp.theme.Muted.Render(sp.path))
	if info, err := os.Stat(sp.path); err == nil {
		s.WriteString("\n")
		s.WriteString(sp.theme.Muted.Render("modified " + humanize.Time(info.ModTime())))
	}

	return s.String()
}
