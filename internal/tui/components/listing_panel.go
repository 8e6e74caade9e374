package components

import (
	"fmt"
	"strings"

	"logpick/internal/browse"
	"logpick/internal/tui/styles"
)

// ListingPanel renders a directory Listing with a movable cursor. It
// holds no navigation logic; rows come from the browser snapshot and
// the activated row goes back to the state machine.
type ListingPanel struct {
	rows   browse.Listing
	cursor int
	height int
	theme  styles.Theme
}

// NewListingPanel creates an empty panel.
func NewListingPanel(theme styles.Theme) *ListingPanel {
	return &ListingPanel{theme: theme, height: 20}
}

// SetRows replaces the displayed listing and clamps the cursor.
func (lp *ListingPanel) SetRows(rows browse.Listing) {
	lp.rows = rows
	if lp.cursor >= len(rows) {
		lp.cursor = len(rows) - 1
	}
	if lp.cursor < 0 {
		lp.cursor = 0
	}
}

// SetHeight sets the number of visible rows.
func (lp *ListingPanel) SetHeight(h int) {
	if h > 0 {
		lp.height = h
	}
}

// MoveCursor moves the cursor by delta, clamped to the listing.
func (lp *ListingPanel) MoveCursor(delta int) {
	next := lp.cursor + delta
	if next >= 0 && next < len(lp.rows) {
		lp.cursor = next
	}
}

// Cursor returns the cursor position.
func (lp *ListingPanel) Cursor() int {
	return lp.cursor
}

// CursorRow returns the row under the cursor.
func (lp *ListingPanel) CursorRow() (browse.Entry, bool) {
	if lp.cursor < 0 || lp.cursor >= len(lp.rows) {
		return browse.Entry{}, false
	}
	return lp.rows[lp.cursor], true
}

// View renders the visible window of rows.
func (lp *ListingPanel) View() string {
	if len(lp.rows) == 0 {
		return lp.theme.Muted.Render("Empty directory")
	}

	start, end := lp.window()

	var s strings.Builder
	for i := start; i < end; i++ {
		row := lp.rows[i]

		cursor := " "
		if i == lp.cursor {
			cursor = ">"
		}

		label, detail := lp.decorate(row)
		line := fmt.Sprintf("%s %-40s %10s", cursor, label, detail)
		if i == lp.cursor {
			s.WriteString(lp.theme.Cursor.Render(line))
		} else {
			s.WriteString(line)
		}
		s.WriteString("\n")
	}
	return s.String()
}

// window returns the half-open row range kept visible around the cursor.
func (lp *ListingPanel) window() (int, int) {
	if len(lp.rows) <= lp.height {
		return 0, len(lp.rows)
	}
	start := lp.cursor - lp.height/2
	if start < 0 {
		start = 0
	}
	end := start + lp.height
	if end > len(lp.rows) {
		end = len(lp.rows)
		start = end - lp.height
	}
	return start, end
}

func (lp *ListingPanel) decorate(row browse.Entry) (string, string) {
	switch row.Kind {
	case browse.KindBack:
		return lp.theme.Nav.Render("← " + row.Name), ""
	case browse.KindUp:
		return lp.theme.Nav.Render("↑ " + row.Name), ""
	case browse.KindDir:
		return lp.theme.Dir.Render(row.Name + "/"), lp.theme.Muted.Render(row.Detail)
	case browse.KindError:
		return lp.theme.Error.Render(row.Name), ""
	default:
		return lp.theme.File.Render(row.Name), lp.theme.Muted.Render(row.Detail)
	}
}
