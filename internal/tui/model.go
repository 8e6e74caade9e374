// Package tui hosts the bubbletea program around the browse state
// machine. Every input event maps to exactly one state transition, and
// rendering consumes only the snapshot the transition produced.
package tui

import (
	"time"

	"logpick/internal/browse"
	"logpick/internal/config"
	"logpick/internal/tui/components"
	"logpick/internal/tui/messages"
	"logpick/internal/tui/styles"
	"logpick/internal/tui/views"
	"logpick/internal/watch"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const noticeTimeout = 3 * time.Second

type focusArea int

const (
	focusListing focusArea = iota
	focusPath
)

// Model is the bubbletea model. It owns the browser state for the
// session; transitions run to completion inside Update before the next
// event is handled.
type Model struct {
	state   *browse.State
	watcher *watch.Watcher

	listing *components.ListingPanel
	status  *components.StatusPanel
	input   textinput.Model
	keys    keyMap
	help    help.Model
	theme   styles.Theme

	focus       focusArea
	notice      *browse.Notice
	noticeSetAt time.Time
	width       int
	height      int
}

// New creates the TUI model around an initialized browser state. The
// watcher may be nil; auto-refresh is then disabled.
func New(cfg *config.Config, state *browse.State, watcher *watch.Watcher) *Model {
	theme := styles.New(cfg.Theme.Primary, cfg.Theme.Success, cfg.Theme.Error, cfg.Theme.Muted)

	input := textinput.New()
	input.Placeholder = "Enter path or browse below..."
	input.Prompt = "Path: "
	input.CharLimit = 512

	m := &Model{
		state:   state,
		watcher: watcher,
		listing: components.NewListingPanel(theme),
		status:  components.NewStatusPanel(theme),
		input:   input,
		keys:    defaultKeyMap(),
		help:    help.New(),
		theme:   theme,
		width:   100,
		height:  30,
	}
	m.sync()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenForChanges())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listing.SetHeight(msg.Height - 10)
		return m, nil

	case messages.DirChangedMsg:
		m.state.Refresh()
		m.sync()
		return m, m.listenForChanges()

	case messages.ClearNoticeMsg:
		if msg.SetAt.Equal(m.noticeSetAt) {
			m.notice = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	return views.RenderMainView(m)
}

// Selected returns the chosen workspace, or "" if none was selected.
func (m *Model) Selected() string {
	return m.state.Selected()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.focus == focusPath {
		return m.handlePathKey(msg)
	}
	return m.handleListingKey(msg)
}

func (m *Model) handlePathKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.blurPath()
		return m, nil
	case tea.KeyEnter:
		notice := m.state.SubmitPath(m.input.Value())
		m.sync()
		if notice == nil {
			m.blurPath()
			return m, nil
		}
		return m, m.setNotice(notice)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleListingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Up):
		m.listing.MoveCursor(-1)

	case key.Matches(msg, k.Down):
		m.listing.MoveCursor(1)

	case key.Matches(msg, k.Open):
		if row, ok := m.listing.CursorRow(); ok {
			notice := m.state.ActivateRow(row)
			m.sync()
			return m, m.setNotice(notice)
		}

	case key.Matches(msg, k.Back):
		notice := m.state.GoBack()
		m.sync()
		return m, m.setNotice(notice)

	case key.Matches(msg, k.Refresh):
		m.state.Refresh()
		m.sync()

	case key.Matches(msg, k.FocusPath):
		m.focus = focusPath
		m.input.SetValue(m.state.Dir())
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, k.Select):
		notice := m.state.Select()
		m.sync()
		cmd := m.setNotice(notice)
		if m.state.Selected() != "" {
			// The surrounding command writes the marker after the
			// program exits.
			return m, tea.Sequence(cmd, tea.Quit)
		}
		return m, cmd

	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// sync pulls the latest snapshot into the widgets and re-aims the
// watcher at the current directory.
func (m *Model) sync() {
	snap := m.state.Snapshot()
	m.listing.SetRows(snap.Listing)
	m.status.SetResult(snap.Dir, snap.Validation)
	if m.focus != focusPath {
		m.input.SetValue(snap.Dir)
	}
	if m.watcher != nil {
		m.watcher.Retarget(snap.Dir)
	}
}

func (m *Model) blurPath() {
	m.focus = focusListing
	m.input.Blur()
	m.input.SetValue(m.state.Dir())
}

func (m *Model) setNotice(notice *browse.Notice) tea.Cmd {
	if notice == nil {
		return nil
	}
	m.notice = notice
	m.noticeSetAt = time.Now()
	setAt := m.noticeSetAt
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return messages.ClearNoticeMsg{SetAt: setAt}
	})
}

func (m *Model) listenForChanges() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes := m.watcher.Changes()
	return func() tea.Msg {
		change, ok := <-changes
		if !ok {
			return nil
		}
		return messages.DirChangedMsg{Dir: change.Dir}
	}
}

// Theme implements views.ModelReader.
func (m *Model) Theme() styles.Theme { return m.theme }

// Width implements views.ModelReader.
func (m *Model) Width() int { return m.width }

// PathInputView implements views.ModelReader.
func (m *Model) PathInputView() string { return m.input.View() }

// ListingView implements views.ModelReader.
func (m *Model) ListingView() string { return m.listing.View() }

// StatusView implements views.ModelReader.
func (m *Model) StatusView() string { return m.status.View() }

// NoticeView implements views.ModelReader.
func (m *Model) NoticeView() string {
	if m.notice == nil {
		return ""
	}
	switch m.notice.Level {
	case browse.NoticeSuccess:
		return m.theme.Success.Render(m.notice.Text)
	case browse.NoticeError:
		return m.theme.Error.Render(m.notice.Text)
	default:
		return m.theme.Muted.Render(m.notice.Text)
	}
}

// KeyHelpView implements views.ModelReader.
func (m *Model) KeyHelpView() string {
	return m.help.View(m.keys)
}
