package tui

import (
	"os"
	"path/filepath"
	"testing"

	"logpick/internal/browse"
	"logpick/internal/config"
	"logpick/internal/tui/messages"
	"logpick/internal/workspace"
	"logpick/pkg/testutils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, startDir string) *Model {
	t.Helper()
	cfg := config.New()
	validator, err := workspace.NewValidator(cfg)
	require.NoError(t, err)
	state := browse.NewState(startDir, browse.NewLister(cfg.Browse.ShowHidden), validator)
	return New(cfg, state, nil)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelInitialization(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, dir)

	assert.NotNil(t, m)
	assert.Equal(t, dir, m.state.Dir())
	assert.Empty(t, m.Selected())

	view := testutils.StripANSI(m.View())
	assert.Contains(t, view, "LogSeq Workspace Picker")
	assert.Contains(t, view, "Not a LogSeq workspace")
}

func TestCursorMovement(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "one"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "two"), 0755))

	m := newTestModel(t, dir)
	require.Equal(t, 0, m.listing.Cursor())

	m.Update(keyRunes("j"))
	assert.Equal(t, 1, m.listing.Cursor())

	m.Update(keyRunes("j"))
	m.Update(keyRunes("j"))
	// Clamped at the last row (up + two dirs)
	assert.Equal(t, 2, m.listing.Cursor())

	m.Update(keyRunes("k"))
	assert.Equal(t, 1, m.listing.Cursor())
}

func TestOpenDirectoryAndBack(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "notes")
	require.NoError(t, os.Mkdir(sub, 0755))

	m := newTestModel(t, dir)

	// Cursor row 0 is the up row; row 1 is the directory
	m.Update(keyRunes("j"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, sub, m.state.Dir())

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, dir, m.state.Dir())
}

func TestBackWithEmptyHistoryShowsNotice(t *testing.T) {
	m := newTestModel(t, t.TempDir())

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	require.NotNil(t, m.notice)
	assert.Equal(t, browse.NoticeInfo, m.notice.Level)
	assert.Contains(t, testutils.StripANSI(m.NoticeView()), "starting point")
}

func TestPathInputFlow(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(target, 0755))

	m := newTestModel(t, dir)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, focusPath, m.focus)

	m.input.SetValue(target)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, target, m.state.Dir())
	assert.Equal(t, focusListing, m.focus)

	t.Run("invalid path rejected and focus kept", func(t *testing.T) {
		m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
		m.input.SetValue(filepath.Join(dir, "missing"))
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, target, m.state.Dir())
		assert.Equal(t, focusPath, m.focus)
		require.NotNil(t, m.notice)
		assert.Equal(t, browse.NoticeError, m.notice.Level)
	})

	t.Run("escape returns to listing", func(t *testing.T) {
		m.Update(tea.KeyMsg{Type: tea.KeyEscape})
		assert.Equal(t, focusListing, m.focus)
	})
}

func TestSelectValidWorkspace(t *testing.T) {
	dir := t.TempDir()
	testutils.MakeWorkspace(t, dir, 2, 1)

	m := newTestModel(t, dir)
	view := testutils.StripANSI(m.View())
	assert.Contains(t, view, "Valid LogSeq workspace")
	assert.Contains(t, view, "2 pages")
	assert.Contains(t, view, "1 journals")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, dir, m.Selected())
	require.NotNil(t, cmd, "selection should quit the program")
}

func TestSelectInvalidWorkspaceRefused(t *testing.T) {
	m := newTestModel(t, t.TempDir())

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Empty(t, m.Selected())
	require.NotNil(t, m.notice)
	assert.Equal(t, browse.NoticeError, m.notice.Level)
}

func TestDirChangedRefreshesListing(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, dir)
	before := testutils.StripANSI(m.ListingView())
	assert.NotContains(t, before, "dropped.md")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "dropped.md"), []byte("x"), 0644))
	m.Update(messages.DirChangedMsg{Dir: dir})

	after := testutils.StripANSI(m.ListingView())
	assert.Contains(t, after, "dropped.md")
}

func TestNoticeExpires(t *testing.T) {
	m := newTestModel(t, t.TempDir())

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	require.NotNil(t, m.notice)

	m.Update(messages.ClearNoticeMsg{SetAt: m.noticeSetAt})
	assert.Nil(t, m.notice)
}
