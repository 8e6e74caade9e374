package browse

import (
	"os"
	"path/filepath"
	"testing"

	"logpick/internal/config"
	"logpick/internal/workspace"
	"logpick/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, startDir string) *State {
	t.Helper()
	validator, err := workspace.NewValidator(config.New())
	require.NoError(t, err)
	return NewState(startDir, NewLister([]string{".logseq"}), validator)
}

func TestNavigateAndGoBack(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	s := newTestState(t, root)
	require.Equal(t, root, s.Dir())
	assert.Equal(t, 0, s.HistoryLen())

	s.Navigate(sub)
	assert.Equal(t, sub, s.Dir())
	assert.Equal(t, 1, s.HistoryLen())

	// One back after one forward returns to the start with empty history
	notice := s.GoBack()
	assert.Nil(t, notice)
	assert.Equal(t, root, s.Dir())
	assert.Equal(t, 0, s.HistoryLen())
}

func TestGoBackEmptyHistory(t *testing.T) {
	s := newTestState(t, t.TempDir())

	notice := s.GoBack()
	require.NotNil(t, notice)
	assert.Equal(t, NoticeInfo, notice.Level)
	assert.Contains(t, notice.Text, "starting point")
}

func TestNavigateSamePathIsNoop(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.md"), []byte("x"), 0644))

	s := newTestState(t, root)
	before := s.Snapshot()

	// A file added after the initial listing proves the listing is not
	// recomputed on a same-path navigation.
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.md"), []byte("x"), 0644))

	s.Navigate(root)
	after := s.Snapshot()
	assert.Equal(t, before.Listing, after.Listing)
	assert.Equal(t, 0, s.HistoryLen())
}

func TestGoUp(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	s := newTestState(t, sub)
	s.GoUp()
	assert.Equal(t, root, s.Dir())
	assert.Equal(t, 1, s.HistoryLen())
}

func TestGoUpAtRootIsNoop(t *testing.T) {
	validator, err := workspace.NewValidator(config.New())
	require.NoError(t, err)
	s := NewState("/", NewLister(nil), validator)

	s.GoUp()
	assert.Equal(t, "/", s.Dir())
	assert.Equal(t, 0, s.HistoryLen())
}

func TestActivateRow(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "note.md"), []byte("x"), 0644))

	s := newTestState(t, root)

	t.Run("file row is not enterable", func(t *testing.T) {
		notice := s.ActivateRow(Entry{Kind: KindFile, Name: "note.md"})
		assert.Nil(t, notice)
		assert.Equal(t, root, s.Dir())
	})

	t.Run("directory row navigates into it", func(t *testing.T) {
		notice := s.ActivateRow(Entry{Kind: KindDir, Name: "sub"})
		assert.Nil(t, notice)
		assert.Equal(t, sub, s.Dir())
	})

	t.Run("up row navigates to parent", func(t *testing.T) {
		notice := s.ActivateRow(UpRow())
		assert.Nil(t, notice)
		assert.Equal(t, root, s.Dir())
	})

	t.Run("back row pops history", func(t *testing.T) {
		notice := s.ActivateRow(BackRow())
		assert.Nil(t, notice)
		assert.Equal(t, sub, s.Dir())
	})
}

func TestSubmitPath(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "target")
	require.NoError(t, os.Mkdir(target, 0755))

	t.Run("existing directory navigates", func(t *testing.T) {
		s := newTestState(t, root)
		notice := s.SubmitPath(target)
		assert.Nil(t, notice)
		assert.Equal(t, target, s.Dir())
		assert.Equal(t, 1, s.HistoryLen())
	})

	t.Run("nonexistent path is rejected", func(t *testing.T) {
		s := newTestState(t, root)
		notice := s.SubmitPath(filepath.Join(root, "missing"))
		require.NotNil(t, notice)
		assert.Equal(t, NoticeError, notice.Level)
		assert.Equal(t, root, s.Dir())
		assert.Equal(t, 0, s.HistoryLen())
	})

	t.Run("file path is rejected", func(t *testing.T) {
		file := filepath.Join(root, "file.md")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		s := newTestState(t, root)
		notice := s.SubmitPath(file)
		require.NotNil(t, notice)
		assert.Equal(t, NoticeError, notice.Level)
		assert.Equal(t, root, s.Dir())
	})

	t.Run("home shorthand expands", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		require.NoError(t, os.Mkdir(filepath.Join(home, "notes"), 0755))

		s := newTestState(t, root)
		notice := s.SubmitPath("~/notes")
		assert.Nil(t, notice)
		assert.Equal(t, filepath.Join(home, "notes"), s.Dir())
	})
}

func TestRefresh(t *testing.T) {
	root := t.TempDir()
	s := newTestState(t, root)
	require.Empty(t, s.Snapshot().Listing[1:]) // only the up row

	require.NoError(t, os.WriteFile(filepath.Join(root, "new.md"), []byte("x"), 0644))
	s.Refresh()

	snap := s.Snapshot()
	require.Len(t, snap.Listing, 2)
	assert.Equal(t, "new.md", snap.Listing[1].Name)
	assert.Equal(t, 0, s.HistoryLen())
}

func TestSelect(t *testing.T) {
	t.Run("valid workspace is selectable", func(t *testing.T) {
		root := t.TempDir()
		testutils.MakeWorkspace(t, root, 2, 1)

		s := newTestState(t, root)
		notice := s.Select()
		require.NotNil(t, notice)
		assert.Equal(t, NoticeSuccess, notice.Level)
		assert.Equal(t, root, s.Selected())
	})

	t.Run("invalid workspace is refused", func(t *testing.T) {
		root := t.TempDir()

		s := newTestState(t, root)
		notice := s.Select()
		require.NotNil(t, notice)
		assert.Equal(t, NoticeError, notice.Level)
		assert.Empty(t, s.Selected())
	})

	t.Run("stale validation never permits selection", func(t *testing.T) {
		root := t.TempDir()
		testutils.MakeWorkspace(t, root, 0, 0)

		s := newTestState(t, root)
		require.True(t, s.Snapshot().Validation.Valid)

		// Break the workspace after the cached validation succeeded
		require.NoError(t, os.RemoveAll(filepath.Join(root, "logseq")))

		notice := s.Select()
		require.NotNil(t, notice)
		assert.Equal(t, NoticeError, notice.Level)
		assert.Empty(t, s.Selected())
		assert.False(t, s.Snapshot().Validation.Valid)
	})

	t.Run("selection is sticky across navigation", func(t *testing.T) {
		root := t.TempDir()
		testutils.MakeWorkspace(t, root, 1, 1)
		other := filepath.Join(root, "pages")

		s := newTestState(t, root)
		require.NotNil(t, s.Select())
		require.Equal(t, root, s.Selected())

		s.Navigate(other)
		assert.Equal(t, root, s.Selected())

		s.Refresh()
		assert.Equal(t, root, s.Selected())
	})
}
