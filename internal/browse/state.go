package browse

import (
	"os"
	"path/filepath"
	"strings"

	"logpick/internal/log"
	"logpick/internal/workspace"
)

// NoticeLevel classifies a user-visible notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeSuccess
	NoticeError
)

// Notice is a transient message produced by a transition, rendered in
// the status line. A nil *Notice means the transition had nothing to say.
type Notice struct {
	Level NoticeLevel
	Text  string
}

// Snapshot is the immutable view of the browser after a transition. The
// renderer consumes snapshots and nothing else.
type Snapshot struct {
	Dir        string
	Listing    Listing
	Validation workspace.Result
	Selected   string
}

// State is the browser state machine. The tuple (current directory,
// history) determines all reachable behavior; every transition below
// runs to completion before the next event is handled. A single State
// is owned by one session loop; there is no locking.
type State struct {
	dir        string
	listing    Listing
	validation workspace.Result
	history    *History
	selected   string

	lister    *Lister
	validator *workspace.Validator
}

// NewState creates a browser rooted at startDir, with its listing and
// validation already computed.
func NewState(startDir string, lister *Lister, validator *workspace.Validator) *State {
	s := &State{
		dir:       filepath.Clean(startDir),
		history:   NewHistory(),
		lister:    lister,
		validator: validator,
	}
	s.recompute()
	return s
}

// Snapshot returns the current immutable view.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Dir:        s.dir,
		Listing:    s.listing,
		Validation: s.validation,
		Selected:   s.selected,
	}
}

// Dir returns the current directory.
func (s *State) Dir() string {
	return s.dir
}

// Selected returns the selected workspace, or "" if none was selected.
func (s *State) Selected() string {
	return s.selected
}

// HistoryLen returns the depth of the back stack.
func (s *State) HistoryLen() int {
	return s.history.Len()
}

// Navigate moves to target as a forward navigation, pushing the current
// directory onto history. Navigating to the current directory is a
// no-op: nothing is recomputed and history is untouched.
func (s *State) Navigate(target string) {
	s.navigate(target, true)
}

// GoUp navigates to the parent directory. At the filesystem root it is
// a no-op.
func (s *State) GoUp() {
	parent := filepath.Dir(s.dir)
	if parent == s.dir {
		return
	}
	s.Navigate(parent)
}

// GoBack pops the history stack and navigates to the popped directory
// without re-pushing it. With empty history it reports a notice and
// changes nothing.
func (s *State) GoBack() *Notice {
	prev, ok := s.history.Pop()
	if !ok {
		return &Notice{Level: NoticeInfo, Text: "Already at the starting point"}
	}
	s.navigate(prev, false)
	return nil
}

// ActivateRow dispatches on the activated row: back and up rows map to
// the matching transitions, directory rows navigate into the directory,
// file and error rows do nothing.
func (s *State) ActivateRow(row Entry) *Notice {
	switch row.Kind {
	case KindBack:
		return s.GoBack()
	case KindUp:
		s.GoUp()
	case KindDir:
		s.Navigate(filepath.Join(s.dir, row.Name))
	}
	return nil
}

// SubmitPath resolves typed input to an absolute path, expanding a
// leading "~". An existing directory becomes a forward navigation;
// anything else is reported and leaves the state untouched.
func (s *State) SubmitPath(raw string) *Notice {
	resolved, err := expandPath(strings.TrimSpace(raw))
	if err != nil {
		return &Notice{Level: NoticeError, Text: "Invalid path or not a directory"}
	}
	info, err := os.Stat(resolved)
	if err != nil || !info.IsDir() {
		return &Notice{Level: NoticeError, Text: "Invalid path or not a directory"}
	}
	s.Navigate(resolved)
	return nil
}

// Refresh recomputes the listing and validation for the current
// directory without touching history. Idempotent; used after external
// filesystem changes.
func (s *State) Refresh() {
	s.recompute()
}

// Select marks the current directory as the chosen workspace. The
// validator runs fresh at call time; a stale positive result never
// permits a selection.
func (s *State) Select() *Notice {
	s.validation = s.validator.Validate(s.dir)
	if !s.validation.Valid {
		return &Notice{Level: NoticeError, Text: "Can't select: not a valid workspace"}
	}
	s.selected = s.dir
	log.LogWithFields(log.F("directory", s.dir)).Info("workspace selected")
	return &Notice{Level: NoticeSuccess, Text: "Selected: " + filepath.Base(s.dir)}
}

func (s *State) navigate(target string, push bool) {
	target = filepath.Clean(target)
	if target == s.dir {
		return
	}
	if push {
		s.history.Push(s.dir)
	}
	s.dir = target
	s.recompute()
}

func (s *State) recompute() {
	s.listing = s.lister.List(s.dir, s.history.Len() > 0)
	s.validation = s.validator.Validate(s.dir)
}

func expandPath(raw string) (string, error) {
	if raw == "~" || strings.HasPrefix(raw, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		raw = filepath.Join(home, strings.TrimPrefix(raw, "~"))
	}
	return filepath.Abs(raw)
}
