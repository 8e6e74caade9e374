// Package workspace decides whether a directory follows the LogSeq
// folder convention and writes the sync marker file into a selected
// workspace.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"logpick/internal/config"

	"github.com/gobwas/glob"
)

// Check records the presence of one required subdirectory.
type Check struct {
	Name    string
	Present bool
}

// NoteCount is the informational note-file count for one subdirectory.
// Counts are appended only when enumeration succeeds; an unreadable
// subdirectory simply contributes no entry.
type NoteCount struct {
	Dir   string
	Count int
}

// Result is the outcome of validating one directory. Valid depends only
// on the required-directory checks, never on the counts. When the path
// itself is unusable, Err carries the single diagnostic and Checks is
// empty.
type Result struct {
	Valid  bool
	Checks []Check
	Counts []NoteCount
	Err    string
}

// Summary renders the ordered diagnostic lines.
func (r Result) Summary() []string {
	if r.Err != "" {
		return []string{r.Err}
	}
	lines := make([]string, 0, len(r.Checks)+len(r.Counts))
	for _, c := range r.Checks {
		if c.Present {
			lines = append(lines, c.Name+"/ present")
		} else {
			lines = append(lines, c.Name+"/ absent")
		}
	}
	for _, n := range r.Counts {
		lines = append(lines, fmt.Sprintf("%d %s", n.Count, n.Dir))
	}
	return lines
}

// Validator checks directories against the workspace convention.
type Validator struct {
	required  []string
	countDirs []string
	noteGlob  glob.Glob
}

// NewValidator builds a validator from configuration.
func NewValidator(cfg *config.Config) (*Validator, error) {
	g, err := glob.Compile(cfg.Workspace.NoteGlob)
	if err != nil {
		return nil, fmt.Errorf("compiling note glob %q: %w", cfg.Workspace.NoteGlob, err)
	}
	return &Validator{
		required:  cfg.Workspace.RequiredDirs,
		countDirs: cfg.Workspace.CountDirs,
		noteGlob:  g,
	}, nil
}

// Validate checks dir against the convention. It never mutates the
// filesystem and is safe to call repeatedly.
func (v *Validator) Validate(dir string) Result {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return Result{Valid: false, Err: "Path doesn't exist or isn't a directory"}
	}

	result := Result{Valid: true}
	for _, name := range v.required {
		sub, err := os.Stat(filepath.Join(dir, name))
		present := err == nil && sub.IsDir()
		if !present {
			result.Valid = false
		}
		result.Checks = append(result.Checks, Check{Name: name, Present: present})
	}

	for _, name := range v.countDirs {
		if n, ok := v.countNotes(filepath.Join(dir, name)); ok {
			result.Counts = append(result.Counts, NoteCount{Dir: name, Count: n})
		}
	}

	return result
}

// countNotes counts direct children matching the note glob. The counts
// are informational only, so any enumeration failure reports absence
// rather than an error.
func (v *Validator) countNotes(dir string) (int, bool) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return 0, false
	}
	n := 0
	for _, child := range children {
		if child.IsDir() {
			continue
		}
		if v.noteGlob.Match(child.Name()) {
			n++
		}
	}
	return n, true
}
