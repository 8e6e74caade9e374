package browse

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"logpick/internal/log"
)

// Lister enumerates a directory into a display-ready Listing.
type Lister struct {
	showHidden map[string]bool
}

// NewLister creates a lister. Names in showHidden are dotfiles that stay
// visible in listings (everything else starting with "." is skipped).
func NewLister(showHidden []string) *Lister {
	allow := make(map[string]bool, len(showHidden))
	for _, name := range showHidden {
		allow[name] = true
	}
	return &Lister{showHidden: allow}
}

// List enumerates dir. hasBack controls whether a synthetic back row is
// prepended; an up row is prepended whenever dir has a distinct parent.
// A directory-level permission error yields a single error row with no
// navigation rows. A nonexistent or unreadable-for-other-reasons dir
// yields an empty Listing.
func (l *Lister) List(dir string, hasBack bool) Listing {
	children, err := os.ReadDir(dir)
	if err != nil {
		if os.IsPermission(err) {
			return Listing{ErrorRow("Permission denied")}
		}
		log.LogWithFields(log.F("directory", dir)).Debugf("listing failed: %v", err)
		return Listing{}
	}

	var rows Listing
	if hasBack {
		rows = append(rows, BackRow())
	}
	if filepath.Dir(dir) != dir {
		rows = append(rows, UpRow())
	}

	var dirs, files []Entry
	for _, child := range children {
		name := child.Name()
		if strings.HasPrefix(name, ".") && !l.showHidden[name] {
			continue
		}

		if child.IsDir() {
			dirs = append(dirs, Entry{Kind: KindDir, Name: name, Detail: l.dirDetail(filepath.Join(dir, name))})
		} else {
			files = append(files, Entry{Kind: KindFile, Name: name, Detail: fileDetail(child)})
		}
	}

	sortByName(dirs)
	sortByName(files)

	rows = append(rows, dirs...)
	rows = append(rows, files...)
	return rows
}

// dirDetail computes the cheap size proxy for a directory: the count of
// immediate children. Enumeration failures degrade to a placeholder.
func (l *Lister) dirDetail(path string) string {
	children, err := os.ReadDir(path)
	if err != nil {
		if os.IsPermission(err) {
			return "locked"
		}
		return "folder"
	}
	return fmt.Sprintf("%d items", len(children))
}

func fileDetail(entry os.DirEntry) string {
	info, err := entry.Info()
	if err != nil {
		return "locked"
	}
	return FormatSize(info.Size())
}

func sortByName(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}
