package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// MakeWorkspace builds a valid LogSeq workspace under dir with the given
// number of note files in pages/ and journals/.
func MakeWorkspace(t *testing.T, dir string, pages, journals int) {
	t.Helper()
	for _, sub := range []string{"logseq", "pages", "journals"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, sub), 0755))
	}
	for i := 0; i < pages; i++ {
		name := filepath.Join(dir, "pages", "page"+string(rune('a'+i))+".md")
		require.NoError(t, os.WriteFile(name, []byte("- note\n"), 0644))
	}
	for i := 0; i < journals; i++ {
		name := filepath.Join(dir, "journals", "2026_08_0"+string(rune('1'+i))+".md")
		require.NoError(t, os.WriteFile(name, []byte("- entry\n"), 0644))
	}
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
