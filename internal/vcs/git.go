// Package vcs holds the one-time git environment check. The browser
// works without git; the result only gates the sync instructions shown
// after a workspace is selected.
package vcs

import (
	"os/exec"

	"logpick/internal/log"
)

// FindGit reports whether a git binary is on PATH and where.
func FindGit() (string, bool) {
	path, err := exec.LookPath("git")
	if err != nil {
		log.Debugf("git not found on PATH: %v", err)
		return "", false
	}
	log.LogWithFields(log.F("path", path)).Debug("found git")
	return path, true
}
