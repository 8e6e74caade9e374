package workspace

import (
	"os"
	"path/filepath"

	apperrors "logpick/internal/errors"
	"logpick/internal/log"
)

// WriteMarker writes the sync marker file into dir. This is the only
// durable effect of a selection.
func WriteMarker(dir, filename, message string) (string, error) {
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(message), 0644); err != nil {
		return "", apperrors.NewPathError("writing marker file", path, apperrors.MarkerWriteFailed, err)
	}
	log.LogWithFields(log.F("path", path)).Info("marker file written")
	return path, nil
}
