// Package session implements the CLI's session-restore protocol:
// remembering the last document the user had open so a bare `kig`
// invocation (no positional URL) can reopen it, the way every
// KPart-based KDE application's session management does.
//
// No example repo in the corpus persists CLI state across runs, so
// this is grounded directly on stdlib: os.UserConfigDir for the
// platform-appropriate location and a single plain-text file holding
// the last path, nothing more elaborate is warranted for one string.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appDirName = "kig"
const fileName = "lastsession"

// configDir is a seam over os.UserConfigDir so tests can point Save
// and Restore at a scratch directory instead of the real user config.
var configDir = os.UserConfigDir

// path returns the on-disk location of the session file.
func path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", fmt.Errorf("session: %w", err)
	}
	return filepath.Join(dir, appDirName, fileName), nil
}

// Save records file as the most recently opened document.
func Save(file string) error {
	p, err := path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err := os.WriteFile(p, []byte(file+"\n"), 0o644); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}

// Restore returns the most recently saved document path, and false if
// no session has been recorded yet.
func Restore() (string, bool, error) {
	p, err := path()
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("session: %w", err)
	}
	file := strings.TrimSpace(string(data))
	if file == "" {
		return "", false, nil
	}
	return file, true, nil
}
