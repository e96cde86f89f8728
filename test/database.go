package test

import (
	"path/filepath"
	"testing"
)

// TmpFile returns a database path in a fresh temporary directory. The
// directory is unique per call and cleaned up when the test finishes, so
// every test runs against its own database.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "pouch.db")
}
