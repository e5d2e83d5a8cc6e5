package test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path of a fresh sqlite database file for a test.
// The file lives in the test's temporary directory and is removed with it.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), fmt.Sprintf("%s.db", uuid.New()))
}
