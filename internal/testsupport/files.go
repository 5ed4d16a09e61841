package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// AlbumDirectory creates a directory with the given album name under a temp
// root, makes it the working directory for the rest of the test, and returns
// its path.
func AlbumDirectory(t testing.TB, name string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	t.Chdir(dir)
	return dir
}
