package platform

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/jotter/pkg/core"
)

// devDirName is the temp subdirectory used by sandboxed development runs.
const devDirName = "jotter-dev"

// IsDevRun checks if the current process is running via `go run` or `go test`.
// Both build their binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}

	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// ResolvePath returns path unchanged unless sandbox is set, in which case a path
// outside the system temp directory is re-rooted under the dev directory,
// keeping only its base name.
func ResolvePath(path string, sandbox bool) string {
	if !sandbox {
		return path
	}

	clean := filepath.Clean(path)
	if rel, err := filepath.Rel(os.TempDir(), clean); err == nil && !strings.HasPrefix(rel, "..") {
		return clean
	}

	name := filepath.Base(clean)
	if path == "" || name == "." || name == string(os.PathSeparator) {
		name = "default"
	}
	return filepath.Join(os.TempDir(), devDirName, name)
}

// sandboxedPreferences re-roots every notes directory it is given, so a
// directory change made during a development run stays inside the sandbox.
type sandboxedPreferences struct {
	core.Preferences
}

func (p sandboxedPreferences) SetNotesDirectory(dir string) error {
	return p.Preferences.SetNotesDirectory(ResolvePath(dir, true))
}
