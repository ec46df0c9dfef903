package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NextAvailableName returns path unchanged when nothing exists there. Otherwise
// it inserts " (1)", " (2)", ... before the extension until it finds a free path.
// It never creates anything.
func NextAvailableName(path string) string {
	if !pathExists(path) {
		return path
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, i, ext)
		if !pathExists(candidate) {
			return candidate
		}
	}
}

// pathExists treats any stat failure other than "not exist" as taken, so callers never clobber.
func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return !os.IsNotExist(err)
}
