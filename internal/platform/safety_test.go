package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePath(t *testing.T) {
	t.Parallel()

	tempRoot := os.TempDir()
	devBase := filepath.Join(tempRoot, devDirName)

	tests := []struct {
		name     string
		path     string
		sandbox  bool
		expected string
	}{
		{"Normal Mode - Specific Path", "/some/path", false, "/some/path"},
		{"Normal Mode - Relative Path", "notes", false, "notes"},
		{"Dev Mode - Empty Path", "", true, filepath.Join(devBase, "default")},
		{"Dev Mode - Relative Name", "my-notes", true, filepath.Join(devBase, "my-notes")},
		{"Dev Mode - Clean Name", "../bad/path", true, filepath.Join(devBase, "path")},
		{"Dev Mode - Exception for Temp Dir", filepath.Join(tempRoot, "my-test"), true, filepath.Join(tempRoot, "my-test")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePath(tt.path, tt.sandbox)
			if got != tt.expected {
				t.Errorf("ResolvePath(%q, %v) = %q; want %q", tt.path, tt.sandbox, got, tt.expected)
			}
		})
	}
}

func TestIsDevRun(t *testing.T) {
	// This test runs inside "go test", so IsDevRun() MUST return true.
	if !IsDevRun() {
		t.Errorf("IsDevRun() = false; want true inside go test")
	}
}
