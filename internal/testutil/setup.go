package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/lnkkit/pkg/types"
)

// WriteLink writes data to a file named name inside a per-test temporary
// directory and returns its path.
//
// Example:
//
//	path := testutil.WriteLink(t, "app.lnk", testutil.NewLink().Bytes())
func WriteLink(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("Failed to write link fixture: %v", err)
	}
	return path
}

// Sample returns the link used across package tests: a fixed-drive target
// with a narrow volume label, a local base path, a UTF-16 working directory
// and an icon location.
func Sample() *Builder {
	return NewLink().
		Unicode().
		WithIconIndex(7).
		WithIDItems([]byte{0x1F, 0x50}, []byte("abc")).
		WithLinkInfo(LinkInfo{
			Volume: &Volume{
				DriveType: types.DriveFixed,
				Serial:    0x12345678,
				Label:     "DATA",
				BasePath:  `C:\Program Files\App\app.exe`,
			},
		}).
		WithString(types.StringWorkingDir, `C:\Users\x`).
		WithString(types.StringIconLocation, `C:\Windows\icon.dll`)
}
