// Package testdata provides JSON fixtures for GPSWox client tests.
// The files mirror responses returned by GPSWox servers.
package testdata

import (
	"embed"
	"testing"
)

// FS embeds all JSON fixture files.
//
//go:embed */*.json
var FS embed.FS

// LoadFixture reads and returns fixture content as string.
// The path is relative to the testdata directory (e.g., "setup/edit_setup_data.json").
func LoadFixture(t *testing.T, path string) string {
	t.Helper()

	data, err := FS.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", path, err)
	}

	return string(data)
}
