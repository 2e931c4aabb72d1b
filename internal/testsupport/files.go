package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WriteJSON encodes v into path, creating parent directories as needed.
func WriteJSON(t testing.TB, path string, v any) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteSnapshot writes films.json (as an API page), people.json and
// species.json (as bare arrays) into dir.
func WriteSnapshot(t testing.TB, dir string) {
	t.Helper()

	WriteJSON(t, filepath.Join(dir, "films.json"), map[string]any{
		"count":    len(Films()),
		"next":     nil,
		"previous": nil,
		"results":  Films(),
	})
	WriteJSON(t, filepath.Join(dir, "people.json"), People())
	WriteJSON(t, filepath.Join(dir, "species.json"), Species())
}
