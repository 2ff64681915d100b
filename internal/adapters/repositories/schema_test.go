package repositories

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "waypoints.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func TestLoadSeeds(t *testing.T) {
	path := writeSeed(t, `[{"name":" HUB ","x":0,"y":0},{"name":"A","x":300,"y":-400}]`)

	got, err := LoadSeeds(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 waypoints, got %d", len(got))
	}
	if got[0].Name != "HUB" {
		t.Fatalf("name = %q, want trimmed %q", got[0].Name, "HUB")
	}
	if got[1].Position.X() != 300 || got[1].Position.Y() != -400 {
		t.Fatalf("A position = %v, want (300, -400)", got[1].Position)
	}
}

func TestLoadSeedsInvalid(t *testing.T) {
	cases := map[string]string{
		"empty name": `[{"name":"  ","x":0,"y":0}]`,
		"bad json":   `[{"name":`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadSeeds(writeSeed(t, body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	if _, err := LoadSeeds(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
