package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.emd", "B.EMD", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "c.emd"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("found %d files, want 3: %v", len(files), files)
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	results := []Result{
		{Path: "models/sword.emd", Name: "sword", Objects: 2, Verts: 40, Faces: 60, Success: true},
		{Path: "models/bad.emd", Name: "bad", Error: "unsupported chunk"},
	}

	if err := WriteManifest(path, "webp", results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want only the success", len(entries))
	}
	if entries[0].Image != "sword.webp" || entries[0].Vertices != 40 {
		t.Errorf("entry = %+v", entries[0])
	}
}
