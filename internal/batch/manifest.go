package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one successfully rendered file.
type ManifestEntry struct {
	File     string   `json:"file"`
	Image    string   `json:"image"`
	Objects  int      `json:"objects"`
	Vertices int      `json:"vertices"`
	Faces    int      `json:"faces"`
	Warnings []string `json:"warnings,omitempty"`
}

// WriteManifest writes manifest.json describing the successful results.
func WriteManifest(path, format string, results []Result) error {
	var entries []ManifestEntry
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			File:     r.Path,
			Image:    fmt.Sprintf("%s.%s", r.Name, format),
			Objects:  r.Objects,
			Vertices: r.Verts,
			Faces:    r.Faces,
			Warnings: r.Warnings,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
