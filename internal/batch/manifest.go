package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one map in the output manifest.
type ManifestEntry struct {
	MapID int    `json:"map_id"`
	Name  string `json:"name"`
	Dir   string `json:"dir"`
	Files int    `json:"files"`
	Error string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json to the output directory.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			MapID: r.MapID,
			Name:  r.Name,
			Dir:   fmt.Sprintf("map_%03d", r.MapID),
			Files: r.Files,
			Error: r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
