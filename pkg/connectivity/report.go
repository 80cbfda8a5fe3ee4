package connectivity

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SaveResult writes res as JSON into dir and returns the file path. The file
// name carries a timestamp and the first eight characters of the run ID.
func SaveResult(dir string, res *Result) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report dir %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	id := res.RunID
	if len(id) > 8 {
		id = id[:8]
	}
	path := filepath.Join(dir, fmt.Sprintf("connectivity_%s_%s.json", timestamp, id))

	jsonData, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write result to %s: %w", path, err)
	}
	return path, nil
}
