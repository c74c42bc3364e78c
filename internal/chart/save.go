package chart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes fig to <dir>/<name>.JSON as a script assigning `graphs`,
// which is how the dashboard page loads it.
func Save(dir, name string, fig Figure) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create chart dir: %w", err)
	}

	payload, err := json.Marshal(fig)
	if err != nil {
		return "", fmt.Errorf("encode chart %s: %w", name, err)
	}

	path := filepath.Join(dir, name+".JSON")
	content := fmt.Sprintf("var graphs = %s;", payload)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write chart %s: %w", name, err)
	}
	return path, nil
}
