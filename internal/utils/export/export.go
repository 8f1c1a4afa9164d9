// Package export writes generated content to disk as markdown files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chynybekuuludastan/copywriting_agent/internal/models"
)

// SaveMarkdown writes the content to dir as a timestamped markdown
// file and returns the path. The directory is created if missing.
func SaveMarkdown(dir string, contentType models.ContentType, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.md", contentType, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return path, nil
}
