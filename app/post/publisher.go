package post

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
)

type Publisher struct {
	dir string
}

func NewPublisher(dir string) *Publisher {
	return &Publisher{dir: dir}
}

// Filename is "<YYYY-MM-DD>-<suffix>.md" where suffix is a slug or a fixed name.
func Filename(date time.Time, suffix string) string {
	return fmt.Sprintf("%s-%s.md", date.Format("2006-01-02"), suffix)
}

// Write stores the rendered document under the posts directory, replacing any existing file.
func (p *Publisher) Write(name string, document []byte) (string, error) {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create posts directory: %w", err)
	}

	path := filepath.Join(p.dir, name)
	if err := os.WriteFile(path, document, 0o644); err != nil {
		return "", fmt.Errorf("failed to write post: %w", err)
	}

	slog.Debug("Post written", "path", path, "size", humanize.Bytes(uint64(len(document))))

	return path, nil
}
