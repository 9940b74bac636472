package files

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Writer stores generated documents (exports, reports) on disk.
type Writer struct{}

func (Writer) Write(_ context.Context, dir, name string, payload []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}
