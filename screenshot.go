package circlegarden

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot writes the current contents of the named scene's surface to a
// timestamped PNG in dir and returns the file path. Call it after Draw so
// the surface holds the latest frame.
func (d *DynamicTextures) Screenshot(name, dir string) (string, error) {
	tex, ok := d.Lookup(name)
	if !ok {
		return "", fmt.Errorf("screenshot: %w: %q", ErrUnknownScene, name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: mkdir %s: %w", dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(name)))
	if err := WritePNG(path, tex.Surface); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// WritePNG encodes a surface to a PNG file at the given path.
func WritePNG(path string, s Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := s.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
