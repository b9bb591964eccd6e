package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DirSink saves exported files into a directory, creating it if needed.
type DirSink struct {
	Dir string
}

// Save writes data to Dir/filename.
func (s DirSink) Save(data []byte, filename, _ string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(s.Dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriterSink streams exported files to a single writer, e.g. stdout. The
// filename and MIME type are discarded.
type WriterSink struct {
	W io.Writer
}

// Save writes data to the underlying writer.
func (s WriterSink) Save(data []byte, _, _ string) error {
	if _, err := s.W.Write(data); err != nil {
		return fmt.Errorf("writing export stream: %w", err)
	}
	return nil
}
