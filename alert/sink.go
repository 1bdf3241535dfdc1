package alert

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Sink records alerts somewhere durable. Delivery to ERPNext is a future
// Sink implementation; tests use in-memory sinks.
type Sink interface {
	Record(a Alert) error
}

// FileSink writes each alert as a pretty-printed JSON file under a log
// directory, one file per alert. The directory is created on first use.
type FileSink struct {
	dir string
}

// NewFileSink creates a FileSink writing under dir.
func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

// Record writes the alert to <dir>/<type>_<timestamp>_<id>.json.
func (s *FileSink) Record(a Alert) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create alert log dir: %w", err)
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode alert %s: %w", a.ID, err)
	}
	name := fmt.Sprintf("%s_%s_%s.json", a.Type, a.CreatedAt.Format("20060102150405"), a.ID)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write alert %s: %w", a.ID, err)
	}
	return nil
}
