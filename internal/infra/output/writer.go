// Package output writes the run's result artifact: a JSON array of match
// records at a configured path.
package output

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"signal-scout/internal/domain/entity"
)

// Write writes records to path as a two-space-indented JSON array. HTML
// escaping is disabled so URLs and matched text keep their literal `&`,
// `<` and `>`.
//
// The artifact is written on every run, a run with no matches included:
// downstream consumers read the file unconditionally, and an empty array
// is the difference between "nothing matched" and "the run never finished".
func Write(path string, records []entity.MatchRecord) error {
	if records == nil {
		records = []entity.MatchRecord{}
	}

	// #nosec G304 -- path comes from configuration, not user input
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(records); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode records: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	slog.Info("saved matched records",
		slog.Int("records", len(records)),
		slog.String("path", path))

	return nil
}
