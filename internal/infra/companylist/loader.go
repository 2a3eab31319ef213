// Package companylist loads the company-name list the matcher scans
// documents for. The list is a CSV file with a header row; which column
// holds the names is detected from the header.
package companylist

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// headerCandidates are the recognized company-column headers, compared
// trimmed and lower-cased.
var headerCandidates = []string{"company", "companies", "company name", "company_name", "name"}

// Load reads the CSV file at path and returns the normalized company-name
// list: lower-cased, trimmed, empty values dropped, de-duplicated preserving
// first-occurrence order. The matcher depends on that normalization; it never
// re-normalizes.
//
// A missing or unparseable file is returned as an error. Unlike a failing
// feed, a missing company list means every record would lose its company
// matches silently, so the caller treats this as fatal.
func Load(path string) ([]string, error) {
	// #nosec G304 -- path comes from configuration, not user input
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open company file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse company file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("company file %s has no header row", path)
	}

	header := rows[0]
	// Excel CSV exports prefix a UTF-8 BOM
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")

	col, found := detectColumn(header)
	if found {
		slog.Info("detected company column",
			slog.String("column", header[col]))
	} else {
		slog.Warn("company column not found, using first column",
			slog.String("column", header[col]))
	}

	seen := make(map[string]struct{})
	companies := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(row[col]))
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		companies = append(companies, name)
	}

	slog.Info("loaded company list",
		slog.String("path", path),
		slog.Int("companies", len(companies)))

	return companies, nil
}

// detectColumn returns the index of the first header matching a recognized
// company-column name, or column 0 when none matches.
func detectColumn(header []string) (int, bool) {
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		for _, candidate := range headerCandidates {
			if name == candidate {
				return i, true
			}
		}
	}
	return 0, false
}
