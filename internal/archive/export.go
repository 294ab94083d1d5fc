// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ExportEntry is one archived document in an export file.
type ExportEntry struct {
	QID        string `json:"qid" yaml:"qid"`
	Type       string `json:"type" yaml:"type"`
	Modified   string `json:"modified" yaml:"modified"`
	ArchivedAt string `json:"archived_at" yaml:"archived_at"`
	Document   any    `json:"document" yaml:"document"`
}

// ExportYAML writes the archive to dir/export.yaml and returns the path.
func (s *Store) ExportYAML(ctx context.Context) (string, error) {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "export.yaml")
	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the archive to dir/export.json and returns the path.
func (s *Store) ExportJSON(ctx context.Context) (string, error) {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "export.json")
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return path, os.WriteFile(path, data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context) ([]ExportEntry, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(records))
	for i, r := range records {
		var doc any
		if err := json.Unmarshal(r.Document, &doc); err != nil {
			return nil, fmt.Errorf("decoding archived %s: %w", r.QID, err)
		}
		entries[i] = ExportEntry{
			QID:        r.QID,
			Type:       r.Type,
			Modified:   r.Modified,
			ArchivedAt: r.ArchivedAt,
			Document:   doc,
		}
	}
	return entries, nil
}
