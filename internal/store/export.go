// Copyright Arbor Learning Co., 2026. All rights reserved.

package store

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// CatalogFileName is the YAML course catalog written next to the graph
// document. The catalog is the human-reviewable form of the index.
const CatalogFileName = "courses.yaml"

// ExportCatalog writes every course record as YAML to
// dataDir/courses.yaml, in store iteration order, and returns the path
// written.
func ExportCatalog(dataDir string, s *Store) (string, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}

	data, err := yaml.Marshal(s.All())
	if err != nil {
		return "", fmt.Errorf("marshaling catalog: %w", err)
	}

	path := filepath.Join(dataDir, CatalogFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
