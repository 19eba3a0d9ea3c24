// Copyright Arbor Learning Co., 2026. All rights reserved.

package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arborlearn/coursegraph/pkg/types"
)

// GraphFileName is the graph artifact written into the data directory.
const GraphFileName = "course-graph.json"

// WriteGraph writes the graph document as indented JSON to
// dataDir/course-graph.json and returns the path written.
func WriteGraph(dataDir string, g types.Graph) (string, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(dataDir, GraphFileName)
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling graph: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// graphDocument mirrors types.Graph with pointer slices so a missing key
// is distinguishable from an empty one.
type graphDocument struct {
	Nodes    *[]types.Node       `json:"nodes"`
	Edges    *[]types.Edge       `json:"edges"`
	Metadata types.GraphMetadata `json:"metadata"`
}

// LoadGraph decodes a graph document from r. A document missing the
// required nodes or edges keys is a contract violation and an error; the
// analyzer does not guess a default shape. Empty lists are fine.
func LoadGraph(r io.Reader) (types.Graph, error) {
	var doc graphDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return types.Graph{}, fmt.Errorf("decoding graph document: %w", err)
	}
	if doc.Nodes == nil {
		return types.Graph{}, fmt.Errorf("malformed graph document: missing \"nodes\"")
	}
	if doc.Edges == nil {
		return types.Graph{}, fmt.Errorf("malformed graph document: missing \"edges\"")
	}
	return types.Graph{
		Nodes:    *doc.Nodes,
		Edges:    *doc.Edges,
		Metadata: doc.Metadata,
	}, nil
}

// LoadGraphFile reads and decodes the graph document at path.
func LoadGraphFile(path string) (types.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Graph{}, fmt.Errorf("opening graph file: %w", err)
	}
	defer f.Close()
	return LoadGraph(f)
}
