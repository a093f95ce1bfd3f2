// SPDX-License-Identifier: MIT
// Package: cliquespec/graphio
//
// graphio.go — Document model, Encode/Decode and file helpers.

package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cliquespec/core"
)

// ErrBadDocument indicates a document that cannot be mapped to or from a core.Graph.
var ErrBadDocument = errors.New("graphio: malformed graph document")

// VertexDoc is the serialized form of a core.VertexID.
type VertexDoc struct {
	Label  string `yaml:"label" json:"label"`
	Mirror bool   `yaml:"mirror,omitempty" json:"mirror,omitempty"`
}

// Document is the serialized form of a core.Graph.
type Document struct {
	Vertices []VertexDoc `yaml:"vertices" json:"vertices"`
	Edges    [][2]string `yaml:"edges" json:"edges"`
}

// ToDocument snapshots g into a Document in canonical vertex and edge order.
func ToDocument(g *core.Graph) (Document, error) {
	if g == nil {
		return Document{}, fmt.Errorf("ToDocument: %w", core.ErrNilGraph)
	}

	var doc Document
	for _, v := range g.Vertices() {
		if !v.Mirror && strings.HasPrefix(v.Label, core.MirrorMarker) {
			return Document{}, fmt.Errorf("ToDocument: label %q clashes with the mirror marker: %w", v.Label, ErrBadDocument)
		}
		doc.Vertices = append(doc.Vertices, VertexDoc{Label: v.Label, Mirror: v.Mirror})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, [2]string{e.From.String(), e.To.String()})
	}

	return doc, nil
}

// FromDocument builds a graph from doc. Duplicate vertices or edges, unknown
// endpoints and self-loops are rejected with ErrBadDocument and the core cause.
func FromDocument(doc Document) (*core.Graph, error) {
	g := core.NewGraph()
	for i, vd := range doc.Vertices {
		v := core.VertexID{Label: vd.Label, Mirror: vd.Mirror}
		if v.Label == "" {
			return nil, fmt.Errorf("FromDocument: vertex #%d: %w: %w", i, ErrBadDocument, core.ErrEmptyLabel)
		}
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("FromDocument: %w: %w", ErrBadDocument, err)
		}
	}
	for i, pair := range doc.Edges {
		u, err := core.ParseVertexID(pair[0])
		if err != nil {
			return nil, fmt.Errorf("FromDocument: edge #%d: %w: %w", i, ErrBadDocument, err)
		}
		v, err := core.ParseVertexID(pair[1])
		if err != nil {
			return nil, fmt.Errorf("FromDocument: edge #%d: %w: %w", i, ErrBadDocument, err)
		}
		if err = g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("FromDocument: edge #%d: %w: %w", i, ErrBadDocument, err)
		}
	}

	return g, nil
}

// Encode writes g to w as YAML.
func Encode(w io.Writer, g *core.Graph) error {
	doc, err := ToDocument(g)
	if err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return enc.Close()
}

// Decode reads one YAML document from r. An empty input decodes to the empty graph.
func Decode(r io.Reader) (*core.Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("Decode: %w: %w", ErrBadDocument, err)
	}

	g, err := FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return g, nil
}

// Save writes g to path, replacing any previous file atomically.
func Save(path string, g *core.Graph) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".graph-*.yaml")
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err = Encode(tmp, g); err != nil {
		tmp.Close()
		return fmt.Errorf("Save(%s): %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}

	return nil
}

// Load reads the graph stored at path.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return g, nil
}
