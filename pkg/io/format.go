package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/modchart/pkg/errors"
	"github.com/matzehuels/modchart/pkg/graph"
)

// Format is a graph file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath infers the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown graph file extension %q (must be .json, .yaml, .yml or .toml)", filepath.Ext(path))
}

// Data is the serialized form of a graph, shared by all encodings.
type Data struct {
	Nodes []NodeData `json:"nodes" yaml:"nodes" toml:"nodes"`
	Edges []EdgeData `json:"edges" yaml:"edges" toml:"edges"`
}

// NodeData is one serialized node.
type NodeData struct {
	ID     string `json:"id" yaml:"id" toml:"id"`
	Type   string `json:"type" yaml:"type" toml:"type"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Hidden bool   `json:"hidden,omitempty" yaml:"hidden,omitempty" toml:"hidden,omitempty"`
}

// EdgeData is one serialized edge.
type EdgeData struct {
	From string `json:"from" yaml:"from" toml:"from"`
	To   string `json:"to" yaml:"to" toml:"to"`
	Type string `json:"type" yaml:"type" toml:"type"`
}

// FromGraph converts a graph to its serialized form.
func FromGraph(g *graph.Graph) Data {
	nodes := g.Nodes()
	edges := g.Edges()
	out := Data{
		Nodes: make([]NodeData, len(nodes)),
		Edges: make([]EdgeData, len(edges)),
	}
	for i, n := range nodes {
		out.Nodes[i] = NodeData{ID: n.ID, Type: n.Type, Label: n.Label, Hidden: n.Hidden}
	}
	for i, e := range edges {
		out.Edges[i] = EdgeData{From: e.From, To: e.To, Type: e.Type}
	}
	return out
}

// Graph builds a graph from the serialized form. Node IDs must be valid
// module paths and every edge must reference declared nodes.
func (d Data) Graph() (*graph.Graph, error) {
	g := graph.New()
	for _, n := range d.Nodes {
		if err := errors.ValidateProjectPath(n.ID); err != nil {
			return nil, err
		}
		if err := g.AddNode(graph.Node{ID: n.ID, Type: n.Type, Label: n.Label, Hidden: n.Hidden}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "node %s", n.ID)
		}
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(graph.Edge{From: e.From, To: e.To, Type: e.Type}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "edge %s->%s", e.From, e.To)
		}
	}
	return g, nil
}
