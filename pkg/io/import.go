package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/modchart/pkg/errors"
	"github.com/matzehuels/modchart/pkg/graph"
)

// Read decodes a graph in the given format from r.
//
// Read returns an error if the input is malformed, a node ID is empty,
// invalid or duplicated, or an edge references an unknown node. Errors name
// the offending node or edge. Read does not close r.
func Read(r io.Reader, format Format) (*graph.Graph, error) {
	var data Data
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&data); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "decode json")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&data); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "decode yaml")
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&data)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "decode toml: unknown key %s", undecoded[0])
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported graph format %q", format)
	}
	return data.Graph()
}

// ReadJSON decodes a JSON graph from r.
func ReadJSON(r io.Reader) (*graph.Graph, error) { return Read(r, FormatJSON) }

// Import reads the graph file at path, choosing the decoder by extension.
func Import(path string) (*graph.Graph, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
