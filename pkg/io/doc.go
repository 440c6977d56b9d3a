// Package io reads and writes module dependency graphs as JSON, YAML or TOML.
//
// # Format
//
// All three encodings share one shape: a list of nodes and a list of edges.
// In JSON:
//
//	{
//	  "nodes": [
//	    {"id": ":app", "type": "Application"},
//	    {"id": ":libs:core", "type": "Library", "label": "core"}
//	  ],
//	  "edges": [
//	    {"from": ":app", "to": ":libs:core", "type": "api"}
//	  ]
//	}
//
// The same graph in TOML uses arrays of tables:
//
//	[[nodes]]
//	id = ":app"
//	type = "Application"
//
//	[[edges]]
//	from = ":app"
//	to = ":libs:core"
//	type = "api"
//
// # Node Fields
//
//   - id: hierarchical module path, unique within the graph (required)
//   - type: project type name, resolved against the configured types (required)
//   - label: display label (optional, defaults to id)
//   - hidden: render the node with the hidden class (optional)
//
// Edges need from, to and type. Node and edge order in the file is the order
// in which renderers emit them.
//
// # Import and Export
//
// [Import] and [Export] pick the encoding from the file extension
// (.json, .yaml/.yml, .toml). [Read] and [Write] work on streams with an
// explicit [Format].
//
//	g, err := io.Import("deps.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Import validates node IDs and edge endpoints as it builds the graph, so a
// successful import always yields a graph every renderer accepts structurally.
package io
