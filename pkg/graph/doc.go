// Package graph defines the module dependency graph consumed by the renderers.
//
// # Overview
//
// A [Graph] is an ordered collection of build modules ([Node]) and the
// relationships between them ([Edge]). Every node is tagged with the name of
// a [NodeType] (application, library, test fixture, ...) and every edge with
// the name of an [EdgeType] ("api", "implementation", "test", ...).
//
// The graph arrives already resolved: discovering which modules exist and
// what depends on what is the job of the build tool that produced it. This
// package only holds the result.
//
// # Ordering
//
// Nodes and edges are returned in insertion order. Renderers walk them in
// that order, so the caller controls the order of declarations in the
// generated diagram and identical inputs always produce identical text.
//
// # Types and keys
//
// Type names are free text ("Android App", "implementation"). Class
// identifiers in the rendered diagrams are derived from [Key], which keeps
// only letters and digits:
//
//	graph.Key("Android App")    // "AndroidApp"
//	graph.Key("test-fixtures")  // "testfixtures"
//
// Two different names may reduce to the same key; the style resolver rejects
// such configurations.
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Once built it may be shared by
// any number of concurrent renders, which only read it.
package graph
