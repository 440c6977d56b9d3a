package graph

import (
	"errors"
	"slices"
	"strings"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrMissingType is returned when a node or edge has no type name.
	ErrMissingType = errors.New("type must not be empty")
)

// Node is a build module in the dependency graph.
type Node struct {
	ID    string // Hierarchical module path, e.g. ":libs:core"
	Type  string // Name of the node's NodeType
	Label string // Optional display label; renderers fall back to ID

	// Hidden nodes stay in the graph but render with the hidden class.
	Hidden bool
}

// DisplayLabel returns Label, falling back to ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Segments splits the module path into its components.
// ":libs:core" yields ["libs", "core"]; the root path ":" yields nil.
func (n Node) Segments() []string {
	trimmed := strings.TrimPrefix(n.ID, ":")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, ":")
}

// Edge is a typed dependency from one module to another.
type Edge struct {
	From string // Dependent module ID
	To   string // Dependency module ID
	Type string // Name of the edge's EdgeType
}

// Graph is an ordered module dependency graph.
//
// The zero value is not usable - use New to create a Graph.
// Graph is not safe for concurrent mutation.
type Graph struct {
	nodes []*Node
	index map[string]*Node
	edges []Edge
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{index: make(map[string]*Node)}
}

// AddNode appends a node to the graph.
// Returns ErrInvalidNodeID if the ID is empty, ErrMissingType if the type is
// empty, or ErrDuplicateNodeID if the ID is already present.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if n.Type == "" {
		return ErrMissingType
	}
	if _, exists := g.index[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	node := &n
	g.nodes = append(g.nodes, node)
	g.index[n.ID] = node
	return nil
}

// AddEdge appends a directed edge between two existing nodes.
// Multiple edges between the same pair are allowed as long as their types
// differ or the caller wants them drawn twice.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.index[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.index[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if e.Type == "" {
		return ErrMissingType
	}
	g.edges = append(g.edges, e)
	return nil
}

// Nodes returns a copy of all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		nodes[i] = *n
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Node returns the node with the given ID and true, or the zero Node and
// false if not found.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// NodeTypeNames returns the distinct node type names in first-appearance order.
func (g *Graph) NodeTypeNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, n := range g.nodes {
		if !seen[n.Type] {
			seen[n.Type] = true
			names = append(names, n.Type)
		}
	}
	return names
}

// EdgeTypeNames returns the distinct edge type names in first-appearance order.
func (g *Graph) EdgeTypeNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, e := range g.edges {
		if !seen[e.Type] {
			seen[e.Type] = true
			names = append(names, e.Type)
		}
	}
	return names
}

// TypesPresent filters the given type lists down to the types actually used
// by the graph, keeping the order of the input lists.
func (g *Graph) TypesPresent(nodeTypes []NodeType, edgeTypes []EdgeType) ([]NodeType, []EdgeType) {
	usedNodes := make(map[string]bool)
	for _, name := range g.NodeTypeNames() {
		usedNodes[name] = true
	}
	usedEdges := make(map[string]bool)
	for _, name := range g.EdgeTypeNames() {
		usedEdges[name] = true
	}

	var nodes []NodeType
	for _, t := range nodeTypes {
		if usedNodes[t.Name] {
			nodes = append(nodes, t)
		}
	}
	var edges []EdgeType
	for _, t := range edgeTypes {
		if usedEdges[t.Name] {
			edges = append(edges, t)
		}
	}
	return nodes, edges
}
