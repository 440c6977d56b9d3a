package render

import (
	"strings"

	"github.com/matzehuels/modchart/pkg/graph"
)

// GroupFunc returns the container path of a node, outermost first.
// An empty path places the node at the top level.
type GroupFunc func(graph.Node) []string

// GroupByPath nests a module under its parent path segments:
// ":libs:core" goes into container "libs", ":app" stays at the top level.
func GroupByPath(n graph.Node) []string {
	segs := n.Segments()
	if len(segs) <= 1 {
		return nil
	}
	return segs[:len(segs)-1]
}

// NoGrouping keeps every node at the top level.
func NoGrouping(graph.Node) []string { return nil }

// Container is a group of nodes and nested containers.
// The root container has an empty path.
type Container struct {
	Name     string   // Last path segment
	Path     []string // Full path from the root
	Nodes    []graph.Node
	Children []*Container

	paths map[string][]string
}

// ID joins the path with ":", giving a stable identifier for the container.
func (c *Container) ID() string { return strings.Join(c.Path, ":") }

// Depth is the number of containers enclosing c's contents.
func (c *Container) Depth() int { return len(c.Path) }

// Walk calls fn for c and every descendant, parents before children.
func (c *Container) Walk(fn func(*Container)) {
	fn(c)
	for _, child := range c.Children {
		child.Walk(fn)
	}
}

// PathOf returns the container path of node id. Only the root container
// returned by Group knows the paths; nodes at the top level yield nil.
func (c *Container) PathOf(id string) []string { return c.paths[id] }

// Group distributes the nodes of g into containers. Containers and the nodes
// inside them keep the order in which they first appear in g.
func Group(g *graph.Graph, fn GroupFunc) *Container {
	root := &Container{paths: make(map[string][]string)}
	index := map[string]*Container{"": root}

	for _, n := range g.Nodes() {
		parent := root
		path := fn(n)
		for i := range path {
			key := strings.Join(path[:i+1], "\x00")
			c, ok := index[key]
			if !ok {
				c = &Container{Name: path[i], Path: append([]string(nil), path[:i+1]...)}
				index[key] = c
				parent.Children = append(parent.Children, c)
			}
			parent = c
		}
		parent.Nodes = append(parent.Nodes, n)
		root.paths[n.ID] = parent.Path
	}
	return root
}
