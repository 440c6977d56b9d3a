package config

import "github.com/matzehuels/modchart/pkg/graph"

// Palette is the fill color sequence used for inferred project types.
var Palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// InferTypes appends a type for every node and edge type name used by g that
// is not already declared. Declared types keep their position at the front
// of the returned lists. Inferred types follow in canonical order (see
// [graph.SortNodeTypes]), so adding or reordering nodes does not reshuffle
// them. Inferred project types take colors from Palette by position;
// inferred link types get a basic line.
func InferTypes(g *graph.Graph, nodeTypes []graph.NodeType, edgeTypes []graph.EdgeType) ([]graph.NodeType, []graph.EdgeType) {
	declared := make(map[string]bool, len(nodeTypes))
	for _, t := range nodeTypes {
		declared[t.Name] = true
	}
	var inferred []graph.NodeType
	for _, name := range g.NodeTypeNames() {
		if !declared[name] {
			declared[name] = true
			inferred = append(inferred, graph.NodeType{Name: name})
		}
	}
	graph.SortNodeTypes(inferred)
	nodes := append([]graph.NodeType(nil), nodeTypes...)
	for _, t := range inferred {
		t.Color = Palette[len(nodes)%len(Palette)]
		nodes = append(nodes, t)
	}

	declaredEdges := make(map[string]bool, len(edgeTypes))
	for _, t := range edgeTypes {
		declaredEdges[t.Name] = true
	}
	var inferredEdges []graph.EdgeType
	for _, name := range g.EdgeTypeNames() {
		if !declaredEdges[name] {
			declaredEdges[name] = true
			inferredEdges = append(inferredEdges, graph.EdgeType{Name: name, Style: graph.LineStyleBasic})
		}
	}
	graph.SortEdgeTypes(inferredEdges)
	edges := append(append([]graph.EdgeType(nil), edgeTypes...), inferredEdges...)
	return nodes, edges
}
