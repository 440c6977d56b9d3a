// Package legend renders a markdown key for the project and link types used
// in a diagram.
package legend

import (
	"fmt"
	"strings"

	"github.com/matzehuels/modchart/pkg/graph"
)

// FileName is the default legend artifact name.
const FileName = "legend.md"

// Markdown renders one table for project types and one for link types.
// Empty lists produce no table; two empty lists produce "".
func Markdown(nodeTypes []graph.NodeType, edgeTypes []graph.EdgeType) string {
	var b strings.Builder
	if len(nodeTypes) > 0 {
		b.WriteString("| Project type | Color |\n")
		b.WriteString("|---|---|\n")
		for _, t := range nodeTypes {
			fmt.Fprintf(&b, "| %s | %s |\n", cell(t.Name), swatch(t.Color))
		}
	}
	if len(edgeTypes) > 0 {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("| Link type | Style | Color |\n")
		b.WriteString("|---|---|---|\n")
		for _, t := range edgeTypes {
			lineStyle := t.Style.String()
			if lineStyle == "" {
				lineStyle = graph.LineStyleBasic.String()
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", cell(t.Label()), lineStyle, swatch(t.Color))
		}
	}
	return b.String()
}

// ForGraph renders the legend for the types g actually uses, in the order
// they are declared.
func ForGraph(g *graph.Graph, nodeTypes []graph.NodeType, edgeTypes []graph.EdgeType) string {
	nodes, edges := g.TypesPresent(nodeTypes, edgeTypes)
	return Markdown(nodes, edges)
}

func swatch(color string) string {
	if color == "" {
		return ""
	}
	return "`" + color + "`"
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func cell(s string) string { return cellEscaper.Replace(s) }
