package graphviz

import (
	"strconv"
	"strings"

	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/render"
	"github.com/matzehuels/modchart/pkg/style"
)

// WriteBody writes clusters and nodes, then the edges, and closes the digraph.
func (Dialect) WriteBody(w *render.Writer, doc *render.Document) error {
	w.Line("")
	writeCluster(w, doc, doc.Root)

	for _, e := range doc.Graph.Edges() {
		link, _ := doc.Table.Link(e.Type)
		w.Line("%s -> %s [%s];", strconv.Quote(e.From), strconv.Quote(e.To), translate(link, true, false))
	}
	w.Close("}")
	return nil
}

func writeCluster(w *render.Writer, doc *render.Document, c *render.Container) {
	for _, n := range c.Nodes {
		project, _ := doc.Table.Project(n.Type)
		attrs := translate(project, false, n.Hidden)
		if n.Label != "" {
			attrs = append(attrs, attr{"label", n.Label})
		}
		w.Line("%s [%s];", strconv.Quote(n.ID), attrs)
	}
	for _, child := range c.Children {
		w.Open("subgraph %s {", strconv.Quote("cluster_"+child.ID()))
		w.Line("class=%q;", style.ContainerClass)
		w.Line("label=%s;", strconv.Quote(child.Name))
		for _, a := range labelPosition(doc.Config.Position) {
			w.Line("%s=%q;", a.key, a.value)
		}
		writeCluster(w, doc, child)
		w.Close("}")
	}
}

// labelPosition maps a container label position to cluster labelloc and
// labeljust. Graphviz places cluster labels only at the top or bottom, so
// center positions keep the default location.
func labelPosition(pos *config.Position) attrList {
	if pos == nil {
		return nil
	}
	vertical, horizontal, _ := strings.Cut(string(*pos), "-")
	var out attrList
	switch vertical {
	case "top":
		out = append(out, attr{"labelloc", "t"})
	case "bottom":
		out = append(out, attr{"labelloc", "b"})
	}
	switch horizontal {
	case "left":
		out = append(out, attr{"labeljust", "l"})
	case "right":
		out = append(out, attr{"labeljust", "r"})
	case "center":
		out = append(out, attr{"labeljust", "c"})
	}
	return out
}
