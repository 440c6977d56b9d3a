package d2

import (
	"strconv"
	"strings"

	"github.com/matzehuels/modchart/pkg/graph"
	"github.com/matzehuels/modchart/pkg/render"
	"github.com/matzehuels/modchart/pkg/style"
)

// WriteBody writes the title, containers with their nodes, then all edges
// in graph order.
func (Dialect) WriteBody(w *render.Writer, doc *render.Document) error {
	if w.Len() > 0 {
		w.Line("")
	}
	if doc.Import != "" {
		w.Line("...@%s", doc.Import)
		w.Line("")
	}
	if doc.Title != "" {
		w.Open("title: %s {", strconv.Quote(doc.Title))
		w.Line("shape: text")
		w.Line("near: top-center")
		w.Line("style.font-size: 24")
		w.Close("}")
	}

	writeContainer(w, doc, doc.Root)

	for _, e := range doc.Graph.Edges() {
		link, _ := doc.Table.Link(e.Type)
		w.Line("%s -> %s: {class: %s}", ref(doc.Root, e.From), ref(doc.Root, e.To), link.ID)
	}
	return nil
}

func writeContainer(w *render.Writer, doc *render.Document, c *render.Container) {
	for _, n := range c.Nodes {
		writeNode(w, doc, n)
	}
	for _, child := range c.Children {
		w.Open("%s: {", strconv.Quote(child.Name))
		w.Line("class: %s", style.ContainerClass)
		writeContainer(w, doc, child)
		w.Close("}")
	}
}

func writeNode(w *render.Writer, doc *render.Document, n graph.Node) {
	project, _ := doc.Table.Project(n.Type)
	class := project.ID
	if n.Hidden {
		class = "[" + project.ID + "; " + style.HiddenClass + "]"
	}
	if n.Label != "" {
		w.Line("%s: %s {class: %s}", strconv.Quote(n.ID), strconv.Quote(n.Label), class)
		return
	}
	w.Line("%s: {class: %s}", strconv.Quote(n.ID), class)
}

// ref builds the fully qualified D2 key of a node inside its containers.
func ref(root *render.Container, id string) string {
	path := root.PathOf(id)
	parts := make([]string, 0, len(path)+1)
	for _, seg := range path {
		parts = append(parts, strconv.Quote(seg))
	}
	parts = append(parts, strconv.Quote(id))
	return strings.Join(parts, ".")
}
