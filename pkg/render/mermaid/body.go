package mermaid

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/modchart/pkg/render"
	"github.com/matzehuels/modchart/pkg/style"
)

// WriteBody writes subgraphs and nodes, the edges in graph order, and one
// linkStyle statement per link class that has edges and CSS properties.
func (Dialect) WriteBody(w *render.Writer, doc *render.Document) error {
	ids := assignIDs(doc)
	writeSubgraph(w, doc, doc.Root, ids)

	edges := doc.Graph.Edges()
	indices := make(map[string][]string)
	for i, e := range edges {
		link, _ := doc.Table.Link(e.Type)
		from, to := ids.nodes[e.From], ids.nodes[e.To]
		if label, ok := link.Get(style.Label); ok && label != "" {
			w.Line("%s -->|%s| %s", from, escapeLabel(label), to)
		} else {
			w.Line("%s --> %s", from, to)
		}
		indices[link.Name] = append(indices[link.Name], strconv.Itoa(i))
	}

	for _, link := range doc.Table.Links {
		idx := indices[link.Name]
		css := translate(link)
		if len(idx) == 0 || css == "" {
			continue
		}
		w.Line("linkStyle %s %s;", strings.Join(idx, ","), css)
	}
	return nil
}

func writeSubgraph(w *render.Writer, doc *render.Document, c *render.Container, ids idMap) {
	for _, n := range c.Nodes {
		project, _ := doc.Table.Project(n.Type)
		id := ids.nodes[n.ID]
		w.Line("%s[\"%s\"]:::%s", id, escapeLabel(n.DisplayLabel()), project.ID)
		if n.Hidden {
			w.Line("class %s %s", id, style.HiddenClass)
		}
	}
	for _, child := range c.Children {
		id := ids.containers[child.ID()]
		w.Open("subgraph %s[\"%s\"]", id, escapeLabel(child.Name))
		writeSubgraph(w, doc, child, ids)
		w.Close("end")
		w.Line("class %s %s", id, style.ContainerClass)
	}
}

type idMap struct {
	nodes      map[string]string
	containers map[string]string
}

// assignIDs gives every node and container a Mermaid-safe identifier.
// Nodes are named first, in graph order, so their IDs do not depend on the
// grouping.
func assignIDs(doc *render.Document) idMap {
	used := make(map[string]bool)
	ids := idMap{nodes: make(map[string]string), containers: make(map[string]string)}
	for _, n := range doc.Graph.Nodes() {
		ids.nodes[n.ID] = unique(used, sanitize(n.ID))
	}
	doc.Root.Walk(func(c *render.Container) {
		if c.Depth() > 0 {
			ids.containers[c.ID()] = unique(used, sanitize(c.ID()))
		}
	})
	return ids
}

var reserved = map[string]bool{
	"end": true, "graph": true, "subgraph": true, "flowchart": true,
	"class": true, "classdef": true, "click": true, "style": true,
	"linkstyle": true, "direction": true, "default": true,
}

// sanitize keeps letters and digits and turns every other run of characters
// into a single underscore.
func sanitize(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	id := b.String()
	if first, _ := utf8.DecodeRuneInString(id); id == "" || unicode.IsDigit(first) {
		id = "n" + id
	}
	if reserved[strings.ToLower(id)] {
		id += "_"
	}
	return id
}

func unique(used map[string]bool, id string) string {
	candidate := id
	for i := 2; used[candidate]; i++ {
		candidate = id + "_" + strconv.Itoa(i)
	}
	used[candidate] = true
	return candidate
}

var labelEscaper = strings.NewReplacer(`"`, "#quot;", "|", "#124;")

func escapeLabel(s string) string { return labelEscaper.Replace(s) }
