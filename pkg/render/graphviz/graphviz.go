// Package graphviz renders module graphs as Graphviz DOT.
//
// DOT has no named style classes. Each node and edge carries its class name
// in the SVG class attribute and the class properties are inlined as DOT
// attributes. A comment after the graph attributes lists the classes in
// table order.
//
//	digraph G {
//	  rankdir=LR;
//	  // classes: project-Library link-api container hidden
//
//	  subgraph "cluster_libs" {
//	    class="container";
//	    label="libs";
//	    ":libs:core" [class="project-Library", fillcolor="#3f51b5", style="filled"];
//	  }
//	  ":app" -> ":libs:core" [class="link-api", penwidth="3"];
//	}
//
// [RenderSVG] lays the DOT source out in-process with Graphviz.
package graphviz

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/errors"
	"github.com/matzehuels/modchart/pkg/render"
	"github.com/matzehuels/modchart/pkg/style"
)

// Dialect is the Graphviz implementation of [render.Dialect].
type Dialect struct{}

var _ render.Dialect = Dialect{}

// LayoutEngines lists the Graphviz layout programs.
var LayoutEngines = []config.LayoutEngine{
	"dot", "neato", "fdp", "sfdp", "circo", "twopi", "osage", "patchwork",
}

// Name implements render.Dialect.
func (Dialect) Name() config.Dialect { return config.DialectGraphviz }

// Ext implements render.Dialect.
func (Dialect) Ext() string { return "dot" }

// Validate checks the layout engine. Themes and sketch mode have no DOT
// equivalent and are ignored.
func (Dialect) Validate(cfg config.Config) error {
	if cfg.LayoutEngine != nil && !slices.Contains(LayoutEngines, *cfg.LayoutEngine) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown graphviz layout engine %q", *cfg.LayoutEngine)
	}
	return nil
}

var rankdirs = map[config.Direction]string{
	config.DirectionDown:  "TB",
	config.DirectionUp:    "BT",
	config.DirectionLeft:  "RL",
	config.DirectionRight: "LR",
}

// WriteDirectives opens the digraph and writes the graph attributes.
func (Dialect) WriteDirectives(w *render.Writer, doc *render.Document) error {
	cfg := doc.Config
	w.Open("digraph G {")
	if cfg.Direction != nil {
		w.Line("rankdir=%s;", rankdirs[*cfg.Direction])
	}
	if cfg.LayoutEngine != nil {
		w.Line("layout=%s;", *cfg.LayoutEngine)
	}
	if cfg.Pad != nil {
		w.Line("pad=%s;", inches(*cfg.Pad))
	}
	if cfg.Center != nil {
		w.Line("center=%t;", *cfg.Center)
	}
	if doc.Title != "" {
		w.Line("label=%s;", strconv.Quote(doc.Title))
		w.Line("labelloc=\"t\";")
	}
	if attrs := rootAttrs(cfg.RootStyle); len(attrs) > 0 {
		w.Line("graph [%s];", attrs)
	}
	for _, p := range style.Sorted(cfg.GlobalProps) {
		w.Line("%s=%s;", p.Key, p.Value)
	}
	return nil
}

// inches converts a pixel padding to Graphviz inches at 72 dpi.
func inches(px int) string {
	return strconv.FormatFloat(float64(px)/72, 'g', 4, 64)
}

// WriteClasses writes the class list comment.
func (Dialect) WriteClasses(w *render.Writer, doc *render.Document) error {
	names := make([]string, 0, len(doc.Table.Projects)+len(doc.Table.Links)+2)
	for _, c := range doc.Table.Projects {
		names = append(names, c.ID)
	}
	for _, c := range doc.Table.Links {
		names = append(names, c.ID)
	}
	names = append(names, style.ContainerClass, style.HiddenClass)
	w.Line("// classes: %s", strings.Join(names, " "))
	return nil
}
