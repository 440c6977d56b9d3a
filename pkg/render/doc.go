// Package render turns a module dependency graph into diagram source text.
//
// # Overview
//
// Rendering is split into three concerns, each a method of [Dialect]:
//
//   - WriteDirectives: diagram-wide settings (direction, theme, layout engine,
//     padding, root style, global properties)
//   - WriteClasses: one named style class per project and link type, plus the
//     fixed container and hidden classes
//   - WriteBody: node, container and edge declarations referencing the classes
//
// [Render] resolves the style table with [style.Resolve], checks that every
// node and edge type is resolvable, and runs the three writers in order. The
// result is either the complete text or an error; nothing partial is
// returned.
//
// # Dialects
//
// The supported dialects live in subpackages:
//
//   - [d2]: D2 with a classes block and vars.d2-config
//   - [graphviz]: Graphviz DOT, with in-process SVG rendering
//   - [mermaid]: Mermaid flowcharts with YAML front matter
//
// The dialects subpackage lists all of them and looks one up by
// [config.Dialect].
//
// # Grouping
//
// Nodes are grouped into containers by a [GroupFunc]. [GroupByPath] nests
// modules by their path (":libs:core" lives in container "libs") and
// [NoGrouping] keeps every node at the top level.
//
//	out, err := render.Render(d2.Dialect{}, g, cfg, render.Options{Group: render.GroupByPath})
//
// [d2]: github.com/matzehuels/modchart/pkg/render/d2
// [graphviz]: github.com/matzehuels/modchart/pkg/render/graphviz
// [mermaid]: github.com/matzehuels/modchart/pkg/render/mermaid
package render
