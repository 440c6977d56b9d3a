// Package pkg provides the core libraries for modchart, which turns a module
// dependency graph into diagram text and keeps that diagram embedded in a
// project README.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. Model - [graph] (modules, links, their types), [config] (the diagram
//     configuration record and the modchart.toml file) and [io] (graph files).
//  2. Rendering - [style] resolves types to classes, [render] groups nodes and
//     drives a [render.Dialect], and [render/d2], [render/graphviz] and
//     [render/mermaid] write the three dialects. [legend] writes the
//     markdown key.
//  3. Documents - [readme] replaces the chart region of a README.
//  4. Orchestration - [pipeline] runs render, write and inject with caching
//     via [cache] and hooks via [observability]. Both the CLI and the HTTP
//     service go through it.
//
// # Architecture
//
// The typical data flow:
//
//	graph file (JSON/YAML/TOML)      modchart.toml
//	         ↓                             ↓
//	    [io] package                 [config] package
//	         ↓                             ↓
//	         └──────→ [render] ←───────────┘
//	                     ↓
//	        D2 / DOT / Mermaid source (+ SVG via Graphviz)
//	                     ↓
//	    [readme] package (<!--region chart--> ... <!--endregion-->)
//
// # Quick Start
//
// Render a graph as Mermaid:
//
//	g, _ := io.Import("deps.json")
//	file, _ := config.Load("modchart.toml")
//	d, _ := dialects.Find(config.DialectMermaid)
//	text, _ := render.Render(d, g, file.ForDialect(config.DialectMermaid), render.Options{})
//
// Generate the chart files and update the README:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	gen, _ := runner.Generate(ctx, g, file, pipeline.Options{Dialect: config.DialectD2})
//	fmt.Println(gen.Readme)
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test -short ./pkg/...   # Skip Graphviz layout
//	go test -run Example       # Examples only
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/modchart/pkg/graph
// [config]: https://pkg.go.dev/github.com/matzehuels/modchart/pkg/config
// [io]: https://pkg.go.dev/github.com/matzehuels/modchart/pkg/io
// [style]: https://pkg.go.dev/github.com/matzehuels/modchart/pkg/style
// [render]: https://pkg.go.dev/github.com/matzehuels/modchart/pkg/render
// [render.Dialect]: https://pkg.go.dev/github.com/matzehuels/modchart/pkg/render#Dialect
// [render/d2]: https://pkg.go.dev/github.com/matzehuels/modchart/pkg/render/d2
// [render/graphviz]: https://pkg.go.dev/github.com/matzehuels/modchart/pkg/render/graphviz
// [render/mermaid]: https://pkg.go.dev/github.com/matzehuels/modchart/pkg/render/mermaid
// [legend]: https://pkg.go.dev/github.com/matzehuels/modchart/pkg/legend
// [readme]: https://pkg.go.dev/github.com/matzehuels/modchart/pkg/readme
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/modchart/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/modchart/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/modchart/pkg/observability
package pkg
