// Package pipeline turns a module graph into chart files and a README region.
//
// This package implements the render → write → inject pipeline used by the
// CLI and the HTTP service. Centralizing it keeps caching, file layout and
// README handling identical across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Render: produce diagram text for one dialect (cached by input hash)
//  2. Write: lay out DOT as SVG if requested and write every artifact
//  3. Inject: embed the artifacts in the README region
//
// Each stage can be run on its own.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Render(ctx, g, file.ForDialect(config.DialectD2), pipeline.Options{
//	    Dialect: config.DialectD2,
//	})
//
// Or the whole pipeline from a config file:
//
//	gen, err := runner.Generate(ctx, g, file, pipeline.Options{Dialect: config.DialectMermaid})
//	fmt.Println(gen.Files, gen.Readme)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/modchart/pkg/cache"
	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/render"
)

// DefaultDialect is used when Options.Dialect is empty.
const DefaultDialect = config.DialectD2

// ClassesName is the base name of the classes file written in split mode.
const ClassesName = "classes"

// Options configures one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	Dialect      config.Dialect `json:"dialect,omitempty"`
	Title        string         `json:"title,omitempty"`
	NoGrouping   bool           `json:"no_grouping,omitempty"`   // Draw every node at top level
	SplitClasses bool           `json:"split_classes,omitempty"` // Write classes to their own file
	InferTypes   bool           `json:"infer_types,omitempty"`   // Add undeclared types with default styling
	Refresh      bool           `json:"refresh,omitempty"`       // Bypass the cache on read
	SkipReadme   bool           `json:"skip_readme,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks the dialect name and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Dialect == "" {
		o.Dialect = DefaultDialect
	}
	d, err := config.ParseDialect(string(o.Dialect))
	if err != nil {
		return err
	}
	o.Dialect = d
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// RenderOptions converts pipeline options to render options.
func (o *Options) RenderOptions() render.Options {
	opts := render.Options{Title: o.Title}
	if o.NoGrouping {
		opts.Group = render.NoGrouping
	}
	return opts
}

// RenderKeyOpts returns cache key options for rendering.
func (o *Options) RenderKeyOpts(configHash string) cache.RenderKeyOpts {
	grouping := "path"
	if o.NoGrouping {
		grouping = "none"
	}
	return cache.RenderKeyOpts{
		Dialect:    string(o.Dialect),
		ConfigHash: configHash,
		Grouping:   grouping,
		Title:      o.Title,
		Split:      o.SplitClasses,
	}
}

// Result is the rendered diagram for one dialect.
type Result struct {
	Dialect config.Dialect
	Ext     string // Source file extension without dot

	// Source is the full diagram text, or the body when Classes is set.
	Source string

	// Classes holds directives and class definitions in split mode.
	Classes string

	// GraphHash is the content hash of the input graph.
	GraphHash string

	// Config is the configuration actually rendered, after type inference.
	Config config.Config

	Stats    Stats
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	RenderTime time.Duration
	SVGTime    time.Duration
}
