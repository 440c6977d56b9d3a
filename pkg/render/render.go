package render

import (
	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/errors"
	"github.com/matzehuels/modchart/pkg/graph"
	"github.com/matzehuels/modchart/pkg/style"
)

// Dialect emits one diagram language.
type Dialect interface {
	// Name identifies the dialect.
	Name() config.Dialect

	// Ext is the file extension of the dialect's source files, without dot.
	Ext() string

	// Validate rejects settings the dialect cannot represent, such as an
	// unknown theme or layout engine.
	Validate(cfg config.Config) error

	WriteDirectives(w *Writer, doc *Document) error
	WriteClasses(w *Writer, doc *Document) error
	WriteBody(w *Writer, doc *Document) error
}

// Document is everything a dialect needs to write one diagram.
type Document struct {
	Graph  *graph.Graph
	Config config.Config
	Table  *style.Table // Already narrowed to the dialect
	Root   *Container   // Grouped nodes
	Title  string

	// Import, when set, names a classes file the body pulls in instead of
	// declaring the classes inline. Only dialects with an import mechanism
	// use it.
	Import string
}

// Options configures a render.
type Options struct {
	// Group assigns nodes to containers. Nil means GroupByPath.
	Group GroupFunc

	// Title is written as the diagram title by dialects that support one.
	Title string
}

func (o Options) group() GroupFunc {
	if o.Group == nil {
		return GroupByPath
	}
	return o.Group
}

// Render produces the full diagram text for g in dialect d.
//
// It fails with UNRESOLVED_STYLE if a node or edge references a type that is
// not in cfg, and with INVALID_CONFIG if cfg cannot be represented in d.
func Render(d Dialect, g *graph.Graph, cfg config.Config, opts Options) (string, error) {
	doc, err := prepare(d, g, cfg, opts)
	if err != nil {
		return "", err
	}
	w := NewWriter(indentFor(d))
	if err := d.WriteDirectives(w, doc); err != nil {
		return "", err
	}
	if err := d.WriteClasses(w, doc); err != nil {
		return "", err
	}
	if err := d.WriteBody(w, doc); err != nil {
		return "", err
	}
	return w.String(), nil
}

// Split is a diagram rendered as two files: the classes file and a body
// that imports it.
type Split struct {
	Classes string
	Body    string
}

// Importer is implemented by dialects that can pull class definitions from
// a separate file.
type Importer interface {
	// ImportName returns the import reference for a classes file name.
	ImportName(file string) string
}

// RenderSplit renders the directives and classes into one text and the body
// into another that imports classesFile. Dialects without an import
// mechanism return UNSUPPORTED.
func RenderSplit(d Dialect, g *graph.Graph, cfg config.Config, classesFile string, opts Options) (Split, error) {
	imp, ok := d.(Importer)
	if !ok {
		return Split{}, errors.New(errors.ErrCodeUnsupported, "%s cannot import classes from a separate file", d.Name())
	}
	doc, err := prepare(d, g, cfg, opts)
	if err != nil {
		return Split{}, err
	}

	cw := NewWriter(indentFor(d))
	if err := d.WriteDirectives(cw, doc); err != nil {
		return Split{}, err
	}
	if err := d.WriteClasses(cw, doc); err != nil {
		return Split{}, err
	}

	doc.Import = imp.ImportName(classesFile)
	bw := NewWriter(indentFor(d))
	if err := d.WriteBody(bw, doc); err != nil {
		return Split{}, err
	}
	return Split{Classes: cw.String(), Body: bw.String()}, nil
}

func prepare(d Dialect, g *graph.Graph, cfg config.Config, opts Options) (*Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := d.Validate(cfg); err != nil {
		return nil, err
	}
	table, err := style.Resolve(cfg)
	if err != nil {
		return nil, err
	}
	table = table.For(d.Name())
	if err := CheckResolved(g, table); err != nil {
		return nil, err
	}
	return &Document{
		Graph:  g,
		Config: cfg,
		Table:  table,
		Root:   Group(g, opts.group()),
		Title:  opts.Title,
	}, nil
}

// CheckResolved verifies that every node and edge type of g has a class.
func CheckResolved(g *graph.Graph, table *style.Table) error {
	for _, n := range g.Nodes() {
		if _, ok := table.Project(n.Type); !ok {
			return errors.New(errors.ErrCodeUnresolvedStyle, "node %s has unknown project type %q", n.ID, n.Type)
		}
	}
	for _, e := range g.Edges() {
		if _, ok := table.Link(e.Type); !ok {
			return errors.New(errors.ErrCodeUnresolvedStyle, "edge %s -> %s has unknown link type %q", e.From, e.To, e.Type)
		}
	}
	return nil
}

// Indenter lets a dialect choose its indentation unit.
type Indenter interface {
	Indent() string
}

func indentFor(d Dialect) string {
	if in, ok := d.(Indenter); ok {
		return in.Indent()
	}
	return "  "
}
