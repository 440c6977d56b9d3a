// Package style resolves a diagram configuration into a style table.
//
// The table holds one class per project type and one per link type, each
// with a property list sorted by key. Property keys are canonical and
// dialect-neutral ("style.fill", "style.stroke-dash", "label", ...); every
// dialect in pkg/render translates them into its own vocabulary.
//
// Resolution is deterministic: the same configuration always produces the
// same table, in the same order, with the same property order.
package style

import (
	"cmp"
	"maps"
	"slices"

	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/errors"
	"github.com/matzehuels/modchart/pkg/graph"
)

// Canonical property keys produced by Resolve.
const (
	Fill        = "style.fill"
	Stroke      = "style.stroke"
	StrokeDash  = "style.stroke-dash"
	StrokeWidth = "style.stroke-width"
	Opacity     = "style.opacity"
	Animated    = "style.animated"
	Label       = "label"
)

// Class names and prefixes.
const (
	ProjectPrefix  = "project-"
	LinkPrefix     = "link-"
	ContainerClass = "container"
	HiddenClass    = "hidden"
)

// Property is one key/value pair of a class.
type Property struct {
	Key   string
	Value string
}

// Class is the resolved style of one project or link type.
type Class struct {
	Name       string     // Type name as configured
	Key        string     // Name filtered to letters and digits
	ID         string     // Class identifier, e.g. "project-Library"
	Properties []Property // Sorted by Key

	dialect map[string]map[string]string
}

// Get returns the value of a property and whether it is set.
func (c Class) Get(key string) (string, bool) {
	for _, p := range c.Properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Table is the resolved style table of a configuration.
type Table struct {
	Projects []Class // In configured order
	Links    []Class // In configured order

	// ContainerLabel is the label.near token for containers, or "" when no
	// position is configured.
	ContainerLabel string

	projects map[string]int
	links    map[string]int
}

// Project returns the class for a project type name.
func (t *Table) Project(name string) (Class, bool) {
	i, ok := t.projects[name]
	if !ok {
		return Class{}, false
	}
	return t.Projects[i], true
}

// Link returns the class for a link type name.
func (t *Table) Link(name string) (Class, bool) {
	i, ok := t.links[name]
	if !ok {
		return Class{}, false
	}
	return t.Links[i], true
}

// Resolve builds the style table for cfg.
//
// Project classes get the type's own properties plus style.fill from the
// type color, which always wins. Link classes get style.stroke from the
// color, the line style mapping, style.animated for dashed and dotted lines
// when AnimateLinks is set, and label when DisplayLinkLabels is set. The
// type's own properties are merged last and override everything computed.
//
// Two type names that filter to the same key, or a name that filters to the
// empty key, are rejected with INVALID_CONFIG.
func Resolve(cfg config.Config) (*Table, error) {
	t := &Table{
		projects:       make(map[string]int, len(cfg.ProjectTypes)),
		links:          make(map[string]int, len(cfg.LinkTypes)),
		ContainerLabel: LabelNear(cfg.Position, cfg.Location),
	}

	keys := make(map[string]string)
	for _, nt := range cfg.ProjectTypes {
		if err := claimKey(keys, ProjectPrefix, nt.Name); err != nil {
			return nil, err
		}
		t.projects[nt.Name] = len(t.Projects)
		t.Projects = append(t.Projects, newClass(ProjectPrefix, nt.Name, nodeProperties(nt), nt.DialectProperties))
	}

	keys = make(map[string]string)
	for _, et := range cfg.LinkTypes {
		if err := claimKey(keys, LinkPrefix, et.Name); err != nil {
			return nil, err
		}
		t.links[et.Name] = len(t.Links)
		t.Links = append(t.Links, newClass(LinkPrefix, et.Name, edgeProperties(et, cfg), et.DialectProperties))
	}
	return t, nil
}

func claimKey(seen map[string]string, prefix, name string) error {
	key := graph.Key(name)
	if key == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "type name %q has no letters or digits", name)
	}
	if other, ok := seen[key]; ok {
		if other == name {
			return errors.New(errors.ErrCodeInvalidConfig, "type %q is declared twice", name)
		}
		return errors.New(errors.ErrCodeInvalidConfig, "type names %q and %q both map to class %s%s", other, name, prefix, key)
	}
	seen[key] = name
	return nil
}

func nodeProperties(nt graph.NodeType) map[string]string {
	props := maps.Clone(nt.Properties)
	if props == nil {
		props = make(map[string]string)
	}
	if nt.Color != "" {
		props[Fill] = nt.Color
	}
	return props
}

func edgeProperties(et graph.EdgeType, cfg config.Config) map[string]string {
	props := make(map[string]string)
	if et.Color != "" {
		props[Stroke] = et.Color
	}
	switch et.Style {
	case graph.LineStyleDashed:
		props[StrokeDash] = "4"
	case graph.LineStyleDotted:
		props[StrokeDash] = "2"
	case graph.LineStyleBold:
		props[StrokeWidth] = "3"
	case graph.LineStyleInvisible:
		props[Opacity] = "0"
	}
	if config.IsTrue(cfg.AnimateLinks) && Animatable(et.Style) {
		props[Animated] = "true"
	}
	if config.IsTrue(cfg.DisplayLinkLabels) {
		props[Label] = et.Label()
	}
	maps.Copy(props, et.Properties)
	return props
}

// Animatable reports whether edges drawn in style s may be animated.
// Only dashed and dotted lines qualify.
func Animatable(s graph.LineStyle) bool {
	return s == graph.LineStyleDashed || s == graph.LineStyleDotted
}

func newClass(prefix, name string, props map[string]string, dialect map[string]map[string]string) Class {
	key := graph.Key(name)
	return Class{
		Name:       name,
		Key:        key,
		ID:         prefix + key,
		Properties: Sorted(props),
		dialect:    dialect,
	}
}

// Sorted returns the entries of m ordered by key.
func Sorted(m map[string]string) []Property {
	props := make([]Property, 0, len(m))
	for k, v := range m {
		props = append(props, Property{Key: k, Value: v})
	}
	slices.SortFunc(props, func(a, b Property) int { return cmp.Compare(a.Key, b.Key) })
	return props
}

// For returns a copy of the table with each type's properties for dialect d
// merged over its generic properties.
func (t *Table) For(d config.Dialect) *Table {
	out := &Table{
		Projects:       make([]Class, len(t.Projects)),
		Links:          make([]Class, len(t.Links)),
		ContainerLabel: t.ContainerLabel,
		projects:       t.projects,
		links:          t.links,
	}
	for i, c := range t.Projects {
		out.Projects[i] = c.forDialect(d)
	}
	for i, c := range t.Links {
		out.Links[i] = c.forDialect(d)
	}
	return out
}

func (c Class) forDialect(d config.Dialect) Class {
	extra := c.dialect[string(d)]
	if len(extra) == 0 {
		return c
	}
	props := make(map[string]string, len(c.Properties)+len(extra))
	for _, p := range c.Properties {
		props[p.Key] = p.Value
	}
	maps.Copy(props, extra)
	c.Properties = Sorted(props)
	return c
}
