package graph

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// LineStyle selects how edges of an [EdgeType] are drawn.
// The zero value means no style was configured.
type LineStyle int

const (
	LineStyleUnset LineStyle = iota
	LineStyleBasic
	LineStyleDashed
	LineStyleDotted
	LineStyleBold
	LineStyleInvisible
)

var lineStyleNames = map[LineStyle]string{
	LineStyleBasic:     "basic",
	LineStyleDashed:    "dashed",
	LineStyleDotted:    "dotted",
	LineStyleBold:      "bold",
	LineStyleInvisible: "invisible",
}

// String returns the lowercase style name, or "" for LineStyleUnset.
func (s LineStyle) String() string { return lineStyleNames[s] }

// ParseLineStyle converts a style name (case-insensitive) to a LineStyle.
// An empty string yields LineStyleUnset.
func ParseLineStyle(s string) (LineStyle, error) {
	if s == "" {
		return LineStyleUnset, nil
	}
	for style, name := range lineStyleNames {
		if strings.EqualFold(s, name) {
			return style, nil
		}
	}
	return LineStyleUnset, fmt.Errorf("unknown line style %q (must be basic, dashed, dotted, bold or invisible)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s LineStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *LineStyle) UnmarshalText(text []byte) error {
	parsed, err := ParseLineStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// NodeType is a category of module, such as an application or a library.
type NodeType struct {
	Name       string            `json:"name" yaml:"name" toml:"name"`
	Color      string            `json:"color" yaml:"color" toml:"color"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty" toml:"properties,omitempty"`

	// DialectProperties holds extra properties that only apply to one
	// dialect, keyed by dialect name ("d2", "graphviz", "mermaid").
	DialectProperties map[string]map[string]string `json:"dialect_properties,omitempty" yaml:"dialect_properties,omitempty" toml:"dialect_properties,omitempty"`
}

// Key returns the class key derived from the type name.
func (t NodeType) Key() string { return Key(t.Name) }

// EdgeType is a category of dependency, such as "api" or "implementation".
type EdgeType struct {
	Name              string                       `json:"name" yaml:"name" toml:"name"`
	DisplayName       string                       `json:"display_name,omitempty" yaml:"display_name,omitempty" toml:"display_name,omitempty"`
	Color             string                       `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	Style             LineStyle                    `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
	Properties        map[string]string            `json:"properties,omitempty" yaml:"properties,omitempty" toml:"properties,omitempty"`
	DialectProperties map[string]map[string]string `json:"dialect_properties,omitempty" yaml:"dialect_properties,omitempty" toml:"dialect_properties,omitempty"`
}

// Key returns the class key derived from the type name.
func (t EdgeType) Key() string { return Key(t.Name) }

// Label returns DisplayName, falling back to Name.
func (t EdgeType) Label() string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	return t.Name
}

// Key filters name down to its letters and digits, preserving case.
func Key(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, name)
}

// SortNodeTypes orders node types by key, then by name.
// Use it when the types come from an unordered source such as a map.
func SortNodeTypes(types []NodeType) {
	slices.SortStableFunc(types, func(a, b NodeType) int {
		return cmp.Or(cmp.Compare(a.Key(), b.Key()), cmp.Compare(a.Name, b.Name))
	})
}

// SortEdgeTypes orders edge types by key, then by name.
func SortEdgeTypes(types []EdgeType) {
	slices.SortStableFunc(types, func(a, b EdgeType) int {
		return cmp.Or(cmp.Compare(a.Key(), b.Key()), cmp.Compare(a.Name, b.Name))
	})
}
