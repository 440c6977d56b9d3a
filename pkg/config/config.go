// Package config holds the diagram configuration record and its file format.
//
// Every field of [Config] is optional. A nil field means "use the dialect's
// default" and never produces a directive in the rendered output. Only the
// fields that are set show up in the diagram text.
//
// Configuration is usually read from a modchart.toml file with [Load], then
// narrowed to one dialect with [File.ForDialect].
package config

import (
	"fmt"
	"strings"

	"github.com/matzehuels/modchart/pkg/errors"
	"github.com/matzehuels/modchart/pkg/graph"
)

// Dialect identifies a target diagram language.
type Dialect string

const (
	DialectD2       Dialect = "d2"
	DialectGraphviz Dialect = "graphviz"
	DialectMermaid  Dialect = "mermaid"
)

// Dialects lists every supported dialect in a fixed order.
var Dialects = []Dialect{DialectD2, DialectGraphviz, DialectMermaid}

// ParseDialect converts a dialect name to a Dialect.
// "dot" and "gv" are accepted as aliases for Graphviz, "mmd" for Mermaid.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "d2":
		return DialectD2, nil
	case "graphviz", "dot", "gv":
		return DialectGraphviz, nil
	case "mermaid", "mmd":
		return DialectMermaid, nil
	}
	return "", errors.New(errors.ErrCodeInvalidDialect, "invalid dialect: %q (must be one of: d2, graphviz, mermaid)", s)
}

// Direction is the main flow direction of the diagram.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	return parseEnum(d, string(text), "direction", DirectionUp, DirectionDown, DirectionLeft, DirectionRight)
}

// Position places a container's label relative to the container.
type Position string

const (
	PositionTopLeft      Position = "top-left"
	PositionTopCenter    Position = "top-center"
	PositionTopRight     Position = "top-right"
	PositionCenterLeft   Position = "center-left"
	PositionCenterRight  Position = "center-right"
	PositionBottomLeft   Position = "bottom-left"
	PositionBottomCenter Position = "bottom-center"
	PositionBottomRight  Position = "bottom-right"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	return parseEnum(p, string(text), "position",
		PositionTopLeft, PositionTopCenter, PositionTopRight,
		PositionCenterLeft, PositionCenterRight,
		PositionBottomLeft, PositionBottomCenter, PositionBottomRight)
}

// Location says whether a container label sits inside, on, or outside the border.
type Location string

const (
	LocationInside  Location = "inside"
	LocationBorder  Location = "border"
	LocationOutside Location = "outside"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Location) UnmarshalText(text []byte) error {
	return parseEnum(l, string(text), "location", LocationInside, LocationBorder, LocationOutside)
}

// Theme names a color theme. Each dialect decides which names it accepts.
type Theme string

// LayoutEngine names the external layout engine, e.g. "elk" or "dot".
// Each dialect decides which engines it accepts.
type LayoutEngine string

func parseEnum[T ~string](dst *T, s, what string, valid ...T) error {
	for _, v := range valid {
		if strings.EqualFold(s, string(v)) {
			*dst = v
			return nil
		}
	}
	names := make([]string, len(valid))
	for i, v := range valid {
		names[i] = string(v)
	}
	return fmt.Errorf("invalid %s %q (must be one of: %s)", what, s, strings.Join(names, ", "))
}

// Config is the diagram configuration record.
type Config struct {
	AnimateLinks      *bool             `json:"animate_links,omitempty" toml:"animate_links"`
	Center            *bool             `json:"center,omitempty" toml:"center"`
	DarkTheme         *Theme            `json:"dark_theme,omitempty" toml:"dark_theme"`
	Direction         *Direction        `json:"direction,omitempty" toml:"direction"`
	DisplayLinkLabels *bool             `json:"display_link_labels,omitempty" toml:"display_link_labels"`
	GlobalProps       map[string]string `json:"global_props,omitempty" toml:"global_props"`
	LayoutEngine      *LayoutEngine     `json:"layout_engine,omitempty" toml:"layout_engine"`
	Location          *Location         `json:"location,omitempty" toml:"location"`
	Pad               *int              `json:"pad,omitempty" toml:"pad"`
	Position          *Position         `json:"position,omitempty" toml:"position"`
	RootStyle         map[string]string `json:"root_style,omitempty" toml:"root_style"`
	Sketch            *bool             `json:"sketch,omitempty" toml:"sketch"`
	Theme             *Theme            `json:"theme,omitempty" toml:"theme"`

	// ProjectTypes and LinkTypes are the types present in the graph, in
	// output order. In the config file they live at the top level.
	ProjectTypes []graph.NodeType `json:"project_types,omitempty" toml:"-"`
	LinkTypes    []graph.EdgeType `json:"link_types,omitempty" toml:"-"`
}

// Ptr returns a pointer to v, for filling optional Config fields.
func Ptr[T any](v T) *T { return &v }

// IsTrue reports whether an optional flag is set and true.
func IsTrue(b *bool) bool { return b != nil && *b }

// Validate checks the dialect-independent invariants of the configuration:
// enum fields hold known values, pad is non-negative, and every type has a
// usable name. Enum fields are normalized to their canonical spelling.
func (c *Config) Validate() error {
	if c.Direction != nil {
		var d Direction
		if err := d.UnmarshalText([]byte(*c.Direction)); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "direction")
		}
		c.Direction = &d
	}
	if c.Position != nil {
		var p Position
		if err := p.UnmarshalText([]byte(*c.Position)); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "position")
		}
		c.Position = &p
	}
	if c.Location != nil {
		var l Location
		if err := l.UnmarshalText([]byte(*c.Location)); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "location")
		}
		c.Location = &l
	}
	if c.Pad != nil && *c.Pad < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "pad must not be negative, got %d", *c.Pad)
	}
	for _, t := range c.ProjectTypes {
		if err := errors.ValidateTypeName(t.Name); err != nil {
			return err
		}
	}
	for _, t := range c.LinkTypes {
		if err := errors.ValidateTypeName(t.Name); err != nil {
			return err
		}
	}
	return nil
}

// Merge returns base with every field that is set in override replacing the
// corresponding base field. Maps are replaced, not merged key by key.
func Merge(base, override Config) Config {
	out := base
	if override.AnimateLinks != nil {
		out.AnimateLinks = override.AnimateLinks
	}
	if override.Center != nil {
		out.Center = override.Center
	}
	if override.DarkTheme != nil {
		out.DarkTheme = override.DarkTheme
	}
	if override.Direction != nil {
		out.Direction = override.Direction
	}
	if override.DisplayLinkLabels != nil {
		out.DisplayLinkLabels = override.DisplayLinkLabels
	}
	if override.GlobalProps != nil {
		out.GlobalProps = override.GlobalProps
	}
	if override.LayoutEngine != nil {
		out.LayoutEngine = override.LayoutEngine
	}
	if override.Location != nil {
		out.Location = override.Location
	}
	if override.Pad != nil {
		out.Pad = override.Pad
	}
	if override.Position != nil {
		out.Position = override.Position
	}
	if override.RootStyle != nil {
		out.RootStyle = override.RootStyle
	}
	if override.Sketch != nil {
		out.Sketch = override.Sketch
	}
	if override.Theme != nil {
		out.Theme = override.Theme
	}
	if override.ProjectTypes != nil {
		out.ProjectTypes = override.ProjectTypes
	}
	if override.LinkTypes != nil {
		out.LinkTypes = override.LinkTypes
	}
	return out
}
