// Package mermaid renders module graphs as Mermaid flowcharts.
//
// Diagram settings go into YAML front matter, classes become classDef
// statements, and link classes are applied with linkStyle by edge index.
//
//	---
//	config:
//	  layout: elk
//	  theme: neutral
//	---
//	flowchart LR
//	    classDef project-Library fill:#3f51b5;
//	    subgraph libs["libs"]
//	        libs_core[":libs:core"]:::project-Library
//	    end
//	    class libs container
//	    app --> libs_core
//	    linkStyle 0 stroke-width:3px;
package mermaid

import (
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/errors"
	"github.com/matzehuels/modchart/pkg/render"
	"github.com/matzehuels/modchart/pkg/style"
)

// Dialect is the Mermaid implementation of [render.Dialect].
type Dialect struct{}

var (
	_ render.Dialect  = Dialect{}
	_ render.Indenter = Dialect{}
)

// Themes lists the built-in Mermaid themes.
var Themes = []config.Theme{"default", "neutral", "dark", "forest", "base"}

// LayoutEngines lists the Mermaid layout engines.
var LayoutEngines = []config.LayoutEngine{"dagre", "elk"}

// Name implements render.Dialect.
func (Dialect) Name() config.Dialect { return config.DialectMermaid }

// Ext implements render.Dialect.
func (Dialect) Ext() string { return "mmd" }

// Indent implements render.Indenter.
func (Dialect) Indent() string { return "    " }

// Validate checks the theme and layout engine. Mermaid has no separate dark
// theme, so DarkTheme is ignored.
func (Dialect) Validate(cfg config.Config) error {
	if cfg.Theme != nil && !slices.Contains(Themes, *cfg.Theme) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown mermaid theme %q (must be default, neutral, dark, forest or base)", *cfg.Theme)
	}
	if cfg.LayoutEngine != nil && !slices.Contains(LayoutEngines, *cfg.LayoutEngine) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown mermaid layout engine %q (must be dagre or elk)", *cfg.LayoutEngine)
	}
	return nil
}

var directions = map[config.Direction]string{
	config.DirectionDown:  "TD",
	config.DirectionUp:    "BT",
	config.DirectionLeft:  "RL",
	config.DirectionRight: "LR",
}

// WriteDirectives writes the front matter, when there is anything to put in
// it, and the flowchart header.
func (Dialect) WriteDirectives(w *render.Writer, doc *render.Document) error {
	matter, err := frontMatter(doc)
	if err != nil {
		return err
	}
	if len(matter) > 0 {
		var buf strings.Builder
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(matter); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode front matter")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode front matter")
		}
		w.Line("---")
		for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
			w.Raw(line)
		}
		w.Line("---")
	}

	if doc.Config.Direction != nil {
		w.Open("flowchart %s", directions[*doc.Config.Direction])
	} else {
		w.Open("flowchart")
	}
	return nil
}

func frontMatter(doc *render.Document) (map[string]any, error) {
	cfg := doc.Config
	conf := make(map[string]any)
	if cfg.Theme != nil {
		conf["theme"] = string(*cfg.Theme)
	}
	if cfg.LayoutEngine != nil {
		conf["layout"] = string(*cfg.LayoutEngine)
	}
	if config.IsTrue(cfg.Sketch) {
		conf["look"] = "handDrawn"
	}
	if cfg.Pad != nil {
		setPath(conf, []string{"flowchart", "diagramPadding"}, *cfg.Pad)
	}
	if len(cfg.RootStyle) > 0 {
		vars := make(map[string]any, len(cfg.RootStyle))
		for k, v := range cfg.RootStyle {
			k = strings.TrimPrefix(k, "style.")
			if k == "fill" {
				k = "background"
			}
			vars[k] = v
		}
		conf["themeVariables"] = vars
	}
	for _, p := range style.Sorted(cfg.GlobalProps) {
		var value any
		if err := yaml.Unmarshal([]byte(p.Value), &value); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "global property %s", p.Key)
		}
		setPath(conf, strings.Split(p.Key, "."), value)
	}

	matter := make(map[string]any)
	if doc.Title != "" {
		matter["title"] = doc.Title
	}
	if len(conf) > 0 {
		matter["config"] = conf
	}
	return matter, nil
}

// setPath stores value under a dotted key path, creating nested maps.
func setPath(m map[string]any, path []string, value any) {
	for _, key := range path[:len(path)-1] {
		next, ok := m[key].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[key] = next
		}
		m = next
	}
	m[path[len(path)-1]] = value
}

// WriteClasses writes a classDef for every project class and for the
// container and hidden classes. Link classes are applied by linkStyle in the
// body. Mermaid rejects empty definitions, so a project class without CSS
// properties gets placeholderCSS.
func (Dialect) WriteClasses(w *render.Writer, doc *render.Document) error {
	for _, c := range doc.Table.Projects {
		css := translate(c)
		if css == "" {
			css = placeholderCSS
		}
		w.Line("classDef %s %s;", c.ID, css)
	}
	w.Line("classDef %s fill:none;", style.ContainerClass)
	w.Line("classDef %s opacity:0;", style.HiddenClass)
	return nil
}

// placeholderCSS matches Mermaid's default node stroke.
const placeholderCSS = "stroke-width:1px"

// renamed maps style properties to CSS properties with a different name.
var renamed = map[string]string{
	style.StrokeDash:      "stroke-dasharray",
	"style.font-color":    "color",
	"style.border-radius": "rx",
}

// pixels lists CSS properties whose bare numbers need a px unit.
var pixels = []string{"stroke-width", "font-size", "rx"}

// translate renders a class as a comma-separated CSS declaration list.
// Only "style." properties are CSS; label and animation are handled
// elsewhere or not supported.
func translate(c style.Class) string {
	var decls []string
	for _, p := range c.Properties {
		if p.Key == style.Animated || !strings.HasPrefix(p.Key, "style.") {
			continue
		}
		name, ok := renamed[p.Key]
		if !ok {
			name = strings.TrimPrefix(p.Key, "style.")
		}
		value := p.Value
		if slices.Contains(pixels, name) {
			if _, err := strconv.ParseFloat(value, 64); err == nil {
				value += "px"
			}
		}
		decls = append(decls, name+":"+value)
	}
	return strings.Join(decls, ",")
}
