// Package d2 renders module graphs as D2 diagrams.
//
// The output has three parts: diagram directives (direction, root style and
// vars.d2-config), a classes block with one class per project and link type,
// and the body declaring containers, nodes and edges. Global properties are
// written verbatim after the classes block.
//
//	direction: right
//	classes: {
//	  project-Library {
//	    style.fill: "#3f51b5"
//	  }
//	  link-api {
//	    style.stroke-width: "3"
//	  }
//	  container {
//	  }
//	  hidden {
//	    style.opacity: 0
//	  }
//	}
//
//	"libs": {
//	  class: container
//	  ":libs:core": {class: project-Library}
//	}
//	":app" -> "libs".":libs:core": {class: link-api}
package d2

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/errors"
	"github.com/matzehuels/modchart/pkg/render"
	"github.com/matzehuels/modchart/pkg/style"
)

// Dialect is the D2 implementation of [render.Dialect].
type Dialect struct{}

var (
	_ render.Dialect  = Dialect{}
	_ render.Importer = Dialect{}
)

// Name implements render.Dialect.
func (Dialect) Name() config.Dialect { return config.DialectD2 }

// Ext implements render.Dialect.
func (Dialect) Ext() string { return "d2" }

// ImportName implements render.Importer. D2 imports drop the extension.
func (Dialect) ImportName(file string) string {
	return strings.TrimSuffix(file, ".d2")
}

// Validate checks the theme and layout engine names.
func (Dialect) Validate(cfg config.Config) error {
	if cfg.Theme != nil {
		if _, err := ThemeID(*cfg.Theme); err != nil {
			return err
		}
	}
	if cfg.DarkTheme != nil {
		if _, err := ThemeID(*cfg.DarkTheme); err != nil {
			return err
		}
	}
	if cfg.LayoutEngine != nil && !slices.Contains(LayoutEngines, *cfg.LayoutEngine) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown d2 layout engine %q (must be dagre, elk or tala)", *cfg.LayoutEngine)
	}
	return nil
}

// WriteDirectives writes the direction, the root style block and the
// d2-config vars. Only configured settings produce lines.
func (Dialect) WriteDirectives(w *render.Writer, doc *render.Document) error {
	cfg := doc.Config
	if cfg.Direction != nil {
		w.Line("direction: %s", *cfg.Direction)
	}

	if len(cfg.RootStyle) > 0 {
		w.Open("style: {")
		for _, p := range style.Sorted(cfg.RootStyle) {
			w.Line("%s: %q", p.Key, p.Value)
		}
		w.Close("}")
	}

	vars, err := d2Config(cfg)
	if err != nil {
		return err
	}
	if len(vars) == 0 {
		return nil
	}
	w.Open("vars: {")
	w.Open("d2-config: {")
	for _, p := range style.Sorted(vars) {
		w.Line("%s: %s", p.Key, p.Value)
	}
	w.Close("}")
	w.Close("}")
	return nil
}

func d2Config(cfg config.Config) (map[string]string, error) {
	vars := make(map[string]string)
	if cfg.Theme != nil {
		id, err := ThemeID(*cfg.Theme)
		if err != nil {
			return nil, err
		}
		vars["theme-id"] = strconv.Itoa(id)
	}
	if cfg.DarkTheme != nil {
		id, err := ThemeID(*cfg.DarkTheme)
		if err != nil {
			return nil, err
		}
		vars["dark-theme-id"] = strconv.Itoa(id)
	}
	if cfg.LayoutEngine != nil {
		vars["layout-engine"] = string(*cfg.LayoutEngine)
	}
	if cfg.Pad != nil {
		vars["pad"] = strconv.Itoa(*cfg.Pad)
	}
	if cfg.Sketch != nil {
		vars["sketch"] = strconv.FormatBool(*cfg.Sketch)
	}
	if cfg.Center != nil {
		vars["center"] = strconv.FormatBool(*cfg.Center)
	}
	return vars, nil
}

// WriteClasses writes the classes block followed by the global properties.
func (Dialect) WriteClasses(w *render.Writer, doc *render.Document) error {
	w.Open("classes: {")
	for _, c := range doc.Table.Projects {
		writeClass(w, c)
	}
	for _, c := range doc.Table.Links {
		writeClass(w, c)
	}

	w.Open("%s {", style.ContainerClass)
	if doc.Table.ContainerLabel != "" {
		w.Line("label.near: %s", doc.Table.ContainerLabel)
	}
	w.Close("}")

	w.Open("%s {", style.HiddenClass)
	w.Line("style.opacity: 0")
	w.Close("}")
	w.Close("}")

	for _, p := range style.Sorted(doc.Config.GlobalProps) {
		w.Line("%s: %s", p.Key, p.Value)
	}
	return nil
}

func writeClass(w *render.Writer, c style.Class) {
	w.Open("%s {", c.ID)
	for _, p := range c.Properties {
		w.Line("%s: %q", p.Key, p.Value)
	}
	w.Close("}")
}
