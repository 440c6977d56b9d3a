package graphviz

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/modchart/pkg/style"
)

type attr struct {
	key, value string
}

type attrList []attr

func (l attrList) String() string {
	parts := make([]string, len(l))
	for i, a := range l {
		parts[i] = a.key + "=" + strconv.Quote(a.value)
	}
	return strings.Join(parts, ", ")
}

// renamed maps style properties to DOT attributes of the same meaning.
var renamed = map[string]string{
	style.Stroke:       "color",
	style.StrokeWidth:  "penwidth",
	style.Label:        "label",
	"style.font-color": "fontcolor",
	"style.font-size":  "fontsize",
	"style.font":       "fontname",
}

// translate converts a class to DOT attributes. The class name comes first,
// the rest is sorted by attribute name. Properties of the "style." namespace
// without a DOT counterpart are dropped; bare keys pass through unchanged.
func translate(c style.Class, edge, hidden bool) attrList {
	var styles []string
	attrs := make(map[string]string)

	for _, p := range c.Properties {
		switch p.Key {
		case style.Fill:
			attrs["fillcolor"] = p.Value
			styles = append(styles, "filled")
			continue
		case style.StrokeDash:
			if edge && p.Value == "2" {
				styles = append(styles, "dotted")
			} else {
				styles = append(styles, "dashed")
			}
			continue
		case style.Opacity:
			if p.Value == "0" {
				hidden = true
			}
			continue
		case "style.border-radius":
			if p.Value != "0" && !edge {
				styles = append(styles, "rounded")
			}
			continue
		}
		if name, ok := renamed[p.Key]; ok {
			attrs[name] = p.Value
			continue
		}
		if strings.HasPrefix(p.Key, "style.") {
			continue
		}
		attrs[p.Key] = p.Value
	}
	if hidden {
		styles = append(styles, "invis")
	}
	if len(styles) > 0 {
		attrs["style"] = strings.Join(dedupe(styles), ",")
	}

	out := attrList{{"class", classAttr(c.ID, hidden)}}
	for _, p := range style.Sorted(attrs) {
		out = append(out, attr{p.Key, p.Value})
	}
	return out
}

func classAttr(id string, hidden bool) string {
	if hidden {
		return id + " " + style.HiddenClass
	}
	return id
}

func dedupe(s []string) []string {
	seen := make(map[string]bool, len(s))
	out := s[:0]
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return slices.Clip(out)
}

// rootAttrs translates the root style map to graph attributes.
func rootAttrs(root map[string]string) attrList {
	var out attrList
	for _, p := range style.Sorted(root) {
		key := strings.TrimPrefix(p.Key, "style.")
		switch key {
		case "fill":
			out = append(out, attr{"bgcolor", p.Value})
		case "stroke":
			out = append(out, attr{"pencolor", p.Value})
		case "font-color":
			out = append(out, attr{"fontcolor", p.Value})
		case "font-size":
			out = append(out, attr{"fontsize", p.Value})
		}
	}
	return out
}
