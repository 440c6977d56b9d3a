package d2

import (
	"strconv"
	"strings"

	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/errors"
)

// Themes maps D2 theme names to their numeric IDs.
var Themes = map[string]int{
	"neutral-default":           0,
	"neutral-grey":              1,
	"flagship-terrastruct":      3,
	"cool-classics":             4,
	"mixed-berry-blue":          5,
	"grape-soda":                6,
	"aubergine":                 7,
	"colorblind-clear":          8,
	"vanilla-nitro-cola":        100,
	"orange-creamsicle":         101,
	"shirley-temple":            102,
	"earth-tones":               103,
	"everglade-green":           104,
	"buttered-toast":            105,
	"dark-mauve":                200,
	"dark-flagship-terrastruct": 201,
	"terminal":                  300,
	"terminal-grayscale":        301,
	"origami":                   302,
}

// LayoutEngines lists the layout engines D2 accepts.
var LayoutEngines = []config.LayoutEngine{"dagre", "elk", "tala"}

// ThemeID resolves a theme name or numeric ID string to a D2 theme ID.
func ThemeID(t config.Theme) (int, error) {
	name := strings.ToLower(strings.TrimSpace(string(t)))
	if id, ok := Themes[name]; ok {
		return id, nil
	}
	if id, err := strconv.Atoi(name); err == nil {
		for _, known := range Themes {
			if known == id {
				return id, nil
			}
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidConfig, "unknown d2 theme %q", t)
}
