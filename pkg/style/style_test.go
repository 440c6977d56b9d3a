package style

import (
	"slices"
	"testing"

	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/errors"
	"github.com/matzehuels/modchart/pkg/graph"
)

func props(c Class) map[string]string {
	m := make(map[string]string, len(c.Properties))
	for _, p := range c.Properties {
		m[p.Key] = p.Value
	}
	return m
}

func TestResolveProjectTypes(t *testing.T) {
	cfg := config.Config{
		ProjectTypes: []graph.NodeType{
			{Name: "Application", Color: "#ff0000"},
			{Name: "Kotlin Library", Color: "#00ff00", Properties: map[string]string{
				"style.fill":          "#000000",
				"style.border-radius": "4",
			}},
		},
	}

	table, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(table.Projects) != 2 {
		t.Fatalf("got %d project classes, want 2", len(table.Projects))
	}

	lib, ok := table.Project("Kotlin Library")
	if !ok {
		t.Fatal("Project(Kotlin Library) not found")
	}
	if lib.ID != "project-KotlinLibrary" {
		t.Errorf("ID = %q, want project-KotlinLibrary", lib.ID)
	}
	if got := props(lib)[Fill]; got != "#00ff00" {
		t.Errorf("fill = %q, want color to override custom fill", got)
	}
	if got := props(lib)["style.border-radius"]; got != "4" {
		t.Errorf("custom property lost: %q", got)
	}
	if table.Projects[0].Name != "Application" {
		t.Errorf("configured order not kept: %q first", table.Projects[0].Name)
	}
}

func TestResolveLinkStyles(t *testing.T) {
	tests := []struct {
		name    string
		style   graph.LineStyle
		animate bool
		want    map[string]string
	}{
		{"unset", graph.LineStyleUnset, false, map[string]string{}},
		{"basic", graph.LineStyleBasic, true, map[string]string{}},
		{"dashed", graph.LineStyleDashed, false, map[string]string{StrokeDash: "4"}},
		{"dotted", graph.LineStyleDotted, false, map[string]string{StrokeDash: "2"}},
		{"bold", graph.LineStyleBold, false, map[string]string{StrokeWidth: "3"}},
		{"invisible", graph.LineStyleInvisible, false, map[string]string{Opacity: "0"}},
		{"dashed animated", graph.LineStyleDashed, true, map[string]string{StrokeDash: "4", Animated: "true"}},
		{"dotted animated", graph.LineStyleDotted, true, map[string]string{StrokeDash: "2", Animated: "true"}},
		{"bold not animated", graph.LineStyleBold, true, map[string]string{StrokeWidth: "3"}},
		{"invisible not animated", graph.LineStyleInvisible, true, map[string]string{Opacity: "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{
				AnimateLinks: config.Ptr(tt.animate),
				LinkTypes:    []graph.EdgeType{{Name: "api", Style: tt.style}},
			}
			table, err := Resolve(cfg)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			got := props(table.Links[0])
			if len(got) != len(tt.want) {
				t.Fatalf("properties = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestResolveLinkColorLabelAndOverrides(t *testing.T) {
	cfg := config.Config{
		DisplayLinkLabels: config.Ptr(true),
		LinkTypes: []graph.EdgeType{
			{
				Name:        "implementation",
				DisplayName: "impl",
				Color:       "#333",
				Style:       graph.LineStyleDashed,
				Properties:  map[string]string{StrokeDash: "6"},
			},
			{Name: "api"},
		},
	}
	table, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	impl := props(table.Links[0])
	if impl[Stroke] != "#333" {
		t.Errorf("stroke = %q", impl[Stroke])
	}
	if impl[Label] != "impl" {
		t.Errorf("label = %q, want display name", impl[Label])
	}
	if impl[StrokeDash] != "6" {
		t.Errorf("stroke-dash = %q, want custom property to win", impl[StrokeDash])
	}

	if got := props(table.Links[1])[Label]; got != "api" {
		t.Errorf("label = %q, want name fallback", got)
	}
}

func TestPropertiesSorted(t *testing.T) {
	cfg := config.Config{
		AnimateLinks:      config.Ptr(true),
		DisplayLinkLabels: config.Ptr(true),
		ProjectTypes: []graph.NodeType{{Name: "Lib", Color: "#fff", Properties: map[string]string{
			"z": "1", "a": "2", "style.stroke": "#000", "m": "3",
		}}},
		LinkTypes: []graph.EdgeType{{Name: "api", Color: "#000", Style: graph.LineStyleDotted, Properties: map[string]string{
			"b": "1", "target-arrowhead.shape": "diamond",
		}}},
	}
	table, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for _, c := range append(table.Projects, table.Links...) {
		keys := make([]string, len(c.Properties))
		for i, p := range c.Properties {
			keys[i] = p.Key
		}
		if !slices.IsSorted(keys) {
			t.Errorf("%s properties not sorted: %v", c.ID, keys)
		}
	}
}

func TestResolveKeyCollisions(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"project collision", config.Config{ProjectTypes: []graph.NodeType{{Name: "my-lib"}, {Name: "mylib"}}}},
		{"link collision", config.Config{LinkTypes: []graph.EdgeType{{Name: "test api"}, {Name: "testapi"}}}},
		{"duplicate", config.Config{ProjectTypes: []graph.NodeType{{Name: "Lib"}, {Name: "Lib"}}}},
		{"empty key", config.Config{LinkTypes: []graph.EdgeType{{Name: "--"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.cfg)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Resolve error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestSameKeyAcrossProjectAndLink(t *testing.T) {
	cfg := config.Config{
		ProjectTypes: []graph.NodeType{{Name: "test"}},
		LinkTypes:    []graph.EdgeType{{Name: "test"}},
	}
	if _, err := Resolve(cfg); err != nil {
		t.Errorf("project and link classes have distinct prefixes: %v", err)
	}
}

func TestTableFor(t *testing.T) {
	cfg := config.Config{
		ProjectTypes: []graph.NodeType{{
			Name:  "Lib",
			Color: "#fff",
			DialectProperties: map[string]map[string]string{
				"mermaid": {"style.color": "#000", Fill: "#eee"},
			},
		}},
	}
	table, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	mm := table.For(config.DialectMermaid)
	got := props(mm.Projects[0])
	if got[Fill] != "#eee" || got["style.color"] != "#000" {
		t.Errorf("mermaid properties = %v", got)
	}

	d2 := table.For(config.DialectD2)
	if got := props(d2.Projects[0]); len(got) != 1 || got[Fill] != "#fff" {
		t.Errorf("d2 properties = %v", got)
	}
	if got := props(table.Projects[0])[Fill]; got != "#fff" {
		t.Errorf("For modified the original table: fill = %q", got)
	}
	if _, ok := mm.Project("Lib"); !ok {
		t.Error("lookup lost in dialect table")
	}
}

func TestLabelNear(t *testing.T) {
	tests := []struct {
		pos  config.Position
		loc  config.Location
		want string
	}{
		{config.PositionCenterLeft, config.LocationBorder, "border-left-center"},
		{config.PositionCenterRight, config.LocationOutside, "outside-right-center"},
		{config.PositionCenterLeft, config.LocationInside, "left-center"},
		{config.PositionTopLeft, config.LocationInside, "top-left"},
		{config.PositionBottomCenter, config.LocationBorder, "border-bottom-center"},
		{config.PositionCenterLeft, "", "center-left"},
		{config.PositionTopRight, "", "top-right"},
	}
	for _, tt := range tests {
		t.Run(string(tt.pos)+"/"+string(tt.loc), func(t *testing.T) {
			var loc *config.Location
			if tt.loc != "" {
				loc = config.Ptr(tt.loc)
			}
			if got := LabelNear(config.Ptr(tt.pos), loc); got != tt.want {
				t.Errorf("LabelNear = %q, want %q", got, tt.want)
			}
		})
	}

	if got := LabelNear(nil, config.Ptr(config.LocationBorder)); got != "" {
		t.Errorf("LabelNear(nil) = %q, want empty", got)
	}
}
