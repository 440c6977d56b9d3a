package mermaid

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/errors"
	"github.com/matzehuels/modchart/pkg/graph"
	"github.com/matzehuels/modchart/pkg/render"
	"github.com/matzehuels/modchart/pkg/style"
)

func sampleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, n := range []graph.Node{
		{ID: ":app", Type: "Application"},
		{ID: ":libs:core", Type: "Library"},
		{ID: ":libs:util", Type: "Library", Label: "util", Hidden: true},
	} {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range []graph.Edge{
		{From: ":app", To: ":libs:core", Type: "api"},
		{From: ":libs:core", To: ":libs:util", Type: "implementation"},
	} {
		if err := g.AddEdge(e); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func sampleConfig() config.Config {
	return config.Config{
		AnimateLinks: config.Ptr(true),
		Direction:    config.Ptr(config.DirectionRight),
		ProjectTypes: []graph.NodeType{
			{Name: "Application", Color: "#ff0000"},
			{Name: "Library", Color: "#00ff00"},
		},
		LinkTypes: []graph.EdgeType{
			{Name: "api", Style: graph.LineStyleBold},
			{Name: "implementation", Style: graph.LineStyleDashed},
		},
	}
}

const golden = `flowchart LR
    classDef project-Application fill:#ff0000;
    classDef project-Library fill:#00ff00;
    classDef container fill:none;
    classDef hidden opacity:0;
    app[":app"]:::project-Application
    subgraph libs["libs"]
        libs_core[":libs:core"]:::project-Library
        libs_util["util"]:::project-Library
        class libs_util hidden
    end
    class libs container
    app --> libs_core
    libs_core --> libs_util
    linkStyle 0 stroke-width:3px;
    linkStyle 1 stroke-dasharray:4;
`

func TestRenderGolden(t *testing.T) {
	got, err := render.Render(Dialect{}, sampleGraph(t), sampleConfig(), render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != golden {
		t.Errorf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", got, golden)
	}
}

func TestClassesDefinedForEveryReference(t *testing.T) {
	g := sampleGraph(t)
	if err := g.AddNode(graph.Node{ID: ":plain", Type: "Plain"}); err != nil {
		t.Fatal(err)
	}
	cfg := sampleConfig()
	cfg.ProjectTypes = append(cfg.ProjectTypes, graph.NodeType{Name: "Plain"})
	cfg.Position = config.Ptr(config.PositionTopLeft)

	got, err := render.Render(Dialect{}, g, cfg, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{
		"classDef project-Plain stroke-width:1px;",
		"classDef container fill:none;",
		`plain[":plain"]:::project-Plain`,
		"class libs container",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}

	// every class referenced in the body has a classDef
	defined := make(map[string]bool)
	for _, line := range strings.Split(got, "\n") {
		if f := strings.Fields(line); len(f) >= 2 && f[0] == "classDef" {
			defined[f[1]] = true
		}
	}
	for _, line := range strings.Split(got, "\n") {
		line = strings.TrimSpace(line)
		var class string
		if _, after, ok := strings.Cut(line, ":::"); ok {
			class = after
		} else if f := strings.Fields(line); len(f) == 3 && f[0] == "class" {
			class = f[2]
		}
		if class != "" && !defined[class] {
			t.Errorf("class %q referenced but not defined", class)
		}
	}
}

func TestFrontMatter(t *testing.T) {
	cfg := sampleConfig()
	cfg.Theme = config.Ptr(config.Theme("neutral"))
	cfg.DarkTheme = config.Ptr(config.Theme("dark"))
	cfg.LayoutEngine = config.Ptr(config.LayoutEngine("elk"))
	cfg.Sketch = config.Ptr(true)
	cfg.Pad = config.Ptr(8)
	cfg.RootStyle = map[string]string{"fill": "#fafafa", "font-size": "14px"}
	cfg.GlobalProps = map[string]string{"flowchart.curve": "basis", "htmlLabels": "false"}

	got, err := render.Render(Dialect{}, sampleGraph(t), cfg, render.Options{Title: "libs"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(got, "---\n") {
		t.Fatalf("missing front matter:\n%s", got)
	}
	head, rest, ok := strings.Cut(strings.TrimPrefix(got, "---\n"), "\n---\n")
	if !ok {
		t.Fatalf("unterminated front matter:\n%s", got)
	}
	if !strings.HasPrefix(rest, "flowchart LR\n") {
		t.Errorf("flowchart header should follow the front matter:\n%s", rest)
	}

	var matter struct {
		Title  string `yaml:"title"`
		Config struct {
			Theme          string            `yaml:"theme"`
			Layout         string            `yaml:"layout"`
			Look           string            `yaml:"look"`
			HTMLLabels     bool              `yaml:"htmlLabels"`
			ThemeVariables map[string]string `yaml:"themeVariables"`
			Flowchart      struct {
				Curve          string `yaml:"curve"`
				DiagramPadding int    `yaml:"diagramPadding"`
			} `yaml:"flowchart"`
		} `yaml:"config"`
	}
	if err := yaml.Unmarshal([]byte(head), &matter); err != nil {
		t.Fatalf("front matter is not valid YAML: %v\n%s", err, head)
	}
	c := matter.Config
	if matter.Title != "libs" || c.Theme != "neutral" || c.Layout != "elk" || c.Look != "handDrawn" {
		t.Errorf("front matter = %+v", matter)
	}
	if c.Flowchart.Curve != "basis" || c.Flowchart.DiagramPadding != 8 {
		t.Errorf("flowchart config = %+v", c.Flowchart)
	}
	if c.HTMLLabels {
		t.Error("htmlLabels should decode as false")
	}
	if c.ThemeVariables["background"] != "#fafafa" || c.ThemeVariables["font-size"] != "14px" {
		t.Errorf("themeVariables = %v", c.ThemeVariables)
	}
	if strings.Contains(head, "dark") {
		t.Errorf("dark theme has no mermaid equivalent and must be dropped:\n%s", head)
	}
}

func TestEdgeLabels(t *testing.T) {
	cfg := sampleConfig()
	cfg.DisplayLinkLabels = config.Ptr(true)
	cfg.LinkTypes[1].DisplayName = "impl|internal"

	got, err := render.Render(Dialect{}, sampleGraph(t), cfg, render.Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"    app -->|api| libs_core\n",
		"    libs_core -->|impl#124;internal| libs_util\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct{ in, want string }{
		{":app", "app"},
		{":libs:core", "libs_core"},
		{":a--b::c", "a_b_c"},
		{":1st", "n1st"},
		{":٣rd", "n٣rd"},
		{":end", "end_"},
		{"---", "n"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := sanitize(tt.in); got != tt.want {
				t.Errorf("sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIDCollisions(t *testing.T) {
	g := graph.New()
	for _, n := range []graph.Node{
		{ID: ":libs", Type: "T"},
		{ID: ":libs:core", Type: "T"},
		{ID: ":libs-core", Type: "T"},
	} {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}
	cfg := config.Config{ProjectTypes: []graph.NodeType{{Name: "T", Color: "#fff"}}}

	got, err := render.Render(Dialect{}, g, cfg, render.Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"    libs[\":libs\"]:::project-T\n",
		"    libs_core_2[\":libs-core\"]:::project-T\n",
		"    subgraph libs_2[\"libs\"]\n",
		"        libs_core[\":libs:core\"]:::project-T\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestTranslate(t *testing.T) {
	c := style.Class{Properties: style.Sorted(map[string]string{
		style.Fill:            "#fff",
		style.StrokeWidth:     "3",
		style.Animated:        "true",
		style.Label:           "api",
		"style.border-radius": "4",
		"shape":               "circle",
	})}
	want := "rx:4px,fill:#fff,stroke-width:3px"
	if got := translate(c); got != want {
		t.Errorf("translate = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"theme", config.Config{Theme: config.Ptr(config.Theme("forest"))}, false},
		{"d2 theme", config.Config{Theme: config.Ptr(config.Theme("grape-soda"))}, true},
		{"dark theme ignored", config.Config{DarkTheme: config.Ptr(config.Theme("anything"))}, false},
		{"elk", config.Config{LayoutEngine: config.Ptr(config.LayoutEngine("elk"))}, false},
		{"tala", config.Config{LayoutEngine: config.Ptr(config.LayoutEngine("tala"))}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Dialect{}.Validate(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("code = %v, want INVALID_CONFIG", errors.GetCode(err))
			}
		})
	}
}
