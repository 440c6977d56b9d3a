package config

import (
	"strings"
	"testing"

	"github.com/matzehuels/modchart/pkg/errors"
	"github.com/matzehuels/modchart/pkg/graph"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{"d2", DialectD2, false},
		{"D2", DialectD2, false},
		{"graphviz", DialectGraphviz, false},
		{"dot", DialectGraphviz, false},
		{"gv", DialectGraphviz, false},
		{"mermaid", DialectMermaid, false},
		{"mmd", DialectMermaid, false},
		{"plantuml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDialect(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDialect(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidDialect) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidDialect)
			}
			if got != tt.want {
				t.Errorf("ParseDialect(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty", Config{}, false},
		{"direction", Config{Direction: Ptr(DirectionRight)}, false},
		{"bad direction", Config{Direction: Ptr(Direction("sideways"))}, true},
		{"position", Config{Position: Ptr(PositionCenterLeft)}, false},
		{"bad position", Config{Position: Ptr(Position("middle"))}, true},
		{"bad location", Config{Location: Ptr(Location("nowhere"))}, true},
		{"zero pad", Config{Pad: Ptr(0)}, false},
		{"negative pad", Config{Pad: Ptr(-1)}, true},
		{"blank project type", Config{ProjectTypes: []graph.NodeType{{Name: "--"}}}, true},
		{"blank link type", Config{LinkTypes: []graph.EdgeType{{Name: ""}}}, true},
		{"types", Config{
			ProjectTypes: []graph.NodeType{{Name: "Library", Color: "#fff"}},
			LinkTypes:    []graph.EdgeType{{Name: "api"}},
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidateNormalizesEnums(t *testing.T) {
	cfg := Config{
		Direction: Ptr(Direction("RIGHT")),
		Position:  Ptr(Position("Center-Left")),
		Location:  Ptr(Location("Border")),
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if *cfg.Direction != DirectionRight {
		t.Errorf("Direction = %q, want %q", *cfg.Direction, DirectionRight)
	}
	if *cfg.Position != PositionCenterLeft {
		t.Errorf("Position = %q, want %q", *cfg.Position, PositionCenterLeft)
	}
	if *cfg.Location != LocationBorder {
		t.Errorf("Location = %q, want %q", *cfg.Location, LocationBorder)
	}
}

func TestMerge(t *testing.T) {
	base := Config{
		Direction: Ptr(DirectionDown),
		Pad:       Ptr(10),
		RootStyle: map[string]string{"fill": "#fff"},
	}
	override := Config{
		Direction: Ptr(DirectionRight),
		Sketch:    Ptr(true),
	}

	got := Merge(base, override)

	if *got.Direction != DirectionRight {
		t.Errorf("Direction = %q, want right", *got.Direction)
	}
	if *got.Pad != 10 {
		t.Errorf("Pad = %d, want 10", *got.Pad)
	}
	if !IsTrue(got.Sketch) {
		t.Error("Sketch not carried over from override")
	}
	if got.RootStyle["fill"] != "#fff" {
		t.Errorf("RootStyle = %v, want base map", got.RootStyle)
	}
	if *base.Direction != DirectionDown {
		t.Error("Merge modified base")
	}
}

func TestIsTrue(t *testing.T) {
	if IsTrue(nil) {
		t.Error("IsTrue(nil) = true")
	}
	if IsTrue(Ptr(false)) {
		t.Error("IsTrue(false) = true")
	}
	if !IsTrue(Ptr(true)) {
		t.Error("IsTrue(true) = false")
	}
}

func TestInferTypes(t *testing.T) {
	g := graph.New()
	for _, n := range []graph.Node{
		{ID: ":app", Type: "Application"},
		{ID: ":core", Type: "Library"},
		{ID: ":util", Type: "Util"},
	} {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddEdge(graph.Edge{From: ":app", To: ":core", Type: "api"}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(graph.Edge{From: ":core", To: ":util", Type: "impl"}); err != nil {
		t.Fatal(err)
	}

	declared := []graph.NodeType{{Name: "Library", Color: "#000"}}
	declaredEdges := []graph.EdgeType{{Name: "api", Style: graph.LineStyleBold}}

	nodes, edges := InferTypes(g, declared, declaredEdges)

	wantNodes := []string{"Library", "Application", "Util"}
	if len(nodes) != len(wantNodes) {
		t.Fatalf("got %d node types, want %d", len(nodes), len(wantNodes))
	}
	for i, name := range wantNodes {
		if nodes[i].Name != name {
			t.Errorf("nodes[%d] = %q, want %q", i, nodes[i].Name, name)
		}
	}
	if nodes[0].Color != "#000" {
		t.Errorf("declared color replaced: %q", nodes[0].Color)
	}
	if nodes[1].Color != Palette[1] || nodes[2].Color != Palette[2] {
		t.Errorf("inferred colors = %q, %q", nodes[1].Color, nodes[2].Color)
	}

	if len(edges) != 2 || edges[1].Name != "impl" || edges[1].Style != graph.LineStyleBasic {
		t.Errorf("edges = %+v", edges)
	}
	if len(declared) != 1 {
		t.Error("InferTypes modified its input")
	}
}

func TestInferTypesCanonicalOrder(t *testing.T) {
	g := graph.New()
	for _, n := range []graph.Node{
		{ID: ":z", Type: "Zeta"},
		{ID: ":a", Type: "Alpha"},
		{ID: ":m", Type: "mid-tier"},
	} {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range []graph.Edge{
		{From: ":z", To: ":a", Type: "test"},
		{From: ":a", To: ":m", Type: "api"},
	} {
		if err := g.AddEdge(e); err != nil {
			t.Fatal(err)
		}
	}

	nodes, edges := InferTypes(g, nil, nil)

	var names []string
	for _, n := range nodes {
		names = append(names, n.Name)
	}
	if got := strings.Join(names, ","); got != "Alpha,Zeta,mid-tier" {
		t.Errorf("node types = %s, want Alpha,Zeta,mid-tier", got)
	}
	if nodes[0].Color != Palette[0] || nodes[1].Color != Palette[1] {
		t.Errorf("colors = %q, %q; want palette order after sorting", nodes[0].Color, nodes[1].Color)
	}
	if len(edges) != 2 || edges[0].Name != "api" || edges[1].Name != "test" {
		t.Errorf("edges = %+v", edges)
	}
}
