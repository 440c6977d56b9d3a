package graph

import (
	"errors"
	"slices"
	"testing"
)

func buildGraph(t *testing.T) *Graph {
	t.Helper()
	g := New()
	for _, n := range []Node{
		{ID: ":app", Type: "App"},
		{ID: ":libs:core", Type: "Library"},
		{ID: ":libs:ui", Type: "Library"},
	} {
		if err := g.AddNode(n); err != nil {
			t.Fatalf("AddNode(%s): %v", n.ID, err)
		}
	}
	for _, e := range []Edge{
		{From: ":app", To: ":libs:ui", Type: "implementation"},
		{From: ":libs:ui", To: ":libs:core", Type: "api"},
		{From: ":app", To: ":libs:core", Type: "implementation"},
	} {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%s->%s): %v", e.From, e.To, err)
		}
	}
	return g
}

func TestAddNodeErrors(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{ID: "", Type: "App"}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("empty ID: got %v, want ErrInvalidNodeID", err)
	}
	if err := g.AddNode(Node{ID: ":a"}); !errors.Is(err, ErrMissingType) {
		t.Errorf("empty type: got %v, want ErrMissingType", err)
	}
	if err := g.AddNode(Node{ID: ":a", Type: "App"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode(Node{ID: ":a", Type: "App"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("duplicate: got %v, want ErrDuplicateNodeID", err)
	}
}

func TestAddEdgeErrors(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: ":a", Type: "App"})
	_ = g.AddNode(Node{ID: ":b", Type: "Library"})

	tests := []struct {
		name string
		edge Edge
		want error
	}{
		{"unknown source", Edge{From: ":x", To: ":b", Type: "api"}, ErrUnknownSourceNode},
		{"unknown target", Edge{From: ":a", To: ":x", Type: "api"}, ErrUnknownTargetNode},
		{"missing type", Edge{From: ":a", To: ":b"}, ErrMissingType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.AddEdge(tt.edge); !errors.Is(err, tt.want) {
				t.Errorf("AddEdge() = %v, want %v", err, tt.want)
			}
		})
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestInsertionOrder(t *testing.T) {
	g := buildGraph(t)

	var ids []string
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	if want := []string{":app", ":libs:core", ":libs:ui"}; !slices.Equal(ids, want) {
		t.Errorf("Nodes() order = %v, want %v", ids, want)
	}

	edges := g.Edges()
	if edges[0].To != ":libs:ui" || edges[2].To != ":libs:core" {
		t.Errorf("Edges() not in insertion order: %v", edges)
	}
}

func TestNodesReturnsCopy(t *testing.T) {
	g := buildGraph(t)
	nodes := g.Nodes()
	nodes[0].Type = "Mutated"

	n, ok := g.Node(":app")
	if !ok {
		t.Fatal("Node(:app) not found")
	}
	if n.Type != "App" {
		t.Errorf("graph was mutated through Nodes(): type = %q", n.Type)
	}
}

func TestTypeNames(t *testing.T) {
	g := buildGraph(t)
	if got := g.NodeTypeNames(); !slices.Equal(got, []string{"App", "Library"}) {
		t.Errorf("NodeTypeNames() = %v", got)
	}
	if got := g.EdgeTypeNames(); !slices.Equal(got, []string{"implementation", "api"}) {
		t.Errorf("EdgeTypeNames() = %v", got)
	}
}

func TestTypesPresent(t *testing.T) {
	g := buildGraph(t)
	nodeTypes := []NodeType{{Name: "Test"}, {Name: "Library"}, {Name: "App"}}
	edgeTypes := []EdgeType{{Name: "api"}, {Name: "testImplementation"}, {Name: "implementation"}}

	nodes, edges := g.TypesPresent(nodeTypes, edgeTypes)
	if len(nodes) != 2 || nodes[0].Name != "Library" || nodes[1].Name != "App" {
		t.Errorf("TypesPresent nodes = %v", nodes)
	}
	if len(edges) != 2 || edges[0].Name != "api" || edges[1].Name != "implementation" {
		t.Errorf("TypesPresent edges = %v", edges)
	}
}

func TestSegments(t *testing.T) {
	tests := []struct {
		id   string
		want []string
	}{
		{":", nil},
		{":app", []string{"app"}},
		{":libs:core", []string{"libs", "core"}},
		{"plain", []string{"plain"}},
	}
	for _, tt := range tests {
		if got := (Node{ID: tt.id}).Segments(); !slices.Equal(got, tt.want) {
			t.Errorf("Segments(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Android App", "AndroidApp"},
		{"test-fixtures", "testfixtures"},
		{"java_library2", "javalibrary2"},
		{"Bibliothèque", "Bibliothèque"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := Key(tt.name); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestParseLineStyle(t *testing.T) {
	tests := []struct {
		input   string
		want    LineStyle
		wantErr bool
	}{
		{"", LineStyleUnset, false},
		{"basic", LineStyleBasic, false},
		{"Dashed", LineStyleDashed, false},
		{"DOTTED", LineStyleDotted, false},
		{"bold", LineStyleBold, false},
		{"invisible", LineStyleInvisible, false},
		{"wavy", LineStyleUnset, true},
	}
	for _, tt := range tests {
		got, err := ParseLineStyle(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLineStyle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLineStyle(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSortTypes(t *testing.T) {
	nodes := []NodeType{{Name: "Library"}, {Name: "App"}, {Name: "Test"}}
	SortNodeTypes(nodes)
	if nodes[0].Name != "App" || nodes[2].Name != "Test" {
		t.Errorf("SortNodeTypes = %v", nodes)
	}

	edges := []EdgeType{{Name: "test"}, {Name: "api"}, {Name: "implementation"}}
	SortEdgeTypes(edges)
	if edges[0].Name != "api" || edges[1].Name != "implementation" {
		t.Errorf("SortEdgeTypes = %v", edges)
	}
}

func TestEdgeTypeLabel(t *testing.T) {
	if got := (EdgeType{Name: "api"}).Label(); got != "api" {
		t.Errorf("Label() = %q, want api", got)
	}
	if got := (EdgeType{Name: "api", DisplayName: "API"}).Label(); got != "API" {
		t.Errorf("Label() = %q, want API", got)
	}
}
