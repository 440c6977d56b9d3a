package legend

import (
	"testing"

	"github.com/matzehuels/modchart/pkg/graph"
)

func TestMarkdown(t *testing.T) {
	got := Markdown(
		[]graph.NodeType{{Name: "Application", Color: "#ff0000"}, {Name: "A|B"}},
		[]graph.EdgeType{
			{Name: "api", Style: graph.LineStyleBold, Color: "#000"},
			{Name: "implementation", DisplayName: "impl"},
		},
	)
	want := "| Project type | Color |\n" +
		"|---|---|\n" +
		"| Application | `#ff0000` |\n" +
		"| A\\|B |  |\n" +
		"\n" +
		"| Link type | Style | Color |\n" +
		"|---|---|---|\n" +
		"| api | bold | `#000` |\n" +
		"| impl | basic |  |\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarkdownEmpty(t *testing.T) {
	if got := Markdown(nil, nil); got != "" {
		t.Errorf("Markdown(nil, nil) = %q, want empty", got)
	}
}

func TestForGraph(t *testing.T) {
	g := graph.New()
	if err := g.AddNode(graph.Node{ID: ":a", Type: "Library"}); err != nil {
		t.Fatal(err)
	}
	got := ForGraph(g,
		[]graph.NodeType{{Name: "Application"}, {Name: "Library", Color: "#0f0"}},
		[]graph.EdgeType{{Name: "api"}},
	)
	want := "| Project type | Color |\n|---|---|\n| Library | `#0f0` |\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
