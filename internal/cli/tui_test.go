package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/modchart/pkg/config"
)

func TestDialectListModel(t *testing.T) {
	m := NewDialectListModel(config.DialectGraphviz)
	if len(m.Dialects) != 3 {
		t.Fatalf("got %d dialects, want 3", len(m.Dialects))
	}
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want 1 (graphviz)", m.Cursor)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(DialectListModel)
	if m.Cursor != 2 {
		t.Errorf("cursor after down = %d, want 2", m.Cursor)
	}

	// stays on the last row
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(DialectListModel)
	if m.Cursor != 2 {
		t.Errorf("cursor past end = %d, want 2", m.Cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(DialectListModel)
	if m.Selected != config.DialectMermaid {
		t.Errorf("Selected = %q, want mermaid", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestDialectListModelQuit(t *testing.T) {
	m := NewDialectListModel(config.DialectD2)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(DialectListModel).Selected != "" {
		t.Error("esc should not select")
	}
	if cmd == nil {
		t.Error("esc should quit the program")
	}
}

func TestDialectListView(t *testing.T) {
	view := NewDialectListModel(config.DialectD2).View()
	for _, want := range []string{"Select Dialect", "d2", "graphviz", "mermaid", ".mmd", "[1/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
