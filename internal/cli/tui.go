package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/render/dialects"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// dialectInfo describes a dialect row in the picker.
type dialectInfo struct {
	Name    config.Dialect
	Ext     string
	Summary string
}

var dialectSummaries = map[config.Dialect]string{
	config.DialectD2:       "D2, themes and sketch mode, elk/tala layouts",
	config.DialectGraphviz: "Graphviz DOT, can be laid out to SVG",
	config.DialectMermaid:  "Mermaid flowchart, renders natively on GitHub",
}

// =============================================================================
// DialectListModel - Interactive dialect selection
// =============================================================================

// DialectListModel is the bubbletea model for interactive dialect selection.
type DialectListModel struct {
	Dialects []dialectInfo
	Cursor   int
	Selected config.Dialect
}

// NewDialectListModel creates a dialect list with the cursor on current.
func NewDialectListModel(current config.Dialect) DialectListModel {
	m := DialectListModel{}
	for i, d := range dialects.All {
		m.Dialects = append(m.Dialects, dialectInfo{
			Name:    d.Name(),
			Ext:     d.Ext(),
			Summary: dialectSummaries[d.Name()],
		})
		if d.Name() == current {
			m.Cursor = i
		}
	}
	return m
}

func (m DialectListModel) Init() tea.Cmd {
	return nil
}

func (m DialectListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Dialects)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Dialects[m.Cursor].Name
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m DialectListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Dialect"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(m.Dialects))
	for i, d := range m.Dialects {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, string(d.Name), "." + d.Ext, d.Summary})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Dialect", "Ext", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Dialects))))

	return b.String()
}

// pickDialect runs the picker. It returns "" if the user quits without
// choosing.
func pickDialect(current config.Dialect) (config.Dialect, error) {
	final, err := tea.NewProgram(NewDialectListModel(current)).Run()
	if err != nil {
		return "", fmt.Errorf("dialect picker: %w", err)
	}
	return final.(DialectListModel).Selected, nil
}
