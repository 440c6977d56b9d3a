package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/modchart/pkg/errors"
	"github.com/matzehuels/modchart/pkg/pipeline"
)

// Palette shared by the status lines, the spinner and the dialect picker.
var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
	colorRed   = lipgloss.Color("203")
)

var (
	// StyleTitle is used for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	// StyleHighlight is used for addresses and dialect names.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	// StyleDim is used for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
	// StyleValue is used for paths.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCached      = lipgloss.NewStyle().Foreground(colorGreen)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleError       = lipgloss.NewStyle().Foreground(colorRed)
)

// PrintError writes a failed command's message to w.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, styleError.Render("✗ Error:")+" "+errors.UserMessage(err))
}

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render("✓") + " " + fmt.Sprintf(format, args...))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render("›") + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints one written artifact.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

// printStats prints the graph size, timings and cache state of a render:
//
//	6 modules · 7 links · 3ms · cached
func printStats(res *pipeline.Result) {
	fmt.Println("  " + statsLine(res))
}

func statsLine(res *pipeline.Result) string {
	parts := []string{
		plural(res.Stats.NodeCount, "module"),
		plural(res.Stats.EdgeCount, "link"),
	}
	if res.CacheHit {
		parts = append(parts, styleCached.Render("cached"))
	} else {
		parts = append(parts, StyleDim.Render(res.Stats.RenderTime.Round(time.Millisecond).String()))
	}
	if res.Stats.SVGTime > 0 {
		parts = append(parts, StyleDim.Render("svg "+res.Stats.SVGTime.Round(time.Millisecond).String()))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

func plural(n int, noun string) string {
	if n == 1 {
		return StyleDim.Render("1 " + noun)
	}
	return StyleDim.Render(fmt.Sprintf("%d %ss", n, noun))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}
