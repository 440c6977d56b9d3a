package graphviz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/errors"
)

// RenderSVG lays out DOT source with Graphviz and returns the SVG.
// A non-empty layout selects the Graphviz program; otherwise dot is used.
func RenderSVG(ctx context.Context, dot string, layout config.LayoutEngine) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	if layout != "" {
		gv.SetLayout(graphviz.Layout(layout))
	}

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// Check parses DOT source and reports syntax errors.
func Check(ctx context.Context, dot string) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	return g.Close()
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="(-?[0-9.]+)\s+(-?[0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the image scales with its
// container: width and height become the unitless viewBox size instead of
// points. Only the first svg tag is rewritten and the viewBox origin is
// kept, so nested svg elements and offset drawings are left intact.
func normalizeViewBox(svg []byte) []byte {
	loc := svgTagRe.FindIndex(svg)
	if loc == nil {
		return svg
	}
	match := viewBoxRe.FindSubmatch(svg[loc[0]:loc[1]])
	if match == nil {
		return svg
	}

	x, _ := strconv.ParseFloat(string(match[1]), 64)
	y, _ := strconv.ParseFloat(string(match[2]), 64)
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	var out bytes.Buffer
	out.Grow(len(svg))
	out.Write(svg[:loc[0]])
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %.2f %.2f" width="%.0f" height="%.0f">`,
		strconv.FormatFloat(x, 'f', -1, 64), strconv.FormatFloat(y, 'f', -1, 64), w, h, w, h)
	out.Write(svg[loc[1]:])
	return out.Bytes()
}
