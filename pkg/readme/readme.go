// Package readme injects rendered artifacts into a documentation file.
//
// A document holds one region delimited by sentinel comments:
//
//	Something above
//
//	<!--region chart-->
//	Anything in between
//	<!--endregion-->
//
//	Something below
//
// [Inject] replaces the text between the sentinels and keeps everything else
// byte for byte. [NewDocument] builds a fresh document around the region when
// no file exists yet. Both are pure functions of their inputs; reading and
// writing the file is left to the caller.
package readme

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/matzehuels/modchart/pkg/errors"
)

// Region sentinels.
const (
	RegionStart = "<!--region chart-->"
	RegionEnd   = "<!--endregion-->"
)

// Artifact roles.
const (
	RoleChart  = "chart"
	RoleLegend = "legend"
)

var regionRe = regexp.MustCompile(`(?s)(.*` + regexp.QuoteMeta(RegionStart) + `)(.*?)(` + regexp.QuoteMeta(RegionEnd) + `.*)`)

// Artifact is one generated file to embed.
type Artifact struct {
	Role    string // "chart" or "legend"; used as the image alt text
	Path    string // Location of the artifact file
	Content string // File contents, used by text and diagram-source embeds
}

// Inject replaces the region interior of doc with body.
//
// Everything up to and including the start sentinel and everything from the
// end sentinel on is preserved. The result is the prefix, a newline, body,
// then the suffix. A document without the sentinel pair yields a
// MISSING_REGION error naming file and the expected pattern.
func Inject(file, doc, body string) (string, error) {
	m := regionRe.FindStringSubmatch(doc)
	if m == nil {
		return "", errors.New(errors.ErrCodeMissingRegion,
			"no injectable region found in %s, requires a block matching regex: %s", file, regionRe)
	}
	return m[1] + "\n" + body + m[3], nil
}

// NewDocument builds a document titled after a module path, with the
// region holding body. The leading ":" of the path is dropped from the
// title, so ":a:b" becomes "# a:b".
func NewDocument(projectPath, body string) string {
	var b strings.Builder
	b.WriteString("# " + strings.TrimPrefix(projectPath, ":") + "\n")
	b.WriteString("\n")
	b.WriteString(RegionStart + "\n")
	b.WriteString(body)
	b.WriteString(RegionEnd)
	return b.String()
}

// Contents assembles the region body for a document at docPath.
//
// Each artifact is embedded by extension: markdown and text verbatim,
// diagram sources in a fenced block for their language, anything else as an
// image link relative to the document's directory. Blank embeds are dropped
// and the remaining ones are separated by one blank line. Each line,
// including the last, ends with a newline.
func Contents(docPath string, artifacts ...Artifact) string {
	var parts []string
	for _, a := range artifacts {
		if s := embed(docPath, a); strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

var fences = map[string]string{
	"mmd":     "mermaid",
	"mermaid": "mermaid",
	"d2":      "d2",
	"dot":     "dot",
	"gv":      "dot",
}

func embed(docPath string, a Artifact) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(a.Path), "."))
	switch ext {
	case "md", "txt":
		return strings.TrimSpace(a.Content)
	}
	if lang, ok := fences[ext]; ok {
		if strings.TrimSpace(a.Content) == "" {
			return ""
		}
		return "```" + lang + "\n" + strings.TrimSpace(a.Content) + "\n```"
	}
	return "![" + a.Role + "](" + relative(docPath, a.Path) + ")"
}

// relative returns target relative to the directory holding doc, with
// forward slashes. Paths that cannot be made relative are returned as is.
func relative(doc, target string) string {
	rel, err := filepath.Rel(filepath.Dir(doc), target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}

// Write returns the new text of the document at docPath: the existing
// document with its region replaced, or a new document when existing is nil.
func Write(docPath, projectPath string, existing *string, artifacts ...Artifact) (string, error) {
	body := Contents(docPath, artifacts...)
	if existing == nil {
		return NewDocument(projectPath, body), nil
	}
	return Inject(docPath, *existing, body)
}

// Read returns the document at path, or nil if it does not exist.
func Read(path string) (*string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}

// Load reads an artifact file. Image artifacts only need their path, so
// their content is not read.
func Load(role, path string) (Artifact, error) {
	a := Artifact{Role: role, Path: path}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if _, ok := fences[ext]; !ok && ext != "md" && ext != "txt" {
		return a, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, err
	}
	a.Content = string(data)
	return a, nil
}
