// Package dialects lists every supported diagram dialect.
//
// It lives apart from pkg/render because the dialect packages import render;
// consumers that need to pick a dialect by name import this package.
package dialects

import (
	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/errors"
	"github.com/matzehuels/modchart/pkg/render"
	"github.com/matzehuels/modchart/pkg/render/d2"
	"github.com/matzehuels/modchart/pkg/render/graphviz"
	"github.com/matzehuels/modchart/pkg/render/mermaid"
)

// All is the list of supported dialects in [config.Dialects] order.
var All = []render.Dialect{
	d2.Dialect{},
	graphviz.Dialect{},
	mermaid.Dialect{},
}

// Find returns the dialect with the given name.
func Find(name config.Dialect) (render.Dialect, error) {
	for _, d := range All {
		if d.Name() == name {
			return d, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidDialect, "unsupported dialect %q", name)
}

// Parse resolves a dialect name or alias, such as "dot" or "mmd".
func Parse(name string) (render.Dialect, error) {
	d, err := config.ParseDialect(name)
	if err != nil {
		return nil, err
	}
	return Find(d)
}
