package pipeline

import (
	"context"
	"path/filepath"
	"slices"
	"time"

	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/errors"
	"github.com/matzehuels/modchart/pkg/graph"
	"github.com/matzehuels/modchart/pkg/legend"
	"github.com/matzehuels/modchart/pkg/observability"
	"github.com/matzehuels/modchart/pkg/readme"
)

// Generated describes the outcome of a full pipeline run.
type Generated struct {
	*Result

	// Files lists the paths written, in write order.
	Files []string

	// Readme is the document that was updated, or "" when skipped.
	Readme string
}

// Generate renders g, writes the chart files, and injects them into the
// README named by file.Output.
//
// The README text is built before anything is written, so a README without
// a region fails with MISSING_REGION and leaves the directory untouched.
// The chart files and the README are then written as one batch.
func (r *Runner) Generate(ctx context.Context, g *graph.Graph, file *config.File, opts Options) (*Generated, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if !config.IsTrue(file.Output.GroupByPath) {
		opts.NoGrouping = true
	}
	svg := file.Output.Format == config.FormatSVG
	if svg && opts.Dialect != config.DialectGraphviz {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"svg output requires the graphviz dialect, got %s", opts.Dialect)
	}

	cfg := file.ForDialect(opts.Dialect)
	result, err := r.Render(ctx, g, cfg, opts)
	if err != nil {
		return nil, err
	}

	files, err := r.artifacts(ctx, g, file, result, opts.Refresh)
	if err != nil {
		return nil, err
	}
	gen := &Generated{Result: result}
	for _, f := range files {
		gen.Files = append(gen.Files, f.Path)
	}

	batch := files
	created := false
	if !opts.SkipReadme && file.Output.Readme != "" {
		var embeds []readme.Artifact
		for _, f := range files {
			if f.Role == readme.RoleChart || f.Role == readme.RoleLegend {
				embeds = append(embeds, readme.Artifact{Role: f.Role, Path: f.Path, Content: string(f.Data)})
			}
		}
		var text string
		text, created, err = r.document(ctx, file.Output.Readme, file.Output.ProjectPath, embeds...)
		if err != nil {
			return nil, err
		}
		batch = append(slices.Clip(files), File{Role: RoleReadme, Path: file.Output.Readme, Data: []byte(text)})
		gen.Readme = file.Output.Readme
	}

	if err := WriteFiles(batch); err != nil {
		return nil, err
	}
	r.Logger.Info("wrote chart", "dialect", result.Dialect, "files", len(files), "cached", result.CacheHit)
	if gen.Readme != "" {
		r.Logger.Info("updated readme", "path", gen.Readme, "created", created)
	}
	return gen, nil
}

// artifacts lists the files for a rendered chart.
func (r *Runner) artifacts(ctx context.Context, g *graph.Graph, file *config.File, res *Result, refresh bool) ([]File, error) {
	base := filepath.Join(file.Output.Dir, file.Output.ChartName)
	source := File{Role: readme.RoleChart, Path: base + "." + res.Ext, Data: []byte(res.Source)}

	var files []File
	if res.Classes != "" {
		files = append(files, File{
			Role: "classes",
			Path: filepath.Join(file.Output.Dir, ClassesName+"."+res.Ext),
			Data: []byte(res.Classes),
		})
	}

	if file.Output.Format == config.FormatSVG {
		var layout config.LayoutEngine
		if res.Config.LayoutEngine != nil {
			layout = *res.Config.LayoutEngine
		}
		start := time.Now()
		svg, _, err := r.SVG(ctx, res.Source, layout, refresh)
		if err != nil {
			return nil, err
		}
		res.Stats.SVGTime = time.Since(start)
		source.Role = "source"
		files = append(files, source, File{Role: readme.RoleChart, Path: base + ".svg", Data: svg})
	} else {
		files = append(files, source)
	}

	if config.IsTrue(file.Output.Legend) {
		md := legend.ForGraph(g, res.Config.ProjectTypes, res.Config.LinkTypes)
		if md != "" {
			files = append(files, File{
				Role: readme.RoleLegend,
				Path: filepath.Join(file.Output.Dir, legend.FileName),
				Data: []byte(md),
			})
		}
	}
	return files, nil
}

// Inject embeds artifacts in the region of the document at docPath, or
// creates the document titled after projectPath if it does not exist.
func (r *Runner) Inject(ctx context.Context, docPath, projectPath string, artifacts ...readme.Artifact) error {
	text, created, err := r.document(ctx, docPath, projectPath, artifacts...)
	if err != nil {
		return err
	}
	if err := WriteFileAtomic(docPath, []byte(text)); err != nil {
		return err
	}
	r.Logger.Info("updated readme", "path", docPath, "created", created, "artifacts", len(artifacts))
	return nil
}

// document returns the new text of the document at docPath and whether it
// is a new document. Nothing is written.
func (r *Runner) document(ctx context.Context, docPath, projectPath string, artifacts ...readme.Artifact) (text string, created bool, err error) {
	start := time.Now()
	observability.Pipeline().OnInjectStart(ctx, docPath)
	defer func() {
		observability.Pipeline().OnInjectComplete(ctx, docPath, time.Since(start), err)
	}()

	existing, err := readme.Read(docPath)
	if err != nil {
		return "", false, err
	}
	text, err = readme.Write(docPath, projectPath, existing, artifacts...)
	if err != nil {
		return "", false, err
	}
	return text, existing == nil, nil
}
