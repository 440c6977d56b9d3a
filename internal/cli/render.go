package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/errors"
	"github.com/matzehuels/modchart/pkg/io"
	"github.com/matzehuels/modchart/pkg/pipeline"
	"github.com/matzehuels/modchart/pkg/render/graphviz"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	chartFlags
	output      string // output file; stdout when empty
	interactive bool   // pick the dialect from a list
	check       bool   // parse Graphviz output before writing it
}

// renderCommand creates the render command, which prints or writes the
// diagram source for one graph file without touching the README.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [graph-file]",
		Short: "Render a module graph as diagram source",
		Long: `Render a module graph (JSON, YAML or TOML) as D2, Graphviz or Mermaid source.

The diagram is written to stdout unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.interactive {
				d, err := pickDialect(config.Dialect(opts.dialect))
				if err != nil {
					return err
				}
				if d == "" {
					return nil // cancelled
				}
				opts.dialect = string(d)
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "choose the dialect interactively")
	cmd.Flags().BoolVar(&opts.check, "check", false, "parse Graphviz output with the embedded Graphviz before writing")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := log.FromContext(ctx)

	file, err := c.loadConfig()
	if err != nil {
		return err
	}
	g, err := io.Import(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	runner, err := c.newRunner(ctx, file, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := opts.options()
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if !config.IsTrue(file.Output.GroupByPath) {
		popts.NoGrouping = true
	}

	prog := newProgress(logger)
	res, err := runner.Render(ctx, g, file.ForDialect(popts.Dialect), popts)
	if err != nil {
		return err
	}
	if opts.check {
		if res.Dialect != config.DialectGraphviz {
			return errors.New(errors.ErrCodeUnsupported, "--check only applies to the graphviz dialect")
		}
		if err := graphviz.Check(ctx, res.Source); err != nil {
			return err
		}
		logger.Debug("DOT source parsed")
	}

	if opts.output == "" {
		if res.Classes != "" {
			fmt.Print(res.Classes)
			fmt.Println()
		}
		fmt.Print(res.Source)
		return nil
	}

	files := []pipeline.File{{Path: opts.output, Data: []byte(res.Source)}}
	if res.Classes != "" {
		classes := filepath.Join(filepath.Dir(opts.output), pipeline.ClassesName+"."+res.Ext)
		files = append(files, pipeline.File{Path: classes, Data: []byte(res.Classes)})
	}
	if err := pipeline.WriteFiles(files); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %s", res.Dialect))
	for _, f := range files {
		printFile(f.Path)
	}
	printStats(res)
	return nil
}
