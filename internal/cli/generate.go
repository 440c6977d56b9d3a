package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/io"
)

// generateOpts holds the output overrides for the generate command.
// Unset flags fall back to the [output] section of the config file.
type generateOpts struct {
	chartFlags
	dir         string
	chartName   string
	format      string
	readme      string
	projectPath string
	noReadme    bool
	noLegend    bool
}

// generateCommand creates the generate command: render, write the chart
// files, and update the README region.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [graph-file]",
		Short: "Write chart files and update the README chart region",
		Long: `Render a module graph, write the chart (and legend) files, and embed them
in the README between the region sentinels:

  <!--region chart-->
  <!--endregion-->

A missing README is created with the project path as its title.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts.apply(cmd, file)
			if err := file.Validate(); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), args[0], file, &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.dir, "out-dir", "", "directory for chart files (default from config, else .)")
	cmd.Flags().StringVar(&opts.chartName, "chart-name", "", "chart file name without extension (default chart)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "chart format: source (default) or svg (graphviz only)")
	cmd.Flags().StringVar(&opts.readme, "readme", "", "document to update (default README.md)")
	cmd.Flags().StringVar(&opts.projectPath, "project-path", "", "module path used as the title of a new README")
	cmd.Flags().BoolVar(&opts.noReadme, "no-readme", false, "write chart files only")
	cmd.Flags().BoolVar(&opts.noLegend, "no-legend", false, "do not write a legend")

	return cmd
}

// apply overrides the config file's output section with the flags that
// were set on the command line.
func (o *generateOpts) apply(cmd *cobra.Command, file *config.File) {
	flags := cmd.Flags()
	if flags.Changed("out-dir") {
		file.Output.Dir = o.dir
	}
	if flags.Changed("chart-name") {
		file.Output.ChartName = o.chartName
	}
	if flags.Changed("format") {
		file.Output.Format = o.format
	}
	if flags.Changed("readme") {
		file.Output.Readme = o.readme
	}
	if flags.Changed("project-path") {
		file.Output.ProjectPath = o.projectPath
	}
	if o.noLegend {
		file.Output.Legend = config.Ptr(false)
	}
	if o.noGroup {
		file.Output.GroupByPath = config.Ptr(false)
	}
}

func (c *CLI) runGenerate(ctx context.Context, input string, file *config.File, opts *generateOpts) error {
	logger := log.FromContext(ctx)

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
	popts.SkipReadme = opts.noReadme

	var spinner *Spinner
	if file.Output.Format == config.FormatSVG {
		spinner = newSpinner(ctx, os.Stderr, "Laying out SVG...")
		spinner.Start()
	}
	gen, err := runner.Generate(ctx, g, file, popts)
	if spinner != nil {
		spinner.Stop()
		logger.Debug("svg generate finished", "elapsed", spinner.Elapsed().Round(time.Millisecond))
	}
	if err != nil {
		return err
	}
	for _, f := range gen.Files {
		printFile(f)
	}

	printSuccess("Generated %s chart", gen.Dialect)
	printStats(gen.Result)
	if gen.Readme != "" {
		printDetail("Updated %s", gen.Readme)
	} else if !opts.noReadme {
		printNextStep("Embed in a README", fmt.Sprintf("%s readme %s", appName, gen.Files[0]))
	}
	return nil
}
