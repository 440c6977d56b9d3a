package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/modchart/pkg/legend"
	"github.com/matzehuels/modchart/pkg/pipeline"
	"github.com/matzehuels/modchart/pkg/readme"
)

// readmeCommand creates the readme command, which embeds existing artifact
// files in the README region without rendering anything.
func (c *CLI) readmeCommand() *cobra.Command {
	var (
		doc         string
		projectPath string
	)

	cmd := &cobra.Command{
		Use:   "readme [artifact...]",
		Short: "Embed existing chart files in the README chart region",
		Long: `Embed artifact files in the README region, in the order given.

Markdown and text files are inlined, diagram sources (.d2, .dot, .mmd) are
fenced, and anything else (such as .svg) is linked as an image. A file named
` + legend.FileName + ` is treated as the legend.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := c.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("readme") {
				doc = file.Output.Readme
			}
			if !cmd.Flags().Changed("project-path") {
				projectPath = file.Output.ProjectPath
			}
			return c.runReadme(cmd.Context(), doc, projectPath, args)
		},
	}

	cmd.Flags().StringVar(&doc, "readme", "", "document to update (default README.md)")
	cmd.Flags().StringVar(&projectPath, "project-path", "", "module path used as the title of a new README")

	return cmd
}

func (c *CLI) runReadme(ctx context.Context, doc, projectPath string, paths []string) error {
	artifacts := make([]readme.Artifact, 0, len(paths))
	for _, p := range paths {
		a, err := readme.Load(roleFor(p), p)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, a)
	}

	runner := pipeline.NewRunner(nil, nil, c.Logger)
	if err := runner.Inject(ctx, doc, projectPath, artifacts...); err != nil {
		return err
	}
	printSuccess("Updated %s", doc)
	for _, a := range artifacts {
		printDetail("%s %s", a.Role, a.Path)
	}
	return nil
}

// roleFor guesses an artifact's role from its file name.
func roleFor(path string) string {
	if strings.EqualFold(filepath.Base(path), legend.FileName) {
		return readme.RoleLegend
	}
	return readme.RoleChart
}
