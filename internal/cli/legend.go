package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/io"
	"github.com/matzehuels/modchart/pkg/legend"
	"github.com/matzehuels/modchart/pkg/pipeline"
)

// legendCommand creates the legend command, which prints the markdown key
// for the types a graph uses.
func (c *CLI) legendCommand() *cobra.Command {
	var (
		output     string
		inferTypes bool
	)

	cmd := &cobra.Command{
		Use:   "legend [graph-file]",
		Short: "Print a markdown legend of the project and link types in a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := c.loadConfig()
			if err != nil {
				return err
			}
			g, err := io.Import(args[0])
			if err != nil {
				return err
			}

			nodeTypes, edgeTypes := file.ProjectTypes, file.LinkTypes
			if inferTypes {
				nodeTypes, edgeTypes = config.InferTypes(g, nodeTypes, edgeTypes)
			}
			md := legend.ForGraph(g, nodeTypes, edgeTypes)

			if output == "" {
				fmt.Print(md)
				return nil
			}
			if err := pipeline.WriteFileAtomic(output, []byte(md)); err != nil {
				return err
			}
			printSuccess("Wrote legend")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&inferTypes, "infer-types", false, "include undeclared types with default styling")

	return cmd
}
