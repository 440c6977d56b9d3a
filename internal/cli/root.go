package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/pipeline"
)

// loadConfig reads the config file named by --config, $MODCHART_CONFIG, or
// ./modchart.toml, in that order. Without any of them the defaults apply.
func (c *CLI) loadConfig() (*config.File, error) {
	path := c.configPath
	if path == "" {
		path = config.Find()
	}
	file, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		c.Logger.Debug("loaded config", "path", path, "config", file)
	}
	return file, nil
}

// chartFlags holds the flags shared by render and generate.
type chartFlags struct {
	dialect    string
	title      string
	noGroup    bool
	split      bool
	inferTypes bool
	noCache    bool
	refresh    bool
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.dialect, "dialect", "d", string(pipeline.DefaultDialect), "diagram dialect: d2, graphviz (dot), mermaid (mmd)")
	cmd.Flags().StringVar(&f.title, "title", "", "diagram title")
	cmd.Flags().BoolVar(&f.noGroup, "no-group", false, "do not group nodes into containers by module path")
	cmd.Flags().BoolVar(&f.split, "split", false, "write classes to a separate file (d2 only)")
	cmd.Flags().BoolVar(&f.inferTypes, "infer-types", false, "style undeclared project and link types with defaults")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "re-render even if a cached result exists")

	cmd.RegisterFlagCompletionFunc("dialect", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(config.Dialects))
		for i, d := range config.Dialects {
			names[i] = string(d)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

func (f *chartFlags) options() pipeline.Options {
	return pipeline.Options{
		Dialect:      config.Dialect(f.dialect),
		Title:        f.title,
		NoGrouping:   f.noGroup,
		SplitClasses: f.split,
		InferTypes:   f.inferTypes,
		Refresh:      f.refresh,
	}
}
