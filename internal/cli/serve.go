package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/modchart/internal/server"
	"github.com/matzehuels/modchart/pkg/buildinfo"
	"github.com/matzehuels/modchart/pkg/observability"
)

// serveCommand creates the serve command, which runs the HTTP render service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
		tracing bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Long: `Serve the render API over HTTP.

  POST /render            render a graph, JSON in and out
  POST /render/{dialect}  render a graph, diagram text out
  POST /legend            markdown legend for a graph
  POST /svg               lay out DOT as SVG
  GET  /healthz           health check

The cache backend comes from the [cache] section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			file, err := c.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = file.Server.Addr
			}

			if tracing {
				hooks := observability.NewOTelHooks()
				observability.SetPipelineHooks(hooks)
				observability.SetCacheHooks(hooks)
				observability.SetServerHooks(hooks)
			}

			runner, err := c.newRunner(ctx, file, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner, server.Config{Addr: addr, Version: buildinfo.Version}, c.Logger)
			printInfo("Serving on %s", StyleHighlight.Render(addr))
			printDetail("cache: %s", file.Cache.Backend)
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&tracing, "trace", false, "record OpenTelemetry spans with the global tracer provider")

	return cmd
}
