package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/modchart/pkg/cache"
)

// cacheCommand manages the local file cache. Redis and Mongo backends
// expire entries on their own.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local render cache",
	}

	cmd.AddCommand(c.cacheSweepCommand("clear", "Remove all cached renders", (*cache.FileCache).Clear))
	cmd.AddCommand(c.cacheSweepCommand("prune", "Remove expired and corrupt cache entries", (*cache.FileCache).Prune))
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.localCacheDir()
			if err != nil {
				return err
			}
			fmt.Println(dir)
			return nil
		},
	})

	return cmd
}

// cacheSweepCommand builds a subcommand that deletes entries with sweep.
func (c *CLI) cacheSweepCommand(use, short string, sweep func(*cache.FileCache) (int, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.localCacheDir()
			if err != nil {
				return err
			}
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			count, err := sweep(fc)
			if err != nil {
				return err
			}
			log.FromContext(cmd.Context()).Debug("cache sweep", "command", use, "dir", dir, "removed", count)
			printSuccess("Removed %d cached entries", count)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// localCacheDir returns the file cache directory: [cache] dir from the
// config file, else the XDG default.
func (c *CLI) localCacheDir() (string, error) {
	file, err := c.loadConfig()
	if err != nil {
		return "", err
	}
	if file.Cache.Dir != "" {
		return file.Cache.Dir, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return "", fmt.Errorf("get cache dir: %w", err)
	}
	return dir, nil
}
