package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/modchart/pkg/errors"
	"github.com/matzehuels/modchart/pkg/graph"
)

// FileName is the config file looked up in the working directory.
const FileName = "modchart.toml"

// EnvConfig names the environment variable that points at a config file.
const EnvConfig = "MODCHART_CONFIG"

// File is the on-disk configuration.
//
//	[diagram]
//	direction = "right"
//	display_link_labels = true
//
//	[d2]
//	layout_engine = "elk"
//
//	[[project_types]]
//	name = "Library"
//	color = "#3f51b5"
//
//	[[link_types]]
//	name = "api"
//	style = "bold"
type File struct {
	Diagram      Config           `toml:"diagram"`
	ProjectTypes []graph.NodeType `toml:"project_types"`
	LinkTypes    []graph.EdgeType `toml:"link_types"`

	// Dialect sections override [diagram] for one dialect.
	D2       *Config `toml:"d2"`
	Graphviz *Config `toml:"graphviz"`
	Mermaid  *Config `toml:"mermaid"`

	Output OutputConfig `toml:"output"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// OutputConfig controls where generated artifacts are written.
type OutputConfig struct {
	Dir         string `toml:"dir"`          // Directory for chart files (default ".")
	ChartName   string `toml:"chart_name"`   // Base file name without extension (default "chart")
	Format      string `toml:"format"`       // "source" (default) or "svg"
	Readme      string `toml:"readme"`       // Document to inject into (default "README.md")
	Legend      *bool  `toml:"legend"`       // Write a legend next to the chart (default true)
	ProjectPath string `toml:"project_path"` // Hierarchical path used for the README title
	GroupByPath *bool  `toml:"group_by_path"`
}

// CacheConfig selects and configures the render cache.
type CacheConfig struct {
	Backend       string        `toml:"backend"` // "file" (default), "redis", "mongo" or "none"
	Dir           string        `toml:"dir"`
	RedisAddr     string        `toml:"redis_addr"`
	MongoURI      string        `toml:"mongo_uri"`
	MongoDatabase string        `toml:"mongo_database"`
	TTL           time.Duration `toml:"ttl"`
}

// ServerConfig configures the HTTP render service.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Defaults for the output, cache and server sections.
const (
	DefaultChartName  = "chart"
	DefaultReadme     = "README.md"
	DefaultServerAddr = ":8080"
	DefaultCacheTTL   = 7 * 24 * time.Hour

	FormatSource = "source"
	FormatSVG    = "svg"
)

// Default returns an empty configuration with defaults applied.
func Default() *File {
	f := &File{}
	f.applyDefaults()
	return f
}

// Find returns the config path to use: $MODCHART_CONFIG if set, otherwise
// ./modchart.toml if it exists, otherwise "".
func Find() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	return ""
}

// Load reads and validates a config file. An empty path returns Default().
// Keys that do not map to any field are rejected so typos surface early.
func Load(path string) (*File, error) {
	if path == "" {
		return Default(), nil
	}

	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Decode parses TOML text into a File, applying defaults and validation.
func Decode(data string) (*File, error) {
	var f File
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) applyDefaults() {
	if f.Output.Dir == "" {
		f.Output.Dir = "."
	}
	if f.Output.ChartName == "" {
		f.Output.ChartName = DefaultChartName
	}
	if f.Output.Format == "" {
		f.Output.Format = FormatSource
	}
	if f.Output.Readme == "" {
		f.Output.Readme = DefaultReadme
	}
	if f.Output.Legend == nil {
		f.Output.Legend = Ptr(true)
	}
	if f.Output.GroupByPath == nil {
		f.Output.GroupByPath = Ptr(true)
	}
	if f.Cache.Backend == "" {
		f.Cache.Backend = "file"
	}
	if f.Cache.TTL == 0 {
		f.Cache.TTL = DefaultCacheTTL
	}
	if f.Server.Addr == "" {
		f.Server.Addr = DefaultServerAddr
	}
}

// Validate checks every section of the file.
func (f *File) Validate() error {
	for _, d := range Dialects {
		cfg := f.ForDialect(d)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	switch f.Output.Format {
	case FormatSource, FormatSVG:
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid output format: %q (must be source or svg)", f.Output.Format)
	}
	switch f.Cache.Backend {
	case "file", "redis", "mongo", "none":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "invalid cache backend: %q (must be file, redis, mongo or none)", f.Cache.Backend)
	}
	return nil
}

// ForDialect returns the [diagram] section merged with the dialect's own
// section, with the top-level type lists attached.
func (f *File) ForDialect(d Dialect) Config {
	cfg := f.Diagram
	if override := f.section(d); override != nil {
		cfg = Merge(cfg, *override)
	}
	if cfg.ProjectTypes == nil {
		cfg.ProjectTypes = f.ProjectTypes
	}
	if cfg.LinkTypes == nil {
		cfg.LinkTypes = f.LinkTypes
	}
	return cfg
}

func (f *File) section(d Dialect) *Config {
	switch d {
	case DialectD2:
		return f.D2
	case DialectGraphviz:
		return f.Graphviz
	case DialectMermaid:
		return f.Mermaid
	}
	return nil
}

// String returns a short description for debug logging.
func (f *File) String() string {
	return fmt.Sprintf("config{project_types=%d link_types=%d cache=%s format=%s}",
		len(f.ProjectTypes), len(f.LinkTypes), f.Cache.Backend, f.Output.Format)
}
