package config

// Config is the immutable per-run configuration. It is built once at
// startup (built-in defaults, optionally overlaid by a YAML file and
// SITEMAP_* environment variables) and passed down by value semantics;
// nothing mutates it after Load.
type Config struct {
	Site        SiteConfig     `mapstructure:"site"`
	Output      OutputConfig   `mapstructure:"output"`
	Defaults    EntryDefaults  `mapstructure:"defaults"`
	Fallback    string         `mapstructure:"fallback"`
	Categories  []CategoryRule `mapstructure:"categories"`
	StaticPages []StaticPage   `mapstructure:"static_pages"`
	Logger      LoggerConfig   `mapstructure:"logger"`
}

type SiteConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	ToolPrefix string `mapstructure:"tool_prefix"`
}

type OutputConfig struct {
	Dir       string `mapstructure:"dir"`
	IndexFile string `mapstructure:"index_file"`
}

// EntryDefaults fills in sitemap fields a source record is missing.
type EntryDefaults struct {
	ChangeFreq string  `mapstructure:"changefreq"`
	Priority   float64 `mapstructure:"priority"`
}

// CategoryRule is one entry of the categorization decision list. Order of
// rules and order of patterns within a rule are both significant: earlier
// wins.
type CategoryRule struct {
	Name     string   `mapstructure:"name"`
	Patterns []string `mapstructure:"patterns"`
}

type StaticPage struct {
	Path       string  `mapstructure:"path"`
	ChangeFreq string  `mapstructure:"changefreq"`
	Priority   float64 `mapstructure:"priority"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"time_format"`
}

type Manager interface {
	Load(configPath string) (*Config, error)
	GetConfig() *Config
}
