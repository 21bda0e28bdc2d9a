package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type manager struct {
	mu     sync.RWMutex
	config *Config
	viper  *viper.Viper
}

func NewManager() Manager {
	return &manager{
		viper: viper.New(),
	}
}

// Load builds the run configuration. It starts from the built-in defaults,
// overlays the YAML file at configPath when one exists, then applies
// SITEMAP_* environment variables. A missing file is not an error; the
// generator is expected to run with no configuration at all.
func (m *manager) Load(configPath string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.viper.SetEnvPrefix("SITEMAP")
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.viper.AutomaticEnv()
	// Scalar keys only; categories and static_pages have no sensible
	// environment representation.
	for _, key := range []string{
		"site.base_url", "site.tool_prefix",
		"output.dir", "output.index_file",
		"defaults.changefreq", "defaults.priority",
		"fallback",
		"logger.level", "logger.format", "logger.output", "logger.time_format",
	} {
		m.viper.BindEnv(key)
	}

	config := Default()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			m.viper.SetConfigFile(configPath)
			if err := m.viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	if err := m.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Site.BaseURL = strings.TrimRight(config.Site.BaseURL, "/")

	if err := m.validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m.config = &config
	return &config, nil
}

func (m *manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

func (m *manager) validateConfig(config *Config) error {
	if config.Site.BaseURL == "" {
		return fmt.Errorf("base_url cannot be empty")
	}

	if config.Output.Dir == "" {
		return fmt.Errorf("output dir cannot be empty")
	}

	if len(config.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}

	fallbackSeen := false
	for _, rule := range config.Categories {
		if rule.Name == "" {
			return fmt.Errorf("category name cannot be empty")
		}
		if rule.Name == config.Fallback {
			fallbackSeen = true
		}
		for _, pattern := range rule.Patterns {
			if _, err := regexp.Compile("(?i)" + pattern); err != nil {
				return fmt.Errorf("category %s: invalid pattern %q: %w", rule.Name, pattern, err)
			}
		}
	}
	if !fallbackSeen {
		return fmt.Errorf("fallback category %q is not declared", config.Fallback)
	}

	return nil
}
