package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigName is the config file basename looked up in the
	// project root when no explicit file is given.
	DefaultConfigName = "siteconf"
	envPrefix         = "SITECONF"
)

// Loader reads the site configuration from file and environment, layered
// over the built-in defaults.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load resolves the effective configuration. Precedence, lowest first:
// built-in defaults, the config file (explicit path, or siteconf.yaml in the
// current directory), then SITECONF_* environment variables. A missing file
// is only an error when it was named explicitly.
func (l *Loader) Load(cfgFile string) (*SiteConfig, error) {
	v := viper.New()

	// Register the scalar defaults so environment variables can override
	// them even when the config file omits the key. Structured defaults
	// (routes, pagination, static paths) come from Default() below.
	defaults := Default()
	v.SetDefault("author", defaults.Author)
	v.SetDefault("siteName", defaults.SiteName)
	v.SetDefault("tagline", defaults.Tagline)
	v.SetDefault("siteURL", defaults.SiteURL)
	v.SetDefault("timezone", defaults.Timezone)
	v.SetDefault("defaultLang", defaults.DefaultLang)
	v.SetDefault("contentDir", defaults.ContentDir)
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("filenameMetadata", defaults.FilenameMetadata)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				return nil, fmt.Errorf("config file %s not found: %w", cfgFile, err)
			}
			l.logger.Debug("no config file found, using defaults")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		l.logger.Debug("loaded config file", slog.String("path", v.ConfigFileUsed()))
	}

	// Unmarshal over the defaults so absent keys keep their built-in
	// values.
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return cfg, nil
}
