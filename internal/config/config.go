package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by viper,
// e.g. PTWEBHOOK_WEBHOOK or PTWEBHOOK_TEMPLATES_DIR.
const EnvPrefix = "PTWEBHOOK"

// Configuration keys, shared by the YAML file, environment and flags
const (
	KeyWebhook      = "webhook"
	KeyTemplatesDir = "templates_dir"
	KeyTimeout      = "timeout"
	KeyLogLevel     = "log_level"
	KeyLogFile      = "log_file"
	KeyTheme        = "theme"
	KeyNoBuiltin    = "no_builtin"
)

// DefaultTimeout bounds a single webhook submission
const DefaultTimeout = 10 * time.Second

// Preview themes
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
	ThemePlain = "notty"
)

// LocalTemplatesDir is searched relative to the working directory
const LocalTemplatesDir = "templates"

// Config is the resolved application configuration
type Config struct {
	Webhook      string        // webhook URL or {id}/{token}
	TemplatesDir string        // extra template directory, searched first
	Timeout      time.Duration // per-submission timeout
	LogLevel     string
	LogFile      string
	Theme        string // preview markdown theme
	NoBuiltin    bool   // leave embedded templates out of the catalog

	// File is the config file that was read, or "" when none existed
	File string
}

// NewViper returns a viper instance with defaults and environment
// binding configured. Callers bind cobra flags to it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyTheme, ThemeAuto)
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyWebhook, "")
	v.SetDefault(KeyTemplatesDir, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyNoBuiltin, false)
	return v
}

// LoadDotEnv loads a .env file from the working directory into the
// process environment. A missing file is not an error; variables that
// are already set win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads the config file at path (the default location when empty)
// into v and resolves the final configuration. Precedence is flags, then
// environment, then the file, then defaults. A missing file is fine.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	cfg := &Config{}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else {
		cfg.File = path
	}

	cfg.Webhook = strings.TrimSpace(v.GetString(KeyWebhook))
	cfg.TemplatesDir = v.GetString(KeyTemplatesDir)
	cfg.Timeout = v.GetDuration(KeyTimeout)
	cfg.LogLevel = v.GetString(KeyLogLevel)
	cfg.LogFile = v.GetString(KeyLogFile)
	cfg.Theme = strings.ToLower(v.GetString(KeyTheme))
	cfg.NoBuiltin = v.GetBool(KeyNoBuiltin)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	switch c.Theme {
	case ThemeAuto, ThemeDark, ThemeLight, ThemePlain:
	default:
		return fmt.Errorf("unknown theme %q (want auto, dark, light or notty)", c.Theme)
	}
	return nil
}

// TemplateSearchDirs lists template directories in precedence order:
// the configured directory, ./templates, then the per-user directory.
func (c *Config) TemplateSearchDirs() []string {
	var dirs []string
	if c.TemplatesDir != "" {
		dirs = append(dirs, c.TemplatesDir)
	}
	dirs = append(dirs, LocalTemplatesDir)
	if userDir, err := GetTemplatesDir(); err == nil {
		dirs = append(dirs, userDir)
	}
	return dirs
}

// ResolvedLogFile returns the log file path, defaulting to the config
// directory.
func (c *Config) ResolvedLogFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	if p, err := GetLogPath(); err == nil {
		return p
	}
	return ""
}
