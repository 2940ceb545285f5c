package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// fileMutex serializes writes to the config file
var fileMutex sync.Mutex

// fileConfig is the on-disk layout written by `config init`
type fileConfig struct {
	TemplatesDir string `yaml:"templates_dir"`
	Timeout      string `yaml:"timeout"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
	Theme        string `yaml:"theme"`
	NoBuiltin    bool   `yaml:"no_builtin"`
}

// ErrConfigExists is returned by WriteDefault when the file exists and
// overwrite was not requested
var ErrConfigExists = errors.New("config file already exists")

// WriteDefault writes a commented default configuration to path (the
// default location when empty). The write is atomic.
func WriteDefault(path string, overwrite bool) (string, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return "", fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	defaults := fileConfig{
		Timeout: DefaultTimeout.String(),
		Theme:   ThemeAuto,
	}
	data, err := yaml.Marshal(defaults)
	if err != nil {
		return path, fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# ptwebhook configuration
#
# Every key can also be set with a PTWEBHOOK_<KEY> environment variable
# (for example PTWEBHOOK_WEBHOOK) or the matching command-line flag.
#
# Security note: the webhook URL contains a secret token. It is not
# written here by default; prefer PTWEBHOOK_WEBHOOK in a .env file.
# webhook: https://discord.com/api/webhooks/{id}/{token}
#
# Location: ` + path + `

`)
	data = append(header, data...)

	if err := atomicWrite(path, data); err != nil {
		return path, err
	}
	return path, nil
}

// atomicWrite writes data to a temporary file and renames it into place
func atomicWrite(path string, data []byte) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
