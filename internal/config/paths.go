package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName      = "ptwebhook"
	configFile   = "config.yaml"
	templatesDir = "templates"
	logFile      = "ptwebhook.log"
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/ptwebhook or $HOME/.config/ptwebhook
//   - macOS: $HOME/.config/ptwebhook (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\ptwebhook
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	return inConfigDir(configFile)
}

// GetTemplatesDir returns the per-user template directory.
func GetTemplatesDir() (string, error) {
	return inConfigDir(templatesDir)
}

// GetLogPath returns the default log file path.
func GetLogPath() (string, error) {
	return inConfigDir(logFile)
}

func inConfigDir(name string) (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, name), nil
}
