// Package config resolves ptwebhook's configuration.
//
// Settings come from, in increasing precedence: built-in defaults, a YAML
// file, PTWEBHOOK_* environment variables (a .env file in the working
// directory is loaded first) and command-line flags bound to the same
// viper instance.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/ptwebhook/config.yaml or $HOME/.config/ptwebhook/config.yaml
//   - macOS: $HOME/.config/ptwebhook/config.yaml
//   - Windows: %LOCALAPPDATA%\ptwebhook\config.yaml
//
// The same directory holds the per-user templates/ folder and the default
// log file.
//
// # Security
//
// The webhook URL embeds a secret token. `config init` never writes it;
// keep it in the environment or a .env file.
package config
