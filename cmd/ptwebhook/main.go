// Ptwebhook sends templated messages to a Discord webhook.
//
// Templates are TOML or YAML files describing a form. The interactive
// wizard walks through picking a template, filling the form, previewing
// the rendered message and sending it. The same pipeline is available
// non-interactively through the send command for scripts.
//
// Usage:
//
//	ptwebhook [command] [flags]
//
// Running without arguments launches the interactive wizard.
// See 'ptwebhook --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ptwebhook/ptwebhook/internal/config"
	"github.com/ptwebhook/ptwebhook/internal/logging"
	"github.com/ptwebhook/ptwebhook/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Resolved configuration, filled by loadConfig before any command runs
var (
	v       = config.NewViper()
	cfg     *config.Config
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "ptwebhook",
	Short: "Discord webhook template wizard",
	Long: `Send templated messages to a Discord channel through a webhook.

Pick a template, fill in its form, preview the rendered message and send it.
Templates are loaded from --templates, ./templates, the templates folder in
the config directory, and the built-in set, in that order.

If no command is specified, the interactive wizard will launch automatically.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run wizard when no subcommand provided
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default is <config dir>/ptwebhook/config.yaml)")
	flags.StringP("token", "t", "", "Webhook URL or {id}/{token} (env PTWEBHOOK_WEBHOOK)")
	flags.String("templates", "", "Extra template directory, searched first")
	flags.Duration("timeout", config.DefaultTimeout, "Timeout for one webhook submission")
	flags.String("theme", config.ThemeAuto, "Preview theme (auto, dark, light, notty)")
	flags.Bool("no-builtin", false, "Leave the built-in templates out of the catalog")
	flags.String("log-level", "", "Log level (debug, info, warn, error); logging is off when empty")
	flags.String("log-file", "", "Log file (default is <config dir>/ptwebhook/ptwebhook.log)")

	bindings := map[string]string{
		config.KeyWebhook:      "token",
		config.KeyTemplatesDir: "templates",
		config.KeyTimeout:      "timeout",
		config.KeyTheme:        "theme",
		config.KeyNoBuiltin:    "no-builtin",
		config.KeyLogLevel:     "log-level",
		config.KeyLogFile:      "log-file",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", flag, err))
		}
	}

	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves flags, environment, .env and the config file, then
// starts logging
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	var err error
	cfg, err = config.Load(v, cfgFile)
	if err != nil {
		return err
	}

	if err := logging.Initialize(cfg.LogLevel, cfg.ResolvedLogFile()); err != nil {
		return err
	}
	logging.Debug("Starting ptwebhook",
		zap.String("version", version.Full()),
		zap.String("command", cmd.CommandPath()),
		zap.String("config", cfg.File),
	)
	return nil
}

// skipConfig replaces loadConfig for commands that must work even when
// the configuration is broken
func skipConfig(cmd *cobra.Command, args []string) error {
	return nil
}

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	PersistentPreRunE: skipConfig,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ptwebhook %s (commit: %s)\n", version.Version, version.Commit)
	},
}
