package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ptwebhook/ptwebhook/internal/catalog"
	"github.com/ptwebhook/ptwebhook/internal/config"
	"github.com/ptwebhook/ptwebhook/internal/dispatch"
	"github.com/ptwebhook/ptwebhook/internal/form"
	"github.com/ptwebhook/ptwebhook/internal/logging"
	"github.com/ptwebhook/ptwebhook/internal/payload"
	"github.com/ptwebhook/ptwebhook/internal/ui"
	"github.com/ptwebhook/ptwebhook/internal/urls"
	"github.com/ptwebhook/ptwebhook/internal/webhook"
	"github.com/ptwebhook/ptwebhook/internal/wizard/tui"
)

// Command flags
var (
	templateFilter string
	sendTemplate   string
	sendValues     []string
	dryRun         bool
	assumeYes      bool
	forceInit      bool
)

func init() {
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(configCmd)
}

// loadCatalog assembles the template catalog from the configured search
// paths. On error the catalog problems are printed before returning.
func loadCatalog(p *ui.Printer) (*catalog.Catalog, error) {
	dirs := cfg.TemplateSearchDirs()
	c, err := catalog.Load(catalog.LoadOptions{
		Dirs:        dirs,
		SkipBuiltin: cfg.NoBuiltin,
	})
	if err != nil {
		p.PrintError("Template catalog has problems", nil, []string{
			"Fix the template files listed below",
			"Run 'ptwebhook validate' to check templates without sending",
		})
		p.PrintProblems(err)
		return nil, err
	}

	sources := append([]string{}, dirs...)
	if !cfg.NoBuiltin {
		sources = append(sources, catalog.SourceBuiltin)
	}
	logging.LogCatalogLoaded(c.Len(), sources)
	return c, nil
}

// resolveWebhook returns the canonical webhook URL from flags, environment
// or config file
func resolveWebhook() (string, error) {
	if cfg.Webhook == "" {
		return "", fmt.Errorf("no webhook configured: pass --token, set %s_WEBHOOK, or add 'webhook' to the config file\nsee %s",
			config.EnvPrefix, urls.CreateWebhook)
	}
	return webhook.ParseURL(cfg.Webhook)
}

// wizardCmd launches the interactive TUI wizard
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch the interactive template wizard",
	Long: `Launch an interactive TUI wizard for composing and sending a message.

The wizard walks through:
- Picking a template
- Filling in its fields (required fields are checked before preview)
- Previewing the rendered Discord message
- Sending it and showing the result, with edit and retry on failure

This is the recommended way to send messages for most users.`,
	Example: `  # Launch wizard with the webhook from the environment or config file
  ptwebhook wizard
  # Or simply (wizard is default):
  ptwebhook

  # Pass the webhook explicitly
  ptwebhook -t https://discord.com/api/webhooks/123/abc

  # Use an extra template directory
  ptwebhook --templates ./team-templates`,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	webhookURL, err := resolveWebhook()
	if err != nil {
		return err
	}

	c, err := loadCatalog(ui.NewPrinter(os.Stderr))
	if err != nil {
		return err
	}

	return tui.Run(tui.Options{
		Catalog:    c,
		WebhookURL: webhookURL,
		Timeout:    cfg.Timeout,
		Theme:      cfg.Theme,
	})
}

// templatesCmd lists the template catalog
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available templates",
	Long: `List every template in the catalog with its fields.

Templates found earlier in the search path shadow later ones with the same ID.
Use --filter for a fuzzy search over ID, name and description.`,
	Example: `  # List everything
  ptwebhook templates

  # Fuzzy search
  ptwebhook templates --filter anno`,
	Args: cobra.NoArgs,
	RunE: runTemplates,
}

func init() {
	templatesCmd.Flags().StringVarP(&templateFilter, "filter", "f", "", "Fuzzy filter on ID, name and description")
}

func runTemplates(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())
	c, err := loadCatalog(p)
	if err != nil {
		return err
	}
	p.PrintTemplates(c.Filter(templateFilter))
	return nil
}

// validateCmd checks the catalog without sending anything
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate template files",
	Long: `Load and validate every template in the search path.

All problems are reported at once: duplicate IDs or field names, unknown field
types, select fields without options, defaults that are not an option, and
out-of-range colors.`,
	Example: `  # Validate the default search path
  ptwebhook validate

  # Validate a single directory without the built-in templates
  ptwebhook validate --templates ./templates --no-builtin`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())
	c, err := loadCatalog(p)
	if err != nil {
		return err
	}

	p.PrintSuccess("Template catalog is valid",
		ui.Detail{Key: "Templates", Value: strconv.Itoa(c.Len())},
		ui.Detail{Key: "Search path", Value: strings.Join(cfg.TemplateSearchDirs(), ", ")},
	)
	return nil
}

// sendCmd fills a template from flags and sends it without the TUI
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a template non-interactively",
	Long: `Fill a template from --set flags, validate it, and send it.

Fields that are not set keep their template default. Required fields must be
non-blank. Select fields only accept one of their options. A confirmation is
asked before sending unless --yes is given; without a terminal --yes is
required.`,
	Example: `  # Preview the JSON payload without sending
  ptwebhook send --template announcement --set title="Release 1.2" --set content="Out now" --dry-run

  # Send without confirmation (for scripts)
  ptwebhook send --template announcement --set title=Hi --set content=Hello --yes`,
	Args: cobra.NoArgs,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendTemplate, "template", "", "Template ID")
	sendCmd.Flags().StringArrayVar(&sendValues, "set", nil, "Field value as name=value (repeatable)")
	sendCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the JSON payload instead of sending")
	sendCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Send without asking for confirmation")
	_ = sendCmd.MarkFlagRequired("template")
}

func runSend(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())

	c, err := loadCatalog(p)
	if err != nil {
		return err
	}

	t, ok := c.Get(sendTemplate)
	if !ok {
		ids := make([]string, c.Len())
		for i := range ids {
			ids[i] = c.At(i).ID
		}
		return fmt.Errorf("unknown template %q (available: %s)", sendTemplate, strings.Join(ids, ", "))
	}

	state, err := fillForm(t, sendValues)
	if err != nil {
		return err
	}

	msg := payload.RenderTemplate(state)
	pretty, err := msg.MarshalIndent()
	if err != nil {
		return err
	}
	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
		return nil
	}

	webhookURL, err := resolveWebhook()
	if err != nil {
		return err
	}
	body, err := msg.Marshal()
	if err != nil {
		return err
	}

	summary := []ui.Detail{
		{Key: "Template", Value: t.ID},
		{Key: "Webhook", Value: webhook.Redact(webhookURL)},
	}
	p.PrintHeader("Send message", cmd.CommandPath(), summary...)

	if !assumeYes {
		if !ui.IsTerminal() {
			return errors.New("refusing to send without confirmation: pass --yes")
		}
		p.PrintPayload(pretty)
		if !ui.ConfirmSend(os.Stdin, cmd.OutOrStdout(), "About to send to Discord", summary) {
			return nil
		}
	}

	client := webhook.NewClient()
	client.SetTimeout(cfg.Timeout)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	result := client.Send(ctx, webhookURL, body)
	outcome := dispatch.Classify(result)
	logging.LogDispatch("cli", webhookURL, 1, outcome.Label(), outcome.StatusCode, result.Duration)

	if !outcome.Sent() {
		p.PrintError("Message not sent", outcome.Error(), dispatch.Hint(outcome))
		return outcome.Error()
	}

	p.PrintSuccess("Message delivered",
		ui.Detail{Key: "Template", Value: t.ID},
		ui.Detail{Key: "Status", Value: fmt.Sprintf("HTTP %d", outcome.StatusCode)},
		ui.Detail{Key: "Duration", Value: result.Duration.Round(time.Millisecond).String()},
	)
	return nil
}

// fillForm applies name=value pairs to a fresh form and validates it.
// A literal \n in a value becomes a line break.
func fillForm(t *catalog.Template, values []string) (*form.State, error) {
	state := form.New(t)
	for _, kv := range values {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: expected name=value", kv)
		}
		value = strings.ReplaceAll(value, `\n`, "\n")
		if err := state.SetValue(strings.TrimSpace(name), value); err != nil {
			return nil, err
		}
	}

	if err := state.ValidateAll(); err != nil {
		return nil, fmt.Errorf("template %s is incomplete: %w", t.ID, err)
	}
	return state, nil
}

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:               "config",
	Short:             "Manage the configuration file",
	PersistentPreRunE: skipConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a commented default configuration file.

The webhook URL contains a secret token and is not written; set it with
PTWEBHOOK_WEBHOOK (a .env file in the working directory works too) or add it
to the file yourself.`,
	Example: `  # Write to the default location
  ptwebhook config init

  # Overwrite an existing file
  ptwebhook config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print configuration, template and log locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.WriteDefault(cfgFile, forceInit)
	if errors.Is(err, config.ErrConfigExists) {
		return fmt.Errorf("%w (use --force to overwrite)", err)
	}
	if err != nil {
		return err
	}

	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Configuration written",
		ui.Detail{Key: "Path", Value: path},
	)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	configPath := cfgFile
	if configPath == "" {
		var err error
		configPath, err = config.GetConfigPath()
		if err != nil {
			return err
		}
	}
	templatesDir, err := config.GetTemplatesDir()
	if err != nil {
		return err
	}
	logPath, err := config.GetLogPath()
	if err != nil {
		return err
	}

	status := "not found"
	if _, err := os.Stat(configPath); err == nil {
		status = "exists"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config:    %s (%s)\n", configPath, status)
	fmt.Fprintf(out, "Templates: %s\n", templatesDir)
	fmt.Fprintf(out, "Log:       %s\n", logPath)
	return nil
}
