package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/ptwebhook/ptwebhook/internal/catalog"
	"github.com/ptwebhook/ptwebhook/internal/config"
	"github.com/ptwebhook/ptwebhook/internal/logging"
	"github.com/ptwebhook/ptwebhook/internal/payload"
	"github.com/ptwebhook/ptwebhook/internal/webhook"
	"github.com/ptwebhook/ptwebhook/internal/wizard"
)

// defaultWidth is assumed until the first tea.WindowSizeMsg arrives
const defaultWidth = 80

// Options configures a wizard run
type Options struct {
	Catalog    *catalog.Catalog
	WebhookURL string        // canonical execute-webhook URL
	Sender     Sender        // defaults to webhook.NewClient()
	Timeout    time.Duration // per submission, defaults to config.DefaultTimeout
	Theme      string        // preview theme, see config.Theme*
}

// AppModel is the Bubble Tea model. It owns exactly one wizard.Session and
// feeds it key presses translated to wizard events; every state change
// happens in wizard.HandleInput or wizard.Complete.
type AppModel struct {
	Session wizard.Session

	webhookURL string
	sender     Sender
	timeout    time.Duration

	// Preview rendering
	markdownStyle string
	renderer      *glamour.TermRenderer
	rendererWrap  int
	viewport      viewport.Model

	// UI state
	width    int
	height   int
	quitting bool

	keys    keyMaps
	help    help.Model
	spinner spinner.Model
}

// NewAppModel creates the wizard model on the template list
func NewAppModel(opts Options) AppModel {
	if opts.Sender == nil {
		opts.Sender = webhook.NewClient()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = config.DefaultTimeout
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	m := AppModel{
		Session:       wizard.NewSession(opts.Catalog),
		webhookURL:    opts.WebhookURL,
		sender:        opts.Sender,
		timeout:       opts.Timeout,
		markdownStyle: resolveMarkdownStyle(opts.Theme),
		viewport:      viewport.New(ContentWidth(defaultWidth), 10),
		keys:          defaultKeyMaps(),
		help:          help.New(),
		spinner:       s,
	}
	m.resize(defaultWidth, 0)
	return m
}

// Run starts the wizard full-screen and blocks until the user quits
func Run(opts Options) error {
	m := NewAppModel(opts)
	logging.Info("wizard started",
		zap.String("session", m.Session.ID),
		zap.Int("templates", opts.Catalog.Len()),
		zap.String("webhook", webhook.Redact(opts.WebhookURL)))

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return tea.SetWindowTitle("ptwebhook")
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case dispatchDoneMsg:
		m.Session = wizard.Complete(m.Session, msg.attempt, msg.outcome)
		return m, nil

	case spinner.TickMsg:
		if !m.Session.Pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey applies the events a key press translates to, in order, and
// turns the resulting effects into commands
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	evs := m.keys.translate(m.Session, msg)
	if len(evs) == 0 {
		if m.Session.Screen == wizard.ScreenPreview {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmds []tea.Cmd
	for _, ev := range evs {
		from := m.Session.Screen
		next, effects := wizard.HandleInput(m.Session, ev)
		m.Session = next

		if next.Screen != from {
			logging.LogTransition(next.ID, from.String(), next.Screen.String(), ev.String())
			m.enterScreen()
		}

		for _, eff := range effects {
			switch eff.Kind {
			case wizard.EffectExit:
				m.quitting = true
				return m, tea.Quit
			case wizard.EffectSend:
				cmds = append(cmds,
					sendCmd(m.sender, m.Session.ID, m.webhookURL, m.timeout, eff.Attempt, eff.Payload),
					m.spinner.Tick,
				)
			}
		}
	}

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// enterScreen prepares per-screen UI state after a transition
func (m *AppModel) enterScreen() {
	if m.Session.Screen == wizard.ScreenPreview {
		m.refreshPreview()
	}
}

// resize recalculates layout for a new terminal size and rebuilds the
// markdown renderer when the wrap width changes
func (m *AppModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = ContentWidth(width)

	m.viewport.Width = ContentWidth(width)
	if h := height - PreviewChrome; h > 3 {
		m.viewport.Height = h
	}

	wrap := ContentWidth(width) - 4
	if wrap != m.rendererWrap {
		r, err := newMarkdownRenderer(m.markdownStyle, wrap)
		if err != nil {
			logging.Warn("markdown renderer unavailable", zap.String("style", m.markdownStyle), zap.Error(err))
			r = nil
		}
		m.renderer = r
		m.rendererWrap = wrap
	}

	if m.Session.Screen == wizard.ScreenPreview {
		m.refreshPreview()
	}
}

func (m *AppModel) refreshPreview() {
	if m.Session.Form == nil {
		return
	}
	m.viewport.SetContent(renderPreview(m.renderer, payload.RenderTemplate(m.Session.Form)))
	m.viewport.GotoTop()
}

// View renders the current screen inside the application container
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.Session.Screen {
	case wizard.ScreenSelectTemplate:
		content = m.buildTemplateListContent()
	case wizard.ScreenFillForm:
		content = m.buildFormContent()
	case wizard.ScreenPreview:
		content = m.buildPreviewContent()
	case wizard.ScreenResult:
		content = m.buildResultContent()
	default:
		content = "Unknown screen"
	}

	helpText := m.help.View(m.keys.helpFor(m.Session))
	return RenderApplicationContainer(content, helpText, m.width, m.height)
}
