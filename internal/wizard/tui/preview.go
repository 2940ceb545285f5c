package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ptwebhook/ptwebhook/internal/config"
	"github.com/ptwebhook/ptwebhook/internal/payload"
)

// resolveMarkdownStyle picks the glamour style for a configured theme.
// "auto" chooses dark or light from the terminal background, which is
// queried here once, before the program owns the terminal. GLAMOUR_STYLE
// overrides everything.
func resolveMarkdownStyle(theme string) string {
	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		return style
	}

	switch theme {
	case config.ThemeDark, config.ThemeLight, config.ThemePlain:
		return theme
	}

	switch {
	case termenv.ColorProfile() == termenv.Ascii:
		return config.ThemePlain
	case lipgloss.HasDarkBackground():
		return config.ThemeDark
	default:
		return config.ThemeLight
	}
}

// newMarkdownRenderer creates a glamour renderer for the preview
func newMarkdownRenderer(style string, wordWrap int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithColorProfile(termenv.ColorProfile()),
		glamour.WithWordWrap(wordWrap),
	)
}

// previewMarkdown renders the payload roughly the way Discord will show
// it: content first, then each embed as a quoted card.
func previewMarkdown(p payload.Payload) string {
	var b strings.Builder

	if p.Username != "" {
		fmt.Fprintf(&b, "**%s** `BOT`\n\n", p.Username)
	}
	if p.Content != "" {
		b.WriteString(p.Content)
		b.WriteString("\n\n")
	}

	for _, e := range p.Embeds {
		var card strings.Builder
		if e.Title != "" {
			fmt.Fprintf(&card, "### %s\n\n", e.Title)
		}
		if e.Description != "" {
			card.WriteString(e.Description)
			card.WriteString("\n\n")
		}
		for _, f := range e.Fields {
			fmt.Fprintf(&card, "**%s**\n%s\n\n", f.Name, f.Value)
		}
		if e.Footer != nil && e.Footer.Text != "" {
			fmt.Fprintf(&card, "*%s*\n", e.Footer.Text)
		}
		b.WriteString(quote(strings.TrimRight(card.String(), "\n")))
		b.WriteString("\n\n")
	}

	if p.Empty() {
		b.WriteString("*(empty message)*\n")
	}
	return b.String()
}

func quote(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l == "" {
			lines[i] = ">"
		} else {
			lines[i] = "> " + l
		}
	}
	return strings.Join(lines, "\n")
}

// renderPreview renders the payload with r, falling back to the raw
// markdown when no renderer is available.
func renderPreview(r *glamour.TermRenderer, p payload.Payload) string {
	md := previewMarkdown(p)
	if r == nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
