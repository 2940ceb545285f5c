package payload

import (
	"strings"

	"github.com/ptwebhook/ptwebhook/internal/catalog"
	"github.com/ptwebhook/ptwebhook/internal/form"
)

// ellipsis marks truncated text
const ellipsis = "…"

// Render builds the webhook payload for a filled form. It is
// deterministic: the same form and settings always give the same payload.
// Empty values are omitted and every string is cut to Discord's limits.
func Render(state *form.State, settings catalog.WebhookSettings) Payload {
	p := Payload{
		Username:  truncate(settings.Username, MaxUsernameLength),
		AvatarURL: settings.AvatarURL,
	}
	if !settings.AllowMentions {
		p.AllowedMentions = &AllowedMentions{Parse: []string{}}
	}

	switch settings.EffectiveStyle() {
	case catalog.StyleContent:
		p.Content = renderContent(state)
	default:
		p.Embeds = []Embed{renderEmbed(state, settings)}
	}
	return p
}

// RenderTemplate renders with the form's own template settings
func RenderTemplate(state *form.State) Payload {
	return Render(state, state.Template().Webhook)
}

func renderEmbed(state *form.State, settings catalog.WebhookSettings) Embed {
	t := state.Template()
	e := Embed{
		Title:       truncate(t.Name, MaxTitleLength),
		Description: truncate(t.Description, MaxDescriptionLength),
		Color:       settings.Color,
	}

	for i, f := range t.Fields {
		value := state.ValueAt(i)
		if strings.TrimSpace(value) == "" {
			continue
		}
		if len(e.Fields) == MaxFields {
			break
		}
		e.Fields = append(e.Fields, EmbedField{
			Name:   truncate(f.Label, MaxFieldNameLength),
			Value:  truncate(value, MaxFieldValueLength),
			Inline: f.Inline,
		})
	}

	if settings.Footer != "" {
		e.Footer = &EmbedFooter{Text: truncate(settings.Footer, MaxFooterLength)}
	}
	return e
}

// renderContent writes one "**Label**: value" line per non-empty value.
// Multi-line values start on the line after their label.
func renderContent(state *form.State) string {
	var lines []string
	for i, f := range state.Template().Fields {
		value := state.ValueAt(i)
		if strings.TrimSpace(value) == "" {
			continue
		}
		if strings.Contains(value, "\n") {
			lines = append(lines, "**"+f.Label+"**:\n"+value)
		} else {
			lines = append(lines, "**"+f.Label+"**: "+value)
		}
	}
	return truncate(strings.Join(lines, "\n"), MaxContentLength)
}

// truncate cuts s to at most max runes, ending in an ellipsis when cut
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + ellipsis
}
