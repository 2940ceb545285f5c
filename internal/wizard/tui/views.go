package tui

import (
	"fmt"
	"strings"

	"github.com/ptwebhook/ptwebhook/internal/catalog"
	"github.com/ptwebhook/ptwebhook/internal/dispatch"
	"github.com/ptwebhook/ptwebhook/internal/webhook"
	"github.com/ptwebhook/ptwebhook/internal/wizard"
)

// templateIcon picks a list icon from the template ID
func templateIcon(id string) string {
	id = strings.ToLower(id)
	switch {
	case strings.Contains(id, "announcement"):
		return "📢"
	case strings.Contains(id, "academy"):
		return "🎓"
	case strings.Contains(id, "project"):
		return "💼"
	default:
		return "📄"
	}
}

func (m AppModel) buildTemplateListContent() string {
	vm := wizard.View(m.Session)
	var b strings.Builder

	b.WriteString(RenderTitle("Select a template"))
	b.WriteString("\n")

	if len(vm.Templates) == 0 {
		b.WriteString(WarningBoxStyle.Render("No templates found.\n\nAdd *.toml or *.yaml files to ./templates\nor the templates folder in your config directory."))
		b.WriteString("\n")
		return b.String()
	}

	for _, t := range vm.Templates {
		b.WriteString(RenderMenuItem(templateIcon(t.ID)+" "+t.Name, t.Selected))
		b.WriteString("\n")
		if t.Description != "" {
			b.WriteString(DescriptionStyle.Render(t.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(DestinationStyle.Render("Sending to " + webhook.Redact(m.webhookURL)))
	b.WriteString("\n")
	return b.String()
}

func (m AppModel) buildFormContent() string {
	vm := wizard.View(m.Session)
	if vm.Template == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderTitle(templateIcon(vm.Template.ID) + " " + vm.Template.Name))
	b.WriteString("\n")
	if vm.Template.Description != "" {
		b.WriteString(RenderSubtitle(vm.Template.Description))
		b.WriteString("\n\n")
	}

	width := ContentWidth(m.width) - 4
	for _, f := range vm.Fields {
		b.WriteString(renderField(f, width))
		b.WriteString("\n")
	}

	if n := len(vm.Invalid); n > 0 {
		b.WriteString("\n")
		b.WriteString(FieldErrorStyle.Render(fmt.Sprintf("%d field(s) need attention before preview", n)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderField draws one labelled input box
func renderField(f wizard.FieldView, width int) string {
	var b strings.Builder

	label := f.Label
	if f.Focused {
		label = FocusedLabelStyle.Render("› " + label)
	} else {
		label = BlurredLabelStyle.Render("  " + label)
	}
	b.WriteString(label)
	if f.Required {
		b.WriteString(RequiredMarkStyle.Render(" *"))
	}
	b.WriteString("\n")

	var value string
	switch f.Kind {
	case catalog.KindSelect:
		value = renderOptions(f)
	default:
		value = f.Value
		if f.Focused {
			value += "▏"
		}
		if f.Value == "" && f.Placeholder != "" {
			value = PlaceholderStyle.Render(f.Placeholder)
			if f.Focused {
				value = "▏" + value
			}
		}
	}

	style := BlurredInputStyle
	switch {
	case f.Invalid:
		style = InvalidInputStyle
	case f.Focused:
		style = FocusedInputStyle
	}
	if width > 0 {
		style = style.Width(width)
	}
	b.WriteString(style.Render(value))
	b.WriteString("\n")

	if f.Invalid {
		b.WriteString(FieldErrorStyle.Render("✗ " + f.Label + " is " + f.Reason))
		b.WriteString("\n")
	}
	return b.String()
}

// renderOptions shows every option with the current one highlighted
func renderOptions(f wizard.FieldView) string {
	parts := make([]string, len(f.Options))
	for i, opt := range f.Options {
		if opt == f.Value {
			parts[i] = FocusedLabelStyle.Render("◉ " + opt)
		} else {
			parts[i] = PlaceholderStyle.Render("○ " + opt)
		}
	}
	out := strings.Join(parts, "  ")
	if f.Focused {
		out = "◀ " + out + " ▶"
	}
	return out
}

func (m AppModel) buildPreviewContent() string {
	vm := wizard.View(m.Session)
	var b strings.Builder

	title := "Preview"
	if vm.Template != nil {
		title = "Preview: " + vm.Template.Name
	}
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")
	b.WriteString(DestinationStyle.Render("Destination: " + webhook.Redact(m.webhookURL)))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	return b.String()
}

func (m AppModel) buildResultContent() string {
	vm := wizard.View(m.Session)
	var b strings.Builder

	if vm.Pending {
		b.WriteString(RenderTitle("Sending"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s Sending to %s...\n", m.spinner.View(), webhook.Redact(m.webhookURL)))
		return b.String()
	}

	if vm.Outcome == nil {
		return b.String()
	}

	if vm.Outcome.Sent() {
		b.WriteString(RenderTitle("✓ Message Sent"))
		b.WriteString("\n")
		b.WriteString(SuccessBoxStyle.Render(fmt.Sprintf("Discord accepted the message (HTTP %d)", vm.Outcome.StatusCode)))
		b.WriteString("\n\n")
	} else {
		b.WriteString(RenderTitle("✗ Message Not Sent"))
		b.WriteString("\n")
		b.WriteString(ErrorBoxStyle.Render(vm.Outcome.String()))
		b.WriteString("\n\n")
		b.WriteString(renderHints(*vm.Outcome))
	}

	b.WriteString("What would you like to do next?\n\n")
	b.WriteString(MenuItemStyle.Render("  Enter - Send another message"))
	b.WriteString("\n")
	b.WriteString(MenuItemStyle.Render("  e     - Edit this message and try again"))
	b.WriteString("\n")
	b.WriteString(MenuItemStyle.Render("  q     - Exit application"))
	b.WriteString("\n")
	return b.String()
}

func renderHints(o dispatch.Outcome) string {
	hints := dispatch.Hint(o)
	if len(hints) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Troubleshooting:\n")
	for _, h := range hints {
		b.WriteString("  • " + h + "\n")
	}
	b.WriteString("\n")
	return b.String()
}
