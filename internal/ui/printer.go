package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ptwebhook/ptwebhook/internal/catalog"
)

// Printer provides methods for printing UI components to a writer.
// This is the primary way non-interactive commands output styled content.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Detail) {
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Detail) {
	p.Println(NewSuccessResult(title, details...).SetWidth(p.width).Render())
}

// PrintWarning prints a warning result box
func (p *Printer) PrintWarning(title string, details ...Detail) {
	p.Println(NewWarningResult(title, details...).SetWidth(p.width).Render())
}

// PrintError prints an error result box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	p.Println(NewFailureResult(title, err, troubleshooting).SetWidth(p.width).Render())
}

// PrintPayload prints the JSON body that would be sent
func (p *Printer) PrintPayload(body []byte) {
	content := PayloadTitleStyle.Render("Payload") + "\n" + PayloadContentStyle.Render(string(body))
	p.Println(PayloadBoxStyle(p.width).Render(content))
}

// PrintTemplates prints one block per template: ID, name, field count,
// source and description
func (p *Printer) PrintTemplates(templates []*catalog.Template) {
	if len(templates) == 0 {
		p.Println(TemplateMetaStyle.Render("No templates found."))
		return
	}

	for _, t := range templates {
		meta := fmt.Sprintf("%s · %d field(s) · %s", t.Name, len(t.Fields), t.Source)
		p.Println(TemplateIDStyle.Render(t.ID) + "  " + TemplateMetaStyle.Render(meta))
		if t.Description != "" {
			p.Println("    " + t.Description)
		}
		for _, f := range t.Fields {
			line := fmt.Sprintf("    - %s (%s)", f.Name, f.Kind)
			if f.Required {
				line += " required"
			}
			if len(f.Options) > 0 {
				line += ": " + strings.Join(f.Options, ", ")
			}
			p.Println(TemplateMetaStyle.Render(line))
		}
	}
}

// PrintProblems prints every problem carried by a catalog error, one per
// line; other errors print as a single line
func (p *Printer) PrintProblems(err error) {
	var problems []error
	var ce *catalog.CatalogError
	if errors.As(err, &ce) {
		problems = ce.Problems
	} else if err != nil {
		problems = []error{err}
	}
	for _, prob := range problems {
		p.Println(ErrorMessageStyle.Render("  " + FailureMarker + " " + prob.Error()))
	}
}
