package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmSend displays a warning box summarizing what is about to be sent
// and prompts for y/N on in. Returns true only for "y" or "yes"; a read
// error or EOF counts as no.
func ConfirmSend(in io.Reader, out io.Writer, title string, summary []Detail) bool {
	width := GetTerminalWidth()

	box := NewWarningResult(title, summary...).SetWidth(width).Render()
	_, _ = fmt.Fprintln(out, box)
	_, _ = fmt.Fprintln(out)

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	_, _ = fmt.Fprint(out, promptStyle.Render("Send this message? [y/N]: "))

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		_, _ = fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		_, _ = fmt.Fprintln(out)
		return true
	}

	_, _ = fmt.Fprintln(out)
	cancelStyle := lipgloss.NewStyle().Foreground(MutedColor)
	_, _ = fmt.Fprintln(out, cancelStyle.Render("  Cancelled, nothing was sent."))
	return false
}
