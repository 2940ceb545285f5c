package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ptwebhook/ptwebhook/internal/catalog"
	"github.com/ptwebhook/ptwebhook/internal/wizard"
)

// listKeyMap defines key bindings for the template list
type listKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select, k.Quit}}
}

// formKeyMap defines key bindings for the form. Printable keys are typed
// into the focused field, so only ctrl+c quits.
type formKeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Cycle     key.Binding
	CycleBack key.Binding
	Newline   key.Binding
	Backspace key.Binding
	Submit    key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Submit},
		{k.Cycle, k.CycleBack, k.Newline, k.Backspace},
		{k.Back, k.Quit},
	}
}

// previewKeyMap defines key bindings for the payload preview
type previewKeyMap struct {
	Send   key.Binding
	Back   key.Binding
	Scroll key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k previewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Back, k.Scroll, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k previewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Send, k.Back, k.Scroll, k.Quit}}
}

// resultKeyMap defines key bindings for the result screen
type resultKeyMap struct {
	Restart key.Binding
	Edit    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k resultKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Edit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k resultKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Restart, k.Edit, k.Quit}}
}

// pendingKeyMap is shown while a submission is in flight
type pendingKeyMap struct {
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k pendingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k pendingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

// keyMaps groups the bindings of every screen
type keyMaps struct {
	List    listKeyMap
	Form    formKeyMap
	Preview previewKeyMap
	Result  resultKeyMap
	Pending pendingKeyMap
}

func defaultKeyMaps() keyMaps {
	return keyMaps{
		List: listKeyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k", "shift+tab"),
				key.WithHelp("↑/k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j", "tab"),
				key.WithHelp("↓/j", "down"),
			),
			Select: key.NewBinding(
				key.WithKeys("enter", " "),
				key.WithHelp("enter", "select"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "esc", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
		Form: formKeyMap{
			Next: key.NewBinding(
				key.WithKeys("tab", "down"),
				key.WithHelp("tab/↓", "next field"),
			),
			Prev: key.NewBinding(
				key.WithKeys("shift+tab", "up"),
				key.WithHelp("shift+tab/↑", "previous field"),
			),
			Cycle: key.NewBinding(
				key.WithKeys("right"),
				key.WithHelp("→", "next option"),
			),
			CycleBack: key.NewBinding(
				key.WithKeys("left"),
				key.WithHelp("←", "previous option"),
			),
			Newline: key.NewBinding(
				key.WithKeys("alt+enter", "ctrl+j"),
				key.WithHelp("alt+enter", "new line"),
			),
			Backspace: key.NewBinding(
				key.WithKeys("backspace"),
				key.WithHelp("backspace", "delete"),
			),
			Submit: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "preview"),
			),
			Back: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "templates"),
			),
			Quit: key.NewBinding(
				key.WithKeys("ctrl+c"),
				key.WithHelp("ctrl+c", "quit"),
			),
		},
		Preview: previewKeyMap{
			Send: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "send"),
			),
			Back: key.NewBinding(
				key.WithKeys("esc", "backspace"),
				key.WithHelp("esc", "edit"),
			),
			Scroll: key.NewBinding(
				key.WithKeys("pgup", "pgdown"),
				key.WithHelp("↑/↓/pgup/pgdn", "scroll"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
		Result: resultKeyMap{
			Restart: key.NewBinding(
				key.WithKeys("enter", " ", "esc"),
				key.WithHelp("enter", "new message"),
			),
			Edit: key.NewBinding(
				key.WithKeys("e"),
				key.WithHelp("e", "edit & retry"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
		Pending: pendingKeyMap{
			Quit: key.NewBinding(
				key.WithKeys("q", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
	}
}

// helpFor returns the bindings shown in the footer for the session
func (k keyMaps) helpFor(s wizard.Session) help.KeyMap {
	switch s.Screen {
	case wizard.ScreenFillForm:
		return k.Form
	case wizard.ScreenPreview:
		return k.Preview
	case wizard.ScreenResult:
		if s.Pending {
			return k.Pending
		}
		return k.Result
	default:
		return k.List
	}
}

// translate maps a key press to wizard events. Keys with no meaning on the
// current screen produce no events; on Preview they scroll the viewport.
func (k keyMaps) translate(s wizard.Session, msg tea.KeyMsg) []wizard.Event {
	switch s.Screen {
	case wizard.ScreenSelectTemplate:
		return k.translateList(msg)
	case wizard.ScreenFillForm:
		return k.translateForm(s, msg)
	case wizard.ScreenPreview:
		return k.translatePreview(msg)
	case wizard.ScreenResult:
		return k.translateResult(s, msg)
	}
	return nil
}

func (k keyMaps) translateList(msg tea.KeyMsg) []wizard.Event {
	switch {
	case key.Matches(msg, k.List.Quit):
		return events(wizard.EventQuit)
	case key.Matches(msg, k.List.Up):
		return events(wizard.EventUp)
	case key.Matches(msg, k.List.Down):
		return events(wizard.EventDown)
	case key.Matches(msg, k.List.Select):
		return events(wizard.EventConfirm)
	}
	return nil
}

func (k keyMaps) translateForm(s wizard.Session, msg tea.KeyMsg) []wizard.Event {
	focused := catalog.KindText
	if s.Form != nil {
		if f, ok := s.Form.FocusedField(); ok {
			focused = f.Kind
		}
	}

	switch {
	case key.Matches(msg, k.Form.Quit):
		return events(wizard.EventQuit)
	case key.Matches(msg, k.Form.Back):
		return events(wizard.EventCancel)
	case key.Matches(msg, k.Form.Newline):
		return events(wizard.EventNewline)
	case key.Matches(msg, k.Form.Submit):
		return events(wizard.EventConfirm)
	case key.Matches(msg, k.Form.Next):
		return events(wizard.EventNext)
	case key.Matches(msg, k.Form.Prev):
		return events(wizard.EventPrev)
	case key.Matches(msg, k.Form.Backspace):
		return events(wizard.EventBackspace)
	case focused == catalog.KindSelect && key.Matches(msg, k.Form.Cycle):
		return []wizard.Event{wizard.Char(' ')}
	case focused == catalog.KindSelect && key.Matches(msg, k.Form.CycleBack):
		return events(wizard.EventBackspace)
	}

	switch msg.Type {
	case tea.KeySpace:
		return []wizard.Event{wizard.Char(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		return typed(msg.Runes)
	}
	return nil
}

func (k keyMaps) translatePreview(msg tea.KeyMsg) []wizard.Event {
	switch {
	case key.Matches(msg, k.Preview.Quit):
		return events(wizard.EventQuit)
	case key.Matches(msg, k.Preview.Send):
		return events(wizard.EventConfirm)
	case key.Matches(msg, k.Preview.Back):
		return events(wizard.EventCancel)
	}
	return nil
}

func (k keyMaps) translateResult(s wizard.Session, msg tea.KeyMsg) []wizard.Event {
	if s.Pending {
		if key.Matches(msg, k.Pending.Quit) {
			return events(wizard.EventQuit)
		}
		return nil
	}

	switch {
	case key.Matches(msg, k.Result.Quit):
		return events(wizard.EventQuit)
	case key.Matches(msg, k.Result.Edit):
		return events(wizard.EventEdit)
	case key.Matches(msg, k.Result.Restart):
		if msg.Type == tea.KeyEsc {
			return events(wizard.EventCancel)
		}
		return events(wizard.EventConfirm)
	}
	return nil
}

func events(kinds ...wizard.EventKind) []wizard.Event {
	evs := make([]wizard.Event, len(kinds))
	for i, k := range kinds {
		evs[i] = wizard.Key(k)
	}
	return evs
}

// typed converts typed or pasted runes into character events. Line breaks
// inside a paste become Newline events; control characters are dropped.
func typed(runes []rune) []wizard.Event {
	var evs []wizard.Event
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			evs = append(evs, wizard.Key(wizard.EventNewline))
		case r == '\n':
			evs = append(evs, wizard.Key(wizard.EventNewline))
		case r == '\t':
			evs = append(evs, wizard.Char(' '))
		case r < 0x20 || r == 0x7f:
		default:
			evs = append(evs, wizard.Char(r))
		}
	}
	return evs
}
