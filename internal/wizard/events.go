package wizard

import "fmt"

// EventKind is an abstract user input, independent of key bindings
type EventKind int

const (
	EventUp EventKind = iota + 1
	EventDown
	EventNext
	EventPrev
	EventConfirm
	EventCancel
	EventQuit
	EventChar
	EventBackspace
	EventNewline
	EventEdit
)

var eventNames = map[EventKind]string{
	EventUp:        "Up",
	EventDown:      "Down",
	EventNext:      "Next",
	EventPrev:      "Prev",
	EventConfirm:   "Confirm",
	EventCancel:    "Cancel",
	EventQuit:      "Quit",
	EventChar:      "Char",
	EventBackspace: "Backspace",
	EventNewline:   "Newline",
	EventEdit:      "Edit",
}

// String returns the event name
func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// Event is one input delivered to HandleInput. Rune is only meaningful
// for EventChar.
type Event struct {
	Kind EventKind
	Rune rune
}

// Key builds a non-character event
func Key(kind EventKind) Event {
	return Event{Kind: kind}
}

// Char builds a character event
func Char(r rune) Event {
	return Event{Kind: EventChar, Rune: r}
}

// String returns e.g. "Char('x')" or "Confirm"
func (e Event) String() string {
	if e.Kind == EventChar {
		return fmt.Sprintf("Char(%q)", e.Rune)
	}
	return e.Kind.String()
}
