package wizard

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ptwebhook/ptwebhook/internal/catalog"
	"github.com/ptwebhook/ptwebhook/internal/dispatch"
	"github.com/ptwebhook/ptwebhook/internal/form"
	"github.com/ptwebhook/ptwebhook/internal/payload"
)

// Screen is the wizard step currently shown
type Screen int

const (
	ScreenSelectTemplate Screen = iota
	ScreenFillForm
	ScreenPreview
	ScreenResult
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenSelectTemplate:
		return "SelectTemplate"
	case ScreenFillForm:
		return "FillForm"
	case ScreenPreview:
		return "Preview"
	case ScreenResult:
		return "Result"
	default:
		return fmt.Sprintf("Screen(%d)", s)
	}
}

// Session is the complete wizard state. HandleInput and Complete never
// modify a session in place; they return the next one.
type Session struct {
	ID      string // log correlation only
	Screen  Screen
	Catalog *catalog.Catalog
	Cursor  int
	Form    *form.State       // set on FillForm, Preview and Result
	Outcome *dispatch.Outcome // set on Result once the send completes
	Pending bool              // a submission is outstanding
	Attempt int               // incremented per submission
}

// NewSession starts a wizard on the template list
func NewSession(c *catalog.Catalog) Session {
	return Session{
		ID:      uuid.NewString(),
		Screen:  ScreenSelectTemplate,
		Catalog: c,
	}
}

// SelectedTemplate returns the template under the cursor
func (s Session) SelectedTemplate() *catalog.Template {
	return s.Catalog.At(s.Cursor)
}

// EffectKind identifies a side effect requested by the state machine
type EffectKind int

const (
	// EffectSend asks the caller to submit Payload and report back with
	// Complete(session, Attempt, outcome).
	EffectSend EffectKind = iota
	// EffectExit asks the caller to stop the program
	EffectExit
)

// String returns the effect name
func (k EffectKind) String() string {
	switch k {
	case EffectSend:
		return "Send"
	case EffectExit:
		return "Exit"
	default:
		return fmt.Sprintf("EffectKind(%d)", k)
	}
}

// Effect is an instruction for the caller; the state machine performs no I/O
type Effect struct {
	Kind    EffectKind
	Attempt int
	Payload payload.Payload
}
