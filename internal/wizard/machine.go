package wizard

import (
	"github.com/ptwebhook/ptwebhook/internal/dispatch"
	"github.com/ptwebhook/ptwebhook/internal/form"
	"github.com/ptwebhook/ptwebhook/internal/payload"
)

// HandleInput applies one event to the session and returns the next
// session with any effects the caller must carry out. It performs no I/O.
// Events that mean nothing on the current screen leave it unchanged.
func HandleInput(s Session, ev Event) (Session, []Effect) {
	if ev.Kind == EventQuit {
		return s, []Effect{{Kind: EffectExit}}
	}

	switch s.Screen {
	case ScreenSelectTemplate:
		return selectTemplate(s, ev), nil
	case ScreenFillForm:
		return fillForm(s, ev), nil
	case ScreenPreview:
		return preview(s, ev)
	case ScreenResult:
		return result(s, ev), nil
	}
	return s, nil
}

// Complete records the outcome of submission attempt. It is a no-op
// unless the session is still waiting on that same attempt.
func Complete(s Session, attempt int, outcome dispatch.Outcome) Session {
	if !s.Pending || s.Screen != ScreenResult || attempt != s.Attempt {
		return s
	}
	s.Pending = false
	s.Outcome = &outcome
	return s
}

func selectTemplate(s Session, ev Event) Session {
	switch ev.Kind {
	case EventUp, EventPrev:
		s.Cursor = clamp(s.Cursor-1, 0, s.Catalog.Len()-1)
	case EventDown, EventNext:
		s.Cursor = clamp(s.Cursor+1, 0, s.Catalog.Len()-1)
	case EventConfirm:
		t := s.SelectedTemplate()
		if t == nil {
			return s
		}
		s.Form = form.New(t)
		s.Outcome = nil
		s.Screen = ScreenFillForm
	}
	return s
}

func fillForm(s Session, ev Event) Session {
	switch ev.Kind {
	case EventCancel:
		s.Form = nil
		s.Screen = ScreenSelectTemplate
		return s
	case EventConfirm:
		f := s.Form.Clone()
		valid := f.ValidateAll() == nil
		s.Form = f
		if valid {
			s.Screen = ScreenPreview
		}
		return s
	}

	f := s.Form.Clone()
	switch ev.Kind {
	case EventNext, EventDown:
		f.MoveFocus(1)
	case EventPrev, EventUp:
		f.MoveFocus(-1)
	case EventChar:
		f.InsertRune(ev.Rune)
	case EventBackspace:
		f.Backspace()
	case EventNewline:
		f.InsertNewline()
	default:
		return s
	}
	s.Form = f
	return s
}

func preview(s Session, ev Event) (Session, []Effect) {
	switch ev.Kind {
	case EventCancel:
		s.Screen = ScreenFillForm
	case EventConfirm:
		s.Attempt++
		s.Pending = true
		s.Outcome = nil
		s.Screen = ScreenResult
		return s, []Effect{{
			Kind:    EffectSend,
			Attempt: s.Attempt,
			Payload: payload.RenderTemplate(s.Form),
		}}
	}
	return s, nil
}

func result(s Session, ev Event) Session {
	if s.Pending {
		return s
	}
	switch ev.Kind {
	case EventConfirm, EventCancel:
		s.Form = nil
		s.Outcome = nil
		s.Screen = ScreenSelectTemplate
	case EventEdit:
		s.Outcome = nil
		s.Screen = ScreenFillForm
	}
	return s
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
