// Package wizard is the template wizard's state machine.
//
// The wizard moves through four screens:
//
//	SelectTemplate → FillForm → Preview → Result
//	       ↑            ↑          │        │
//	       └────────────┴──────────┘ cancel │
//	       └────────────────────────────────┘ confirm
//
// HandleInput takes a Session and an abstract Event and returns the next
// Session plus Effects (send a payload, exit). It does no I/O, so every
// transition can be tested without a terminal or network. The caller
// runs EffectSend asynchronously and feeds the classified outcome back
// with Complete, which ignores results for attempts that are no longer
// current.
//
// The Bubble Tea front end lives in the tui subpackage.
package wizard
