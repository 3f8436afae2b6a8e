package numentry

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// ErrNotANumber is the validation error shown after text that does not parse
// under the entry's format is committed.
var ErrNotANumber = errors.New("not a number")

// Entry is a single-line text entry that accepts only numeric input.
// While focused it reports parse validity on every change; when focus is
// lost the text is committed, clamping parseable out-of-range values to the
// nearest bound and rolling unparseable text back to the last valid value.
// Escape abandons the edit, Return/Enter ends it through the normal
// focus-loss path.
type Entry struct {
	widget.Entry

	// OnValidityChanged receives the parseability of the raw text on every
	// change while editing.
	OnValidityChanged func(valid bool)

	// OnCommitted receives the value after every successful commit,
	// including commits that did not change it.
	OnCommitted func(value float64)

	// OnRejected fires when a commit or cancel rolls the field back, for
	// hosts that want an audible cue alongside the visual one.
	OnRejected func()

	validator *Validator
	reverting bool
}

// NewEntry returns a numeric entry displaying initial, accepting values in
// rng under the given format.
func NewEntry(initial float64, rng Range, format Format) *Entry {
	return newEntry(NewValidator(initial, rng, format))
}

// NewEntryWithData returns a numeric entry whose initial value is read from
// data and whose committed values are written back to it.
func NewEntryWithData(data binding.Float, rng Range, format Format) *Entry {
	return newEntry(NewValidatorWithData(data, rng, format))
}

func newEntry(v *Validator) *Entry {
	e := &Entry{validator: v}
	e.ExtendBaseWidget(e)
	e.Entry.Text = v.Display()
	e.Entry.Validator = func(s string) error {
		if _, ok := v.ParseAndClamp(s); !ok {
			return ErrNotANumber
		}
		return nil
	}
	e.Entry.OnChanged = func(s string) {
		v.TextChanged(s)
	}
	v.SetOnValidity(func(ok bool) {
		if e.OnValidityChanged != nil {
			e.OnValidityChanged(ok)
		}
	})
	return e
}

// Value returns the last committed value.
func (e *Entry) Value() float64 {
	return e.validator.Value()
}

// SetValue commits a value programmatically, clamping it into range and
// replacing the displayed text.
func (e *Entry) SetValue(v float64) {
	display, _ := e.validator.Commit(e.validator.Format().String(v))
	e.SetText(display)
}

// TypedRune drops runes the format cannot accept, so stray letters never
// reach the text at all.
func (e *Entry) TypedRune(r rune) {
	if e.allowRune(r) {
		e.Entry.TypedRune(r)
	}
}

// TypedKey intercepts the editing gestures: Escape abandons the edit and
// gives up focus, Return and Enter give up focus so the commit happens on
// the usual focus-loss path. Everything else is the base entry's business.
func (e *Entry) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyEscape:
		e.cancel()
	case fyne.KeyReturn, fyne.KeyEnter:
		e.unfocus()
	default:
		e.Entry.TypedKey(key)
	}
}

// FocusLost commits the current text. A failed commit restores the last
// valid value and marks the entry invalid until the next edit.
func (e *Entry) FocusLost() {
	e.Entry.FocusLost()
	if e.reverting {
		e.reverting = false
		return
	}
	display, committed := e.validator.Commit(e.Entry.Text)
	if e.Entry.Text != display {
		e.SetText(display)
	}
	if !committed {
		e.reject()
		return
	}
	if e.OnCommitted != nil {
		e.OnCommitted(e.validator.Value())
	}
}

func (e *Entry) cancel() {
	e.reverting = true
	e.SetText(e.validator.Cancel())
	e.reject()
	if !e.unfocus() {
		// No focus was given up, so no FocusLost will arrive to consume
		// the flag; clear it or the next genuine commit would be skipped.
		e.reverting = false
	}
}

// reject delivers the rejection cue: the entry is flagged invalid until the
// next edit re-validates it, and the host hook fires if one is set.
func (e *Entry) reject() {
	e.SetValidationError(ErrNotANumber)
	if e.OnRejected != nil {
		e.OnRejected()
	}
}

func (e *Entry) allowRune(r rune) bool {
	if f, ok := e.validator.Format().(RuneFilter); ok {
		return f.AllowRune(r)
	}
	return (r >= '0' && r <= '9') || r == '-' || r == '+' || r == '.' || r == ','
}

// unfocus asks the canvas to drop focus and reports whether this entry was
// the focused object, i.e. whether a FocusLost call is on its way.
func (e *Entry) unfocus() bool {
	app := fyne.CurrentApp()
	if app == nil {
		return false
	}
	c := app.Driver().CanvasForObject(e)
	if c == nil {
		return false
	}
	focused := c.Focused() == fyne.Focusable(e)
	c.Unfocus()
	return focused
}
