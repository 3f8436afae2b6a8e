package numentry

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Field is a numeric Entry with an inline unit suffix drawn inside the
// field's right edge. The suffix carries no logic; all editing behaviour is
// the Entry's.
type Field struct {
	widget.BaseWidget

	entry *Entry
	unit  *widget.Label
}

// FieldOption configures a Field at construction time.
type FieldOption func(*Field)

// WithUnit sets the suffix label text. An empty unit suppresses the suffix.
func WithUnit(unit string) FieldOption {
	return func(f *Field) {
		f.unit.SetText(unit)
	}
}

// WithValidity registers the per-keystroke parseability observer.
func WithValidity(fn func(valid bool)) FieldOption {
	return func(f *Field) {
		f.entry.OnValidityChanged = fn
	}
}

// WithOnCommitted registers a hook for every successful commit.
func WithOnCommitted(fn func(value float64)) FieldOption {
	return func(f *Field) {
		f.entry.OnCommitted = fn
	}
}

// WithOnRejected registers the rejection cue hook.
func WithOnRejected(fn func()) FieldOption {
	return func(f *Field) {
		f.entry.OnRejected = fn
	}
}

// WithPlaceHolder sets the placeholder text shown while the field is empty.
func WithPlaceHolder(text string) FieldOption {
	return func(f *Field) {
		f.entry.SetPlaceHolder(text)
	}
}

// NewField returns a numeric field displaying initial, accepting values in
// rng under the given format.
func NewField(initial float64, rng Range, format Format, opts ...FieldOption) *Field {
	return newField(NewEntry(initial, rng, format), opts)
}

// NewFieldWithData returns a numeric field bound to data: the initial value
// is read from it and every committed value is written back.
func NewFieldWithData(data binding.Float, rng Range, format Format, opts ...FieldOption) *Field {
	return newField(NewEntryWithData(data, rng, format), opts)
}

func newField(entry *Entry, opts []FieldOption) *Field {
	f := &Field{
		entry: entry,
		unit:  widget.NewLabel(""),
	}
	f.unit.Importance = widget.LowImportance
	f.ExtendBaseWidget(f)
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateRenderer stacks the entry with a right-aligned unit label.
func (f *Field) CreateRenderer() fyne.WidgetRenderer {
	objects := []fyne.CanvasObject{f.entry}
	if f.unit.Text != "" {
		suffix := container.NewHBox(layout.NewSpacer(), container.NewCenter(f.unit))
		objects = append(objects, container.NewPadded(suffix))
	}
	return widget.NewSimpleRenderer(container.NewStack(objects...))
}

// Entry exposes the inner entry for hosts that need direct access, for
// example to focus it.
func (f *Field) Entry() *Entry {
	return f.entry
}

// Value returns the last committed value.
func (f *Field) Value() float64 {
	return f.entry.Value()
}

// SetValue commits a value programmatically.
func (f *Field) SetValue(v float64) {
	f.entry.SetValue(v)
}

// Unit returns the suffix text, empty when no unit is shown.
func (f *Field) Unit() string {
	return f.unit.Text
}

// Enable re-enables editing after a Disable.
func (f *Field) Enable() {
	f.entry.Enable()
}

// Disable makes the field read-only.
func (f *Field) Disable() {
	f.entry.Disable()
}

// Disabled reports whether the field is read-only.
func (f *Field) Disabled() bool {
	return f.entry.Disabled()
}
