package numentry

import (
	"fyne.io/fyne/v2/data/binding"
)

// Validator gates raw field text through format and range rules before it
// reaches the bound value. It remembers the last committed value so a
// rejected edit can be rolled back, and it only ever writes the bound value
// on a successful commit.
type Validator struct {
	rng    Range
	format Format

	lastValid float64
	bound     binding.Float

	onValidity func(bool)
	onReject   func()
}

// NewValidator returns a validator whose last valid value starts at initial,
// clamped into rng so the rollback value is always committable.
func NewValidator(initial float64, rng Range, format Format) *Validator {
	return &Validator{
		rng:       rng,
		format:    format,
		lastValid: rng.Clamp(initial),
	}
}

// NewValidatorWithData is like NewValidator but reads the initial value from
// data and pushes every committed value back into it.
func NewValidatorWithData(data binding.Float, rng Range, format Format) *Validator {
	initial, err := data.Get()
	if err != nil {
		initial = rng.Min
	}
	v := NewValidator(initial, rng, format)
	v.bound = data
	return v
}

// Bind attaches a float binding that receives every committed value.
// The binding's current value is not read back; the validator keeps its own
// last valid value.
func (v *Validator) Bind(data binding.Float) {
	v.bound = data
}

// SetOnValidity registers an observer that receives the parseability of the
// raw text on every TextChanged call.
func (v *Validator) SetOnValidity(fn func(valid bool)) {
	v.onValidity = fn
}

// SetOnReject registers a hook fired whenever a commit or cancel rolls the
// field back, so the host can play its rejection cue.
func (v *Validator) SetOnReject(fn func()) {
	v.onReject = fn
}

// Format returns the format the validator parses and prints with.
func (v *Validator) Format() Format {
	return v.format
}

// Range returns the accepted value range.
func (v *Validator) Range() Range {
	return v.rng
}

// Value returns the last committed value.
func (v *Validator) Value() float64 {
	return v.lastValid
}

// Display returns the last committed value in its formatted form.
func (v *Validator) Display() string {
	return v.format.String(v.lastValid)
}

// ParseAndClamp parses raw under the validator's format. Unparseable text
// reports ok == false. Parseable text always yields a value inside the
// range: out-of-range input is clamped to the nearest bound, never rejected.
func (v *Validator) ParseAndClamp(raw string) (value float64, ok bool) {
	parsed, err := v.format.Parse(raw)
	if err != nil {
		return 0, false
	}
	return v.rng.Clamp(parsed), true
}

// TextChanged reports the parseability of raw to the validity observer.
// It mutates nothing and is safe to call on every keystroke.
func (v *Validator) TextChanged(raw string) {
	_, ok := v.ParseAndClamp(raw)
	if v.onValidity != nil {
		v.onValidity(ok)
	}
}

// Commit finalizes an edit. Unparseable text fires the reject hook and
// returns the formatted last valid value with committed == false, leaving
// all state untouched. Otherwise the (possibly clamped) value becomes the
// new last valid value, is pushed to the binding if one is attached, and its
// formatted form is returned with committed == true.
func (v *Validator) Commit(raw string) (display string, committed bool) {
	value, ok := v.ParseAndClamp(raw)
	if !ok {
		if v.onReject != nil {
			v.onReject()
		}
		return v.Display(), false
	}
	v.lastValid = value
	if v.bound != nil {
		_ = v.bound.Set(value)
	}
	return v.format.String(value), true
}

// Cancel abandons the current edit: it fires the reject hook and returns the
// formatted last valid value for the field to restore. Neither the last
// valid value nor the binding is touched.
func (v *Validator) Cancel() string {
	if v.onReject != nil {
		v.onReject()
	}
	return v.Display()
}
