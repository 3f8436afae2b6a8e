package numentry

import (
	"testing"

	"fyne.io/fyne/v2/data/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) (*Validator, binding.Float) {
	t.Helper()

	bound := binding.NewFloat()
	require.NoError(t, bound.Set(50))
	return NewValidatorWithData(bound, NewRange(0, 100), Integer()), bound
}

func boundValue(t *testing.T, bound binding.Float) float64 {
	t.Helper()

	v, err := bound.Get()
	require.NoError(t, err)
	return v
}

func TestParseAndClamp(t *testing.T) {
	v, _ := newTestValidator(t)

	tests := []struct {
		name   string
		raw    string
		want   float64
		wantOK bool
	}{
		{"in range", "50", 50, true},
		{"above range clamps to upper bound", "150", 100, true},
		{"below range clamps to lower bound", "-5", 0, true},
		{"at upper bound", "100", 100, true},
		{"unparseable", "abc", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.ParseAndClamp(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTextChangedReportsValidityWithoutMutating(t *testing.T) {
	v, bound := newTestValidator(t)

	var reports []bool
	v.SetOnValidity(func(ok bool) {
		reports = append(reports, ok)
	})

	v.TextChanged("12")
	v.TextChanged("12x")
	v.TextChanged("150")

	assert.Equal(t, []bool{true, false, true}, reports)
	assert.Equal(t, 50.0, v.Value())
	assert.Equal(t, 50.0, boundValue(t, bound))
}

func TestCommitClampsOutOfRangeInput(t *testing.T) {
	v, bound := newTestValidator(t)

	rejected := false
	v.SetOnReject(func() { rejected = true })

	display, committed := v.Commit("150")

	assert.True(t, committed)
	assert.Equal(t, "100", display)
	assert.Equal(t, 100.0, v.Value())
	assert.Equal(t, 100.0, boundValue(t, bound))
	// Clamping is an adjustment, not an error: no cue fires.
	assert.False(t, rejected)
}

func TestCommitRejectsUnparseableInput(t *testing.T) {
	v, bound := newTestValidator(t)

	rejections := 0
	v.SetOnReject(func() { rejections++ })

	display, committed := v.Commit("abc")

	assert.False(t, committed)
	assert.Equal(t, "50", display)
	assert.Equal(t, 50.0, v.Value())
	assert.Equal(t, 50.0, boundValue(t, bound))
	assert.Equal(t, 1, rejections)
}

func TestCommitIsIdempotent(t *testing.T) {
	v, bound := newTestValidator(t)

	display, committed := v.Commit(v.Display())

	assert.True(t, committed)
	assert.Equal(t, "50", display)
	assert.Equal(t, 50.0, boundValue(t, bound))
}

func TestCancelRestoresLastValidValue(t *testing.T) {
	v, bound := newTestValidator(t)

	rejections := 0
	v.SetOnReject(func() { rejections++ })

	display := v.Cancel()

	assert.Equal(t, "50", display)
	assert.Equal(t, 50.0, v.Value())
	assert.Equal(t, 50.0, boundValue(t, bound))
	assert.Equal(t, 1, rejections)
}

func TestInitialValueIsClampedIntoRange(t *testing.T) {
	v := NewValidator(500, NewRange(0, 100), Integer())

	assert.Equal(t, 100.0, v.Value())
	assert.Equal(t, "100", v.Display())
}

func TestCommitAfterRejectionKeepsEarlierValue(t *testing.T) {
	v, bound := newTestValidator(t)

	_, committed := v.Commit("nonsense")
	require.False(t, committed)

	display, committed := v.Commit("75")

	assert.True(t, committed)
	assert.Equal(t, "75", display)
	assert.Equal(t, 75.0, boundValue(t, bound))
}

func TestBindPushesCommitsOnly(t *testing.T) {
	v := NewValidator(50, NewRange(0, 100), Integer())
	bound := binding.NewFloat()
	v.Bind(bound)

	v.TextChanged("99")
	assert.Equal(t, 0.0, boundValue(t, bound))

	_, committed := v.Commit("99")
	require.True(t, committed)
	assert.Equal(t, 99.0, boundValue(t, bound))
}
