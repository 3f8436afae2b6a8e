package numentry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestIntegerFormat(t *testing.T) {
	f := Integer()

	v, err := f.Parse("42")
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	v, err = f.Parse(" -7 ")
	require.NoError(t, err)
	assert.Equal(t, -7.0, v)

	_, err = f.Parse("abc")
	assert.Error(t, err)

	_, err = f.Parse("")
	assert.Error(t, err)

	_, err = f.Parse("12.5")
	assert.Error(t, err)

	assert.Equal(t, "42", f.String(42))
	assert.Equal(t, "43", f.String(42.7))
}

func TestDecimalFormat(t *testing.T) {
	f := Decimal(2)

	v, err := f.Parse("3.14159")
	require.NoError(t, err)
	assert.InDelta(t, 3.14159, v, 1e-9)

	_, err = f.Parse("three")
	assert.Error(t, err)

	assert.Equal(t, "3.14", f.String(3.14159))
	assert.Equal(t, "5.00", f.String(5))
}

func TestGroupedFormatEnglish(t *testing.T) {
	f := Grouped(language.English, 0)

	assert.Equal(t, "1,500", f.String(1500))

	v, err := f.Parse("1,500")
	require.NoError(t, err)
	assert.Equal(t, 1500.0, v)

	// Ungrouped input is accepted too.
	v, err = f.Parse("1500")
	require.NoError(t, err)
	assert.Equal(t, 1500.0, v)

	_, err = f.Parse("lots")
	assert.Error(t, err)
}

func TestGroupedFormatGerman(t *testing.T) {
	f := Grouped(language.German, 1)

	assert.Equal(t, "1.234,5", f.String(1234.5))

	v, err := f.Parse("1.234,5")
	require.NoError(t, err)
	assert.InDelta(t, 1234.5, v, 1e-9)
}

func TestGroupedFormatNativeDigits(t *testing.T) {
	f := Grouped(language.Arabic, 0)

	display := f.String(1500)
	assert.Equal(t, "١٬٥٠٠", display)

	v, err := f.Parse(display)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, v)

	// ASCII input is accepted alongside the locale's own digits.
	v, err = f.Parse("1500")
	require.NoError(t, err)
	assert.Equal(t, 1500.0, v)

	filter, ok := f.(RuneFilter)
	require.True(t, ok)
	assert.True(t, filter.AllowRune('٥'))
	assert.True(t, filter.AllowRune('5'))
}

func TestFormatsRoundTrip(t *testing.T) {
	formats := map[string]Format{
		"integer":        Integer(),
		"decimal":        Decimal(2),
		"grouped":        Grouped(language.English, 2),
		"grouped arabic": Grouped(language.Arabic, 0),
		"grouped bangla": Grouped(language.Bengali, 0),
	}

	for name, f := range formats {
		t.Run(name, func(t *testing.T) {
			for _, v := range []float64{0, 7, 100, 4096} {
				parsed, err := f.Parse(f.String(v))
				require.NoError(t, err)
				assert.Equal(t, v, parsed)
			}
		})
	}
}

func TestFormatRuneFilters(t *testing.T) {
	intFilter, ok := Integer().(RuneFilter)
	require.True(t, ok)
	assert.True(t, intFilter.AllowRune('7'))
	assert.True(t, intFilter.AllowRune('-'))
	assert.False(t, intFilter.AllowRune('a'))
	assert.False(t, intFilter.AllowRune('.'))

	decFilter, ok := Decimal(2).(RuneFilter)
	require.True(t, ok)
	assert.True(t, decFilter.AllowRune('.'))
	assert.False(t, decFilter.AllowRune('x'))

	grpFilter, ok := Grouped(language.English, 0).(RuneFilter)
	require.True(t, ok)
	assert.True(t, grpFilter.AllowRune(','))
	assert.False(t, grpFilter.AllowRune('z'))
}
