package numentry

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format converts between field text and numeric values. Parse may fail,
// String may not. A Format must round-trip its own output: parsing the
// result of String yields the same value back.
type Format interface {
	Parse(s string) (float64, error)
	String(v float64) string
}

// RuneFilter is implemented by formats that restrict which runes may be
// typed into an entry using them.
type RuneFilter interface {
	AllowRune(r rune) bool
}

type integerFormat struct{}

// Integer returns a whole-number format. Fractional values are rounded to
// the nearest integer when printed.
func Integer() Format {
	return integerFormat{}
}

func (integerFormat) Parse(s string) (float64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return float64(n), nil
}

func (integerFormat) String(v float64) string {
	return strconv.FormatInt(int64(math.Round(v)), 10)
}

func (integerFormat) AllowRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '+'
}

type decimalFormat struct {
	places int
}

// Decimal returns a fixed-precision format printing the given number of
// fraction digits.
func Decimal(places int) Format {
	if places < 0 {
		places = 0
	}
	return decimalFormat{places: places}
}

func (f decimalFormat) Parse(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func (f decimalFormat) String(v float64) string {
	return strconv.FormatFloat(v, 'f', f.places, 64)
}

func (f decimalFormat) AllowRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '+' || r == '.' || r == 'e' || r == 'E'
}

type groupedFormat struct {
	printer *message.Printer
	places  int
	group   string
	decimal string
	digits  map[rune]rune
}

// Grouped returns a locale-aware format that prints with the locale's digit
// grouping and accepts grouped input back. The grouping and decimal marks
// and the locale's own digits are probed from the locale's rendering, so no
// separator or numbering-system table is maintained here.
func Grouped(tag language.Tag, places int) Format {
	if places < 0 {
		places = 0
	}
	p := message.NewPrinter(tag)
	f := groupedFormat{printer: p, places: places, group: ",", decimal: "."}
	for i := 0; i < 10; i++ {
		printed := []rune(p.Sprint(number.Decimal(i)))
		if len(printed) == 1 && printed[0] != rune('0'+i) {
			if f.digits == nil {
				f.digits = make(map[rune]rune, 10)
			}
			f.digits[printed[0]] = rune('0' + i)
		}
	}
	if sep := stripDigits(p.Sprint(number.Decimal(1000))); sep != "" {
		f.group = sep
	}
	if sep := stripDigits(p.Sprint(number.Decimal(1.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)))); sep != "" {
		f.decimal = sep
	}
	return f
}

func (f groupedFormat) Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if f.digits != nil {
		s = strings.Map(func(r rune) rune {
			if d, ok := f.digits[r]; ok {
				return d
			}
			return r
		}, s)
	}
	s = strings.ReplaceAll(s, f.group, "")
	// Several locales group with non-breaking spaces.
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if f.decimal != "." {
		s = strings.ReplaceAll(s, f.decimal, ".")
	}
	return strconv.ParseFloat(s, 64)
}

func (f groupedFormat) String(v float64) string {
	return f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(f.places),
		number.MaxFractionDigits(f.places)))
}

func (f groupedFormat) AllowRune(r rune) bool {
	if (r >= '0' && r <= '9') || r == '-' || r == '+' {
		return true
	}
	if _, ok := f.digits[r]; ok {
		return true
	}
	return strings.ContainsRune(f.group, r) || strings.ContainsRune(f.decimal, r) || r == ' '
}

func stripDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, s)
}
