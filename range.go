package numentry

// Range is an inclusive pair of bounds for accepted values.
type Range struct {
	Min float64
	Max float64
}

// NewRange returns the inclusive range [low, high]. Inverted bounds are
// swapped rather than rejected.
func NewRange(low, high float64) Range {
	if low > high {
		low, high = high, low
	}
	return Range{Min: low, Max: high}
}

// Clamp returns v adjusted to the nearest bound if it falls outside the
// range, otherwise v unchanged.
func (r Range) Clamp(v float64) float64 {
	if v > r.Max {
		return r.Max
	}
	if v < r.Min {
		return r.Min
	}
	return v
}

// Contains reports whether v lies within the range, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}
