package core

import "math"

// Interval is a range [Min, Max] on the real line, used to bound the ray parameter t
type Interval struct {
	Min, Max float64
}

var (
	// EmptyInterval contains nothing
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	// UniverseInterval contains every real number
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns the width of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether min <= x <= max
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether min < x < max
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp limits x to the interval
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// WithMax returns a copy of the interval with its upper bound lowered to max.
// Intervals are only ever narrowed: a max above the current upper bound is ignored.
func (i Interval) WithMax(max float64) Interval {
	if max < i.Max {
		i.Max = max
	}
	return i
}
