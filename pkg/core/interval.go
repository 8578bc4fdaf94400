package core

import "math"

// Interval is a closed range of real numbers [Min, Max]. An interval with Min > Max is empty.
type Interval struct {
	Min, Max float64
}

var (
	// EmptyInterval contains nothing and is the identity for union
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	// UniverseInterval contains every real number
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval creates the interval [min, max]
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// NewIntervalFromIntervals returns the tightest interval enclosing both a and b
func NewIntervalFromIntervals(a, b Interval) Interval {
	return Interval{
		Min: math.Min(a.Min, b.Min),
		Max: math.Max(a.Max, b.Max),
	}
}

func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains is inclusive on both ends
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds is exclusive on both ends
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand pads the interval by delta/2 on each side
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Offset shifts both ends by displacement
func (i Interval) Offset(displacement float64) Interval {
	return Interval{Min: i.Min + displacement, Max: i.Max + displacement}
}
