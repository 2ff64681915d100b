package domain

import (
	"math"
	"strconv"
)

// Distance is a length held as a whole number of nanometers.
//
// Comparisons are exact and do not depend on the unit a Distance was built from.
// Resolution is 1 nm and the range is roughly ±9.2e9 meters; overflow is not checked.
//
// A Distance is a plain value; copies are independent. Mutating one instance from
// several goroutines needs external synchronization.
type Distance struct {
	nanometers int64
}

// NewDistance converts value in unit to nanometers, truncating toward zero.
func NewDistance(value float64, unit Unit) Distance {
	return Distance{nanometers: truncate(value * unit.scale())}
}

// Meters is shorthand for NewDistance(value, Meter).
func Meters(value float64) Distance { return NewDistance(value, Meter) }

func DistanceFromNanometers(n int64) Distance { return Distance{nanometers: n} }

func (d Distance) Nanometers() int64 { return d.nanometers }

// Value returns the distance expressed in unit.
func (d Distance) Value(unit Unit) float64 {
	return float64(d.nanometers) / unit.scale()
}

// Set overwrites the distance with value in unit.
func (d *Distance) Set(value float64, unit Unit) {
	d.nanometers = truncate(value * unit.scale())
}

func (d Distance) Equal(other Distance) bool          { return d.nanometers == other.nanometers }
func (d Distance) NotEqual(other Distance) bool       { return d.nanometers != other.nanometers }
func (d Distance) Less(other Distance) bool           { return d.nanometers < other.nanometers }
func (d Distance) LessOrEqual(other Distance) bool    { return d.nanometers <= other.nanometers }
func (d Distance) Greater(other Distance) bool        { return d.nanometers > other.nanometers }
func (d Distance) GreaterOrEqual(other Distance) bool { return d.nanometers >= other.nanometers }

// Compare returns -1, 0 or +1 depending on whether d is shorter than, equal to or
// longer than other.
func (d Distance) Compare(other Distance) int {
	switch {
	case d.nanometers < other.nanometers:
		return -1
	case d.nanometers > other.nanometers:
		return 1
	}
	return 0
}

func (d Distance) Add(other Distance) Distance {
	return Distance{nanometers: d.nanometers + other.nanometers}
}

func (d Distance) Sub(other Distance) Distance {
	return Distance{nanometers: d.nanometers - other.nanometers}
}

// Mul scales the distance. The product goes through float64, so large distances
// lose precision below the nanometer.
func (d Distance) Mul(scale float64) Distance {
	return Distance{nanometers: truncate(float64(d.nanometers) * scale)}
}

// Div divides the distance by scale. A zero, NaN or infinite scale is not an error;
// the result is whatever the float64 quotient truncates to.
func (d Distance) Div(scale float64) Distance {
	return Distance{nanometers: truncate(float64(d.nanometers) / scale)}
}

func (d *Distance) AddInPlace(other Distance) { *d = d.Add(other) }
func (d *Distance) SubInPlace(other Distance) { *d = d.Sub(other) }
func (d *Distance) MulInPlace(scale float64)  { *d = d.Mul(scale) }
func (d *Distance) DivInPlace(scale float64)  { *d = d.Div(scale) }

func (d Distance) String() string {
	return strconv.FormatFloat(d.Value(Meter), 'g', -1, 64) + "m"
}

// truncate converts nanometers to int64 toward zero. NaN maps to 0 and values beyond
// the int64 range saturate.
func truncate(nm float64) int64 {
	switch {
	case math.IsNaN(nm):
		return 0
	case nm >= math.MaxInt64:
		return math.MaxInt64
	case nm <= math.MinInt64:
		return math.MinInt64
	}
	return int64(nm)
}
