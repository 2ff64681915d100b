package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownUnit = errors.New("unknown unit")

// Unit identifies one of the metric length units a Distance can be read or written in.
type Unit int

const (
	Kilometer Unit = iota
	Meter
	Centimeter
	Millimeter
	Micrometer
	Nanometer
)

// Nanometers per unit, indexed by Unit.
var unitScale = [...]float64{
	Kilometer:  1e12,
	Meter:      1e9,
	Centimeter: 1e7,
	Millimeter: 1e6,
	Micrometer: 1e3,
	Nanometer:  1,
}

var unitSymbols = [...]string{
	Kilometer:  "km",
	Meter:      "m",
	Centimeter: "cm",
	Millimeter: "mm",
	Micrometer: "um",
	Nanometer:  "nm",
}

var unitNames = map[string]Unit{
	"km": Kilometer, "kilometer": Kilometer, "kilometers": Kilometer, "kilometre": Kilometer, "kilometres": Kilometer,
	"m": Meter, "meter": Meter, "meters": Meter, "metre": Meter, "metres": Meter,
	"cm": Centimeter, "centimeter": Centimeter, "centimeters": Centimeter, "centimetre": Centimeter, "centimetres": Centimeter,
	"mm": Millimeter, "millimeter": Millimeter, "millimeters": Millimeter, "millimetre": Millimeter, "millimetres": Millimeter,
	"um": Micrometer, "µm": Micrometer, "micrometer": Micrometer, "micrometers": Micrometer, "micrometre": Micrometer, "micrometres": Micrometer,
	"nm": Nanometer, "nanometer": Nanometer, "nanometers": Nanometer, "nanometre": Nanometer, "nanometres": Nanometer,
}

// Units returns every supported unit, largest first.
func Units() []Unit {
	return []Unit{Kilometer, Meter, Centimeter, Millimeter, Micrometer, Nanometer}
}

func (u Unit) valid() bool { return u >= Kilometer && u <= Nanometer }

// scale returns nanometers per unit. Unrecognized units fall back to the meter scale.
func (u Unit) scale() float64 {
	if !u.valid() {
		return unitScale[Meter]
	}
	return unitScale[u]
}

func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitSymbols[u]
}

// ParseUnit accepts a unit symbol or its English name, in any case.
func ParseUnit(s string) (Unit, error) {
	u, ok := unitNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("parse unit %q: %w", s, ErrUnknownUnit)
	}
	return u, nil
}

func (u Unit) MarshalText() ([]byte, error) {
	if !u.valid() {
		return nil, fmt.Errorf("marshal unit %d: %w", int(u), ErrUnknownUnit)
	}
	return []byte(unitSymbols[u]), nil
}

func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
