package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseUnit(t *testing.T) {
	cases := []struct {
		in   string
		want Unit
	}{
		{"km", Kilometer},
		{"Kilometres", Kilometer},
		{"m", Meter},
		{" meter ", Meter},
		{"CM", Centimeter},
		{"millimeters", Millimeter},
		{"µm", Micrometer},
		{"um", Micrometer},
		{"nanometre", Nanometer},
	}

	for _, c := range cases {
		got, err := ParseUnit(c.in)
		if err != nil {
			t.Errorf("ParseUnit(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseUnit(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestParseUnitUnknown(t *testing.T) {
	for _, in := range []string{"", "mile", "kmh"} {
		if _, err := ParseUnit(in); !errors.Is(err, ErrUnknownUnit) {
			t.Errorf("ParseUnit(%q) err = %v, want ErrUnknownUnit", in, err)
		}
	}
}

func TestUnitStringRoundTrip(t *testing.T) {
	for _, u := range Units() {
		got, err := ParseUnit(u.String())
		if err != nil {
			t.Fatalf("ParseUnit(%q): %v", u.String(), err)
		}
		if got != u {
			t.Fatalf("ParseUnit(%q) = %s, want %s", u.String(), got, u)
		}
	}

	if got := Unit(9).String(); got != "Unit(9)" {
		t.Errorf("Unit(9).String() = %q", got)
	}
}

func TestUnitJSON(t *testing.T) {
	type payload struct {
		Unit Unit `json:"unit"`
	}

	b, err := json.Marshal(payload{Unit: Centimeter})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"unit":"cm"}` {
		t.Fatalf("marshal = %s", b)
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"unit":"micrometer"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Unit != Micrometer {
		t.Fatalf("unmarshal unit = %s, want um", p.Unit)
	}

	if err := json.Unmarshal([]byte(`{"unit":"furlong"}`), &p); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("unmarshal unknown unit err = %v, want ErrUnknownUnit", err)
	}

	if _, err := json.Marshal(payload{Unit: Unit(12)}); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("marshal invalid unit err = %v, want ErrUnknownUnit", err)
	}
}
