package domain

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func randomPoint(rng *rand.Rand) Point2D {
	return NewPoint2D(float64(rng.Int32()), float64(rng.Int32()))
}

func TestPoint2DZeroValue(t *testing.T) {
	var p Point2D
	if p.X() != 0 || p.Y() != 0 {
		t.Fatalf("zero Point2D = %v, want (0, 0)", p)
	}
	if !p.Equal(NewPoint2D(0, 0)) {
		t.Fatalf("zero Point2D != NewPoint2D(0, 0)")
	}
}

func TestPoint2DDistanceConcrete(t *testing.T) {
	if got := NewPoint2D(0, 0).DistanceTo(NewPoint2D(3, 4)); got != 5.0 {
		t.Fatalf("distance (0,0)-(3,4) = %v, want 5", got)
	}
}

func TestPoint2DDistance(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))

	for i := 0; i < testCount; i++ {
		p := randomPoint(rng)
		q := randomPoint(rng)

		dx, dy := p.X()-q.X(), p.Y()-q.Y()
		want := math.Sqrt(dx*dx + dy*dy)

		if got := p.DistanceTo(q); got != want {
			t.Fatalf("%v.DistanceTo(%v) = %v, want %v", p, q, got, want)
		}
		if got := PointDistance(p, q); got != want {
			t.Fatalf("PointDistance(%v, %v) = %v, want %v", p, q, got, want)
		}
		if PointDistance(p, q) != PointDistance(q, p) {
			t.Fatalf("PointDistance not symmetric for %v, %v", p, q)
		}
		if got := PointDistance(p, p); got != 0 {
			t.Fatalf("PointDistance(%v, %v) = %v, want 0", p, p, got)
		}
	}
}

func TestPoint2DAccessors(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))

	for i := 0; i < testCount; i++ {
		x := float64(rng.Int32())
		y := float64(rng.Int32())

		var p Point2D
		p.SetX(x)
		p.SetY(y)

		if p.X() != x || p.Y() != y {
			t.Fatalf("after SetX/SetY got %v, want (%v, %v)", p, x, y)
		}
		if !p.Equal(NewPoint2D(x, y)) {
			t.Fatalf("%v != NewPoint2D(%v, %v)", p, x, y)
		}
	}
}

func TestPoint2DArithmetic(t *testing.T) {
	rng := rand.New(rand.NewPCG(15, 16))

	for i := 0; i < testCount; i++ {
		p := randomPoint(rng)
		q := randomPoint(rng)
		scalar := float64(rng.Int32())

		if got, want := p.Add(q), NewPoint2D(p.X()+q.X(), p.Y()+q.Y()); got != want {
			t.Fatalf("%v + %v = %v, want %v", p, q, got, want)
		}
		if got, want := p.Sub(q), NewPoint2D(p.X()-q.X(), p.Y()-q.Y()); got != want {
			t.Fatalf("%v - %v = %v, want %v", p, q, got, want)
		}
		if got, want := p.Mul(scalar), NewPoint2D(p.X()*scalar, p.Y()*scalar); got != want {
			t.Fatalf("%v * %v = %v, want %v", p, scalar, got, want)
		}

		sum := p
		sum.AddInPlace(q)
		if !sum.Equal(p.Add(q)) {
			t.Fatalf("AddInPlace = %v, want %v", sum, p.Add(q))
		}

		diff := p
		diff.SubInPlace(q)
		if !diff.Equal(p.Sub(q)) {
			t.Fatalf("SubInPlace = %v, want %v", diff, p.Sub(q))
		}
	}
}

func TestPoint2DDiv(t *testing.T) {
	got, err := NewPoint2D(3, -8).Div(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := NewPoint2D(1.5, -4); got != want {
		t.Fatalf("Div(2) = %v, want %v", got, want)
	}
}

func TestPoint2DDivInvalid(t *testing.T) {
	p := NewPoint2D(1, 2)

	for _, scalar := range []float64{0, math.Copysign(0, -1), math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := p.Div(scalar); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Div(%v) err = %v, want ErrInvalidArgument", scalar, err)
		}
	}

	if p != NewPoint2D(1, 2) {
		t.Fatalf("receiver modified after failed Div: %v", p)
	}
}

func TestPoint2DEquality(t *testing.T) {
	p := NewPoint2D(0.5, 0.25)

	if !p.Equal(NewPoint2D(0.5, 0.25)) || p.NotEqual(NewPoint2D(0.5, 0.25)) {
		t.Errorf("%v should equal itself", p)
	}
	if p.Equal(NewPoint2D(0.5, 0.75)) || !p.NotEqual(NewPoint2D(0.25, 0.25)) {
		t.Errorf("%v should differ from points with other coordinates", p)
	}
}

func TestWaypointDistanceTo(t *testing.T) {
	a := Waypoint{Name: "A", Position: NewPoint2D(0, 0)}
	b := Waypoint{Name: "B", Position: NewPoint2D(300, 400)}

	if got := a.DistanceTo(b); got != NewDistance(0.5, Kilometer) {
		t.Fatalf("A->B = %v, want 500m", got)
	}
}
