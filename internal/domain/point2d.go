package domain

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Point2D is a Cartesian coordinate pair.
type Point2D struct {
	x float64
	y float64
}

func NewPoint2D(x, y float64) Point2D { return Point2D{x: x, y: y} }

func (p Point2D) X() float64 { return p.x }
func (p Point2D) Y() float64 { return p.y }

func (p *Point2D) SetX(x float64) { p.x = x }
func (p *Point2D) SetY(y float64) { p.y = y }

func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{x: p.x + other.x, y: p.y + other.y}
}

func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{x: p.x - other.x, y: p.y - other.y}
}

func (p *Point2D) AddInPlace(other Point2D) {
	p.x += other.x
	p.y += other.y
}

func (p *Point2D) SubInPlace(other Point2D) {
	p.x -= other.x
	p.y -= other.y
}

func (p Point2D) Mul(scalar float64) Point2D {
	return Point2D{x: p.x * scalar, y: p.y * scalar}
}

// Div divides both coordinates by scalar.
// A zero, NaN or infinite scalar returns ErrInvalidArgument.
func (p Point2D) Div(scalar float64) (Point2D, error) {
	if scalar == 0 || math.IsNaN(scalar) || math.IsInf(scalar, 0) {
		return Point2D{}, fmt.Errorf("divide point by %v: %w", scalar, ErrInvalidArgument)
	}
	return Point2D{x: p.x / scalar, y: p.y / scalar}, nil
}

// Equal compares coordinates exactly, without tolerance.
func (p Point2D) Equal(other Point2D) bool {
	return p.x == other.x && p.y == other.y
}

func (p Point2D) NotEqual(other Point2D) bool { return !p.Equal(other) }

// DistanceTo returns the Euclidean distance to target.
func (p Point2D) DistanceTo(target Point2D) float64 {
	return PointDistance(p, target)
}

// PointDistance returns the Euclidean distance between lhs and rhs.
func PointDistance(lhs, rhs Point2D) float64 {
	dx := lhs.x - rhs.x
	dy := lhs.y - rhs.y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point2D) String() string {
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}
