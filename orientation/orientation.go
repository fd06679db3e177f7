// Package orientation reduces directional actions to unit vectors and rotations
// Axes follow screen-independent math convention: +X east, +Y north
package orientation

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the smallest magnitude that still has a well-defined direction
const Epsilon = 1e-5

// ErrNearlySingular matches every *NearlySingularError via errors.Is
var ErrNearlySingular = errors.New("orientation: vector too short to normalize")

// NearlySingularError reports the vector that could not be normalized
// Typical cause is opposing inputs held together, e.g. left+right
type NearlySingularError struct {
	X, Y float64
}

func (e *NearlySingularError) Error() string {
	return fmt.Sprintf("orientation: vector (%g, %g) too short to normalize", e.X, e.Y)
}

func (e *NearlySingularError) Is(target error) bool {
	return target == ErrNearlySingular
}

// Direction is a unit-length 2D vector, zero value is invalid
type Direction struct {
	x, y float64
}

var (
	North = Direction{0, 1}
	South = Direction{0, -1}
	East  = Direction{1, 0}
	West  = Direction{-1, 0}

	NorthEast = Direction{math.Sqrt2 / 2, math.Sqrt2 / 2}
	NorthWest = Direction{-math.Sqrt2 / 2, math.Sqrt2 / 2}
	SouthEast = Direction{math.Sqrt2 / 2, -math.Sqrt2 / 2}
	SouthWest = Direction{-math.Sqrt2 / 2, -math.Sqrt2 / 2}
)

// NewDirection normalizes (x, y)
func NewDirection(x, y float64) (Direction, error) {
	mag := math.Hypot(x, y)
	if mag < Epsilon || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return Direction{}, &NearlySingularError{X: x, Y: y}
	}
	return Direction{x / mag, y / mag}, nil
}

// Sum adds dirs as vectors and normalizes the result
// Empty input and cancelling inputs both report ErrNearlySingular
func Sum(dirs ...Direction) (Direction, error) {
	var x, y float64
	for _, d := range dirs {
		x += d.x
		y += d.y
	}
	return NewDirection(x, y)
}

func (d Direction) X() float64 { return d.x }
func (d Direction) Y() float64 { return d.y }

// Vector returns the components
func (d Direction) Vector() (x, y float64) {
	return d.x, d.y
}

// Neg returns the opposite direction
func (d Direction) Neg() Direction {
	return Direction{-d.x, -d.y}
}

// Valid reports whether d is unit length within tolerance
func (d Direction) Valid() bool {
	return math.Abs(math.Hypot(d.x, d.y)-1) < 1e-9
}

// ApproxEqual compares components within Epsilon
func (d Direction) ApproxEqual(o Direction) bool {
	return math.Abs(d.x-o.x) < Epsilon && math.Abs(d.y-o.y) < Epsilon
}

// Rotation converts to a counter-clockwise angle from East
func (d Direction) Rotation() Rotation {
	rad := math.Atan2(d.y, d.x)
	return NewRotation(int(math.Round(rad * 180 / math.Pi * DeciDegreesPerDegree)))
}

func (d Direction) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", d.x, d.y)
}
