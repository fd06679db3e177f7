package orientation

import (
	"fmt"
	"math"
)

const (
	DeciDegreesPerDegree = 10
	FullCircle           = 360 * DeciDegreesPerDegree
)

// Rotation is a counter-clockwise angle from East in tenths of a degree, in [0, FullCircle)
// Integer storage keeps repeated rotation free of drift
type Rotation int

// NewRotation wraps deci into [0, FullCircle)
func NewRotation(deci int) Rotation {
	deci %= FullCircle
	if deci < 0 {
		deci += FullCircle
	}
	return Rotation(deci)
}

// FromDegrees rounds to the nearest deci-degree
func FromDegrees(deg float64) Rotation {
	return NewRotation(int(math.Round(deg * DeciDegreesPerDegree)))
}

// Degrees returns the angle in degrees
func (r Rotation) Degrees() float64 {
	return float64(r) / DeciDegreesPerDegree
}

// Radians returns the angle in radians
func (r Rotation) Radians() float64 {
	return r.Degrees() * math.Pi / 180
}

// Add rotates counter-clockwise by o
func (r Rotation) Add(o Rotation) Rotation {
	return NewRotation(int(r) + int(o))
}

// Sub rotates clockwise by o
func (r Rotation) Sub(o Rotation) Rotation {
	return NewRotation(int(r) - int(o))
}

// Direction returns the unit vector at this angle
func (r Rotation) Direction() Direction {
	switch r {
	case 0:
		return East
	case 900:
		return North
	case 1800:
		return West
	case 2700:
		return South
	}
	sin, cos := math.Sincos(r.Radians())
	return Direction{cos, sin}
}

func (r Rotation) String() string {
	return fmt.Sprintf("%.1f°", r.Degrees())
}
