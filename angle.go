package figure

import (
	"fmt"
	"math"
)

// SnapTolerance is the distance in degrees below which SnapDegrees rounds to
// the nearest integer.
const SnapTolerance = 1e-6

// Angle is an angle, stored in radians.
//
// The zero value is the angle 0.
type Angle struct {
	rad float64
}

// Radians returns the angle of r radians.
func Radians(r float64) Angle { return Angle{rad: r} }

// Degrees returns the angle of d degrees.
func Degrees(d float64) Angle { return Angle{rad: d * math.Pi / 180} }

// AngleOf returns the direction of v, in (-π, π].
func AngleOf(v Vec2) Angle { return Angle{rad: v.Angle()} }

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return a.rad }

// Degrees returns the angle in degrees, without any snapping.
func (a Angle) Degrees() float64 { return a.rad * 180 / math.Pi }

// SnappedDegrees returns SnapDegrees(a.Degrees()).
func (a Angle) SnappedDegrees() float64 { return SnapDegrees(a.Degrees()) }

// Normalized returns the same direction expressed in [0, 2π).
func (a Angle) Normalized() Angle {
	r := math.Mod(a.rad, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	if r >= 2*math.Pi {
		r = 0
	}
	return Angle{rad: r}
}

func (a Angle) Add(o Angle) Angle { return Angle{rad: a.rad + o.rad} }
func (a Angle) Sub(o Angle) Angle { return Angle{rad: a.rad - o.rad} }
func (a Angle) Neg() Angle        { return Angle{rad: -a.rad} }

// Sincos returns the sine and cosine of the angle.
func (a Angle) Sincos() (sin, cos float64) { return math.Sincos(a.rad) }

// Unit returns the unit vector pointing in the direction of the angle.
func (a Angle) Unit() Vec2 { return VecFromAngle(a.rad) }

func (a Angle) String() string {
	return fmt.Sprintf("%g°", a.SnappedDegrees())
}

// SnapDegrees rounds d to the nearest integer if it is within SnapTolerance of
// it, and returns d unchanged otherwise. Angles computed from exact values
// (say, 90° from atan2) come back as 89.99999999999999; snapping recovers the
// intended value before it is written into the output.
func SnapDegrees(d float64) float64 {
	if r := math.Round(d); math.Abs(d-r) < SnapTolerance {
		return r
	}
	return d
}
