package geometry

import (
	"fmt"
	"math"
)

// Vector3d represents a 3D vector or point
type Vector3d struct {
	X, Y, Z float64
}

// NewVector3d creates a vector from its three components
func NewVector3d(x, y, z float64) Vector3d {
	return Vector3d{X: x, Y: y, Z: z}
}

// Vector3dFromArray creates a vector from a fixed-size array
func Vector3dFromArray(p [3]float64) Vector3d {
	return Vector3d{X: p[0], Y: p[1], Z: p[2]}
}

// Vector3dFromSlice creates a vector from the first three values of p.
// Fewer than three values is an index error.
func Vector3dFromSlice(p []float64) (Vector3d, error) {
	if len(p) < 3 {
		return Vector3d{}, fmt.Errorf("%w: vector needs 3 values, got %d", ErrIndex, len(p))
	}
	return Vector3d{X: p[0], Y: p[1], Z: p[2]}, nil
}

// Length returns the Euclidean norm of the vector
func (v Vector3d) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Neg returns the component-wise negation
func (v Vector3d) Neg() Vector3d {
	return Vector3d{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Reverse returns the vector pointing the other way. Same as Neg.
func (v Vector3d) Reverse() Vector3d {
	return v.Neg()
}

// Add returns v + o
func (v Vector3d) Add(o Vector3d) Vector3d {
	return Vector3d{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o
func (v Vector3d) Sub(o Vector3d) Vector3d {
	return Vector3d{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v multiplied by s
func (v Vector3d) Scale(s float64) Vector3d {
	return Vector3d{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Array returns the components as an array
func (v Vector3d) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func (v Vector3d) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
