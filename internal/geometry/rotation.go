package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// OrthonormalTolerance is how far a rotation matrix may deviate from
// orthonormal before it is rejected. Legacy decks usually carry five or six
// significant digits per direction cosine.
const OrthonormalTolerance = 1e-3

// WarnDeviation is the deviation from orthonormal above which a decomposed
// rotation only approximates its input matrix
const WarnDeviation = 1e-9

// gimbalEpsilon is the cos(ry) below which rx and rz describe the same axis
const gimbalEpsilon = 1e-12

// Matrix3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...]
type Matrix3 [9]float64

// Identity3 returns the identity matrix
func Identity3() Matrix3 {
	return Matrix3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// At returns the entry in row r, column c
func (m Matrix3) At(r, c int) float64 {
	return m[r*3+c]
}

// Mul returns m × o
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var out Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m[r*3+0]*o[0*3+c] + m[r*3+1]*o[1*3+c] + m[r*3+2]*o[2*3+c]
		}
	}
	return out
}

// MulVec returns m × v
func (m Matrix3) MulVec(v Vector3d) Vector3d {
	return Vector3d{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transposed matrix
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Det returns the determinant
func (m Matrix3) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// ApproxEqual reports whether every entry differs by at most tol
func (m Matrix3) ApproxEqual(o Matrix3, tol float64) bool {
	for i := range m {
		if !scalar.EqualWithinAbs(m[i], o[i], tol) {
			return false
		}
	}
	return true
}

// CheckOrthonormal verifies that m is a proper rotation within OrthonormalTolerance
func (m Matrix3) CheckOrthonormal() error {
	rows := [3]Vector3d{
		{m[0], m[1], m[2]},
		{m[3], m[4], m[5]},
		{m[6], m[7], m[8]},
	}

	for i, r := range rows {
		if math.Abs(r.Length()-1) > OrthonormalTolerance {
			return fmt.Errorf("%w: row %d has length %g", ErrDegenerateTransform, i+1, r.Length())
		}
	}

	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		dot := rows[i].X*rows[j].X + rows[i].Y*rows[j].Y + rows[i].Z*rows[j].Z
		if math.Abs(dot) > OrthonormalTolerance {
			return fmt.Errorf("%w: rows %d and %d are not orthogonal (dot %g)", ErrDegenerateTransform, i+1, j+1, dot)
		}
	}

	if det := m.Det(); math.Abs(det-1) > OrthonormalTolerance {
		return fmt.Errorf("%w: determinant is %g, want +1", ErrDegenerateTransform, det)
	}

	return nil
}

// OrthonormalDeviation returns the largest deviation of m from a proper
// rotation over row lengths, pairwise row dot products and the determinant
func (m Matrix3) OrthonormalDeviation() float64 {
	rows := [3]Vector3d{
		{m[0], m[1], m[2]},
		{m[3], m[4], m[5]},
		{m[6], m[7], m[8]},
	}

	dev := math.Abs(m.Det() - 1)
	for i, r := range rows {
		dev = math.Max(dev, math.Abs(r.Length()-1))
		o := rows[(i+1)%3]
		dev = math.Max(dev, math.Abs(r.X*o.X+r.Y*o.Y+r.Z*o.Z))
	}
	return dev
}

// RotX returns a rotation about the X axis. Angle in radians.
func RotX(a float64) Matrix3 {
	c, s := math.Cos(a), math.Sin(a)
	return Matrix3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a rotation about the Y axis. Angle in radians.
func RotY(a float64) Matrix3 {
	c, s := math.Cos(a), math.Sin(a)
	return Matrix3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a rotation about the Z axis. Angle in radians.
func RotZ(a float64) Matrix3 {
	c, s := math.Cos(a), math.Sin(a)
	return Matrix3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// ComposeRotation builds Rz(rz) · Ry(ry) · Rx(rx): a point is rotated about
// the fixed X axis first, then Y, then Z.
func ComposeRotation(rx, ry, rz float64) Matrix3 {
	return RotZ(rz).Mul(RotY(ry)).Mul(RotX(rx))
}

// RotsFromMatrix decomposes a rotation matrix into the angles accepted by
// ComposeRotation. Matrices outside OrthonormalTolerance are rejected.
//
// rz is taken from the first column. Rz(-rz)·m is then exactly Ry·Rx, whose
// second row is (0, cos rx, -sin rx), so rx and ry come from unit-length
// quantities even near gimbal lock. At gimbal lock rz is 0.
func RotsFromMatrix(m Matrix3) (rx, ry, rz float64, err error) {
	if err := m.CheckOrthonormal(); err != nil {
		return 0, 0, 0, err
	}

	if math.Hypot(m[0], m[3]) > gimbalEpsilon {
		rz = math.Atan2(m[3], m[0])
	}
	cz, sz := math.Cos(rz), math.Sin(rz)

	// Rows of Rz(-rz)·m
	n00 := cz*m[0] + sz*m[3]
	n11 := cz*m[4] - sz*m[1]
	n12 := cz*m[5] - sz*m[2]

	ry = math.Atan2(-m[6], n00)
	rx = math.Atan2(-n12, n11)

	return rx, ry, rz, nil
}

// DegreesToCosines converts nine axis angles in degrees to direction cosines
func DegreesToCosines(angles [9]float64) Matrix3 {
	var m Matrix3
	for i, a := range angles {
		m[i] = cosDeg(a)
	}
	return m
}

// cosDeg returns cos of an angle in degrees, exact for multiples of 90
func cosDeg(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	switch r {
	case 0:
		return 1
	case 90, 270:
		return 0
	case 180:
		return -1
	}
	return math.Cos(deg * math.Pi / 180.0)
}
