package geometry

import (
	"fmt"
	"io"
	"math"
	"strings"

	"gonum.org/v1/gonum/num/quat"
)

// AngleUnit tells how the nine rotation values of a RigidTransform are encoded
type AngleUnit int

const (
	// DirectionCosines means the values are rotation matrix entries
	DirectionCosines AngleUnit = iota
	// Degrees means each value is the angle, in degrees, whose cosine is the matrix entry
	Degrees
)

func (u AngleUnit) String() string {
	switch u {
	case DirectionCosines:
		return "cosines"
	case Degrees:
		return "degrees"
	default:
		return fmt.Sprintf("AngleUnit(%d)", int(u))
	}
}

// TransformInput is one of the parameter shapes a Transform can be built from.
// Implemented by Translation and RigidTransform.
type TransformInput interface {
	transformInput()
}

// Translation is a pure displacement
type Translation struct {
	Vector Vector3d
}

// RigidTransform is a displacement plus a row-major 3×3 rotation
type RigidTransform struct {
	Vector   Vector3d
	Rotation [9]float64
	Unit     AngleUnit
}

func (Translation) transformInput() {}
func (RigidTransform) transformInput() {}

// ClassifyInput turns a legacy parameter list into a TransformInput.
// Three values are a translation, twelve are a translation followed by the
// nine rotation entries. Anything else is malformed.
func ClassifyInput(values []float64, degreeFormat bool) (TransformInput, error) {
	switch len(values) {
	case 3:
		v, err := Vector3dFromSlice(values)
		if err != nil {
			return nil, err
		}
		return Translation{Vector: v}, nil
	case 12:
		v, err := Vector3dFromSlice(values[:3])
		if err != nil {
			return nil, err
		}
		in := RigidTransform{Vector: v, Unit: DirectionCosines}
		copy(in.Rotation[:], values[3:12])
		if degreeFormat {
			in.Unit = Degrees
		}
		return in, nil
	default:
		return nil, fmt.Errorf("%w: expected 3 or 12 values, got %d", ErrMalformedInput, len(values))
	}
}

// RotationDeviation returns how far the rotation of in is from orthonormal.
// Translations have no rotation and report 0.
func RotationDeviation(in TransformInput) float64 {
	rt, ok := in.(RigidTransform)
	if !ok {
		return 0
	}
	if rt.Unit == Degrees {
		return DegreesToCosines(rt.Rotation).OrthonormalDeviation()
	}
	return Matrix3(rt.Rotation).OrthonormalDeviation()
}

// Transform is a translation plus an optional rotation given as three axis
// angles in radians (see ComposeRotation for the order).
// The zero value is the identity.
type Transform struct {
	translation      Vector3d
	hasRot           bool
	rotX, rotY, rotZ float64
}

// Identity returns the transform that leaves everything in place
func Identity() Transform {
	return Transform{}
}

// NewTransform builds a transform from an explicit input shape
func NewTransform(in TransformInput) (Transform, error) {
	switch v := in.(type) {
	case Translation:
		return Transform{translation: v.Vector}, nil
	case RigidTransform:
		m := Matrix3(v.Rotation)
		if v.Unit == Degrees {
			m = DegreesToCosines(v.Rotation)
		}
		return newRigid(v.Vector, m)
	case nil:
		return Transform{}, fmt.Errorf("%w: no input", ErrMalformedInput)
	default:
		return Transform{}, fmt.Errorf("%w: unsupported input %T", ErrMalformedInput, in)
	}
}

// TransformFromSequence classifies a legacy parameter list and builds the transform
func TransformFromSequence(values []float64, degreeFormat bool) (Transform, error) {
	in, err := ClassifyInput(values, degreeFormat)
	if err != nil {
		return Transform{}, err
	}
	return NewTransform(in)
}

// NewTranslation returns a transform that only displaces
func NewTranslation(v Vector3d) Transform {
	return Transform{translation: v}
}

// NewRotation returns a transform with the given displacement and axis angles in radians
func NewRotation(v Vector3d, rx, ry, rz float64) Transform {
	return Transform{translation: v, hasRot: true, rotX: rx, rotY: ry, rotZ: rz}
}

func newRigid(v Vector3d, m Matrix3) (Transform, error) {
	rx, ry, rz, err := RotsFromMatrix(m)
	if err != nil {
		return Transform{}, err
	}
	return NewRotation(v, rx, ry, rz), nil
}

// Translation returns the displacement
func (t Transform) Translation() Vector3d {
	return t.translation
}

// HasRot reports whether the transform carries a rotation
func (t Transform) HasRot() bool {
	return t.hasRot
}

// RotX returns the rotation about X in radians, 0 without rotation
func (t Transform) RotX() float64 {
	if !t.hasRot {
		return 0
	}
	return t.rotX
}

// RotY returns the rotation about Y in radians, 0 without rotation
func (t Transform) RotY() float64 {
	if !t.hasRot {
		return 0
	}
	return t.rotY
}

// RotZ returns the rotation about Z in radians, 0 without rotation
func (t Transform) RotZ() float64 {
	if !t.hasRot {
		return 0
	}
	return t.rotZ
}

// Matrix returns the rotation matrix, identity without rotation
func (t Transform) Matrix() Matrix3 {
	if !t.hasRot {
		return Identity3()
	}
	return ComposeRotation(t.rotX, t.rotY, t.rotZ)
}

// Apply maps a point: rotation first, then translation
func (t Transform) Apply(p Vector3d) Vector3d {
	return t.Matrix().MulVec(p).Add(t.translation)
}

// Quaternion returns the rotation as a unit quaternion, 1 without rotation
func (t Transform) Quaternion() quat.Number {
	if !t.hasRot {
		return quat.Number{Real: 1}
	}
	qx := quat.Number{Real: math.Cos(t.rotX / 2), Imag: math.Sin(t.rotX / 2)}
	qy := quat.Number{Real: math.Cos(t.rotY / 2), Jmag: math.Sin(t.rotY / 2)}
	qz := quat.Number{Real: math.Cos(t.rotZ / 2), Kmag: math.Sin(t.rotZ / 2)}
	return quat.Mul(qz, quat.Mul(qy, qx))
}

// Then returns the transform that applies t and afterwards outer
func (t Transform) Then(outer Transform) (Transform, error) {
	if !t.hasRot && !outer.hasRot {
		return NewTranslation(t.translation.Add(outer.translation)), nil
	}
	m := outer.Matrix().Mul(t.Matrix())
	v := outer.Matrix().MulVec(t.translation).Add(outer.translation)
	return newRigid(v, m)
}

// Equal reports whether both transforms carry the same values
func (t Transform) Equal(o Transform) bool {
	return t == o
}

// Print writes a diagnostic rendering of the transform
func (t Transform) Print(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

func (t Transform) String() string {
	var b strings.Builder
	b.WriteString("translate ")
	b.WriteString(t.translation.String())
	if t.hasRot {
		b.WriteString(fmt.Sprintf(" rotate (%g, %g, %g) rad", t.rotX, t.rotY, t.rotZ))
	}
	return b.String()
}

// Matrix3MF renders the transform as a 3MF transformation matrix string.
// The format is: m11 m12 m13 m21 m22 m23 m31 m32 m33 tx ty tz, where 3MF
// multiplies row vectors, so the rotation block is the transposed matrix.
func (t Transform) Matrix3MF() string {
	tr := t.translation
	if !t.hasRot {
		return fmt.Sprintf("1 0 0 0 1 0 0 0 1 %.4f %.4f %.4f", tr.X, tr.Y, tr.Z)
	}

	m := t.Matrix().Transpose()

	// Use %.8f for precision to avoid rounding errors
	return fmt.Sprintf("%.8f %.8f %.8f %.8f %.8f %.8f %.8f %.8f %.8f %.4f %.4f %.4f",
		m[0], m[1], m[2],
		m[3], m[4], m[5],
		m[6], m[7], m[8],
		tr.X, tr.Y, tr.Z)
}
