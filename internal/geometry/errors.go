package geometry

import "errors"

var (
	// ErrIndex is returned when a numeric sequence is shorter than required
	ErrIndex = errors.New("index out of range")

	// ErrMalformedInput is returned when a transform parameter list has neither
	// the translation-only nor the translation+matrix shape
	ErrMalformedInput = errors.New("malformed transform input")

	// ErrDegenerateTransform is returned when a rotation matrix is not orthonormal
	ErrDegenerateTransform = errors.New("degenerate rotation matrix")
)
