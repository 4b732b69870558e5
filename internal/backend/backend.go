// Package backend converts normalized transforms into the matrix type of the
// sdfx solid-modeling library, which places solids as Rz·Ry·Rx then translate.
package backend

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/philipparndt/mcnpgeom/internal/geometry"
)

// Tolerance is the largest deviation accepted by Verify
const Tolerance = 1e-9

// probes are the points Verify maps through both representations
var probes = []geometry.Vector3d{
	{},
	{X: 1},
	{Y: 1},
	{Z: 1},
	{X: 1, Y: 2, Z: 3},
}

// Matrix returns the sdfx matrix placing a solid with tr
func Matrix(tr geometry.Transform) sdf.M44 {
	t := tr.Translation()
	m := sdf.Translate3d(v3.Vec{X: t.X, Y: t.Y, Z: t.Z})
	if !tr.HasRot() {
		return m
	}
	return m.Mul(sdf.RotateZ(tr.RotZ()).Mul(sdf.RotateY(tr.RotY())).Mul(sdf.RotateX(tr.RotX())))
}

// Rows returns the sdfx matrix of tr row by row. M44 keeps its entries
// private, so the columns are read back by mapping the unit vectors.
func Rows(tr geometry.Transform) [4][4]float64 {
	m := Matrix(tr)
	o := m.MulPosition(v3.Vec{})
	cols := [3]v3.Vec{
		m.MulPosition(v3.Vec{X: 1}),
		m.MulPosition(v3.Vec{Y: 1}),
		m.MulPosition(v3.Vec{Z: 1}),
	}

	var rows [4][4]float64
	for c, v := range cols {
		rows[0][c] = v.X - o.X
		rows[1][c] = v.Y - o.Y
		rows[2][c] = v.Z - o.Z
	}
	rows[0][3], rows[1][3], rows[2][3] = o.X, o.Y, o.Z
	rows[3][3] = 1
	return rows
}

// Apply maps p through the sdfx matrix of tr
func Apply(tr geometry.Transform, p geometry.Vector3d) geometry.Vector3d {
	out := Matrix(tr).MulPosition(v3.Vec{X: p.X, Y: p.Y, Z: p.Z})
	return geometry.NewVector3d(out.X, out.Y, out.Z)
}

// Verify checks that the backend places points exactly where tr does
func Verify(tr geometry.Transform) error {
	for _, p := range probes {
		want := tr.Apply(p)
		got := Apply(tr, p)
		if d := got.Sub(want).Length(); d > Tolerance || math.IsNaN(d) {
			return fmt.Errorf("backend places %s at %s, want %s", p, got, want)
		}
	}
	return nil
}
