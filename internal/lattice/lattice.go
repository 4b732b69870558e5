// Package lattice models repeated structures: a universe replicated across the
// cells of a lattice, each copy placed by its own transform.
package lattice

import (
	"fmt"

	"github.com/philipparndt/mcnpgeom/internal/geometry"
)

// Kind identifies the lattice variant
type Kind int

const (
	// Simple is a single repeating unit with no indexed structure
	Simple Kind = iota
	// Infinite repeats the origin cell without bound; nodes are generated on demand
	Infinite
	// Explicit enumerates a finite box of filled cells
	Explicit
)

func (k Kind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Infinite:
		return "infinite"
	case Explicit:
		return "explicit"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a kind name back to its Kind
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "simple":
		return Simple, nil
	case "infinite":
		return Infinite, nil
	case "explicit":
		return Explicit, nil
	default:
		return 0, fmt.Errorf("unknown lattice kind %q (supported: simple, infinite, explicit)", s)
	}
}

// Lattice is implemented by SimpleLattice, InfiniteLattice and ExplicitLattice.
// Use Kind or a type switch to reach variant-specific operations.
type Lattice interface {
	Kind() Kind
	Origin() *Node
	SetTransform(tr geometry.Transform)
	isLattice()
}

// base holds the state every variant shares
type base struct {
	origin Node
}

// Origin returns the zero-index element
func (b *base) Origin() *Node {
	return &b.origin
}

// SetTransform moves the origin node unless it is fixed
func (b *base) SetTransform(tr geometry.Transform) {
	b.origin.SetTransform(tr)
}

func (b *base) isLattice() {}

// SimpleLattice is a lattice made of its origin node only
type SimpleLattice struct {
	base
}

// NewSimple creates a simple lattice around origin
func NewSimple(origin Node) *SimpleLattice {
	return &SimpleLattice{base{origin: origin}}
}

// Kind returns Simple
func (l *SimpleLattice) Kind() Kind {
	return Simple
}

// Index addresses a lattice cell. The zero Index is the origin element.
type Index struct {
	I, J, K int
}

func (i Index) String() string {
	return fmt.Sprintf("[%d %d %d]", i.I, i.J, i.K)
}

// Basis holds the three cell pitch vectors of a lattice, in the lattice's own frame
type Basis [3]geometry.Vector3d

// CubicBasis returns a basis of axis-aligned pitch vectors
func CubicBasis(px, py, pz float64) Basis {
	return Basis{
		geometry.NewVector3d(px, 0, 0),
		geometry.NewVector3d(0, py, 0),
		geometry.NewVector3d(0, 0, pz),
	}
}

// Offset returns the displacement of cell idx from the origin cell
func (b Basis) Offset(idx Index) geometry.Vector3d {
	return b[0].Scale(float64(idx.I)).
		Add(b[1].Scale(float64(idx.J))).
		Add(b[2].Scale(float64(idx.K)))
}

// Validate checks that the basis spans space
func (b Basis) Validate() error {
	m := geometry.Matrix3{
		b[0].X, b[0].Y, b[0].Z,
		b[1].X, b[1].Y, b[1].Z,
		b[2].X, b[2].Y, b[2].Z,
	}
	if m.Det() == 0 {
		return fmt.Errorf("lattice basis vectors are linearly dependent")
	}
	return nil
}

// cellNode places a copy of universe in cell idx. The optional local
// transform is applied inside the cell, then the cell offset, then the
// origin placement.
func cellNode(origin *Node, basis Basis, idx Index, universe int, local *geometry.Transform) (Node, error) {
	tr := geometry.NewTranslation(basis.Offset(idx))
	if local != nil {
		var err error
		if tr, err = local.Then(tr); err != nil {
			return Node{}, fmt.Errorf("cell %s: %w", idx, err)
		}
	}

	placed, err := tr.Then(origin.Transform())
	if err != nil {
		return Node{}, fmt.Errorf("cell %s: %w", idx, err)
	}

	return NewNode(universe, placed, true), nil
}
