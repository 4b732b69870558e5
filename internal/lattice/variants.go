package lattice

import (
	"fmt"

	"github.com/philipparndt/mcnpgeom/internal/geometry"
)

// InfiniteLattice repeats the origin universe in every cell of an unbounded grid
type InfiniteLattice struct {
	base
	basis Basis
}

// NewInfinite creates an infinite lattice with the given cell pitch vectors
func NewInfinite(origin Node, basis Basis) (*InfiniteLattice, error) {
	if err := basis.Validate(); err != nil {
		return nil, err
	}
	return &InfiniteLattice{base: base{origin: origin}, basis: basis}, nil
}

// Kind returns Infinite
func (l *InfiniteLattice) Kind() Kind {
	return Infinite
}

// Basis returns the cell pitch vectors
func (l *InfiniteLattice) Basis() Basis {
	return l.basis
}

// NodeAt generates the node of cell idx. The zero index is the origin itself.
func (l *InfiniteLattice) NodeAt(idx Index) (Node, error) {
	if idx == (Index{}) {
		return l.origin, nil
	}
	return cellNode(&l.origin, l.basis, idx, l.origin.FillingUniverse(), nil)
}

// Window generates the nodes of every cell in [lo, hi], i varying fastest.
// At most MaxWindowCells cells are generated.
func (l *InfiniteLattice) Window(lo, hi Index) ([]Placement, error) {
	if err := CheckWindow(lo, hi); err != nil {
		return nil, err
	}

	var placements []Placement
	err := eachIndex(lo, hi, func(idx Index) error {
		node, err := l.NodeAt(idx)
		if err != nil {
			return err
		}
		placements = append(placements, Placement{Index: idx, Node: node})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return placements, nil
}

// Element is one entry of an explicit fill array
type Element struct {
	Universe int
	// Transform, when set, positions the universe inside its cell
	Transform *geometry.Transform
}

// ExplicitLattice fills a finite box of cells, each with its own universe
type ExplicitLattice struct {
	base
	basis    Basis
	lo, hi   Index
	elements []Element
}

// NewExplicit creates an explicit lattice over the index box [lo, hi].
// fill lists one element per cell with i varying fastest, then j, then k.
// The box must contain the zero index, whose element must name the origin's universe.
func NewExplicit(origin Node, basis Basis, lo, hi Index, fill []Element) (*ExplicitLattice, error) {
	if err := basis.Validate(); err != nil {
		return nil, err
	}
	if err := checkBox(lo, hi); err != nil {
		return nil, err
	}

	l := &ExplicitLattice{base: base{origin: origin}, basis: basis, lo: lo, hi: hi}

	if !l.Contains(Index{}) {
		return nil, fmt.Errorf("index box %s..%s does not contain the origin cell", lo, hi)
	}

	if want := boxSize(lo, hi); len(fill) != want {
		return nil, fmt.Errorf("fill has %d elements, index box %s..%s needs %d", len(fill), lo, hi, want)
	}

	zero := fill[l.offset(Index{})]
	if zero.Universe != origin.FillingUniverse() {
		return nil, fmt.Errorf("origin cell is filled with universe %d, origin node has %d", zero.Universe, origin.FillingUniverse())
	}
	if zero.Transform != nil {
		return nil, fmt.Errorf("cell %s: the origin cell is placed by the lattice transform and cannot carry its own", Index{})
	}

	l.elements = append([]Element(nil), fill...)
	return l, nil
}

// Kind returns Explicit
func (l *ExplicitLattice) Kind() Kind {
	return Explicit
}

// Basis returns the cell pitch vectors
func (l *ExplicitLattice) Basis() Basis {
	return l.basis
}

// Bounds returns the inclusive index box
func (l *ExplicitLattice) Bounds() (lo, hi Index) {
	return l.lo, l.hi
}

// Len returns the number of cells
func (l *ExplicitLattice) Len() int {
	return len(l.elements)
}

// Contains reports whether idx lies inside the index box
func (l *ExplicitLattice) Contains(idx Index) bool {
	return idx.I >= l.lo.I && idx.I <= l.hi.I &&
		idx.J >= l.lo.J && idx.J <= l.hi.J &&
		idx.K >= l.lo.K && idx.K <= l.hi.K
}

// Node returns the node of cell idx. The zero index is the origin itself.
func (l *ExplicitLattice) Node(idx Index) (Node, error) {
	if !l.Contains(idx) {
		return Node{}, fmt.Errorf("%w: cell %s outside %s..%s", geometry.ErrIndex, idx, l.lo, l.hi)
	}
	if idx == (Index{}) {
		return l.origin, nil
	}

	el := l.elements[l.offset(idx)]
	return cellNode(&l.origin, l.basis, idx, el.Universe, el.Transform)
}

// Each calls fn for every cell in fill order and stops at the first error
func (l *ExplicitLattice) Each(fn func(Placement) error) error {
	return eachIndex(l.lo, l.hi, func(idx Index) error {
		node, err := l.Node(idx)
		if err != nil {
			return err
		}
		return fn(Placement{Index: idx, Node: node})
	})
}

// Extent returns the box spanned by the cell placements
func (l *ExplicitLattice) Extent() (*geometry.BoundingBox, error) {
	var transforms []geometry.Transform
	err := l.Each(func(p Placement) error {
		transforms = append(transforms, p.Node.Transform())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return geometry.CalculatePlacedBoundingBox(transforms)
}

func (l *ExplicitLattice) offset(idx Index) int {
	ni := l.hi.I - l.lo.I + 1
	nj := l.hi.J - l.lo.J + 1
	return (idx.I - l.lo.I) + ni*((idx.J-l.lo.J)+nj*(idx.K-l.lo.K))
}

// MaxWindowCells bounds the number of cells a window may list
const MaxWindowCells = 1 << 20

// CheckWindow validates a window box and its cell count
func CheckWindow(lo, hi Index) error {
	if err := checkBox(lo, hi); err != nil {
		return err
	}
	count := 1
	for _, n := range []int{hi.I - lo.I + 1, hi.J - lo.J + 1, hi.K - lo.K + 1} {
		if n <= 0 || n > MaxWindowCells || count > MaxWindowCells/n {
			return fmt.Errorf("window %s..%s has more than %d cells", lo, hi, MaxWindowCells)
		}
		count *= n
	}
	return nil
}

func checkBox(lo, hi Index) error {
	if lo.I > hi.I || lo.J > hi.J || lo.K > hi.K {
		return fmt.Errorf("empty index box %s..%s", lo, hi)
	}
	return nil
}

func boxSize(lo, hi Index) int {
	return (hi.I - lo.I + 1) * (hi.J - lo.J + 1) * (hi.K - lo.K + 1)
}

func eachIndex(lo, hi Index, fn func(Index) error) error {
	for k := lo.K; k <= hi.K; k++ {
		for j := lo.J; j <= hi.J; j++ {
			for i := lo.I; i <= hi.I; i++ {
				if err := fn(Index{I: i, J: j, K: k}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
