package lattice

import "fmt"

// Placement is a node together with the cell it was generated for
type Placement struct {
	Index Index
	Node  Node
}

// Placements lists the nodes of a lattice. Infinite lattices have no natural
// end, so only the cells inside window are generated; a nil window yields
// the origin alone.
func Placements(l Lattice, window *[2]Index) ([]Placement, error) {
	switch v := l.(type) {
	case *SimpleLattice:
		return []Placement{{Node: *v.Origin()}}, nil
	case *InfiniteLattice:
		if window == nil {
			return []Placement{{Node: *v.Origin()}}, nil
		}
		return v.Window(window[0], window[1])
	case *ExplicitLattice:
		placements := make([]Placement, 0, v.Len())
		err := v.Each(func(p Placement) error {
			placements = append(placements, p)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return placements, nil
	default:
		return nil, fmt.Errorf("unsupported lattice %T", l)
	}
}
