package lattice

import (
	"fmt"

	"github.com/philipparndt/mcnpgeom/internal/geometry"
)

// Node is one element of a lattice: the universe filling it and where it is placed
type Node struct {
	universe int
	tr       geometry.Transform
	fixed    bool
}

// NewNode creates a lattice node. A fixed node ignores later SetTransform calls.
func NewNode(universe int, tr geometry.Transform, fixed bool) Node {
	return Node{universe: universe, tr: tr, fixed: fixed}
}

// FillingUniverse returns the id of the universe filling this node
func (n *Node) FillingUniverse() int {
	return n.universe
}

// Transform returns the current placement
func (n *Node) Transform() geometry.Transform {
	return n.tr
}

// Fixed reports whether the placement is permanent
func (n *Node) Fixed() bool {
	return n.fixed
}

// SetTransform replaces the placement unless the node is fixed.
// On a fixed node this is a no-op.
func (n *Node) SetTransform(tr geometry.Transform) {
	if !n.fixed {
		n.tr = tr
	}
}

func (n *Node) String() string {
	fixed := ""
	if n.fixed {
		fixed = " fixed"
	}
	return fmt.Sprintf("u=%d %s%s", n.universe, n.tr, fixed)
}
