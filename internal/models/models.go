package models

import (
	"github.com/philipparndt/mcnpgeom/internal/geometry"
	"github.com/philipparndt/mcnpgeom/internal/lattice"
)

// YamlDeck is the root of a geometry deck file
type YamlDeck struct {
	Title      string          `yaml:"title"`
	Transforms []YamlTransform `yaml:"transforms"`
	Universes  []YamlUniverse  `yaml:"universes"`
	Lattices   []YamlLattice   `yaml:"lattices"`
}

// YamlTransform describes one transformation, either as a raw record
// ("*TR2 0 0 0 ...") or as an id with a value list
type YamlTransform struct {
	Card    string    `yaml:"card,omitempty"`
	ID      int       `yaml:"id,omitempty"`
	Values  []float64 `yaml:"values,omitempty"`
	Degrees bool      `yaml:"degrees,omitempty"`
}

// YamlUniverse gives a universe id a readable name
type YamlUniverse struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// YamlLattice describes a lattice and its origin node
type YamlLattice struct {
	Name      string      `yaml:"name"`
	Kind      string      `yaml:"kind"`
	Universe  int         `yaml:"universe"`
	Transform int         `yaml:"transform,omitempty"`
	Fixed     bool        `yaml:"fixed,omitempty"`
	Pitch     []float64   `yaml:"pitch,omitempty"`
	Basis     [][]float64 `yaml:"basis,omitempty"`
	Lo        []int       `yaml:"lo,omitempty"`
	Hi        []int       `yaml:"hi,omitempty"`
	Fill      []string    `yaml:"fill,omitempty"`
	Window    *YamlWindow `yaml:"window,omitempty"`
}

// YamlWindow bounds the cells generated for an infinite lattice
type YamlWindow struct {
	Lo []int `yaml:"lo"`
	Hi []int `yaml:"hi"`
}

// NamedLattice is a built lattice with the name it was declared under
type NamedLattice struct {
	Name    string
	Lattice lattice.Lattice
	Window  *[2]lattice.Index
}

// Geometry is the result of building a deck
type Geometry struct {
	Title      string
	Transforms map[int]geometry.Transform
	Universes  map[int]string
	Lattices   []NamedLattice
	// Warnings lists elements that were built, but only approximately
	Warnings []string
}

// UniverseName returns the declared name of a universe, or "" if it has none
func (g *Geometry) UniverseName(id int) string {
	return g.Universes[id]
}

// PlacementDoc is the serialized form of a placed lattice node
type PlacementDoc struct {
	Lattice    string        `yaml:"lattice"`
	Kind       string        `yaml:"kind"`
	Index      [3]int        `yaml:"index,flow"`
	Universe   int           `yaml:"universe"`
	Name       string        `yaml:"name,omitempty"`
	Fixed      bool          `yaml:"fixed"`
	Translate  [3]float64    `yaml:"translate,flow"`
	Rotate     []float64     `yaml:"rotate,flow,omitempty"`
	Quaternion []float64     `yaml:"quaternion,flow,omitempty"`
	Matrix     [4][4]float64 `yaml:"matrix,flow"`
	Transform  string        `yaml:"transform"`
}
