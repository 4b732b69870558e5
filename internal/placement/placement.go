// Package placement turns built lattices into the per-node placement records
// consumed by the solid-modeling stage.
package placement

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/philipparndt/mcnpgeom/internal/backend"
	"github.com/philipparndt/mcnpgeom/internal/lattice"
	"github.com/philipparndt/mcnpgeom/internal/models"
	"gopkg.in/yaml.v3"
)

// Collect lists a placement record for every node of every lattice. Every
// node transform must place solids identically through the sdfx backend.
func Collect(geo *models.Geometry) ([]models.PlacementDoc, error) {
	var docs []models.PlacementDoc

	for _, named := range geo.Lattices {
		placements, err := lattice.Placements(named.Lattice, named.Window)
		if err != nil {
			return nil, fmt.Errorf("lattice %s: %w", named.Name, err)
		}

		for _, p := range placements {
			node := p.Node
			tr := node.Transform()
			if err := backend.Verify(tr); err != nil {
				return nil, fmt.Errorf("lattice %s node %s: %w", named.Name, p.Index, err)
			}

			doc := models.PlacementDoc{
				Lattice:   named.Name,
				Kind:      named.Lattice.Kind().String(),
				Index:     [3]int{p.Index.I, p.Index.J, p.Index.K},
				Universe:  node.FillingUniverse(),
				Name:      geo.UniverseName(node.FillingUniverse()),
				Fixed:     node.Fixed(),
				Translate: tr.Translation().Array(),
				Matrix:    backend.Rows(tr),
				Transform: tr.Matrix3MF(),
			}
			if tr.HasRot() {
				doc.Rotate = []float64{tr.RotX(), tr.RotY(), tr.RotZ()}
				q := tr.Quaternion()
				doc.Quaternion = []float64{q.Real, q.Imag, q.Jmag, q.Kmag}
			}
			docs = append(docs, doc)
		}
	}

	return docs, nil
}

// Marshal renders placement records as YAML
func Marshal(docs []models.PlacementDoc) ([]byte, error) {
	out, err := yaml.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode placements: %w", err)
	}
	return out, nil
}

// Write renders placement records to w, syntax highlighted when color is set
func Write(w io.Writer, docs []models.PlacementDoc, color bool) error {
	out, err := Marshal(docs)
	if err != nil {
		return err
	}

	if !color {
		_, err := w.Write(out)
		return err
	}

	if err := quick.Highlight(w, string(out), "yaml", "terminal256", "monokai"); err != nil {
		return fmt.Errorf("failed to highlight placements: %w", err)
	}
	return nil
}
