package inspect

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/philipparndt/mcnpgeom/internal/geometry"
	"github.com/philipparndt/mcnpgeom/internal/lattice"
	"github.com/philipparndt/mcnpgeom/internal/models"
	"github.com/philipparndt/mcnpgeom/internal/ui"
)

// LatticePrinter handles printing lattices and their cells
type LatticePrinter struct {
	geo *models.Geometry
}

// NewLatticePrinter creates a new LatticePrinter for a built geometry
func NewLatticePrinter(geo *models.Geometry) *LatticePrinter {
	return &LatticePrinter{geo: geo}
}

// FormatRotation renders the rotation angles of a transform in degrees
func FormatRotation(tr geometry.Transform) string {
	if !tr.HasRot() {
		return "-"
	}
	return fmt.Sprintf("%.2f°, %.2f°, %.2f°", degrees(tr.RotX()), degrees(tr.RotY()), degrees(tr.RotZ()))
}

// FormatTranslation renders the translation of a transform
func FormatTranslation(tr geometry.Transform) string {
	v := tr.Translation()
	return fmt.Sprintf("%.4g, %.4g, %.4g", v.X, v.Y, v.Z)
}

func degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// universeLabel returns "3 (fuel pin)" or just "3"
func (p *LatticePrinter) universeLabel(id int) string {
	if name := p.geo.UniverseName(id); name != "" {
		return fmt.Sprintf("%d (%s)", id, name)
	}
	return fmt.Sprintf("%d", id)
}

// PrintTransforms prints every normalized transform, ordered by id
func (p *LatticePrinter) PrintTransforms() {
	if len(p.geo.Transforms) == 0 {
		ui.PrintStep("No transforms defined")
		return
	}

	ids := make([]int, 0, len(p.geo.Transforms))
	for id := range p.geo.Transforms {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		tr := p.geo.Transforms[id]
		ui.PrintStep(fmt.Sprintf("TR%d: translate (%s) rotate (%s)", id, FormatTranslation(tr), FormatRotation(tr)))
	}
}

// PrintLattice prints a lattice header, its origin and its cells
func (p *LatticePrinter) PrintLattice(named models.NamedLattice) error {
	l := named.Lattice
	origin := l.Origin()

	fixed := ""
	if origin.Fixed() {
		fixed = " [fixed]"
	}
	ui.PrintStep(fmt.Sprintf("• %s (%s) - origin universe %s%s", named.Name, l.Kind(), p.universeLabel(origin.FillingUniverse()), fixed))

	switch v := l.(type) {
	case *lattice.InfiniteLattice:
		p.printBasis(v.Basis())
		if named.Window == nil {
			ui.PrintInfo("  unbounded, showing origin only (set a window to list cells)")
		}
	case *lattice.ExplicitLattice:
		p.printBasis(v.Basis())
		lo, hi := v.Bounds()
		ui.PrintItem(fmt.Sprintf("cells %s..%s (%d)", lo, hi, v.Len()))
		if bbox, err := v.Extent(); err == nil {
			ui.PrintItem(fmt.Sprintf("cell origins span %s", bbox))
		}
	}

	placements, err := lattice.Placements(l, named.Window)
	if err != nil {
		return fmt.Errorf("lattice %s: %w", named.Name, err)
	}

	ui.PrintTableHeader("Index", "Universe", "Translation", "Rotation")
	for _, pl := range placements {
		node := pl.Node
		ui.PrintTableRow(
			pl.Index.String(),
			p.universeLabel(node.FillingUniverse()),
			FormatTranslation(node.Transform()),
			FormatRotation(node.Transform()),
		)
	}

	return nil
}

// printBasis prints the pitch vectors of a lattice
func (p *LatticePrinter) printBasis(b lattice.Basis) {
	parts := make([]string, 0, len(b))
	for _, v := range b {
		parts = append(parts, v.String())
	}
	ui.PrintItem("basis " + strings.Join(parts, " "))
}
