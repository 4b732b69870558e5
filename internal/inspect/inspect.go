package inspect

import (
	"fmt"

	"github.com/philipparndt/mcnpgeom/internal/config"
	"github.com/philipparndt/mcnpgeom/internal/metrics"
	"github.com/philipparndt/mcnpgeom/internal/models"
	"github.com/philipparndt/mcnpgeom/internal/preconditions"
	"github.com/philipparndt/mcnpgeom/internal/ui"
)

// Inspector provides functionality to inspect deck files
type Inspector struct {
	loader *config.Loader
	// Metrics, when set, counts built and skipped elements
	Metrics *metrics.Recorder
}

// NewInspector creates a new Inspector
func NewInspector() *Inspector {
	return &Inspector{loader: config.NewLoader()}
}

// Load reads a deck and builds it, printing a warning for every element
// that had to be skipped
func (i *Inspector) Load(filename string) (*models.Geometry, error) {
	if err := preconditions.ValidateDeckPath(filename); err != nil {
		return nil, err
	}

	deck, err := i.loader.Load(filename)
	if err != nil {
		return nil, err
	}

	geo, errs := i.loader.Build(deck)
	for _, err := range errs {
		ui.PrintWarning("Skipped " + err.Error())
	}
	for _, w := range geo.Warnings {
		ui.PrintWarning(w)
	}
	if i.Metrics != nil {
		i.Metrics.RecordBuild(geo, errs)
	}

	return geo, nil
}

// Inspect reads and displays the contents of a deck file
func (i *Inspector) Inspect(filename string) error {
	geo, err := i.Load(filename)
	if err != nil {
		return err
	}

	ui.PrintTitle("mcnpgeom inspect")
	ui.PrintHeader(fmt.Sprintf("Inspecting: %s", filename))
	if geo.Title != "" {
		ui.PrintKeyValue("Title", geo.Title)
	}
	ui.PrintKeyValue("Transforms", fmt.Sprintf("%d", len(geo.Transforms)))
	ui.PrintKeyValue("Universes", fmt.Sprintf("%d", len(geo.Universes)))
	ui.PrintKeyValue("Lattices", fmt.Sprintf("%d", len(geo.Lattices)))

	printer := NewLatticePrinter(geo)

	ui.PrintHeader("Transforms:")
	printer.PrintTransforms()

	ui.PrintHeader("Lattices:")
	if len(geo.Lattices) == 0 {
		ui.PrintStep("No lattices could be built")
		return nil
	}
	for i, named := range geo.Lattices {
		if i > 0 {
			ui.PrintSeparator()
		}
		if err := printer.PrintLattice(named); err != nil {
			return err
		}
	}

	return nil
}
