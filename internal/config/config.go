package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/mcnpgeom/internal/card"
	"github.com/philipparndt/mcnpgeom/internal/geometry"
	"github.com/philipparndt/mcnpgeom/internal/lattice"
	"github.com/philipparndt/mcnpgeom/internal/models"
	"gopkg.in/yaml.v3"
)

// Loader handles loading and validating YAML deck files
type Loader struct{}

// NewLoader creates a new deck loader
func NewLoader() *Loader {
	return &Loader{}
}

// ElementError reports a deck element that could not be built.
// Other elements are still converted.
type ElementError struct {
	Element string
	Err     error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("%s: %v", e.Element, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// Load reads and parses a YAML deck file
func (l *Loader) Load(deckPath string) (*models.YamlDeck, error) {
	// Read the deck file
	data, err := os.ReadFile(deckPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}

	return l.Parse(data)
}

// Parse decodes and validates deck YAML
func (l *Loader) Parse(data []byte) (*models.YamlDeck, error) {
	var deck models.YamlDeck
	if err := yaml.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := l.Validate(&deck); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}

	return &deck, nil
}

// Validate checks the structure of a deck. Numeric problems inside a
// transform or lattice are left to Build, which reports them per element.
func (l *Loader) Validate(deck *models.YamlDeck) error {
	if len(deck.Lattices) == 0 {
		return fmt.Errorf("at least one lattice must be defined")
	}

	for i, tr := range deck.Transforms {
		if tr.Card == "" && tr.ID <= 0 {
			return fmt.Errorf("transform %d: either card or a positive id is required", i+1)
		}
		if tr.Card != "" && len(tr.Values) > 0 {
			return fmt.Errorf("transform %d: card and values cannot be mixed", i+1)
		}
	}

	universes := make(map[int]bool)
	for _, u := range deck.Universes {
		if universes[u.ID] {
			return fmt.Errorf("universe %d: defined twice", u.ID)
		}
		universes[u.ID] = true
	}

	names := make(map[string]bool)
	for i, lat := range deck.Lattices {
		if lat.Name == "" {
			return fmt.Errorf("lattice %d: name is required", i+1)
		}
		if names[lat.Name] {
			return fmt.Errorf("lattice %s: name is used twice", lat.Name)
		}
		names[lat.Name] = true

		if err := l.validateLattice(lat); err != nil {
			return fmt.Errorf("lattice %s: %w", lat.Name, err)
		}
	}

	return nil
}

// validateLattice validates the fields each lattice kind needs
func (l *Loader) validateLattice(lat models.YamlLattice) error {
	kind, err := lattice.ParseKind(lat.Kind)
	if err != nil {
		return err
	}

	if lat.Universe < 0 {
		return fmt.Errorf("universe must not be negative")
	}

	if kind == lattice.Simple {
		if len(lat.Fill) > 0 || lat.Window != nil {
			return fmt.Errorf("fill and window need an infinite or explicit lattice")
		}
		return nil
	}

	if len(lat.Pitch) == 0 && len(lat.Basis) == 0 {
		return fmt.Errorf("pitch or basis is required for %s lattices", kind)
	}
	if len(lat.Pitch) > 0 && len(lat.Basis) > 0 {
		return fmt.Errorf("cannot mix pitch and basis")
	}

	switch kind {
	case lattice.Infinite:
		if len(lat.Fill) > 0 {
			return fmt.Errorf("fill needs an explicit lattice")
		}
	case lattice.Explicit:
		if len(lat.Fill) == 0 {
			return fmt.Errorf("fill is required for explicit lattices")
		}
		if lat.Window != nil {
			return fmt.Errorf("window needs an infinite lattice")
		}
	}

	return nil
}

// Build converts a validated deck into transforms and lattices. Elements
// that fail are skipped and reported in the returned error slice.
func (l *Loader) Build(deck *models.YamlDeck) (*models.Geometry, []error) {
	geo := &models.Geometry{
		Title:      deck.Title,
		Transforms: make(map[int]geometry.Transform),
		Universes:  make(map[int]string),
	}

	var errs []error
	failed := make(map[int]bool)

	for _, u := range deck.Universes {
		geo.Universes[u.ID] = u.Name
	}

	for i, yt := range deck.Transforms {
		id, in, tr, err := l.buildTransform(yt)
		if err != nil {
			element := fmt.Sprintf("transform %d", i+1)
			if id > 0 {
				element = fmt.Sprintf("TR%d", id)
				failed[id] = true
			}
			errs = append(errs, &ElementError{Element: element, Err: err})
			continue
		}
		if _, exists := geo.Transforms[id]; exists {
			errs = append(errs, &ElementError{Element: fmt.Sprintf("TR%d", id), Err: fmt.Errorf("defined twice")})
			continue
		}
		geo.Transforms[id] = tr

		if dev := geometry.RotationDeviation(in); dev > geometry.WarnDeviation {
			geo.Warnings = append(geo.Warnings,
				fmt.Sprintf("TR%d: rotation deviates from orthonormal by %.2g, angles are approximate", id, dev))
		}
	}

	for _, yl := range deck.Lattices {
		if yl.Transform > 0 && failed[yl.Transform] {
			errs = append(errs, &ElementError{
				Element: "lattice " + yl.Name,
				Err:     fmt.Errorf("transform TR%d could not be built", yl.Transform),
			})
			continue
		}

		named, err := l.buildLattice(yl, geo.Transforms)
		if err != nil {
			errs = append(errs, &ElementError{Element: "lattice " + yl.Name, Err: err})
			continue
		}
		geo.Lattices = append(geo.Lattices, named)
	}

	return geo, errs
}

// buildTransform turns one deck transform into its id, its input shape and
// its normalized form
func (l *Loader) buildTransform(yt models.YamlTransform) (int, geometry.TransformInput, geometry.Transform, error) {
	if yt.Card != "" {
		c, err := card.ParseTR(yt.Card)
		if err != nil {
			return 0, nil, geometry.Transform{}, err
		}
		in, err := c.Input()
		if err != nil {
			return c.ID, nil, geometry.Transform{}, err
		}
		tr, err := geometry.NewTransform(in)
		if err != nil {
			return c.ID, in, geometry.Transform{}, fmt.Errorf("%s: %w", c.Name(), err)
		}
		return c.ID, in, tr, nil
	}

	in, err := geometry.ClassifyInput(yt.Values, yt.Degrees)
	if err != nil {
		return yt.ID, nil, geometry.Transform{}, err
	}
	tr, err := geometry.NewTransform(in)
	return yt.ID, in, tr, err
}

// buildLattice builds the lattice variant named by the deck entry
func (l *Loader) buildLattice(yl models.YamlLattice, transforms map[int]geometry.Transform) (models.NamedLattice, error) {
	named := models.NamedLattice{Name: yl.Name}

	tr, err := lookupTransform(yl.Transform, transforms)
	if err != nil {
		return named, err
	}
	origin := lattice.NewNode(yl.Universe, tr, yl.Fixed)

	kind, err := lattice.ParseKind(yl.Kind)
	if err != nil {
		return named, err
	}

	if kind == lattice.Simple {
		named.Lattice = lattice.NewSimple(origin)
		return named, nil
	}

	basis, err := parseBasis(yl)
	if err != nil {
		return named, err
	}

	switch kind {
	case lattice.Infinite:
		inf, err := lattice.NewInfinite(origin, basis)
		if err != nil {
			return named, err
		}
		if yl.Window != nil {
			lo, err := parseIndex(yl.Window.Lo, "window lo")
			if err != nil {
				return named, err
			}
			hi, err := parseIndex(yl.Window.Hi, "window hi")
			if err != nil {
				return named, err
			}
			if err := lattice.CheckWindow(lo, hi); err != nil {
				return named, err
			}
			named.Window = &[2]lattice.Index{lo, hi}
		}
		named.Lattice = inf

	case lattice.Explicit:
		lo, err := parseIndex(yl.Lo, "lo")
		if err != nil {
			return named, err
		}
		hi, err := parseIndex(yl.Hi, "hi")
		if err != nil {
			return named, err
		}

		fill := make([]lattice.Element, 0, len(yl.Fill))
		for i, entry := range yl.Fill {
			el, err := parseFillEntry(entry, transforms)
			if err != nil {
				return named, fmt.Errorf("fill entry %d: %w", i+1, err)
			}
			fill = append(fill, el)
		}

		exp, err := lattice.NewExplicit(origin, basis, lo, hi, fill)
		if err != nil {
			return named, err
		}
		named.Lattice = exp
	}

	return named, nil
}

func lookupTransform(id int, transforms map[int]geometry.Transform) (geometry.Transform, error) {
	if id == 0 {
		return geometry.Identity(), nil
	}
	tr, ok := transforms[id]
	if !ok {
		return geometry.Transform{}, fmt.Errorf("transform TR%d is not defined", id)
	}
	return tr, nil
}

// parseBasis reads either a cubic pitch or three explicit pitch vectors
func parseBasis(yl models.YamlLattice) (lattice.Basis, error) {
	if len(yl.Pitch) > 0 {
		if len(yl.Pitch) != 3 {
			return lattice.Basis{}, fmt.Errorf("pitch needs 3 values, got %d", len(yl.Pitch))
		}
		return lattice.CubicBasis(yl.Pitch[0], yl.Pitch[1], yl.Pitch[2]), nil
	}

	if len(yl.Basis) != 3 {
		return lattice.Basis{}, fmt.Errorf("basis needs 3 vectors, got %d", len(yl.Basis))
	}

	var basis lattice.Basis
	for i, values := range yl.Basis {
		v, err := geometry.Vector3dFromSlice(values)
		if err != nil {
			return lattice.Basis{}, fmt.Errorf("basis vector %d: %w", i+1, err)
		}
		basis[i] = v
	}
	return basis, nil
}

func parseIndex(values []int, field string) (lattice.Index, error) {
	if len(values) == 0 {
		return lattice.Index{}, nil
	}
	if len(values) != 3 {
		return lattice.Index{}, fmt.Errorf("%s needs 3 values, got %d", field, len(values))
	}
	return lattice.Index{I: values[0], J: values[1], K: values[2]}, nil
}

var errFillSyntax = errors.New("expected U or U(TR)")

// parseFillEntry reads "U" or "U(TR)" where TR names the transform placing
// the universe inside its cell
func parseFillEntry(entry string, transforms map[int]geometry.Transform) (lattice.Element, error) {
	entry = strings.TrimSpace(entry)

	universePart, trPart, hasTR := strings.Cut(entry, "(")
	universe, err := strconv.Atoi(strings.TrimSpace(universePart))
	if err != nil {
		return lattice.Element{}, fmt.Errorf("%q: %w", entry, errFillSyntax)
	}

	el := lattice.Element{Universe: universe}
	if !hasTR {
		return el, nil
	}

	if !strings.HasSuffix(trPart, ")") {
		return lattice.Element{}, fmt.Errorf("%q: %w", entry, errFillSyntax)
	}
	id, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(trPart, ")")))
	if err != nil {
		return lattice.Element{}, fmt.Errorf("%q: %w", entry, errFillSyntax)
	}

	tr, err := lookupTransform(id, transforms)
	if err != nil {
		return lattice.Element{}, err
	}
	el.Transform = &tr
	return el, nil
}
