package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/philipparndt/mcnpgeom/internal/card"
	"github.com/philipparndt/mcnpgeom/internal/geometry"
	"github.com/philipparndt/mcnpgeom/internal/inspect"
	"github.com/philipparndt/mcnpgeom/internal/metrics"
	"github.com/philipparndt/mcnpgeom/internal/placement"
	"github.com/philipparndt/mcnpgeom/internal/preconditions"
	"github.com/philipparndt/mcnpgeom/internal/ui"
	"github.com/philipparndt/mcnpgeom/version"
)

type CLI struct {
	Inspect    *InspectCmd    `cmd:"" help:"Inspect a geometry deck and show its lattices"`
	Transform  *TransformCmd  `cmd:"" help:"Normalize a single transformation record"`
	Place      *PlaceCmd      `cmd:"" help:"Write node placements of a deck as YAML"`
	Version    *VersionCmd    `cmd:"" help:"Show version information"`
	Completion *CompletionCmd `cmd:"" help:"Generate shell completion script"`
}

type InspectCmd struct {
	File string `arg:"" help:"Deck file to inspect (YAML)" type:"existingfile"`
}

func (c *InspectCmd) Run() error {
	inspector := inspect.NewInspector()
	return inspector.Inspect(c.File)
}

type TransformCmd struct {
	Card    string   `help:"Full record, e.g. \"*TR1 0 0 5 ...\"" short:"c"`
	Degrees bool     `help:"Rotation entries are angles in degrees" short:"d"`
	Values  []string `arg:"" optional:"" help:"3 translation values, optionally followed by 9 rotation entries"`
}

// Help adds additional help text with examples
func (c *TransformCmd) Help() string {
	return renderTransformHelp()
}

func (c *TransformCmd) Run() error {
	tr, name, err := c.build()
	if err != nil {
		return err
	}

	ui.PrintHeader(name)
	ui.PrintKeyValue("Translation", inspect.FormatTranslation(tr))
	ui.PrintKeyValue("Rotation", inspect.FormatRotation(tr))
	if tr.HasRot() {
		ui.PrintKeyValue("Radians", fmt.Sprintf("%g %g %g", tr.RotX(), tr.RotY(), tr.RotZ()))
	}
	ui.PrintKeyValue("3MF", tr.Matrix3MF())
	return nil
}

// build returns the normalized transform and a label for it
func (c *TransformCmd) build() (geometry.Transform, string, error) {
	if c.Card != "" && len(c.Values) > 0 {
		return geometry.Transform{}, "", fmt.Errorf("pass either values or --card, not both")
	}

	if c.Card != "" {
		rec, err := card.ParseTR(c.Card)
		if err != nil {
			return geometry.Transform{}, "", err
		}
		tr, err := rec.Transform()
		return tr, rec.Name(), err
	}

	if len(c.Values) == 0 {
		return geometry.Transform{}, "", fmt.Errorf("no values given (pass numbers or --card)")
	}

	values, err := parseValues(c.Values)
	if err != nil {
		return geometry.Transform{}, "", err
	}

	tr, err := geometry.TransformFromSequence(values, c.Degrees)
	return tr, "Transform", err
}

// parseValues converts command line numbers, also accepting comma separated lists
func parseValues(args []string) ([]float64, error) {
	var values []float64
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q", field)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

type PlaceCmd struct {
	File        string `arg:"" help:"Deck file (YAML)" type:"existingfile"`
	Output      string `help:"Write placements to this file instead of stdout" short:"o"`
	Color       bool   `help:"Syntax highlight the output"`
	MetricsFile string `help:"Write run counters in Prometheus text format to this file" name:"metrics-file"`
}

func (c *PlaceCmd) Run() error {
	inspector := inspect.NewInspector()
	if c.MetricsFile != "" {
		inspector.Metrics = metrics.NewRecorder()
	}

	geo, err := inspector.Load(c.File)
	if err != nil {
		return err
	}

	docs, err := placement.Collect(geo)
	if err != nil {
		return err
	}

	if inspector.Metrics != nil {
		inspector.Metrics.RecordPlacements(docs)
		if err := inspector.Metrics.WriteTextfile(c.MetricsFile); err != nil {
			return err
		}
	}

	if c.Output == "" {
		return placement.Write(os.Stdout, docs, c.Color)
	}

	if err := preconditions.ValidateOutputPath(c.Output); err != nil {
		return err
	}

	file, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Output, err)
	}
	defer file.Close()

	if err := placement.Write(file, docs, false); err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Wrote %d placements to %s", len(docs), c.Output))
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := version.Get()
	fmt.Println(info.String())
	return nil
}

// Parse parses command line arguments and executes the appropriate command
func Parse() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("mcnpgeom"),
		kong.Description("Transform and lattice normalizer for legacy transport geometry decks"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}
