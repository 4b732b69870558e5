// Package card reads transformation records ("TRn" / "*TRn" cards) of the
// legacy transport input format and hands them to geometry as explicit
// transform inputs.
package card

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/mcnpgeom/internal/geometry"
)

// Card is one parsed transformation record
type Card struct {
	ID      int
	Degrees bool
	Values  []float64
	Line    int
	Raw     string
}

// Input classifies the card values into a transform input shape
func (c Card) Input() (geometry.TransformInput, error) {
	in, err := geometry.ClassifyInput(c.Values, c.Degrees)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name(), err)
	}
	return in, nil
}

// Transform builds the normalized transform described by the card
func (c Card) Transform() (geometry.Transform, error) {
	in, err := c.Input()
	if err != nil {
		return geometry.Transform{}, err
	}
	tr, err := geometry.NewTransform(in)
	if err != nil {
		return geometry.Transform{}, fmt.Errorf("%s: %w", c.Name(), err)
	}
	return tr, nil
}

// Name returns the card mnemonic, e.g. "*TR3"
func (c Card) Name() string {
	if c.Degrees {
		return fmt.Sprintf("*TR%d", c.ID)
	}
	return fmt.Sprintf("TR%d", c.ID)
}

// ParseTR parses a single "TRn" or "*TRn" record. Text after '$' is a comment.
func ParseTR(line string) (Card, error) {
	raw := line
	if idx := strings.Index(line, "$"); idx >= 0 {
		line = line[:idx]
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Card{}, fmt.Errorf("empty record")
	}

	card := Card{Raw: strings.TrimSpace(raw)}

	name := strings.ToUpper(fields[0])
	if strings.HasPrefix(name, "*") {
		card.Degrees = true
		name = name[1:]
	}
	if !strings.HasPrefix(name, "TR") {
		return Card{}, fmt.Errorf("not a transformation record: %q", fields[0])
	}

	id, err := strconv.Atoi(name[2:])
	if err != nil || id <= 0 {
		return Card{}, fmt.Errorf("invalid transformation number in %q", fields[0])
	}
	card.ID = id

	for _, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Card{}, fmt.Errorf("%s: invalid value %q", card.Name(), f)
		}
		card.Values = append(card.Values, v)
	}

	return card, nil
}

// IsTR reports whether a line starts a transformation record
func IsTR(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name := strings.TrimPrefix(strings.ToUpper(fields[0]), "*")
	return strings.HasPrefix(name, "TR")
}

// LineError ties a parse failure to its input line
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ParseAll reads every transformation record from r. Lines that are not
// transformation records are ignored. A bad record does not stop the scan;
// its error is returned alongside the cards that did parse.
func ParseAll(r io.Reader) ([]Card, []error, error) {
	scanner := bufio.NewScanner(r)

	var cards []Card
	var bad []error
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !IsTR(line) {
			continue
		}

		card, err := ParseTR(line)
		if err != nil {
			bad = append(bad, &LineError{Line: lineNo, Err: err})
			continue
		}
		card.Line = lineNo
		cards = append(cards, card)
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("error reading records: %w", err)
	}

	return cards, bad, nil
}
