package placement

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/philipparndt/mcnpgeom/internal/geometry"
	"github.com/philipparndt/mcnpgeom/internal/lattice"
	"github.com/philipparndt/mcnpgeom/internal/models"
	"gopkg.in/yaml.v3"
)

func testGeometry(t *testing.T) *models.Geometry {
	t.Helper()

	rotated := geometry.NewRotation(geometry.NewVector3d(0, 0, 1), 0, 0, math.Pi/2)
	infinite, err := lattice.NewInfinite(lattice.NewNode(2, geometry.Identity(), false), lattice.CubicBasis(1, 1, 1))
	if err != nil {
		t.Fatalf("NewInfinite() error = %v", err)
	}

	return &models.Geometry{
		Universes: map[int]string{1: "fuel pin"},
		Lattices: []models.NamedLattice{
			{Name: "pin", Lattice: lattice.NewSimple(lattice.NewNode(1, rotated, true))},
			{Name: "grid", Lattice: infinite, Window: &[2]lattice.Index{{}, {I: 1}}},
		},
	}
}

func TestCollect(t *testing.T) {
	docs, err := Collect(testGeometry(t))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(docs) != 3 {
		t.Fatalf("Collect() returned %d docs, want 3", len(docs))
	}

	pin := docs[0]
	if pin.Lattice != "pin" || pin.Kind != "simple" || pin.Name != "fuel pin" || !pin.Fixed {
		t.Errorf("unexpected pin doc: %+v", pin)
	}
	if len(pin.Rotate) != 3 || math.Abs(pin.Rotate[2]-math.Pi/2) > 1e-12 {
		t.Errorf("pin rotation = %v, want [0 0 π/2]", pin.Rotate)
	}
	if !strings.HasSuffix(pin.Transform, "0.0000 0.0000 1.0000") {
		t.Errorf("pin transform = %q", pin.Transform)
	}

	cell := docs[2]
	if cell.Index != [3]int{1, 0, 0} || cell.Translate != [3]float64{1, 0, 0} || cell.Rotate != nil {
		t.Errorf("unexpected grid cell doc: %+v", cell)
	}
}

func TestWrite(t *testing.T) {
	docs, err := Collect(testGeometry(t))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var plain bytes.Buffer
	if err := Write(&plain, docs, false); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var decoded []models.PlacementDoc
	if err := yaml.Unmarshal(plain.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded) != len(docs) || decoded[1].Lattice != "grid" {
		t.Errorf("decoded %d docs, want %d", len(decoded), len(docs))
	}

	var colored bytes.Buffer
	if err := Write(&colored, docs, true); err != nil {
		t.Fatalf("Write(color) error = %v", err)
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("colored output should contain escape sequences")
	}
	if !strings.Contains(colored.String(), "grid") {
		t.Errorf("colored output should still contain the lattice name")
	}
}

func TestCollectQuaternion(t *testing.T) {
	docs, err := Collect(testGeometry(t))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	// quarter turn about z: (cos 45°, 0, 0, sin 45°)
	want := []float64{math.Sqrt2 / 2, 0, 0, math.Sqrt2 / 2}
	got := docs[0].Quaternion
	if len(got) != 4 {
		t.Fatalf("Quaternion = %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Quaternion = %v, want %v", got, want)
			break
		}
	}

	if docs[1].Quaternion != nil {
		t.Errorf("unrotated node should have no quaternion, got %v", docs[1].Quaternion)
	}
}

func TestCollectMatrix(t *testing.T) {
	docs, err := Collect(testGeometry(t))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	tests := []struct {
		name string
		doc  models.PlacementDoc
		want [4][4]float64
	}{
		{
			name: "rotated pin",
			doc:  docs[0],
			want: [4][4]float64{{0, -1, 0, 0}, {1, 0, 0, 0}, {0, 0, 1, 1}, {0, 0, 0, 1}},
		},
		{
			name: "grid cell",
			doc:  docs[2],
			want: [4][4]float64{{1, 0, 0, 1}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for r := range tt.want {
				for c := range tt.want[r] {
					if math.Abs(tt.doc.Matrix[r][c]-tt.want[r][c]) > 1e-12 {
						t.Fatalf("Matrix = %v, want %v", tt.doc.Matrix, tt.want)
					}
				}
			}
		})
	}
}
