package lattice

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/mcnpgeom/internal/geometry"
)

func translation(x, y, z float64) geometry.Transform {
	return geometry.NewTranslation(geometry.NewVector3d(x, y, z))
}

func TestNodeSetTransform(t *testing.T) {
	initial := translation(1, 2, 3)
	replacement := translation(4, 5, 6)

	tests := []struct {
		name  string
		fixed bool
		want  geometry.Transform
	}{
		{"movable node updates", false, replacement},
		{"fixed node keeps placement", true, initial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := NewNode(7, initial, tt.fixed)
			node.SetTransform(replacement)

			if got := node.Transform(); !got.Equal(tt.want) {
				t.Errorf("Transform() = %v, want %v", got, tt.want)
			}
			if node.FillingUniverse() != 7 {
				t.Errorf("FillingUniverse() = %d, want 7", node.FillingUniverse())
			}
			if node.Fixed() != tt.fixed {
				t.Errorf("Fixed() = %v, want %v", node.Fixed(), tt.fixed)
			}
		})
	}
}

func TestSimpleLattice(t *testing.T) {
	l := NewSimple(NewNode(3, geometry.Identity(), false))

	if l.Kind() != Simple {
		t.Errorf("Kind() = %v, want simple", l.Kind())
	}

	moved := translation(0, 0, 10)
	l.SetTransform(moved)
	if got := l.Origin().Transform(); !got.Equal(moved) {
		t.Errorf("origin transform = %v, want %v", got, moved)
	}

	// Origin returns the stored node, not a copy
	l.Origin().SetTransform(translation(1, 1, 1))
	if got := l.Origin().Transform().Translation(); got != geometry.NewVector3d(1, 1, 1) {
		t.Errorf("origin translation = %v, want (1, 1, 1)", got)
	}
}

func TestSimpleLatticeFixedOrigin(t *testing.T) {
	initial := translation(1, 2, 3)
	l := NewSimple(NewNode(3, initial, true))

	l.SetTransform(translation(9, 9, 9))
	if got := l.Origin().Transform(); !got.Equal(initial) {
		t.Errorf("fixed origin moved to %v", got)
	}
}

func TestKindString(t *testing.T) {
	for _, k := range []Kind{Simple, Infinite, Explicit} {
		parsed, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) error = %v", k.String(), err)
		}
		if parsed != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), parsed, k)
		}
	}

	if _, err := ParseKind("hexagonal"); err == nil {
		t.Errorf("ParseKind(hexagonal) should fail")
	}
}

func TestInfiniteLattice(t *testing.T) {
	origin := NewNode(5, translation(100, 0, 0), false)
	l, err := NewInfinite(origin, CubicBasis(2, 3, 4))
	if err != nil {
		t.Fatalf("NewInfinite() error = %v", err)
	}

	if l.Kind() != Infinite {
		t.Errorf("Kind() = %v, want infinite", l.Kind())
	}

	zero, err := l.NodeAt(Index{})
	if err != nil {
		t.Fatalf("NodeAt(0) error = %v", err)
	}
	if !zero.Transform().Equal(origin.Transform()) || zero.Fixed() {
		t.Errorf("NodeAt(0) = %v, want origin %v", &zero, &origin)
	}

	node, err := l.NodeAt(Index{I: 1, J: -1, K: 2})
	if err != nil {
		t.Fatalf("NodeAt() error = %v", err)
	}
	if got := node.Transform().Translation(); got != geometry.NewVector3d(102, -3, 8) {
		t.Errorf("translation = %v, want (102, -3, 8)", got)
	}
	if !node.Fixed() || node.FillingUniverse() != 5 {
		t.Errorf("generated node = %v, want fixed u=5", &node)
	}

	// Generated nodes follow the origin when it moves
	l.SetTransform(translation(0, 0, 0))
	node, _ = l.NodeAt(Index{I: 1})
	if got := node.Transform().Translation(); got != geometry.NewVector3d(2, 0, 0) {
		t.Errorf("translation after move = %v, want (2, 0, 0)", got)
	}
}

func TestInfiniteLatticeRotatedOrigin(t *testing.T) {
	origin := NewNode(1, geometry.NewRotation(geometry.NewVector3d(0, 0, 0), 0, 0, math.Pi/2), false)
	l, err := NewInfinite(origin, CubicBasis(1, 1, 1))
	if err != nil {
		t.Fatalf("NewInfinite() error = %v", err)
	}

	node, err := l.NodeAt(Index{I: 1})
	if err != nil {
		t.Fatalf("NodeAt() error = %v", err)
	}

	// The cell step along i is rotated onto +y
	got := node.Transform().Translation()
	if got.Sub(geometry.NewVector3d(0, 1, 0)).Length() > 1e-9 {
		t.Errorf("translation = %v, want (0, 1, 0)", got)
	}
	if math.Abs(node.Transform().RotZ()-math.Pi/2) > 1e-9 {
		t.Errorf("RotZ() = %v, want π/2", node.Transform().RotZ())
	}
}

func TestInfiniteLatticeWindow(t *testing.T) {
	l, err := NewInfinite(NewNode(1, geometry.Identity(), false), CubicBasis(1, 1, 1))
	if err != nil {
		t.Fatalf("NewInfinite() error = %v", err)
	}

	placements, err := l.Window(Index{I: -1, J: 0, K: 0}, Index{I: 1, J: 1, K: 0})
	if err != nil {
		t.Fatalf("Window() error = %v", err)
	}
	if len(placements) != 6 {
		t.Fatalf("Window() returned %d placements, want 6", len(placements))
	}
	if placements[0].Index != (Index{I: -1}) || placements[5].Index != (Index{I: 1, J: 1}) {
		t.Errorf("unexpected order: first %v, last %v", placements[0].Index, placements[5].Index)
	}

	if _, err := l.Window(Index{I: 1}, Index{}); err == nil {
		t.Errorf("Window() with empty box should fail")
	}
}

func TestNewInfiniteDegenerateBasis(t *testing.T) {
	basis := Basis{
		geometry.NewVector3d(1, 0, 0),
		geometry.NewVector3d(2, 0, 0),
		geometry.NewVector3d(0, 0, 1),
	}
	if _, err := NewInfinite(NewNode(1, geometry.Identity(), false), basis); err == nil {
		t.Errorf("NewInfinite() with dependent basis should fail")
	}
}

func explicitFixture(t *testing.T) *ExplicitLattice {
	t.Helper()

	local := translation(0, 0, 0.5)
	fill := []Element{
		{Universe: 10}, {Universe: 1}, {Universe: 11},
		{Universe: 12}, {Universe: 13, Transform: &local}, {Universe: 14},
	}

	l, err := NewExplicit(NewNode(1, translation(0, 0, 100), false), CubicBasis(2, 2, 1),
		Index{I: -1}, Index{I: 1, J: 1}, fill)
	if err != nil {
		t.Fatalf("NewExplicit() error = %v", err)
	}
	return l
}

func TestExplicitLattice(t *testing.T) {
	l := explicitFixture(t)

	if l.Kind() != Explicit {
		t.Errorf("Kind() = %v, want explicit", l.Kind())
	}
	if l.Len() != 6 {
		t.Errorf("Len() = %d, want 6", l.Len())
	}

	origin, err := l.Node(Index{})
	if err != nil {
		t.Fatalf("Node(0) error = %v", err)
	}
	if origin.FillingUniverse() != 1 || origin.Fixed() {
		t.Errorf("Node(0) = %v, want movable u=1 origin", &origin)
	}

	node, err := l.Node(Index{I: 0, J: 1})
	if err != nil {
		t.Fatalf("Node() error = %v", err)
	}
	if node.FillingUniverse() != 13 {
		t.Errorf("FillingUniverse() = %d, want 13", node.FillingUniverse())
	}
	if got := node.Transform().Translation(); got != geometry.NewVector3d(0, 2, 100.5) {
		t.Errorf("translation = %v, want (0, 2, 100.5)", got)
	}

	// Fixed cells ignore overrides
	node.SetTransform(geometry.Identity())
	if got := node.Transform().Translation(); got != geometry.NewVector3d(0, 2, 100.5) {
		t.Errorf("fixed cell moved to %v", got)
	}
}

func TestExplicitLatticeOutOfRange(t *testing.T) {
	l := explicitFixture(t)

	_, err := l.Node(Index{I: 2})
	if !errors.Is(err, geometry.ErrIndex) {
		t.Errorf("Node() out of range error = %v, want ErrIndex", err)
	}
}

func TestExplicitLatticeEach(t *testing.T) {
	l := explicitFixture(t)

	var universes []int
	err := l.Each(func(p Placement) error {
		universes = append(universes, p.Node.FillingUniverse())
		return nil
	})
	if err != nil {
		t.Fatalf("Each() error = %v", err)
	}

	want := []int{10, 1, 11, 12, 13, 14}
	for i := range want {
		if universes[i] != want[i] {
			t.Errorf("universe %d = %d, want %d", i, universes[i], want[i])
		}
	}

	stop := errors.New("stop")
	calls := 0
	err = l.Each(func(Placement) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Errorf("Each() did not stop at first error: calls=%d err=%v", calls, err)
	}
}

func TestExplicitLatticeExtent(t *testing.T) {
	bbox, err := explicitFixture(t).Extent()
	if err != nil {
		t.Fatalf("Extent() error = %v", err)
	}
	if bbox.Width() != 4 || bbox.Height() != 2 || bbox.Depth() != 0.5 {
		t.Errorf("Extent() = %v", bbox)
	}
}

func TestNewExplicitValidation(t *testing.T) {
	origin := NewNode(1, geometry.Identity(), false)
	basis := CubicBasis(1, 1, 1)
	shifted := geometry.NewTranslation(geometry.NewVector3d(0, 0, 7))

	tests := []struct {
		name   string
		lo, hi Index
		fill   []Element
	}{
		{"wrong fill length", Index{}, Index{I: 1}, []Element{{Universe: 1}}},
		{"origin outside box", Index{I: 1}, Index{I: 2}, []Element{{Universe: 1}, {Universe: 1}}},
		{"origin universe mismatch", Index{}, Index{I: 1}, []Element{{Universe: 2}, {Universe: 1}}},
		{"empty box", Index{I: 1}, Index{}, nil},
		{"origin cell with own transform", Index{}, Index{I: 1}, []Element{{Universe: 1, Transform: &shifted}, {Universe: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewExplicit(origin, basis, tt.lo, tt.hi, tt.fill); err == nil {
				t.Errorf("NewExplicit() should fail")
			}
		})
	}
}

func TestPlacements(t *testing.T) {
	simple := NewSimple(NewNode(1, geometry.Identity(), false))
	infinite, _ := NewInfinite(NewNode(2, geometry.Identity(), false), CubicBasis(1, 1, 1))
	explicit := explicitFixture(t)

	tests := []struct {
		name    string
		lattice Lattice
		window  *[2]Index
		want    int
	}{
		{"simple", simple, nil, 1},
		{"infinite without window", infinite, nil, 1},
		{"infinite with window", infinite, &[2]Index{{}, {I: 2, J: 2}}, 9},
		{"explicit", explicit, nil, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placements, err := Placements(tt.lattice, tt.window)
			if err != nil {
				t.Fatalf("Placements() error = %v", err)
			}
			if len(placements) != tt.want {
				t.Errorf("Placements() returned %d, want %d", len(placements), tt.want)
			}
		})
	}
}

func TestWindowLimit(t *testing.T) {
	infinite, err := NewInfinite(NewNode(2, geometry.Identity(), false), CubicBasis(1, 1, 1))
	if err != nil {
		t.Fatalf("NewInfinite() error = %v", err)
	}

	tests := []struct {
		name    string
		lo, hi  Index
		wantErr bool
	}{
		{"small", Index{I: -1, J: -1}, Index{I: 1, J: 1}, false},
		{"at limit", Index{}, Index{I: MaxWindowCells - 1}, false},
		{"over limit", Index{I: -100000, J: -100000, K: -100000}, Index{I: 100000, J: 100000, K: 100000}, true},
		{"single axis over limit", Index{}, Index{K: MaxWindowCells}, true},
		{"huge extent", Index{I: -(1 << 62)}, Index{I: 1 << 62}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckWindow(tt.lo, tt.hi)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckWindow() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if _, err := infinite.Window(Index{I: -100000, J: -100000, K: -100000}, Index{I: 100000, J: 100000, K: 100000}); err == nil {
		t.Errorf("Window() over the cell limit should fail")
	}
}
