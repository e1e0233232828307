package surfacenets_test

import (
	"math"
	"testing"

	"github.com/maku693/3d-sdf-surface-nets/pkg/field"
	"github.com/maku693/3d-sdf-surface-nets/pkg/mesh"
	"github.com/maku693/3d-sdf-surface-nets/pkg/surfacenets"
)

// uniformField builds an n³ field with every sample set to v.
func uniformField(t *testing.T, n int, v float32) *field.Field {
	t.Helper()
	samples := make([]float32, n*n*n)
	for i := range samples {
		samples[i] = v
	}
	f, err := field.NewFromSamples(n, n, n, samples)
	if err != nil {
		t.Fatalf("NewFromSamples failed: %v", err)
	}
	return f
}

// sphereField builds an n³ field containing a sphere of radius r
// centered in the grid.
func sphereField(t *testing.T, n int, r float32) *field.Field {
	t.Helper()
	f, err := field.New(n, n, n)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	c := float32(n) / 2
	f.Draw(field.Translate(c, c, c, field.Sphere(r)))
	return f
}

// checkIndices verifies every index is in range and the index count
// forms whole triangles.
func checkIndices(t *testing.T, m *mesh.Mesh) {
	t.Helper()
	if len(m.Indices)%3 != 0 {
		t.Fatalf("index count %d is not a multiple of 3", len(m.Indices))
	}
	vc := m.VertexCount()
	for i, idx := range m.Indices {
		if int(idx) >= vc {
			t.Fatalf("index %d references vertex %d, only %d vertices", i, idx, vc)
		}
	}
}

func TestExtractAllOutsideIsEmpty(t *testing.T) {
	m := surfacenets.Extract(uniformField(t, 4, 1))
	if !m.IsEmpty() || len(m.Indices) != 0 {
		t.Errorf("uniform outside field: got %d vertices, %d indices",
			m.VertexCount(), len(m.Indices))
	}
}

func TestExtractAllInsideIsEmpty(t *testing.T) {
	m := surfacenets.Extract(uniformField(t, 4, -1))
	if !m.IsEmpty() || len(m.Indices) != 0 {
		t.Errorf("uniform inside field: got %d vertices, %d indices",
			m.VertexCount(), len(m.Indices))
	}
}

func TestExtractFreshFieldIsEmpty(t *testing.T) {
	f, err := field.New(4, 4, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	m := surfacenets.Extract(f)
	if !m.IsEmpty() {
		t.Errorf("undrawn field produced %d vertices", m.VertexCount())
	}
}

func TestExtractDegenerateGridIsEmpty(t *testing.T) {
	// A single-sample field has no dual cells.
	m := surfacenets.Extract(uniformField(t, 1, -1))
	if !m.IsEmpty() {
		t.Errorf("1x1x1 field produced %d vertices", m.VertexCount())
	}
}

func TestExtractSmallSphere(t *testing.T) {
	f, err := field.New(4, 4, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	f.Draw(field.Translate(2, 2, 2, field.Sphere(1.5)))

	m := surfacenets.Extract(f)
	if m.IsEmpty() {
		t.Fatal("expected non-empty mesh")
	}
	checkIndices(t, m)
}

func TestExtractSphereMesh(t *testing.T) {
	m := surfacenets.Extract(sphereField(t, 16, 5))
	if m.IsEmpty() {
		t.Fatal("expected non-empty mesh")
	}
	if m.TriangleCount() == 0 {
		t.Fatal("expected triangles")
	}
	checkIndices(t, m)

	// All vertices must lie within the grid (the placement shift can
	// reach at most half a voxel past a cell).
	min, max, ok := m.Bounds()
	if !ok {
		t.Fatal("Bounds not ok")
	}
	for a := 0; a < 3; a++ {
		if min[a] < 0 || max[a] > 16 {
			t.Errorf("axis %d bounds [%v, %v] outside grid", a, min[a], max[a])
		}
	}
}

func TestExtractNormalsUnitLength(t *testing.T) {
	m := surfacenets.Extract(sphereField(t, 16, 5))
	for i := 0; i+5 < len(m.Vertices); i += mesh.VertexStride {
		nx := float64(m.Vertices[i+3])
		ny := float64(m.Vertices[i+4])
		nz := float64(m.Vertices[i+5])
		l := math.Sqrt(nx*nx + ny*ny + nz*nz)
		if math.Abs(l-1) > 1e-4 {
			t.Fatalf("vertex %d: normal length %v", i/mesh.VertexStride, l)
		}
	}
}

func TestExtractSphereNormalsPointOutward(t *testing.T) {
	const n = 16
	m := surfacenets.Extract(sphereField(t, n, 5))
	c := float64(n) / 2
	for i := 0; i+5 < len(m.Vertices); i += mesh.VertexStride {
		rx := float64(m.Vertices[i]) - c
		ry := float64(m.Vertices[i+1]) - c
		rz := float64(m.Vertices[i+2]) - c
		dot := rx*float64(m.Vertices[i+3]) + ry*float64(m.Vertices[i+4]) + rz*float64(m.Vertices[i+5])
		if dot <= 0 {
			t.Fatalf("vertex %d: normal points inward (dot %v)", i/mesh.VertexStride, dot)
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	f := sphereField(t, 12, 4)
	a := surfacenets.Extract(f)
	b := surfacenets.Extract(f)

	if len(a.Vertices) != len(b.Vertices) || len(a.Indices) != len(b.Indices) {
		t.Fatalf("sizes differ: %d/%d vertices, %d/%d indices",
			len(a.Vertices), len(b.Vertices), len(a.Indices), len(b.Indices))
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("vertex float %d differs: %v != %v", i, a.Vertices[i], b.Vertices[i])
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			t.Fatalf("index %d differs: %d != %d", i, a.Indices[i], b.Indices[i])
		}
	}
}

// TestExtractSphereWinding confirms outward-consistent winding: the
// signed volume of a closed sphere mesh must be positive and close to
// the analytic sphere volume.
func TestExtractSphereWinding(t *testing.T) {
	const r = 5.0
	m := surfacenets.Extract(sphereField(t, 16, r))
	got := m.SignedVolume()
	if got <= 0 {
		t.Fatalf("signed volume %v, want positive", got)
	}
	want := 4.0 / 3.0 * math.Pi * r * r * r
	if got < want*0.5 || got > want*1.5 {
		t.Errorf("signed volume %v too far from analytic %v", got, want)
	}
}

// TestExtractClippedSphere runs a sphere larger than the grid so the
// surface crosses every boundary; faces with missing neighbors must be
// dropped instead of producing invalid indices.
func TestExtractClippedSphere(t *testing.T) {
	f, err := field.New(8, 8, 8)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	f.Draw(field.Translate(4, 4, 4, field.Sphere(6)))

	m := surfacenets.Extract(f)
	if m.IsEmpty() {
		t.Fatal("expected non-empty mesh")
	}
	checkIndices(t, m)
}

// TestExtractHalfSpace cuts the grid with a plane and checks that the
// dual vertices form one sheet, roughly one per interior cell column.
func TestExtractHalfSpace(t *testing.T) {
	const n = 6
	samples := make([]float32, n*n*n)
	f, err := field.NewFromSamples(n, n, n, samples)
	if err != nil {
		t.Fatalf("NewFromSamples failed: %v", err)
	}
	for i := range samples {
		x, _, _ := f.Coords(i)
		samples[i] = float32(x) - 2.5
	}

	m := surfacenets.Extract(f)
	// Every cell in the x=2 dual slab crosses the plane: (n-1)² vertices.
	if got, want := m.VertexCount(), (n-1)*(n-1); got != want {
		t.Errorf("vertex count: got %d, want %d", got, want)
	}
	checkIndices(t, m)

	// The sheet sits at x = 3 after the half-voxel shift.
	for i := 0; i < len(m.Vertices); i += mesh.VertexStride {
		if x := m.Vertices[i]; math.Abs(float64(x)-3) > 1e-4 {
			t.Errorf("vertex %d at x=%v, want 3", i/mesh.VertexStride, x)
		}
	}
}
