package field

import (
	"testing"

	"github.com/chewxy/math32"
)

const distTolerance = 1e-5

func near(a, b float32) bool {
	return math32.Abs(a-b) < distTolerance
}

func TestSphereDistance(t *testing.T) {
	s := Sphere(2)
	cases := []struct {
		x, y, z float32
		want    float32
	}{
		{0, 0, 0, -2},   // center
		{2, 0, 0, 0},    // on surface
		{0, 3, 0, 1},    // outside
		{0, 0, -1, -1},  // inside
		{3, 4, 0, 3},    // 3-4-5 triangle
	}
	for _, tc := range cases {
		if got := s.Evaluate(tc.x, tc.y, tc.z); !near(got, tc.want) {
			t.Errorf("sphere(2) at (%v, %v, %v): got %v, want %v", tc.x, tc.y, tc.z, got, tc.want)
		}
	}
}

func TestTorusDistance(t *testing.T) {
	tor := Torus(3, 1)
	cases := []struct {
		x, y, z float32
		want    float32
	}{
		{3, 0, 0, -1},  // ring center
		{4, 0, 0, 0},   // outer equator
		{2, 0, 0, 0},   // inner equator
		{0, 0, 3, -1},  // ring center on z
		{3, 1, 0, 0},   // top of the tube
		{0, 0, 0, 2},   // hole center
	}
	for _, tc := range cases {
		if got := tor.Evaluate(tc.x, tc.y, tc.z); !near(got, tc.want) {
			t.Errorf("torus(3, 1) at (%v, %v, %v): got %v, want %v", tc.x, tc.y, tc.z, got, tc.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	s := Translate(1, 2, 3, Sphere(1))
	if got := s.Evaluate(1, 2, 3); !near(got, -1) {
		t.Errorf("translated center: got %v, want -1", got)
	}
	if got := s.Evaluate(3, 2, 3); !near(got, 1) {
		t.Errorf("translated offset point: got %v, want 1", got)
	}
}

func TestMerge(t *testing.T) {
	a := Translate(-2, 0, 0, Sphere(1))
	b := Translate(2, 0, 0, Sphere(1))
	m := Merge(a, b)

	// Inside either operand means inside the union.
	if got := m.Evaluate(-2, 0, 0); !near(got, -1) {
		t.Errorf("union at left center: got %v, want -1", got)
	}
	if got := m.Evaluate(2, 0, 0); !near(got, -1) {
		t.Errorf("union at right center: got %v, want -1", got)
	}
	// Midpoint is outside both, distance 1 to each.
	if got := m.Evaluate(0, 0, 0); !near(got, 1) {
		t.Errorf("union at midpoint: got %v, want 1", got)
	}
}

func TestMergeEmptyIsEverywhereOutside(t *testing.T) {
	m := Merge()
	if got := m.Evaluate(0, 0, 0); !math32.IsInf(got, 1) {
		t.Errorf("empty union: got %v, want +Inf", got)
	}
}

func TestBoxDistance(t *testing.T) {
	b := Box(2, 4, 6)
	cases := []struct {
		x, y, z float32
		want    float32
	}{
		{0, 0, 0, -1},  // center, nearest face is x
		{1, 0, 0, 0},   // on +x face
		{2, 0, 0, 1},   // past +x face
		{0, 2, 0, 0},   // on +y face
		{0, 0, -4, 1},  // past -z face
	}
	for _, tc := range cases {
		if got := b.Evaluate(tc.x, tc.y, tc.z); !near(got, tc.want) {
			t.Errorf("box(2, 4, 6) at (%v, %v, %v): got %v, want %v", tc.x, tc.y, tc.z, got, tc.want)
		}
	}
}

func TestCylinderDistance(t *testing.T) {
	c := Cylinder(4, 1)
	cases := []struct {
		x, y, z float32
		want    float32
	}{
		{0, 0, 0, -1},  // center, nearest is the wall
		{1, 0, 0, 0},   // on the wall
		{0, 2, 0, 0},   // on the top cap
		{0, 3, 0, 1},   // above the top cap
		{2, 0, 0, 1},   // outside the wall
	}
	for _, tc := range cases {
		if got := c.Evaluate(tc.x, tc.y, tc.z); !near(got, tc.want) {
			t.Errorf("cylinder(4, 1) at (%v, %v, %v): got %v, want %v", tc.x, tc.y, tc.z, got, tc.want)
		}
	}
}
