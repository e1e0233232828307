package field

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/deadsy/sdfx/sdf"
)

// TestFromSDF3MatchesNativeSphere cross-checks the sdfx adapter against
// the native sphere combinator on a grid of probe points.
func TestFromSDF3MatchesNativeSphere(t *testing.T) {
	s3, err := sdf.Sphere3D(1.5)
	if err != nil {
		t.Fatalf("sdf.Sphere3D failed: %v", err)
	}
	adapted := FromSDF3(s3)
	native := Sphere(1.5)

	for x := float32(-2); x <= 2; x++ {
		for y := float32(-2); y <= 2; y++ {
			for z := float32(-2); z <= 2; z++ {
				got := adapted.Evaluate(x, y, z)
				want := native.Evaluate(x, y, z)
				if math32.Abs(got-want) > 1e-4 {
					t.Fatalf("at (%v, %v, %v): sdfx %v, native %v", x, y, z, got, want)
				}
			}
		}
	}
}

// TestFromSDF3DrawsIntoField paints an sdfx sphere into a field and
// checks the sign convention survives the adapter.
func TestFromSDF3DrawsIntoField(t *testing.T) {
	s3, err := sdf.Sphere3D(3)
	if err != nil {
		t.Fatalf("sdf.Sphere3D failed: %v", err)
	}

	f, err := New(8, 8, 8)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	f.Draw(Translate(4, 4, 4, FromSDF3(s3)))

	if center := f.At(4, 4, 4); center >= 0 {
		t.Errorf("center sample %v, want negative (inside)", center)
	}
	if corner := f.At(0, 0, 0); corner <= 0 {
		t.Errorf("corner sample %v, want positive (outside)", corner)
	}
}
