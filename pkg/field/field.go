// Package field holds a dense 3D scalar grid and the implicit-function
// evaluators that populate it. Samples follow a signed-distance
// convention: a value <= 0 is inside the surface, a value > 0 is
// outside, and the magnitude approximates the distance to the surface.
package field

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Field is a dense voxel grid of signed-distance samples. Samples are
// stored flat, indexed x + y*Width + z*Width*Height (x fastest-varying).
type Field struct {
	Width, Height, Depth int
	Samples              []float32
}

// New allocates a field with every sample set to +Inf, meaning
// "outside, unconstrained". Dimensions must be positive.
func New(width, height, depth int) (*Field, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("field: invalid dimensions %dx%dx%d", width, height, depth)
	}
	samples := make([]float32, width*height*depth)
	inf := math32.Inf(1)
	for i := range samples {
		samples[i] = inf
	}
	return &Field{
		Width:   width,
		Height:  height,
		Depth:   depth,
		Samples: samples,
	}, nil
}

// NewFromSamples wraps an existing sample array. The array length must
// match the grid volume exactly.
func NewFromSamples(width, height, depth int, samples []float32) (*Field, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("field: invalid dimensions %dx%dx%d", width, height, depth)
	}
	if len(samples) != width*height*depth {
		return nil, fmt.Errorf("field: sample array length %d does not match %dx%dx%d grid",
			len(samples), width, height, depth)
	}
	return &Field{
		Width:   width,
		Height:  height,
		Depth:   depth,
		Samples: samples,
	}, nil
}

// Index returns the linear sample index of voxel (x, y, z).
func (f *Field) Index(x, y, z int) int {
	return x + y*f.Width + z*f.Width*f.Height
}

// Coords decomposes a linear sample index back into voxel coordinates.
func (f *Field) Coords(i int) (x, y, z int) {
	x = i % f.Width
	y = (i / f.Width) % f.Height
	z = i / (f.Width * f.Height)
	return x, y, z
}

// At returns the sample at voxel (x, y, z).
func (f *Field) At(x, y, z int) float32 {
	return f.Samples[f.Index(x, y, z)]
}

// Draw evaluates ev at every voxel center (x+0.5, y+0.5, z+0.5) and
// stores the pointwise minimum with the existing sample. Repeated draws
// union shapes into the same grid; a draw never raises a sample, and
// the result is independent of draw order.
func (f *Field) Draw(ev Evaluator) {
	i := 0
	for z := 0; z < f.Depth; z++ {
		fz := float32(z) + 0.5
		for y := 0; y < f.Height; y++ {
			fy := float32(y) + 0.5
			for x := 0; x < f.Width; x++ {
				d := ev.Evaluate(float32(x)+0.5, fy, fz)
				if d < f.Samples[i] {
					f.Samples[i] = d
				}
				i++
			}
		}
	}
}
