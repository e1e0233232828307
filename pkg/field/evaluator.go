package field

import "github.com/chewxy/math32"

// Evaluator is a scalar signed-distance-like function of a 3D point.
// Combinators compose evaluators into larger shapes; the only contract
// is the sign convention shared with Field samples.
type Evaluator interface {
	Evaluate(x, y, z float32) float32
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(x, y, z float32) float32

// Evaluate calls fn.
func (fn EvaluatorFunc) Evaluate(x, y, z float32) float32 {
	return fn(x, y, z)
}

// Sphere returns the distance to a sphere of radius r centered at the
// local origin.
func Sphere(r float32) Evaluator {
	return EvaluatorFunc(func(x, y, z float32) float32 {
		return math32.Sqrt(x*x+y*y+z*z) - r
	})
}

// Torus returns the distance to a torus whose ring of radius major lies
// in the x-z plane, with tube radius minor.
func Torus(major, minor float32) Evaluator {
	return EvaluatorFunc(func(x, y, z float32) float32 {
		q := math32.Hypot(x, z) - major
		return math32.Hypot(q, y) - minor
	})
}

// Box returns the distance to an axis-aligned box of the given side
// lengths centered at the local origin.
func Box(sx, sy, sz float32) Evaluator {
	hx, hy, hz := sx/2, sy/2, sz/2
	return EvaluatorFunc(func(x, y, z float32) float32 {
		qx := math32.Abs(x) - hx
		qy := math32.Abs(y) - hy
		qz := math32.Abs(z) - hz
		ox := math32.Max(qx, 0)
		oy := math32.Max(qy, 0)
		oz := math32.Max(qz, 0)
		outside := math32.Sqrt(ox*ox + oy*oy + oz*oz)
		inside := math32.Min(math32.Max(qx, math32.Max(qy, qz)), 0)
		return outside + inside
	})
}

// Cylinder returns the distance to a cylinder of the given height and
// radius, centered at the local origin with its axis along y.
func Cylinder(height, radius float32) Evaluator {
	h := height / 2
	return EvaluatorFunc(func(x, y, z float32) float32 {
		dr := math32.Hypot(x, z) - radius
		dy := math32.Abs(y) - h
		outside := math32.Hypot(math32.Max(dr, 0), math32.Max(dy, 0))
		inside := math32.Min(math32.Max(dr, dy), 0)
		return outside + inside
	})
}

// Translate re-centers ev so its local origin sits at (tx, ty, tz).
func Translate(tx, ty, tz float32, ev Evaluator) Evaluator {
	return EvaluatorFunc(func(x, y, z float32) float32 {
		return ev.Evaluate(x-tx, y-ty, z-tz)
	})
}

// Merge returns the union of its arguments: the pointwise minimum over
// all evaluators. Merging nothing yields the empty shape (+Inf
// everywhere).
func Merge(evs ...Evaluator) Evaluator {
	return EvaluatorFunc(func(x, y, z float32) float32 {
		d := math32.Inf(1)
		for _, ev := range evs {
			if v := ev.Evaluate(x, y, z); v < d {
				d = v
			}
		}
		return d
	})
}
