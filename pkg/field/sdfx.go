package field

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// FromSDF3 adapts an sdfx solid to the Evaluator interface, so shapes
// built with the sdfx CAD library can be painted into a Field alongside
// the native combinators. sdfx evaluates in float64; samples are
// narrowed to the grid's float32 precision.
func FromSDF3(s sdf.SDF3) Evaluator {
	return EvaluatorFunc(func(x, y, z float32) float32 {
		return float32(s.Evaluate(v3.Vec{X: float64(x), Y: float64(y), Z: float64(z)}))
	})
}
