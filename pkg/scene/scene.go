// Package scene describes shape trees declaratively, separate from the
// field evaluators they compile into. The script engine builds scenes;
// validation runs before any sampling so bad parameters surface as
// errors instead of garbage geometry.
package scene

import (
	"fmt"

	"github.com/maku693/3d-sdf-surface-nets/pkg/field"
)

// Vec3 is a 3D vector in grid coordinates.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Shape is one node of a shape tree.
type Shape interface {
	// Validate reports why the shape cannot be built, or nil.
	Validate() error
	// Build compiles the shape into a field evaluator. Only valid
	// shapes may be built.
	Build() field.Evaluator
}

// ValidationError describes an invalid shape parameter. Path locates
// the offending node from the scene root.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Scene is an ordered list of root shapes drawn into a single field.
// Because drawing unions by pointwise minimum, the result is
// independent of shape order.
type Scene struct {
	Shapes []Shape
}

// Add appends a root shape.
func (s *Scene) Add(sh Shape) {
	s.Shapes = append(s.Shapes, sh)
}

// ShapeCount returns the number of root shapes.
func (s *Scene) ShapeCount() int {
	return len(s.Shapes)
}

// Validate checks every root shape and returns the first failure.
func (s *Scene) Validate() error {
	for i, sh := range s.Shapes {
		if sh == nil {
			return &ValidationError{Path: fmt.Sprintf("shape[%d]", i), Message: "nil shape"}
		}
		if err := sh.Validate(); err != nil {
			return prefixPath(err, fmt.Sprintf("shape[%d]", i))
		}
	}
	return nil
}

// Draw validates the scene and paints every shape into f.
func (s *Scene) Draw(f *field.Field) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for _, sh := range s.Shapes {
		f.Draw(sh.Build())
	}
	return nil
}

// prefixPath extends a ValidationError's path with an enclosing node.
func prefixPath(err error, p string) error {
	if ve, ok := err.(*ValidationError); ok {
		return &ValidationError{Path: p + "/" + ve.Path, Message: ve.Message}
	}
	return fmt.Errorf("%s: %w", p, err)
}
