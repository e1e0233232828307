package scene

import "github.com/maku693/3d-sdf-surface-nets/pkg/field"

// Sphere is a sphere of the given radius centered at the local origin.
type Sphere struct {
	Radius float32
}

func (s Sphere) Validate() error {
	if s.Radius <= 0 {
		return &ValidationError{Path: "sphere", Message: "radius must be positive"}
	}
	return nil
}

func (s Sphere) Build() field.Evaluator {
	return field.Sphere(s.Radius)
}

// Torus is a torus whose ring lies in the x-z plane of its local frame.
type Torus struct {
	Major, Minor float32
}

func (t Torus) Validate() error {
	if t.Major <= 0 {
		return &ValidationError{Path: "torus", Message: "major radius must be positive"}
	}
	if t.Minor <= 0 {
		return &ValidationError{Path: "torus", Message: "minor radius must be positive"}
	}
	if t.Minor >= t.Major {
		return &ValidationError{Path: "torus", Message: "minor radius must be smaller than major radius"}
	}
	return nil
}

func (t Torus) Build() field.Evaluator {
	return field.Torus(t.Major, t.Minor)
}

// Box is an axis-aligned box centered at the local origin.
type Box struct {
	Size Vec3
}

func (b Box) Validate() error {
	if b.Size.X <= 0 || b.Size.Y <= 0 || b.Size.Z <= 0 {
		return &ValidationError{Path: "box", Message: "dimensions must be positive"}
	}
	return nil
}

func (b Box) Build() field.Evaluator {
	return field.Box(b.Size.X, b.Size.Y, b.Size.Z)
}

// Cylinder is a y-axis cylinder centered at the local origin.
type Cylinder struct {
	Height, Radius float32
}

func (c Cylinder) Validate() error {
	if c.Height <= 0 {
		return &ValidationError{Path: "cylinder", Message: "height must be positive"}
	}
	if c.Radius <= 0 {
		return &ValidationError{Path: "cylinder", Message: "radius must be positive"}
	}
	return nil
}

func (c Cylinder) Build() field.Evaluator {
	return field.Cylinder(c.Height, c.Radius)
}

// Translate re-centers its child shape at Offset.
type Translate struct {
	Offset Vec3
	Child  Shape
}

func (t Translate) Validate() error {
	if t.Child == nil {
		return &ValidationError{Path: "translate", Message: "missing child shape"}
	}
	if err := t.Child.Validate(); err != nil {
		return prefixPath(err, "translate")
	}
	return nil
}

func (t Translate) Build() field.Evaluator {
	return field.Translate(t.Offset.X, t.Offset.Y, t.Offset.Z, t.Child.Build())
}

// Merge is the union of its children.
type Merge struct {
	Children []Shape
}

func (m Merge) Validate() error {
	if len(m.Children) == 0 {
		return &ValidationError{Path: "merge", Message: "needs at least one child shape"}
	}
	for _, c := range m.Children {
		if c == nil {
			return &ValidationError{Path: "merge", Message: "nil child shape"}
		}
		if err := c.Validate(); err != nil {
			return prefixPath(err, "merge")
		}
	}
	return nil
}

func (m Merge) Build() field.Evaluator {
	evs := make([]field.Evaluator, len(m.Children))
	for i, c := range m.Children {
		evs[i] = c.Build()
	}
	return field.Merge(evs...)
}
