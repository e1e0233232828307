package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/maku693/3d-sdf-surface-nets/pkg/scene"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource transforms shape-script source before passing it to
// zygomys:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal).
//     This avoids registering keyword symbols as globals, which would
//     conflict with user variables of the same name.
//
//  2. ; line comments become //, which is what zygomys parses.
//
// Both transformations respect string literal boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Copy double-quoted string literals untouched.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Copy backtick-quoted string literals untouched.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments (and ;; style) to //.
		if b[i] == ';' {
			result = append(result, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword", preserving :=.
		if b[i] == ':' && i+1 < len(b) {
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				result = append(result, '"')
				result = append(result, kwPrefix...)
				result = append(result, b[i+1:j]...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpShape wraps a scene.Shape so shape builtins can consume each
// other's results.
type sexpShape struct {
	shape scene.Shape
}

func (s *sexpShape) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(shape %T)", s.shape)
}
func (s *sexpShape) Type() *zygo.RegisteredType { return nil }

// sexpVec3 wraps a scene.Vec3.
type sexpVec3 struct {
	vec scene.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %.1f %.1f %.1f)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Argument parsing helpers
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string, returning the
// keyword name without its prefix.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword
// argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// toFloat32 extracts a float32 from a Sexp (SexpInt or SexpFloat).
func toFloat32(s zygo.Sexp) (float32, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float32(v.Val), nil
	case *zygo.SexpFloat:
		return float32(v.Val), nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toShape extracts a scene.Shape from a Sexp.
func toShape(s zygo.Sexp) (scene.Shape, error) {
	if sh, ok := s.(*sexpShape); ok {
		return sh.shape, nil
	}
	return nil, fmt.Errorf("expected shape, got %T (%s)", s, s.SexpString(nil))
}

// toVec3 extracts a scene.Vec3 from a Sexp.
func toVec3(s zygo.Sexp) (scene.Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return scene.Vec3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// kwOrPositional resolves a parameter that may be passed by keyword or
// by position: (torus :major 5 :minor 1) and (torus 5 1) both work.
func kwOrPositional(pa kwArgs, name string, pos int) (float32, error) {
	if v, ok := pa.kw[name]; ok {
		f, err := toFloat32(v)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}
		return f, nil
	}
	if pos < len(pa.positional) {
		f, err := toFloat32(pa.positional[pos])
		if err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("missing %s", name)
}

// ---------------------------------------------------------------------------
// Builtins
// ---------------------------------------------------------------------------

// registerBuiltins installs the shape DSL into a zygomys environment.
// Shape builtins construct scene nodes; (draw ...) adds root shapes to
// the scene under construction.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens are recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, sc *scene.Scene) {

	// -----------------------------------------------------------------------
	// (sphere 1.5)
	// -----------------------------------------------------------------------
	env.AddFunction("sphere", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		r, err := kwOrPositional(pa, "radius", 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: %w", err)
		}
		return &sexpShape{shape: scene.Sphere{Radius: r}}, nil
	})

	// -----------------------------------------------------------------------
	// (torus :major 5 :minor 1)  or  (torus 5 1)
	// -----------------------------------------------------------------------
	env.AddFunction("torus", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		major, err := kwOrPositional(pa, "major", 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		minor, err := kwOrPositional(pa, "minor", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		return &sexpShape{shape: scene.Torus{Major: major, Minor: minor}}, nil
	})

	// -----------------------------------------------------------------------
	// (box 2 4 6)
	// -----------------------------------------------------------------------
	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		x, err := kwOrPositional(pa, "x", 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: %w", err)
		}
		y, err := kwOrPositional(pa, "y", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: %w", err)
		}
		z, err := kwOrPositional(pa, "z", 2)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: %w", err)
		}
		return &sexpShape{shape: scene.Box{Size: scene.Vec3{X: x, Y: y, Z: z}}}, nil
	})

	// -----------------------------------------------------------------------
	// (cylinder :height 4 :radius 1)  or  (cylinder 4 1)
	// -----------------------------------------------------------------------
	env.AddFunction("cylinder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		h, err := kwOrPositional(pa, "height", 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		r, err := kwOrPositional(pa, "radius", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		return &sexpShape{shape: scene.Cylinder{Height: h, Radius: r}}, nil
	})

	// -----------------------------------------------------------------------
	// (vec3 8 8 8)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3: expected 3 components, got %d", len(pa.positional))
		}
		var v scene.Vec3
		comps := []*float32{&v.X, &v.Y, &v.Z}
		for i, p := range pa.positional {
			f, err := toFloat32(p)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: %w", err)
			}
			*comps[i] = f
		}
		return &sexpVec3{vec: v}, nil
	})

	// -----------------------------------------------------------------------
	// (translate 8 8 8 shape)  or  (translate :by (vec3 8 8 8) shape)
	// -----------------------------------------------------------------------
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		var offset scene.Vec3
		var childArg zygo.Sexp

		if byArg, ok := pa.kw["by"]; ok {
			v, err := toVec3(byArg)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("translate: by: %w", err)
			}
			offset = v
			if len(pa.positional) != 1 {
				return zygo.SexpNull, fmt.Errorf("translate: expected exactly one child shape")
			}
			childArg = pa.positional[0]
		} else {
			if len(pa.positional) != 4 {
				return zygo.SexpNull, fmt.Errorf("translate: expected tx ty tz shape, got %d arguments", len(pa.positional))
			}
			comps := []*float32{&offset.X, &offset.Y, &offset.Z}
			for i := 0; i < 3; i++ {
				f, err := toFloat32(pa.positional[i])
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("translate: %w", err)
				}
				*comps[i] = f
			}
			childArg = pa.positional[3]
		}

		child, err := toShape(childArg)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		return &sexpShape{shape: scene.Translate{Offset: offset, Child: child}}, nil
	})

	// -----------------------------------------------------------------------
	// (merge shape shape ...)
	// -----------------------------------------------------------------------
	env.AddFunction("merge", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) == 0 {
			return zygo.SexpNull, fmt.Errorf("merge: expected at least one shape")
		}
		children := make([]scene.Shape, 0, len(pa.positional))
		for _, p := range pa.positional {
			sh, err := toShape(p)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("merge: %w", err)
			}
			children = append(children, sh)
		}
		return &sexpShape{shape: scene.Merge{Children: children}}, nil
	})

	// -----------------------------------------------------------------------
	// (draw shape ...) — add root shapes to the scene
	// -----------------------------------------------------------------------
	env.AddFunction("draw", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) == 0 {
			return zygo.SexpNull, fmt.Errorf("draw: expected at least one shape")
		}
		for _, p := range pa.positional {
			sh, err := toShape(p)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("draw: %w", err)
			}
			sc.Add(sh)
		}
		return zygo.SexpNull, nil
	})
}
