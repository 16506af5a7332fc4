package scenescript

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/ollestrom/furnish/pkg/geom"
	"github.com/ollestrom/furnish/pkg/scene"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms script source before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals,
//     which would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: base-cabinet -> base_cabinet
//     zygomys does not allow hyphens in identifiers (it interprets
//     them as the subtraction operator).
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
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
		// Skip backtick-quoted string literals.
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
		// Convert ; line comments to // comments for zygomys.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
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
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when the hyphen sits between identifier characters, so a
		// minus operator is left alone.
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
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
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types
// ---------------------------------------------------------------------------

// sexpVec3 wraps an mgl64.Vec3 so vectors built by `vec3` can be
// passed to other builtins.
type sexpVec3 struct {
	vec mgl64.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %.1f %.1f %.1f)", v.vec.X(), v.vec.Y(), v.vec.Z())
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string. Returns the
// keyword name (without prefix) and true if it is.
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
				// Keyword at end with no value; treat as flag with nil.
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

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toVec3 extracts a vector from a sexpVec3.
func toVec3(s zygo.Sexp) (mgl64.Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return mgl64.Vec3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// toEuler extracts Euler rotation angles (radians) from a sexpVec3.
func toEuler(s zygo.Sexp) (geom.Euler, error) {
	v, err := toVec3(s)
	if err != nil {
		return geom.Euler{}, err
	}
	return geom.Euler{X: v.X(), Y: v.Y(), Z: v.Z()}, nil
}

// floatKW reads an optional numeric keyword argument into dst.
func floatKW(pa kwArgs, name, fn string, dst *float64) error {
	v, ok := pa.kw[name]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", fn, name, err)
	}
	*dst = f
	return nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the scene DSL builtins into a zygomys
// environment. The builtins populate the provided scene during
// evaluation.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens are converted to recognizable
// string literals.
func registerBuiltins(env *zygo.Zlisp, sc *scene.Scene) {

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		var v mgl64.Vec3
		for i := 0; i < 3; i++ {
			f, err := toFloat64(args[i])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: component %d: %w", i, err)
			}
			v[i] = f
		}
		return &sexpVec3{vec: v}, nil
	})

	// -----------------------------------------------------------------------
	// (cabinet "base" :width 600 :depth 580 :height 720)
	// -----------------------------------------------------------------------
	env.AddFunction("cabinet", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("cabinet requires a name argument")
		}
		cabName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cabinet: name: %w", err)
		}

		cab := scene.Cabinet{ID: scene.CabinetID(cabName), Name: cabName}
		if err := floatKW(pa, "width", "cabinet", &cab.Width); err != nil {
			return zygo.SexpNull, err
		}
		if err := floatKW(pa, "depth", "cabinet", &cab.Depth); err != nil {
			return zygo.SexpNull, err
		}
		if err := floatKW(pa, "height", "cabinet", &cab.Height); err != nil {
			return zygo.SexpNull, err
		}

		sc.AddCabinet(cab)
		return &zygo.SexpStr{S: cabName}, nil
	})

	// -----------------------------------------------------------------------
	// (part "left-side" :size (vec3 18 720 580) :at (vec3 -291 360 0)
	//       :rotate (vec3 0 1.5708 0) :cabinet "base")
	// -----------------------------------------------------------------------
	env.AddFunction("part", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("part requires a name argument")
		}
		partName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("part: name: %w", err)
		}

		p := scene.Part{ID: scene.PartID(partName), Name: partName}
		if v, ok := pa.kw["size"]; ok {
			if p.Size, err = toVec3(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("part: size: %w", err)
			}
		}
		if v, ok := pa.kw["at"]; ok {
			if p.Position, err = toVec3(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("part: at: %w", err)
			}
		}
		if v, ok := pa.kw["rotate"]; ok {
			if p.Rotation, err = toEuler(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("part: rotate: %w", err)
			}
		}
		if v, ok := pa.kw["cabinet"]; ok {
			cabName, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("part: cabinet: %w", err)
			}
			p.Cabinet = scene.CabinetID(cabName)
		}

		sc.AddPart(p)
		return &zygo.SexpStr{S: partName}, nil
	})

	// -----------------------------------------------------------------------
	// (room :width 3000 :depth 2400)
	// -----------------------------------------------------------------------
	env.AddFunction("room", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if sc.Room == nil {
			sc.Room = &scene.Room{}
		}
		if err := floatKW(pa, "width", "room", &sc.Room.Width); err != nil {
			return zygo.SexpNull, err
		}
		if err := floatKW(pa, "depth", "room", &sc.Room.Depth); err != nil {
			return zygo.SexpNull, err
		}
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (wall 0 0 3000 0 :thickness 100 :height 2400)
	//
	// Walls are plan-view segments: the four positional numbers are
	// start X, start Z, end X, end Z in mm.
	// -----------------------------------------------------------------------
	env.AddFunction("wall", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 4 {
			return zygo.SexpNull, fmt.Errorf("wall requires 4 coordinates, got %d", len(pa.positional))
		}
		var coords [4]float64
		for i, s := range pa.positional {
			f, err := toFloat64(s)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("wall: coordinate %d: %w", i, err)
			}
			coords[i] = f
		}

		w := scene.Wall{
			Start: mgl64.Vec2{coords[0], coords[1]},
			End:   mgl64.Vec2{coords[2], coords[3]},
		}
		if err := floatKW(pa, "thickness", "wall", &w.Thickness); err != nil {
			return zygo.SexpNull, err
		}
		if err := floatKW(pa, "height", "wall", &w.Height); err != nil {
			return zygo.SexpNull, err
		}

		if sc.Room == nil {
			sc.Room = &scene.Room{}
		}
		sc.Room.Walls = append(sc.Room.Walls, w)
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (hide "left-side")
	// -----------------------------------------------------------------------
	env.AddFunction("hide", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("hide requires a part name")
		}
		partName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("hide: name: %w", err)
		}
		sc.SetHidden(scene.PartID(partName), true)
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (selection "left-side" "right-side")
	// -----------------------------------------------------------------------
	env.AddFunction("selection", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		sc.Selection = sc.Selection[:0]
		for i, a := range args {
			partName, err := toString(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("selection: entry %d: %w", i, err)
			}
			sc.Selection = append(sc.Selection, scene.PartID(partName))
		}
		return zygo.SexpNull, nil
	})
}
