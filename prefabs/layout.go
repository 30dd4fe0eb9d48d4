package prefabs

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ShapeSpec is one shape produced by a layout script. Lengths are render
// units, rotation is degrees.
type ShapeSpec struct {
	Kind         string
	X            float64
	Y            float64
	Width        float64
	Height       float64
	Rotation     float64
	Color        ColorSpec
	Dynamic      bool
	GravityScale float64
}

// RunLayout runs a tengo layout script with width and height bound and
// decodes its `shapes` array.
func RunLayout(ctx context.Context, src []byte, width, height float64) ([]ShapeSpec, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))
	if err := script.Add("width", width); err != nil {
		return nil, fmt.Errorf("prefabs: layout: %w", err)
	}
	if err := script.Add("height", height); err != nil {
		return nil, fmt.Errorf("prefabs: layout: %w", err)
	}

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("prefabs: layout: %w", err)
	}

	v := compiled.Get("shapes")
	if v.IsUndefined() {
		return nil, fmt.Errorf("%w: layout defines no shapes", ErrInvalidSpec)
	}
	raw := v.Array()
	if raw == nil {
		return nil, fmt.Errorf("%w: shapes is %s, want array", ErrInvalidSpec, v.ValueType())
	}

	out := make([]ShapeSpec, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: shapes[%d] is not a map", ErrInvalidSpec, i)
		}
		s, err := decodeShape(m)
		if err != nil {
			return nil, fmt.Errorf("shapes[%d]: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// LoadLayout loads a layout script by name and runs it.
func LoadLayout(ctx context.Context, name string, width, height float64) ([]ShapeSpec, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}
	return RunLayout(ctx, src, width, height)
}

func decodeShape(m map[string]interface{}) (ShapeSpec, error) {
	s := ShapeSpec{Kind: "rectangle", Dynamic: true, GravityScale: 1}
	if k, ok := m["kind"].(string); ok {
		s.Kind = k
	}
	var ok bool
	for _, f := range []struct {
		key string
		dst *float64
		req bool
	}{
		{"x", &s.X, true},
		{"y", &s.Y, true},
		{"width", &s.Width, true},
		{"height", &s.Height, true},
		{"rotation", &s.Rotation, false},
		{"gravity_scale", &s.GravityScale, false},
	} {
		raw, present := m[f.key]
		if !present {
			if f.req {
				return s, fmt.Errorf("%w: missing %s", ErrInvalidSpec, f.key)
			}
			continue
		}
		if *f.dst, ok = toFloat(raw); !ok {
			return s, fmt.Errorf("%w: %s is not a number", ErrInvalidSpec, f.key)
		}
	}
	if s.Width <= 0 || s.Height <= 0 {
		return s, fmt.Errorf("%w: non-positive size %gx%g", ErrInvalidSpec, s.Width, s.Height)
	}
	if d, present := m["dynamic"].(bool); present {
		s.Dynamic = d
	}
	if arr, present := m["color"].([]interface{}); present {
		for _, c := range arr {
			f, ok := toFloat(c)
			if !ok {
				return s, fmt.Errorf("%w: color channel is not a number", ErrInvalidSpec)
			}
			s.Color = append(s.Color, f)
		}
	}
	return s, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
