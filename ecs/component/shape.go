package component

import "github.com/milk9111/antroit/render"

// ShapeKind is the closed set of drawable shapes.
type ShapeKind int

const (
	ShapeRectangle ShapeKind = iota
	ShapeTriangle
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeTriangle:
		return "triangle"
	case ShapeRectangle:
		return "rectangle"
	default:
		return "unknown"
	}
}

// ParseShapeKind maps a layout name to a kind.
func ParseShapeKind(s string) (ShapeKind, bool) {
	switch s {
	case "triangle":
		return ShapeTriangle, true
	case "rectangle", "rect", "box":
		return ShapeRectangle, true
	}
	return 0, false
}

// Shape holds the render-space description of a registry entry.
type Shape struct {
	Kind    ShapeKind
	Width   float64
	Height  float64
	Color   render.Color
	Dynamic bool
}

var ShapeComponent = NewComponent[Shape]()

// Vertices returns the triangle list of a shape in local render units,
// centred on the origin. Rectangles are two triangles.
func Vertices(kind ShapeKind, w, h float64) [][2]float64 {
	hw, hh := w/2, h/2
	switch kind {
	case ShapeTriangle:
		return [][2]float64{
			{-hw, hh},
			{hw, hh},
			{-hw, -hh},
		}
	default:
		return [][2]float64{
			{-hw, hh},
			{hw, hh},
			{-hw, -hh},

			{hw, hh},
			{hw, -hh},
			{-hw, -hh},
		}
	}
}

// Outline returns the convex collision polygon of a shape in local render
// units.
func Outline(kind ShapeKind, w, h float64) [][2]float64 {
	hw, hh := w/2, h/2
	switch kind {
	case ShapeTriangle:
		return Vertices(kind, w, h)
	default:
		return [][2]float64{
			{-hw, -hh},
			{hw, -hh},
			{hw, hh},
			{-hw, hh},
		}
	}
}
