package component

import "github.com/milk9111/antroit/render"

// Transform is the render-space pose of an entity, refreshed every frame
// from its physics body.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()

// Model returns translate(X, Y) composed with rotate(Rotation).
func (t Transform) Model() render.Affine {
	return render.Translate(t.X, t.Y).Mul(render.Rotate(t.Rotation))
}
