package system

import (
	"github.com/milk9111/antroit/ecs"
	"github.com/milk9111/antroit/ecs/component"
	"github.com/milk9111/antroit/render"
)

// RenderSystem draws every shape in registry order. Shapes overlap with
// blending on, so the order is never changed.
type RenderSystem struct {
	Program    render.ProgramID
	Projection render.Affine
	ClearColor render.Color
}

func NewRenderSystem(clear render.Color) *RenderSystem {
	return &RenderSystem{Projection: render.Identity(), ClearColor: clear}
}

// Draw renders one frame and returns the number of shapes drawn. With an
// invalid program only the clear happens.
func (r *RenderSystem) Draw(w *ecs.World, d render.Device) int {
	if r == nil || w == nil || d == nil {
		return 0
	}

	d.Clear(r.ClearColor)
	if r.Program == 0 {
		return 0
	}
	d.UseProgram(r.Program)

	drawn := 0
	for _, e := range w.Query(component.ShapeComponent.ID(), component.MeshComponent.ID(), component.TransformComponent.ID()) {
		shape, _ := ecs.Get(w, e, component.ShapeComponent)
		mesh, _ := ecs.Get(w, e, component.MeshComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)
		if mesh.Buffer == 0 || mesh.Count == 0 {
			continue
		}
		d.DrawTriangles(mesh.Buffer, mesh.Count, r.Projection.Mul(t.Model()), shape.Color)
		drawn++
	}

	d.UseProgram(0)
	return drawn
}
