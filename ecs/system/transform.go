package system

import (
	"github.com/milk9111/antroit/common"
	"github.com/milk9111/antroit/ecs"
	"github.com/milk9111/antroit/ecs/component"
	"github.com/milk9111/antroit/physics"
)

// TransformSystem copies body poses into render transforms, scaling physics
// units back to render units. It runs once per frame.
type TransformSystem struct {
	world *physics.World
	scale float64
}

func NewTransformSystem(world *physics.World, scale float64) *TransformSystem {
	return &TransformSystem{world: world, scale: scale}
}

func (ts *TransformSystem) Update(w *ecs.World, dt float64) {
	if ts == nil || ts.world == nil || w == nil {
		return
	}
	for _, e := range w.Query(component.PhysicsBodyComponent.ID(), component.TransformComponent.ID()) {
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)
		pos, err := ts.world.Position(body.Handle)
		if err != nil {
			continue
		}
		angle, _ := ts.world.Angle(body.Handle)
		t.X = common.PhysicsToWorld(pos.X, ts.scale)
		t.Y = common.PhysicsToWorld(pos.Y, ts.scale)
		t.Rotation = angle
	}
}
