package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/antroit/common"
	"github.com/milk9111/antroit/ecs"
	"github.com/milk9111/antroit/ecs/component"
	"github.com/milk9111/antroit/physics"
)

// BuildWalls frames a width×height viewport with four static boxes of the
// given thickness placed just outside it.
func BuildWalls(env Env, width, height, thickness float64) error {
	if thickness <= 0 {
		thickness = 10
	}
	walls := []struct {
		x, y, w, h float64
	}{
		{width / 2, -thickness / 2, width + 2*thickness, thickness},
		{width / 2, height + thickness/2, width + 2*thickness, thickness},
		{-thickness / 2, height / 2, thickness, height + 2*thickness},
		{width + thickness/2, height / 2, thickness, height + 2*thickness},
	}

	for _, wl := range walls {
		handle, err := env.Physics.CreateBody(physics.BodyDef{
			Position: cp.Vector{
				X: common.WorldToPhysics(wl.x, env.Scale),
				Y: common.WorldToPhysics(wl.y, env.Scale),
			},
			Vertices: physics.BoxVertices(
				common.WorldToPhysics(wl.w, env.Scale),
				common.WorldToPhysics(wl.h, env.Scale),
			),
			Friction: rectangleFriction,
		})
		if err != nil {
			return fmt.Errorf("entity: build wall: %w", err)
		}
		e := ecs.CreateEntity(env.World)
		_ = ecs.Add(env.World, e, component.WallComponent, &component.Wall{})
		_ = ecs.Add(env.World, e, component.PhysicsBodyComponent, &component.PhysicsBody{Handle: handle})
	}
	return nil
}

// ClearWalls removes every wall body.
func ClearWalls(env Env) int {
	if env.World == nil {
		return 0
	}
	n := 0
	for _, e := range env.World.Query(component.WallComponent.ID()) {
		if body, ok := ecs.Get(env.World, e, component.PhysicsBodyComponent); ok {
			env.Physics.DestroyBody(body.Handle)
		}
		if ecs.DestroyEntity(env.World, e) {
			n++
		}
	}
	return n
}
