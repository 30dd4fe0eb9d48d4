package system

import (
	"github.com/milk9111/antroit/ecs"
	"github.com/milk9111/antroit/physics"
)

// PhysicsSystem advances the physics world by one fixed step.
type PhysicsSystem struct {
	world *physics.World
	steps int64
}

func NewPhysicsSystem(world *physics.World) *PhysicsSystem {
	return &PhysicsSystem{world: world}
}

func (ps *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if ps == nil || ps.world == nil || dt <= 0 {
		return
	}
	ps.world.Step(dt)
	ps.steps++
}

// Steps is the number of physics steps taken.
func (ps *PhysicsSystem) Steps() int64 {
	if ps == nil {
		return 0
	}
	return ps.steps
}
