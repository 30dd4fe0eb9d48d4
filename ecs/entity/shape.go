package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/antroit/common"
	"github.com/milk9111/antroit/ecs"
	"github.com/milk9111/antroit/ecs/component"
	"github.com/milk9111/antroit/physics"
	"github.com/milk9111/antroit/prefabs"
	"github.com/milk9111/antroit/render"
)

const (
	rectangleFriction = 0.2
	triangleFriction  = 1.0
)

// Env bundles what the builders write into.
type Env struct {
	World   *ecs.World
	Physics *physics.World
	Device  render.Device
	Scale   float64
}

// ShapeParams describes a shape in render units. Rotation is radians.
type ShapeParams struct {
	Kind         component.ShapeKind
	X            float64
	Y            float64
	Width        float64
	Height       float64
	Rotation     float64
	Color        render.Color
	Dynamic      bool
	GravityScale float64
}

// ParamsFromSpec converts a layout entry.
func ParamsFromSpec(s prefabs.ShapeSpec) (ShapeParams, error) {
	kind, ok := component.ParseShapeKind(s.Kind)
	if !ok {
		return ShapeParams{}, fmt.Errorf("entity: unknown shape kind %q", s.Kind)
	}
	return ShapeParams{
		Kind:         kind,
		X:            s.X,
		Y:            s.Y,
		Width:        s.Width,
		Height:       s.Height,
		Rotation:     common.Radians(s.Rotation),
		Color:        s.Color.Color(),
		Dynamic:      s.Dynamic,
		GravityScale: s.GravityScale,
	}, nil
}

// BuildShape creates the physics body, vertex buffer and registry entry of a
// shape. Nothing is left behind when it fails.
func BuildShape(env Env, p ShapeParams) (ecs.Entity, error) {
	if env.World == nil || env.Physics == nil {
		return 0, fmt.Errorf("entity: build shape: incomplete env")
	}

	outline := component.Outline(p.Kind, p.Width, p.Height)
	verts := make([]cp.Vector, 0, len(outline))
	for _, v := range outline {
		verts = append(verts, cp.Vector{
			X: common.WorldToPhysics(v[0], env.Scale),
			Y: common.WorldToPhysics(v[1], env.Scale),
		})
	}

	friction := rectangleFriction
	if p.Kind == component.ShapeTriangle {
		friction = triangleFriction
	}

	handle, err := env.Physics.CreateBody(physics.BodyDef{
		Position: cp.Vector{
			X: common.WorldToPhysics(p.X, env.Scale),
			Y: common.WorldToPhysics(p.Y, env.Scale),
		},
		Angle:    p.Rotation,
		Dynamic:  p.Dynamic,
		Vertices: verts,
		Density:  1,
		Friction: friction,
	})
	if err != nil {
		return 0, fmt.Errorf("entity: build %s: %w", p.Kind, err)
	}
	if p.Dynamic && p.GravityScale != 0 && p.GravityScale != 1 {
		_ = env.Physics.SetGravityScale(handle, p.GravityScale)
	}

	mesh := &component.Mesh{Count: len(component.Vertices(p.Kind, p.Width, p.Height))}
	if env.Device != nil {
		mesh.Buffer = env.Device.CreateBuffer(render.Flatten(component.Vertices(p.Kind, p.Width, p.Height)))
	}

	e := ecs.CreateEntity(env.World)
	shape := &component.Shape{
		Kind:    p.Kind,
		Width:   p.Width,
		Height:  p.Height,
		Color:   p.Color.Clamped(),
		Dynamic: p.Dynamic,
	}
	if err := ecs.Add(env.World, e, component.ShapeComponent, shape); err != nil {
		releaseMesh(env, mesh)
		env.Physics.DestroyBody(handle)
		return 0, err
	}
	_ = ecs.Add(env.World, e, component.PhysicsBodyComponent, &component.PhysicsBody{Handle: handle})
	_ = ecs.Add(env.World, e, component.MeshComponent, mesh)
	_ = ecs.Add(env.World, e, component.TransformComponent, &component.Transform{X: p.X, Y: p.Y, Rotation: p.Rotation})
	return e, nil
}

// DestroyShape releases the body and buffer of one shape and removes it.
func DestroyShape(env Env, e ecs.Entity) bool {
	if !ecs.IsAlive(env.World, e) {
		return false
	}
	if body, ok := ecs.Get(env.World, e, component.PhysicsBodyComponent); ok {
		env.Physics.DestroyBody(body.Handle)
	}
	if mesh, ok := ecs.Get(env.World, e, component.MeshComponent); ok {
		releaseMesh(env, mesh)
	}
	if !ecs.DestroyEntity(env.World, e) {
		return false
	}
	env.World.Events().Push(ecs.Event{Kind: ecs.EventShapeDestroyed, Entity: e})
	return true
}

// ClearShapes destroys every shape in registry order and returns how many
// were removed.
func ClearShapes(env Env) int {
	if env.World == nil {
		return 0
	}
	n := 0
	for _, e := range env.World.Query(component.ShapeComponent.ID()) {
		if DestroyShape(env, e) {
			n++
		}
	}
	return n
}

func releaseMesh(env Env, mesh *component.Mesh) {
	if mesh == nil || mesh.Buffer == 0 || env.Device == nil {
		return
	}
	env.Device.DeleteBuffer(mesh.Buffer)
	mesh.Buffer = 0
}
