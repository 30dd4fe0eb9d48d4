// Package physics wraps a Chipmunk space behind a handle-addressed body table.
// All lengths are physics units; callers convert from render units with
// common.WorldToPhysics.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"
)

const DefaultIterations = 10

var (
	ErrInvalidHandle   = errors.New("physics: invalid body handle")
	ErrDegenerateShape = errors.New("physics: degenerate shape")
	ErrClosed          = errors.New("physics: world closed")
)

// Config configures a World.
type Config struct {
	Gravity    cp.Vector
	Iterations int
}

// BodyDef describes a body with a single convex polygon fixture.
type BodyDef struct {
	Position   cp.Vector
	Angle      float64
	Dynamic    bool
	Vertices   []cp.Vector
	Density    float64
	Friction   float64
	Elasticity float64
}

// World owns the Chipmunk space and every body created through it.
type World struct {
	space  *cp.Space
	bodies bodyTable
	log    *zap.Logger
	closed bool
}

type bodySlot struct {
	body         *cp.Body
	shapes       []*cp.Shape
	static       bool
	gravityScale float64
}

// NewWorld creates an empty world.
func NewWorld(cfg Config, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	space := cp.NewSpace()
	space.Iterations = uint(iterations)
	space.SetGravity(cfg.Gravity)

	return &World{space: space, log: logger}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Gravity returns the world gravity vector.
func (w *World) Gravity() cp.Vector {
	if w == nil || w.space == nil {
		return cp.Vector{}
	}
	return w.space.Gravity()
}

// CreateBody adds a body with one polygon shape and returns its handle.
func (w *World) CreateBody(def BodyDef) (BodyHandle, error) {
	if w == nil || w.space == nil || w.closed {
		return 0, ErrClosed
	}
	n := len(def.Vertices)
	if n < 3 {
		return 0, fmt.Errorf("%w: %d vertices", ErrDegenerateShape, n)
	}
	area := math.Abs(cp.AreaForPoly(n, def.Vertices, 0))
	if area <= 1e-9 {
		return 0, fmt.Errorf("%w: zero area", ErrDegenerateShape)
	}

	var body *cp.Body
	if def.Dynamic {
		density := def.Density
		if density <= 0 {
			density = 1
		}
		mass := density * area
		moment := math.Abs(cp.MomentForPoly(mass, n, def.Vertices, cp.Vector{}, 0))
		body = cp.NewBody(mass, moment)
	} else {
		body = cp.NewStaticBody()
	}
	body.SetPosition(def.Position)
	body.SetAngle(def.Angle)

	w.space.AddBody(body)
	shape := cp.NewPolyShape(body, n, def.Vertices, cp.NewTransformIdentity(), 0)
	shape.SetFriction(def.Friction)
	shape.SetElasticity(def.Elasticity)
	w.space.AddShape(shape)

	slot := &bodySlot{
		body:         body,
		shapes:       []*cp.Shape{shape},
		static:       !def.Dynamic,
		gravityScale: 1,
	}
	h := w.bodies.insert(slot)
	w.log.Debug("physics: body created",
		zap.Stringer("handle", h),
		zap.Bool("dynamic", def.Dynamic),
		zap.Float64("x", def.Position.X),
		zap.Float64("y", def.Position.Y))
	return h, nil
}

// DestroyBody removes a body and its shapes. It returns false for stale or
// unknown handles.
func (w *World) DestroyBody(h BodyHandle) bool {
	if w == nil || w.space == nil {
		return false
	}
	slot := w.bodies.remove(h)
	if slot == nil {
		return false
	}
	for _, s := range slot.shapes {
		w.space.RemoveShape(s)
	}
	w.space.RemoveBody(slot.body)
	return true
}

// Alive reports whether h refers to a live body.
func (w *World) Alive(h BodyHandle) bool {
	return w != nil && w.bodies.get(h) != nil
}

// BodyCount is the number of live bodies, static ones included.
func (w *World) BodyCount() int {
	if w == nil {
		return 0
	}
	return w.bodies.live
}

// Position returns the body centre in physics units.
func (w *World) Position(h BodyHandle) (cp.Vector, error) {
	slot, err := w.slot(h)
	if err != nil {
		return cp.Vector{}, err
	}
	return slot.body.Position(), nil
}

// Angle returns the body rotation in radians.
func (w *World) Angle(h BodyHandle) (float64, error) {
	slot, err := w.slot(h)
	if err != nil {
		return 0, err
	}
	return slot.body.Angle(), nil
}

// SetGravityScale multiplies the gravity applied to one dynamic body.
func (w *World) SetGravityScale(h BodyHandle, scale float64) error {
	slot, err := w.slot(h)
	if err != nil {
		return err
	}
	if slot.static {
		return nil
	}
	slot.gravityScale = scale
	if scale == 1 {
		slot.body.SetVelocityUpdateFunc(cp.BodyUpdateVelocity)
		return nil
	}
	slot.body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity.Mult(scale), damping, dt)
	})
	return nil
}

// GravityScale returns the gravity multiplier of a body.
func (w *World) GravityScale(h BodyHandle) (float64, error) {
	slot, err := w.slot(h)
	if err != nil {
		return 0, err
	}
	return slot.gravityScale, nil
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil || w.closed {
		return
	}
	w.space.Step(dt)
}

// Close destroys every remaining body. The world rejects new bodies afterwards.
func (w *World) Close() {
	if w == nil || w.closed {
		return
	}
	for _, h := range w.bodies.handles() {
		w.DestroyBody(h)
	}
	w.closed = true
}

func (w *World) slot(h BodyHandle) (*bodySlot, error) {
	if w == nil {
		return nil, ErrClosed
	}
	slot := w.bodies.get(h)
	if slot == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	return slot, nil
}

// BoxVertices returns the corners of a w×h box centred on the origin,
// counter-clockwise.
func BoxVertices(w, h float64) []cp.Vector {
	hw, hh := w/2, h/2
	return []cp.Vector{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
}
