// Package scene is the host boundary of the demo: Init on every surface
// resize, Step once per display refresh, Close on teardown.
package scene

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/antroit/clock"
	"github.com/milk9111/antroit/common"
	"github.com/milk9111/antroit/ecs"
	"github.com/milk9111/antroit/ecs/component"
	"github.com/milk9111/antroit/ecs/entity"
	"github.com/milk9111/antroit/ecs/system"
	"github.com/milk9111/antroit/physics"
	"github.com/milk9111/antroit/prefabs"
	"github.com/milk9111/antroit/render"
	"go.uber.org/zap"
)

var ErrNotInitialized = errors.New("scene: not initialized")

// Options configures a Scene.
type Options struct {
	Spec   prefabs.SceneSpec
	Device render.Device
	Logger *zap.Logger
	// Layout overrides the layout script named in Spec.
	Layout []byte
}

// Scene owns the physics world, the shape registry, the clock and the
// render state of the demo.
type Scene struct {
	spec   prefabs.SceneSpec
	layout []byte
	device render.Device
	log    *zap.Logger

	world   *ecs.World
	phys    *physics.World
	clock   *clock.Clock
	fixed   *ecs.Scheduler
	frame   *ecs.Scheduler
	spawner *system.SpawnSystem
	stepper *system.PhysicsSystem
	render  *system.RenderSystem
	program render.ProgramID

	width   int
	height  int
	ready   bool
	spawned int
	closed  bool
}

// New builds an empty scene. Nothing is drawn until Init succeeds.
func New(opts Options) (*Scene, error) {
	if err := opts.Spec.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	device := opts.Device
	if device == nil {
		device = &render.NullDevice{}
	}

	s := &Scene{
		layout: opts.Layout,
		device: device,
		log:    logger,
	}
	s.setup(opts.Spec)
	return s, nil
}

func (s *Scene) setup(spec prefabs.SceneSpec) {
	s.spec = spec
	s.world = ecs.NewWorld()
	s.phys = physics.NewWorld(physics.Config{
		Gravity:    cp.Vector{X: 0, Y: common.WorldToPhysics(spec.Gravity, spec.Scale)},
		Iterations: spec.Iterations,
	}, s.log)
	s.clock = clock.New(spec.StepHz, spec.MaxFrameMs)

	s.stepper = system.NewPhysicsSystem(s.phys)
	s.spawner = system.NewSpawnSystem(s.env(), system.SpawnConfig{
		Interval:          spec.Spawn.Interval,
		Tile:              spec.Spawn.Tile,
		Margin:            spec.Spawn.Margin,
		MinSize:           spec.Spawn.MinSize,
		TriangleThreshold: spec.Spawn.TriangleThreshold,
	}, s.clock.StepsFor(spec.Spawn.Interval), spec.Seed, s.log)

	s.fixed = ecs.NewScheduler()
	if spec.Spawn.Enabled {
		s.fixed.Add(s.spawner)
	}
	s.fixed.Add(s.stepper)
	s.frame = ecs.NewScheduler(system.NewTransformSystem(s.phys, spec.Scale))
	s.render = system.NewRenderSystem(spec.ClearColor.Color())
	s.render.Program = s.program
}

func (s *Scene) env() entity.Env {
	return entity.Env{World: s.world, Physics: s.phys, Device: s.device, Scale: s.spec.Scale}
}

// Init (re)configures viewport, program and scene contents. It is safe to
// call on every resize; the previous contents are released first.
func (s *Scene) Init(width, height int) error {
	if s == nil || s.closed {
		return ErrNotInitialized
	}
	s.ready = false
	entity.ClearWalls(s.env())
	entity.ClearShapes(s.env())
	s.world.Events().Drain()

	info := s.device.Info()
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.log.Info("scene: device", zap.String(k, info[k]))
	}
	s.log.Info("scene: setup", zap.Int("width", width), zap.Int("height", height))

	if width <= 0 || height <= 0 {
		return fmt.Errorf("scene: invalid viewport %dx%d", width, height)
	}

	if s.program == 0 {
		p, err := render.LoadProgram(s.device, render.FillShader, s.log)
		if err != nil {
			s.log.Error("scene: could not create program")
			return fmt.Errorf("scene: init: %w", err)
		}
		s.program = p
	}
	s.render.Program = s.program

	s.width, s.height = width, height
	s.device.Viewport(width, height)
	s.render.Projection = render.Ortho(float64(width), float64(height))

	env := s.env()
	if err := entity.BuildWalls(env, float64(width), float64(height), s.spec.Walls.Thickness); err != nil {
		entity.ClearWalls(env)
		return fmt.Errorf("scene: init: %w", err)
	}
	if err := s.buildLayout(env); err != nil {
		entity.ClearShapes(env)
		entity.ClearWalls(env)
		return fmt.Errorf("scene: init: %w", err)
	}

	s.spawner.Reset(float64(width), float64(height), s.spec.Seed)
	s.spawned = 0
	s.clock.Reset()
	s.frame.Update(s.world, 0)
	s.ready = true
	return nil
}

func (s *Scene) buildLayout(env entity.Env) error {
	var (
		shapes []prefabs.ShapeSpec
		err    error
	)
	ctx := context.Background()
	switch {
	case s.layout != nil:
		shapes, err = prefabs.RunLayout(ctx, s.layout, float64(s.width), float64(s.height))
	case s.spec.Layout != "":
		shapes, err = prefabs.LoadLayout(ctx, s.spec.Layout, float64(s.width), float64(s.height))
	}
	if err != nil {
		return err
	}
	for _, spec := range shapes {
		p, err := entity.ParamsFromSpec(spec)
		if err != nil {
			return err
		}
		if _, err := entity.BuildShape(env, p); err != nil {
			return err
		}
	}
	return nil
}

// Advance feeds a host timestamp to the clock, runs the fixed systems once
// per whole step and refreshes render transforms. It returns the number of
// fixed steps executed.
func (s *Scene) Advance(timeMillis int64) int {
	if s == nil || s.closed {
		return 0
	}
	n := s.clock.Advance(timeMillis, func(dt float64) {
		if s.ready {
			s.fixed.Update(s.world, dt)
		}
	})
	for _, evt := range s.world.Events().Drain() {
		if evt.Kind == ecs.EventShapeSpawned {
			s.spawned++
		}
	}
	s.frame.Update(s.world, float64(n)*s.clock.Step())
	return n
}

// Render draws one frame and returns the number of shapes drawn.
func (s *Scene) Render() int {
	if s == nil || s.closed {
		return 0
	}
	return s.render.Draw(s.world, s.device)
}

// Step advances the simulation and renders one frame.
func (s *Scene) Step(timeMillis int64) int {
	n := s.Advance(timeMillis)
	s.Render()
	return n
}

// Touch receives a pointer position in render units. Reserved for
// interactive spawning; it only logs for now.
func (s *Scene) Touch(x, y float64) {
	if s == nil {
		return
	}
	s.log.Debug("scene: touch", zap.Float64("x", x), zap.Float64("y", y))
}

// ClearShapes removes every shape together with its body and buffer.
func (s *Scene) ClearShapes() int {
	if s == nil || s.closed {
		return 0
	}
	n := entity.ClearShapes(s.env())
	s.world.Events().Drain()
	return n
}

// Reload swaps in a new scene spec and re-runs Init at the current size.
func (s *Scene) Reload(spec prefabs.SceneSpec) error {
	if s == nil || s.closed {
		return ErrNotInitialized
	}
	if err := spec.Validate(); err != nil {
		return err
	}
	entity.ClearShapes(s.env())
	entity.ClearWalls(s.env())
	s.phys.Close()
	s.setup(spec)
	if s.width == 0 || s.height == 0 {
		return nil
	}
	return s.Init(s.width, s.height)
}

// Close releases every buffer, body and the program.
func (s *Scene) Close() {
	if s == nil || s.closed {
		return
	}
	entity.ClearShapes(s.env())
	entity.ClearWalls(s.env())
	if s.program != 0 {
		s.device.DeleteProgram(s.program)
		s.program = 0
	}
	s.phys.Close()
	s.ready = false
	s.closed = true
}

func (s *Scene) Ready() bool { return s != nil && s.ready }

func (s *Scene) Size() (int, int) { return s.width, s.height }

func (s *Scene) Spec() prefabs.SceneSpec { return s.spec }

func (s *Scene) Clock() *clock.Clock { return s.clock }

// Spawned is the number of shapes the spawner added since the last Init.
func (s *Scene) Spawned() int { return s.spawned }

// ShapeCount is the number of shapes in the registry.
func (s *Scene) ShapeCount() int {
	if s == nil || s.world == nil {
		return 0
	}
	return s.world.Count(component.ShapeComponent.ID())
}

// BodyCount is the number of live physics bodies, walls included.
func (s *Scene) BodyCount() int {
	if s == nil {
		return 0
	}
	return s.phys.BodyCount()
}

// ShapeState is a read-only view of one registry entry.
type ShapeState struct {
	Kind      component.ShapeKind
	Width     float64
	Height    float64
	Color     render.Color
	Dynamic   bool
	Transform component.Transform
}

// Shapes returns the registry in draw order.
func (s *Scene) Shapes() []ShapeState {
	if s == nil || s.world == nil {
		return nil
	}
	var out []ShapeState
	for _, e := range s.world.Query(component.ShapeComponent.ID(), component.TransformComponent.ID()) {
		shape, _ := ecs.Get(s.world, e, component.ShapeComponent)
		t, _ := ecs.Get(s.world, e, component.TransformComponent)
		out = append(out, ShapeState{
			Kind:      shape.Kind,
			Width:     shape.Width,
			Height:    shape.Height,
			Color:     shape.Color,
			Dynamic:   shape.Dynamic,
			Transform: *t,
		})
	}
	return out
}
