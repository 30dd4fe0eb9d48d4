package system

import (
	"math"
	"math/rand"

	"github.com/milk9111/antroit/common"
	"github.com/milk9111/antroit/ecs"
	"github.com/milk9111/antroit/ecs/component"
	"github.com/milk9111/antroit/ecs/entity"
	"github.com/milk9111/antroit/render"
	"go.uber.org/zap"
)

// SpawnConfig sets spawn cadence and the ranges of random shapes. Lengths
// are render units.
type SpawnConfig struct {
	Interval          float64
	Tile              float64
	Margin            float64
	MinSize           float64
	TriangleThreshold float64
}

// SpawnSystem adds one random shape every Interval seconds of simulated
// time. It runs inside the fixed step and counts whole steps, so the cadence
// does not depend on frame timing.
type SpawnSystem struct {
	env           entity.Env
	cfg           SpawnConfig
	rng           *rand.Rand
	log           *zap.Logger
	intervalSteps int64
	steps         int64
	spawned       int
	width         float64
	height        float64
}

// NewSpawnSystem spawns once every intervalSteps fixed steps.
func NewSpawnSystem(env entity.Env, cfg SpawnConfig, intervalSteps int64, seed int64, logger *zap.Logger) *SpawnSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	interval := intervalSteps
	if interval < 1 {
		interval = 1
	}
	return &SpawnSystem{
		env:           env,
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(seed)),
		log:           logger,
		intervalSteps: interval,
	}
}

// Reset restarts the cadence for a viewport and reseeds the generator.
func (s *SpawnSystem) Reset(width, height float64, seed int64) {
	if s == nil {
		return
	}
	s.width, s.height = width, height
	s.rng.Seed(seed)
	s.steps = 0
	s.spawned = 0
}

// Spawned is the number of shapes added since the last Reset.
func (s *SpawnSystem) Spawned() int {
	if s == nil {
		return 0
	}
	return s.spawned
}

func (s *SpawnSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || s.width <= 0 || s.height <= 0 {
		return
	}
	s.steps++
	if s.steps%s.intervalSteps != 0 {
		return
	}

	p := RandomShape(s.rng, s.cfg, s.width, s.height)
	e, err := entity.BuildShape(s.env, p)
	if err != nil {
		s.log.Warn("spawn: build shape", zap.Error(err))
		return
	}
	_ = ecs.Add(w, e, component.SpawnedComponent, &component.Spawned{Step: s.steps})
	w.Events().Push(ecs.Event{Kind: ecs.EventShapeSpawned, Entity: e})
	s.spawned++
	s.log.Debug("spawn: shape",
		zap.Stringer("kind", p.Kind),
		zap.Float64("x", p.X),
		zap.Float64("y", p.Y),
		zap.Float64("w", p.Width),
		zap.Float64("h", p.Height))
}

// RandomShape draws one shape. Each parameter is drawn independently, in a
// fixed order, so a seeded generator reproduces the same sequence.
func RandomShape(rng *rand.Rand, cfg SpawnConfig, width, height float64) entity.ShapeParams {
	sizeRange := math.Max(0, cfg.Tile-cfg.MinSize)
	w := cfg.MinSize + rng.Float64()*sizeRange
	h := cfg.MinSize + rng.Float64()*sizeRange

	spanX := math.Max(0, width-2*cfg.Margin-cfg.Tile)
	spanY := math.Max(0, height-2*cfg.Margin-cfg.Tile)
	x := cfg.Margin + rng.Float64()*spanX + cfg.Tile/2
	y := cfg.Margin + rng.Float64()*spanY + cfg.Tile/2

	color := render.Color{
		R: common.Clamp01(rng.Float64()),
		G: common.Clamp01(rng.Float64()),
		B: common.Clamp01(rng.Float64()),
		A: common.Clamp01(rng.Float64()),
	}
	rotation := common.Radians(rng.Float64() * 360)

	kind := component.ShapeRectangle
	if rng.Float64() < cfg.TriangleThreshold {
		kind = component.ShapeTriangle
	}

	return entity.ShapeParams{
		Kind:         kind,
		X:            x,
		Y:            y,
		Width:        w,
		Height:       h,
		Rotation:     rotation,
		Color:        color,
		Dynamic:      true,
		GravityScale: 1,
	}
}
