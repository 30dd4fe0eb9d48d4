package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/antroit/render"
	"gopkg.in/yaml.v3"
)

const DefaultSceneFile = "scene.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ColorSpec is an RGBA list; a missing alpha means opaque.
type ColorSpec []float64

func (c ColorSpec) Color() render.Color {
	ch := [4]float64{0, 0, 0, 1}
	copy(ch[:], c)
	return render.Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}.Clamped()
}

type WallSpec struct {
	Thickness float64 `yaml:"thickness"`
}

type SpawnSpec struct {
	Enabled           bool    `yaml:"enabled"`
	Interval          float64 `yaml:"interval"`
	Tile              float64 `yaml:"tile"`
	Margin            float64 `yaml:"margin"`
	MinSize           float64 `yaml:"min_size"`
	TriangleThreshold float64 `yaml:"triangle_threshold"`
}

type LoggingSpec struct {
	Level string `yaml:"level"`
}

// SceneSpec configures the demo scene.
type SceneSpec struct {
	Scale      float64     `yaml:"scale"`
	Gravity    float64     `yaml:"gravity"`
	StepHz     int         `yaml:"step_hz"`
	MaxFrameMs int64       `yaml:"max_frame_ms"`
	Iterations int         `yaml:"iterations"`
	Seed       int64       `yaml:"seed"`
	ClearColor ColorSpec   `yaml:"clear_color"`
	Walls      WallSpec    `yaml:"walls"`
	Spawn      SpawnSpec   `yaml:"spawn"`
	Layout     string      `yaml:"layout"`
	Logging    LoggingSpec `yaml:"logging"`
}

func DefaultScene() SceneSpec {
	return SceneSpec{
		Scale:      16,
		Gravity:    128,
		StepHz:     60,
		MaxFrameMs: 250,
		Iterations: 10,
		Seed:       1,
		ClearColor: ColorSpec{0.7, 0.3, 0.1, 1.0},
		Walls:      WallSpec{Thickness: 10},
		Spawn: SpawnSpec{
			Enabled:           true,
			Interval:          2.0,
			Tile:              128,
			Margin:            32,
			MinSize:           24,
			TriangleThreshold: 0.49,
		},
		Layout:  "scene.tengo",
		Logging: LoggingSpec{Level: "info"},
	}
}

// LoadScene reads a scene file over the defaults.
func LoadScene(name string) (SceneSpec, error) {
	if name == "" {
		name = DefaultSceneFile
	}
	spec := DefaultScene()
	data, err := Load(name)
	if err != nil {
		return spec, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	if err := spec.Validate(); err != nil {
		return spec, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return spec, nil
}

func (s SceneSpec) Validate() error {
	switch {
	case s.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive", ErrInvalidSpec)
	case s.StepHz <= 0:
		return fmt.Errorf("%w: step_hz must be positive", ErrInvalidSpec)
	case s.MaxFrameMs <= 0:
		return fmt.Errorf("%w: max_frame_ms must be positive", ErrInvalidSpec)
	case s.Spawn.Enabled && s.Spawn.Interval <= 0:
		return fmt.Errorf("%w: spawn.interval must be positive", ErrInvalidSpec)
	case s.Spawn.Enabled && (s.Spawn.MinSize <= 0 || s.Spawn.MinSize > s.Spawn.Tile):
		return fmt.Errorf("%w: spawn.min_size must be in (0, tile]", ErrInvalidSpec)
	}
	return nil
}
