package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/guptarohit/asciigraph"
	"github.com/milk9111/antroit/common"
	"github.com/milk9111/antroit/prefabs"
	"github.com/milk9111/antroit/render"
	"github.com/milk9111/antroit/scene"
	"go.uber.org/zap"
)

type runOptions struct {
	Seconds  float64
	FPS      float64
	Seed     int64
	Width    int
	Height   int
	Config   string
	Jitter   float64
	LogLevel string
	// Spec skips loading Config when set.
	Spec *prefabs.SceneSpec
}

type runResult struct {
	Frames     int
	Steps      int
	Spawned    int
	Shapes     int
	Bodies     int
	MaxSteps   int
	LiveBufs   int
	BodySeries []float64
}

func simulate(opts runOptions) (runResult, error) {
	var res runResult
	if opts.Seconds <= 0 || opts.FPS <= 0 {
		return res, errors.New("antsim: seconds and fps must be positive")
	}
	if opts.Jitter < 0 || opts.Jitter >= 1 {
		return res, errors.New("antsim: jitter must be in [0, 1)")
	}

	var spec prefabs.SceneSpec
	if opts.Spec != nil {
		spec = *opts.Spec
	} else {
		s, err := prefabs.LoadScene(opts.Config)
		if err != nil {
			return res, err
		}
		spec = s
	}
	if opts.Seed != 0 {
		spec.Seed = opts.Seed
	}

	logger := zap.NewNop()
	if opts.LogLevel != "" {
		l, err := common.NewLogger(opts.LogLevel)
		if err != nil {
			return res, err
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()

	device := &render.NullDevice{}
	sc, err := scene.New(scene.Options{Spec: spec, Device: device, Logger: logger})
	if err != nil {
		return res, err
	}
	defer sc.Close()
	if err := sc.Init(opts.Width, opts.Height); err != nil {
		return res, err
	}

	rng := rand.New(rand.NewSource(spec.Seed))
	frame := 1000 / opts.FPS
	total := opts.Seconds * 1000
	sampleEvery := int(math.Max(1, math.Round(opts.FPS/10)))

	for t := 0.0; t <= total; {
		n := sc.Step(int64(t))
		res.Frames++
		res.Steps += n
		if n > res.MaxSteps {
			res.MaxSteps = n
		}
		if res.Frames%sampleEvery == 0 {
			res.BodySeries = append(res.BodySeries, float64(sc.BodyCount()))
		}
		t += frame * (1 + opts.Jitter*(2*rng.Float64()-1))
	}

	res.Spawned = sc.Spawned()
	res.Shapes = sc.ShapeCount()
	res.Bodies = sc.BodyCount()
	res.LiveBufs = device.LiveBuffers()
	return res, nil
}

func (r runResult) Print(out io.Writer) {
	fmt.Fprintf(out, "frames:       %d\n", r.Frames)
	fmt.Fprintf(out, "fixed steps:  %d (max %d per frame)\n", r.Steps, r.MaxSteps)
	fmt.Fprintf(out, "spawned:      %d\n", r.Spawned)
	fmt.Fprintf(out, "shapes:       %d\n", r.Shapes)
	fmt.Fprintf(out, "bodies:       %d\n", r.Bodies)
	fmt.Fprintf(out, "live buffers: %d\n", r.LiveBufs)
	if len(r.BodySeries) < 2 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.Plot(r.BodySeries,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("body count"),
	))
}
