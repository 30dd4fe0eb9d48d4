package main

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/antroit/prefabs"
	"github.com/milk9111/antroit/scene"
	"go.uber.org/zap"
)

type Game struct {
	scene   *scene.Scene
	device  *ebitenDevice
	watcher *prefabs.Watcher
	log     *zap.Logger

	configName string
	seed       int64
	start      time.Time

	width, height int
	resized       bool
	touches       []ebiten.TouchID
}

func NewGame(spec prefabs.SceneSpec, configName string, seed int64, watcher *prefabs.Watcher, logger *zap.Logger) (*Game, error) {
	device := newEbitenDevice()
	sc, err := scene.New(scene.Options{Spec: spec, Device: device, Logger: logger})
	if err != nil {
		return nil, err
	}
	return &Game{
		scene:      sc,
		device:     device,
		watcher:    watcher,
		log:        logger,
		configName: configName,
		seed:       seed,
		start:      time.Now(),
	}, nil
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.pollReload()

	if g.resized {
		g.resized = false
		if err := g.scene.Init(g.width, g.height); err != nil {
			g.log.Error("game: init scene", zap.Error(err))
		}
	}

	g.scene.Advance(time.Since(g.start).Milliseconds())

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.scene.Touch(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.scene.Touch(float64(x), float64(y))
	}
	return nil
}

func (g *Game) pollReload() {
	name, ok := g.watcher.Poll()
	if !ok {
		return
	}
	g.log.Info("game: scene file changed", zap.String("file", name))
	spec, err := prefabs.LoadScene(g.configName)
	if err != nil {
		g.log.Error("game: reload scene", zap.Error(err))
		return
	}
	if g.seed != 0 {
		spec.Seed = g.seed
	}
	if err := g.scene.Reload(spec); err != nil {
		g.log.Error("game: reload scene", zap.Error(err))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.device.SetTarget(screen)
	g.scene.Render()
	g.device.SetTarget(nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return outsideWidth, outsideHeight
}

// Close releases the scene and stops watching for changes.
func (g *Game) Close() error {
	g.scene.Close()
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

func isTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
