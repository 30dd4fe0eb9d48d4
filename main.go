package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/antroit/common"
	"github.com/milk9111/antroit/prefabs"
	"go.uber.org/zap"
)

func main() {
	configName := flag.String("config", prefabs.DefaultSceneFile, "scene file in prefabs/ (embedded default when missing)")
	seed := flag.Int64("seed", 0, "spawner seed (0 keeps the scene file's seed)")
	debug := flag.Bool("debug", false, "enable debug logging")
	watch := flag.Bool("watch", false, "reload the scene when files under prefabs/ change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	spec, err := prefabs.LoadScene(*configName)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		spec.Seed = *seed
	}

	level := spec.Logging.Level
	if *debug {
		level = "debug"
	}
	logger, err := common.NewLogger(level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			logger.Warn("watch disabled", zap.Error(err))
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("antroit")

	game, err := NewGame(spec, *configName, *seed, watcher, logger)
	if err != nil {
		logger.Fatal("create game", zap.Error(err))
	}
	defer func() { _ = game.Close() }()

	if err := ebiten.RunGame(game); err != nil && !isTermination(err) {
		logger.Error("run game", zap.Error(err))
	}
}
