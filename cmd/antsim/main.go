package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	seconds    float64
	fps        float64
	seed       int64
	width      int
	height     int
	configName string
	jitter     float64
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "antsim",
		Short: "headless runs of the falling shapes scene",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the scene without a window and report what happened",
		Args:  cobra.NoArgs,
		RunE:  runScene,
	}
	runCmd.Flags().Float64Var(&seconds, "seconds", 10, "host time to simulate")
	runCmd.Flags().Float64Var(&fps, "fps", 60, "host frame rate")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "spawner seed (0 keeps the scene file's seed)")
	runCmd.Flags().IntVar(&width, "width", 1280, "viewport width")
	runCmd.Flags().IntVar(&height, "height", 720, "viewport height")
	runCmd.Flags().StringVar(&configName, "config", "", "scene file (embedded default when empty)")
	runCmd.Flags().Float64Var(&jitter, "jitter", 0, "random frame interval jitter as a fraction of the frame")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "log level")

	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runScene(cmd *cobra.Command, args []string) error {
	opts := runOptions{
		Seconds:  seconds,
		FPS:      fps,
		Seed:     seed,
		Width:    width,
		Height:   height,
		Config:   configName,
		Jitter:   jitter,
		LogLevel: logLevel,
	}
	res, err := simulate(opts)
	if err != nil {
		return err
	}
	res.Print(cmd.OutOrStdout())
	return nil
}
