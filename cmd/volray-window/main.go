// Command volray-window is the interactive GUI entry of spec §1's
// "interactive window" external collaborator. Grounded on
// voxelrt/rt_main.go's glfw bootstrap, swapping the teacher's ECS app
// bootstrap for app.NewWindow driving a demoscenes.Scene.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/voxelray/voxelray"
	"github.com/voxelray/voxelray/app"
	"github.com/voxelray/voxelray/internal/demoscenes"
	"github.com/voxelray/voxelray/pkg/core"
)

// runtime.LockOSThread is pinned by app's own init() (app/window.go),
// which this package imports, so glfw/GL calls stay on the main thread.

func main() {
	scene := flag.String("scene", "basic", "demo scene: basic, refraction, strangeattractor")
	gridSize := flag.Int("grid", 100, "voxel grid resolution per axis")
	width := flag.Int("width", 720, "window width")
	height := flag.Int("height", 720, "window height")
	updateLightEachStep := flag.Bool("update-light-each-step", false, "re-run the light precompute pass every frame")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := voxelray.NewDefaultLogger("volray-window", *debug)

	sc, err := buildScene(*scene, *gridSize)
	if err != nil {
		logger.Errorf("building scene %q: %v", *scene, err)
		os.Exit(1)
	}

	win, err := app.NewWindow(*width, *height, "volray: "+*scene, sc, logger)
	if err != nil {
		logger.Errorf("creating window: %v", err)
		os.Exit(1)
	}
	defer win.Close()

	win.Run(*updateLightEachStep)
}

func buildScene(name string, n int) (*core.Scene, error) {
	switch name {
	case "basic":
		return demoscenes.Basic(n)
	case "refraction":
		return demoscenes.Refraction(n)
	case "strangeattractor":
		return demoscenes.StrangeAttractor(n)
	default:
		return nil, fmt.Errorf("unknown scene %q (want basic, refraction, or strangeattractor)", name)
	}
}
