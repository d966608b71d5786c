// Command universe runs the greeting headlessly: it clicks through the
// bouquet and letter screens, spins the universe for a while and reports
// what was drawn.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gekko3d/universe"
	"github.com/gekko3d/universe/scene"
)

func main() {
	configPath := flag.String("config", "", "TOML config file (defaults built in)")
	frames := flag.Int("frames", 300, "frames to run once the universe is shown")
	fps := flag.Int("fps", 60, "frames per second")
	snapshot := flag.String("snapshot", "", "write the final scene graph as JSON to this file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := run(*configPath, *frames, *fps, *snapshot, *debug); err != nil {
		fmt.Fprintln(os.Stderr, "universe:", err)
		os.Exit(1)
	}
}

func run(configPath string, frames, fps int, snapshot string, debug bool) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}

	cfg := universe.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = universe.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if debug {
		cfg.Log.Debug = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	rec := scene.NewRecorder()
	app := universe.NewAppBuilder().
		WithConfig(cfg).
		WithRenderer(rec).
		UseModule(directorModule{frames: frames, cancel: cancel}).
		Build()
	logger := app.Logger()

	assets, _ := universe.Resource[universe.AssetServer](app)
	defer assets.Close()
	world, _ := universe.Resource[universe.Universe](app)

	if err := app.Run(runCtx, fps); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if ctx.Err() != nil {
		logger.Warnf("interrupted")
	}

	stats, _ := universe.Resource[universe.RenderStats](app)
	logger.Infof("%q: screen=%s frames=%d drawn=%d billboards=%d meshes=%d",
		world.Title, app.Screen(), stats.Frames, stats.Drawn, rec.Count(scene.KindBillboard), rec.Count(scene.KindMesh))
	if err := world.Err(); err != nil {
		logger.Warnf("texture: %v", err)
	}

	if snapshot != "" {
		if err := universe.SaveSnapshot(app, snapshot); err != nil {
			return err
		}
		logger.Infof("snapshot written to %s", snapshot)
	}
	return nil
}

// director clicks through the screens the way a viewer would and stops
// the app once the universe has been shown for frames frames.
type director struct {
	frames int
	shown  int
	cancel context.CancelFunc
}

type directorModule struct {
	frames int
	cancel context.CancelFunc
}

func (m directorModule) Install(app *universe.App, cmd *universe.Commands) {
	cmd.AddResources(&director{frames: m.frames, cancel: m.cancel})
	app.UseSystem(universe.System(directorSystem).InStage(universe.Finale).RunAlways())
}

func directorSystem(cmd *universe.Commands, d *director, letter *universe.Letter) {
	var err error
	switch cmd.Screen() {
	case universe.ScreenBouquet:
		err = cmd.Trigger(universe.ActionOpenLetter)
	case universe.ScreenLetter:
		if letter.Opened && letter.FlapAngle >= 180 {
			err = cmd.Trigger(universe.ActionSeeUniverse)
		}
	case universe.ScreenUniverse:
		d.shown++
		if d.shown >= d.frames {
			d.cancel()
		}
	}
	if err != nil {
		cmd.Logger().Errorf("director: %v", err)
		d.cancel()
	}
}
