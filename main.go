package main

import (
	"context"
	"flag"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/google/uuid"

	"github.com/ytget/visitors-counter/internal/chart"
	"github.com/ytget/visitors-counter/internal/config"
	"github.com/ytget/visitors-counter/internal/control"
	"github.com/ytget/visitors-counter/internal/counter"
	"github.com/ytget/visitors-counter/internal/logstore"
	"github.com/ytget/visitors-counter/internal/loop"
	"github.com/ytget/visitors-counter/internal/platform"
	"github.com/ytget/visitors-counter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.visitors-counter"
	AppName = "Visitors Counter"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "path to the site config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	platform.SetSession(uuid.NewString())
	platform.Infof("%s v%s starting, data in %s", AppName, version, cfg.DataDir)

	if err := platform.CreateDirectoryIfNotExists(cfg.DataDir); err != nil {
		log.Fatalf("create data dir: %v", err)
	}

	store := logstore.New(cfg.LogPath())

	chartOpts := chart.DefaultOptions()
	chartOpts.Capacity = cfg.Capacity
	chartOpts.NearCapacity = cfg.NearCapacity
	charts := chart.NewGenerator(store, cfg.ChartPath(), chartOpts)

	visitors, err := counter.Open(store, charts,
		counter.StartOptions{StartCount: cfg.StartCount, ResumeFromLog: cfg.ResumeFromLog},
		counter.WithCapacity(cfg.Capacity),
	)
	if err != nil {
		log.Fatalf("%v", err)
	}
	platform.Infof("starting with %d visitors present", visitors.Count())
	visitors.SetUpdateCallback(func(count int) {
		platform.Infof("visitors present: %d", count)
	})

	controls := []*control.Control{
		control.New(ui.LabelIncrement, ui.PlusButtonPos, ui.ButtonSize, visitors.Increment).
			BindKeys(fyne.KeyPlus, fyne.KeyEqual, fyne.KeyUp),
		control.New(ui.LabelDecrement, ui.MinusButtonPos, ui.ButtonSize, visitors.Decrement).
			BindKeys(fyne.KeyMinus, fyne.KeyDown),
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCounterTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.SetFixedSize(true)

	root := ui.NewRootUI(myWindow, myApp, ui.Options{
		LogPath:   store.Path(),
		ChartPath: charts.ImagePath(),
		Capacity:  visitors.Capacity(),
		Controls:  controls,
	})
	// Closing the window goes through the frame loop so it stops between frames
	myWindow.SetCloseIntercept(root.Input().RequestQuit)

	frames := loop.New(root, root.Input(), visitors, charts.Dirty(), controls, loop.WithFPS(cfg.FPS))
	frames.Prime()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- frames.Run(ctx)
		fyne.Do(myApp.Quit)
	}()

	myWindow.ShowAndRun()
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("visitors counter stopped: %v", err)
		}
	default:
	}
	platform.Infof("session ended with %d visitors present", visitors.Count())
}
