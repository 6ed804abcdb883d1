package app

import (
	"context"
	"fmt"
	"runtime"

	"splashkit/internal/config"
	"splashkit/internal/coordinator"
	"splashkit/internal/host/fynehost"
	"splashkit/internal/loader"
	"splashkit/internal/logger"
	"splashkit/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Splashkit"
	AppID      = "io.splashkit.app"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp     fyne.App
	host        *fynehost.Host
	coordinator *coordinator.Coordinator
	shutdown    *shutdown.Manager
	logger      logger.Logger
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	h := fynehost.New(fyneApp, log)

	ld, err := loader.New(cfg.BaseDir, log)
	if err != nil {
		return nil, err
	}

	coord, err := coordinator.New(cfg, h, ld, log)
	if err != nil {
		return nil, fmt.Errorf("invalid window configuration: %w", err)
	}

	mgr := shutdown.NewManager(log, shutdown.DefaultTimeout)
	mgr.Register("coordinator", NewLifecycle(coord, log))

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"base_dir":   ld.BaseDir(),
		"transition": string(coord.Config().Transition),
		"main":       cfg.MainWindow.ToLoad.String(),
		"splash":     cfg.SplashWindow.ToLoad.String(),
	})

	return &Application{
		fyneApp:     fyneApp,
		host:        h,
		coordinator: coord,
		shutdown:    mgr,
		logger:      log,
	}, nil
}

// Run blocks on the Fyne event loop until the coordinator or the OS asks
// the application to quit.
func (a *Application) Run(ctx context.Context) error {
	a.coordinator.Run()
	a.shutdown.Listen(ctx)

	a.logger.Info("Application", "starting event loop", nil)
	a.fyneApp.Run()

	a.logger.Info("Application", "event loop exited", nil)
	return nil
}
