package app

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/goldenanvil/compendium/internal/config"
	"github.com/goldenanvil/compendium/internal/gui"
	"github.com/goldenanvil/compendium/internal/logger"
	"github.com/goldenanvil/compendium/internal/storage"
)

const (
	AppName    = "Golden Anvil Compendium"
	AppID      = "com.goldenanvil.compendium"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     *config.Config
	logger     logger.Logger
	store      *storage.Store
	controller *gui.Controller
	view       *gui.View
	shutdown   *ShutdownManager
}

func NewApplication(cfg *config.Config) (*Application, error) {
	log := buildLogger(cfg)

	log.Info("Application", "starting application", map[string]interface{}{
		"version":  AppVersion,
		"data_dir": cfg.DataDir,
	})

	store := storage.NewStore(cfg.DataDir, log)
	if err := store.EnsureDataDir(); err != nil {
		return nil, err
	}

	seeded, err := store.SeedStarterFile(starterSourcePath(cfg.StarterFile), cfg.StarterFile)
	if err != nil {
		return nil, err
	}
	if seeded != "" {
		log.Info("Application", "starter data seeded", map[string]interface{}{
			"path": seeded,
		})
	}

	fyneApp := fyneapp.NewWithID(AppID)
	fyneApp.Settings().SetTheme(gui.NewGoldenAnvilTheme())

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	window.CenterOnScreen()
	window.SetMaster()

	controller := gui.NewController(store, log)
	view := gui.NewView(window)
	controller.SetView(view)
	view.SetController(controller)

	shutdown := NewShutdownManager(log)
	shutdown.Register(controller)
	shutdown.Register(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		config:     cfg,
		logger:     log,
		store:      store,
		controller: controller,
		view:       view,
		shutdown:   shutdown,
	}

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.view.GetMainContainer())
	a.window.Show()

	a.controller.Initialize()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

func buildLogger(cfg *config.Config) logger.Logger {
	level := zerolog.InfoLevel
	switch cfg.LogLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if cfg.JSONLogs {
		return logger.NewJSONLogger(level)
	}
	return logger.NewConsoleLogger(level)
}

// starterSourcePath locates the bundled starter price list beside the
// binary, falling back to the working directory during development.
func starterSourcePath(name string) string {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return name
}

// Version returns the human-readable version line for the CLI.
func Version() string {
	return fmt.Sprintf("%s %s", AppName, AppVersion)
}
