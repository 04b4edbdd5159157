// Command panther runs the fitness tracker UI, either in an SDL window or
// headless with frames dumped as PNG files.
//
// Configuration is read from the TOML file named by PANTHER_CONFIG
// (default panther.toml), then overridden from the environment.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/skygrel/panther/pkg/panther"
	"github.com/skygrel/panther/pkg/panther/config"
	"github.com/skygrel/panther/pkg/panther/constants"
	"github.com/skygrel/panther/pkg/panther/router"
	"github.com/skygrel/panther/pkg/panther/screens"
)

const defaultConfigPath = "panther.toml"

// SDL must be driven from the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	path := os.Getenv(constants.ConfigPathEnvVar)
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	envErr := cfg.ApplyEnv()
	validErr := cfg.Validate()

	if err := panther.Init(panther.OptionsFromConfig(cfg)); err != nil {
		return err
	}
	defer panther.Close()

	logger := panther.GetLogger()
	if err := errors.Join(envErr, validErr); err != nil {
		logger.Warn("Configuration adjusted", "error", err)
	}
	if len(cfg.Undecoded) > 0 {
		logger.Warn("Unknown configuration keys", "keys", cfg.Undecoded)
	}

	assets, err := panther.LoadAssets(cfg.UI.FontSize)
	if err != nil {
		return err
	}
	localize, err := panther.NewLocalizer(cfg.LanguageTag())
	if err != nil {
		return err
	}

	var platform panther.Platform
	maxFrames := 0
	if cfg.Headless.Enabled {
		platform, err = panther.NewHeadless(cfg.Headless, assets)
		maxFrames = cfg.Headless.Frames
	} else {
		platform, err = panther.NewWindow(cfg, assets)
	}
	if err != nil {
		return err
	}
	defer platform.Close()

	app := panther.NewApp(platform, func(d screens.Deps) router.Screen { return screens.NewMain(d) }, panther.AppOptions{
		MaxFrames:       maxFrames,
		Logger:          logger,
		Localizer:       localize,
		Assets:          assets,
		Transition:      cfg.Transition.Duration.Duration,
		ExpandAfter:     cfg.Transition.ExpandAfter.Duration,
		MainExpandAfter: cfg.Transition.MainExpandAfter.Duration,
	})
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting panther", "headless", cfg.Headless.Enabled, "language", cfg.LanguageTag().String())
	err = app.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("Interrupted")
		return nil
	}
	if err != nil {
		logger.Error("Stopped", "error", err)
		return err
	}
	logger.Info("Exited", "frames", app.Frames())
	return nil
}
