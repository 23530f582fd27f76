package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"flycam/internal/config"
	"flycam/internal/game"
	"flycam/internal/logging"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "flycam.yaml", "path to the YAML config file (missing file uses defaults)")
	logLevel := flag.String("log-level", "", "override the configured log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.SetGlobal(log)

	// Runs last: on normal exit after the deferred GL teardown, on SIGINT/SIGTERM
	// from the closer goroutine, where only thread-agnostic cleanup is safe.
	closer.Bind(func() { _ = log.Sync() })
	defer closer.Close()

	if err := glfw.Init(); err != nil {
		log.Error("init glfw", zap.Error(err))
		closer.Exit(1)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(cfg.Window)
	if err != nil {
		log.Error("setup window", zap.Error(err))
		closer.Exit(1)
	}

	app, err := game.NewApp(window, cfg, log)
	if err != nil {
		log.Error("start", zap.Error(err))
		closer.Exit(1)
	}
	defer app.Close()

	app.Run()
	log.Info("shutting down")
}
