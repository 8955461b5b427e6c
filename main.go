package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/o0olele/villawalk/config"
	"github.com/o0olele/villawalk/scene"
	"github.com/o0olele/villawalk/server"
)

func main() {
	configPath := flag.String("config", "", "scene file (YAML); the built-in villa when empty")
	addr := flag.String("addr", "", "listen address, overrides the scene file")
	level := flag.String("log-level", "info", "debug, info, warn or error")
	writeConfig := flag.String("write-config", "", "write the resolved scene file to this path and exit")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		logger.Fatal("invalid log level", "level", *level, "err", err)
	}
	logger.SetLevel(lvl)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load scene", "err", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *writeConfig != "" {
		if err := config.Save(*writeConfig, cfg); err != nil {
			logger.Fatal("failed to write scene", "path", *writeConfig, "err", err)
		}
		logger.Info("scene written", "path", *writeConfig)
		return
	}

	sc, err := scene.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to build scene", "err", err)
	}

	opts := server.OptionsFrom(cfg.Server)
	opts.Logger = logger
	srv := server.New(sc, opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}
