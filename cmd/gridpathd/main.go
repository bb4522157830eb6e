// Command gridpathd serves map loading and path searches over HTTP.
//
// Settings come from the environment (or a .env file); see internal/config.
// Map files given as arguments are loaded at startup and their ids logged.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logger"
	"github.com/katalvlaran/gridpath/server"
	"github.com/sirupsen/logrus"
)

func main() {
	addr := flag.String("addr", "", "listen address; overrides GRIDPATH_ADDR")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("load config")
	}
	if *addr != "" {
		cfg.HTTPAddr = *addr
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	gin.SetMode(cfg.GinMode)

	store := server.NewStore()
	for _, path := range flag.Args() {
		g, err := gridmap.Load(path)
		if err != nil {
			log.WithError(err).WithField("file", path).Fatal("preload map")
		}
		id := store.Add(g)
		log.WithFields(logrus.Fields{"file": path, "map": id}).Info("map preloaded")
	}

	maps, err := server.NewMapController(server.MapsConfig{
		Store:     store,
		Logger:    log,
		Heuristic: cfg.Heuristic,
		CellSize:  cfg.CellSize,
		Workers:   cfg.Workers,
	})
	if err != nil {
		log.WithError(err).Fatal("configure map routes")
	}

	router := server.NewRouter(server.Config{
		Addr:        cfg.HTTPAddr,
		BaseURL:     cfg.BaseURL,
		Controllers: []server.Controller{maps},
		Logger:      log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithField("heuristic", cfg.Heuristic).Info("starting gridpathd")
	if err = router.Run(ctx); err != nil {
		log.WithError(err).Fatal("http server")
	}
	log.Info("done")
}
