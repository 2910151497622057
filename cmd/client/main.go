package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/essaehaan/Profile/internal/client/cli"
	"github.com/essaehaan/Profile/internal/client/config"
	"github.com/essaehaan/Profile/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer z.Sync()
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "client stopped", "error", err)
	}

}
