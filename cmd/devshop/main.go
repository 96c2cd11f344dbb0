package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/devservices/devshop/config"
	"github.com/devservices/devshop/internal/app"
	"github.com/devservices/devshop/internal/shopapi"
	"github.com/devservices/devshop/internal/webserver"
)

var (
	conffile = flag.String("c", "", "config file (yaml), optional")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*conffile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	application := app.NewApplication(cfg)
	if err := application.Init(context.Background()); err != nil {
		log.Fatalf("application init: %v", err)
	}
	defer application.Release()

	ws := webserver.Init(cfg)
	shopapi.New(application.Products(), application.Carts()).Register(ws)

	go func() {
		if err := webserver.Listen(); err != nil {
			zap.L().Info("web server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := webserver.Shutdown(ctx); err != nil {
		zap.L().Error("web server shutdown error", zap.Error(err))
	}
}
