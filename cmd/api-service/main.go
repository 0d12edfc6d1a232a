package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trading-vision-api/internal/api/handler"
	"trading-vision-api/internal/api/repo"
	"trading-vision-api/internal/api/server"
	"trading-vision-api/internal/api/usecase"
	"trading-vision-api/internal/config"
	"trading-vision-api/internal/dataset"
	"trading-vision-api/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// - Load Configuration
	cfg, err := config.LoadConfig("config/config.yml")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// - Setup logger
	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer zl.Sync()

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	// - Load market data
	ds, err := dataset.Default(time.Now())
	if err != nil {
		zl.Fatal("Failed to load market data", zap.Error(err))
	}

	rp := repo.NewRepo(ds)
	uc := usecase.NewUsecase(rp, time.Now)
	hd := handler.NewHandler(uc, zl)

	r := server.NewRouter(hd, zl, server.Options{
		AllowedOrigin:  cfg.CORS.AllowedOrigin,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})

	srv := &http.Server{
		Addr:    cfg.App.Port,
		Handler: r,
	}

	go func() {
		zl.Info("API server listening",
			zap.String("addr", cfg.App.Port),
			zap.String("env", cfg.App.Env),
			zap.String("allowed_origin", cfg.CORS.AllowedOrigin))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("HTTP Error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("Server forced to shutdown", zap.Error(err))
	}
	zl.Info("Shutdown Complete")
}
