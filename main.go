package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"gopkg.in/natefinch/lumberjack.v2"

	"freecast/api"
	"freecast/config"
	"freecast/handlers"
	"freecast/services/availability"
	"freecast/services/catalog"
	"freecast/services/enrich"
	"freecast/services/platforms"
	"freecast/utils"
)

func main() {
	cfg := config.Load()

	log.SetFlags(log.Ldate | log.Ltime)
	if cfg.LogFile != "" {
		rotated := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    20, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
		}
		log.SetOutput(io.MultiWriter(os.Stdout, rotated))
	}

	registry := platforms.NewDefault()
	catalogClient := catalog.NewClient(cfg.TMDBAPIKey, cfg.CacheDir, cfg.CacheTTLHours)
	source := availability.NewRegistrySource(registry)
	enrichSvc := enrich.NewService(catalogClient, source)

	if catalogClient.IsConfigured() {
		log.Printf("[main] tmdb key configured; serving live catalog data")
	} else {
		log.Printf("[main] no tmdb key configured; serving fallback dataset")
	}
	log.Printf("[main] platform registry loaded platforms=%d", registry.Len())

	router := utils.NewRouter(cfg.FrontendOrigin)
	router.Use(api.RequestLogMiddleware())
	handlers.NewContentHandler(enrichSvc, registry, catalogClient.IsConfigured()).Register(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("[main] listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("[main] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[main] shutdown error: %v", err)
	}
}
