// Package main boots the cookware storefront HTTP server.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/cookstore/configs"
	"github.com/yourusername/cookstore/internal/catalog"
	"github.com/yourusername/cookstore/internal/obs"
	"github.com/yourusername/cookstore/internal/router"
	"github.com/yourusername/cookstore/internal/session"
	"github.com/yourusername/cookstore/pkg/kv"
)

func main() {
	configFile := flag.String("config", "configs/config.yaml", "path to the configuration file")
	hotReload := flag.Bool("hot-reload", true, "reload configuration when the file changes")
	flag.Parse()

	cfg, err := loadConfig(*configFile, *hotReload)
	if err != nil {
		slog.Error("config_load_failed", "file", *configFile, "error", err)
		os.Exit(1)
	}

	obs.InitLogger(cfg.Get().Log)
	slog.Info("service_starting", "config", *configFile)

	store, err := buildStorage(cfg.Get().Storage)
	if err != nil {
		slog.Error("storage_init_failed", "backend", cfg.Get().Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	svc, err := loadCatalog(cfg.Get().Catalog)
	if err != nil {
		slog.Error("catalog_load_failed", "error", err)
		os.Exit(1)
	}
	slog.Info("catalog_loaded", "products", len(svc.All()))

	gin.SetMode(cfg.Get().Server.Mode)
	sessions := session.NewRegistry(store)
	sessions.StartEvictor(10*time.Minute, time.Hour)
	defer sessions.Stop()
	engine := router.New(cfg, svc, sessions)

	srv := &http.Server{
		Addr:         cfg.Get().Server.Addr,
		Handler:      engine,
		ReadTimeout:  cfg.Get().Server.ReadTimeout,
		WriteTimeout: cfg.Get().Server.WriteTimeout,
	}

	go func() {
		slog.Info("http_listen", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	slog.Info("shutdown_signal", "signal", s.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Get().Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("http_shutdown_error", "error", err)
	}
	slog.Info("service_stopped")
}

// loadConfig reads the config file, falling back to defaults when the
// file does not exist so the binary runs out of the box.
func loadConfig(path string, hotReload bool) (*configs.ViperConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn("config_file_missing", "file", path)
		return configs.Static(configs.DefaultConfig()), nil
	}
	return configs.LoadViperConfig(path, hotReload)
}

func buildStorage(cfg configs.StorageConfig) (kv.Store, error) {
	switch cfg.Backend {
	case "file":
		return kv.NewFile(cfg.FilePath)
	case "redis":
		return kv.NewRedis(kv.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	default:
		return kv.NewMemory(cfg.ShardCount), nil
	}
}

func loadCatalog(cfg configs.CatalogConfig) (*catalog.Service, error) {
	if cfg.DataFile != "" {
		return catalog.LoadFile(cfg.DataFile)
	}
	return catalog.LoadSeed()
}
