package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/LegalDragon/slidecast/api"
	"github.com/LegalDragon/slidecast/config"
	"github.com/LegalDragon/slidecast/store"
)

func main() {
	cfgPath := os.Getenv("SLIDECAST_CONFIG")
	if cfgPath == "" {
		cfgPath = "slidecast.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	setupLogger(cfg.LogLevel)

	// Initialize database
	dbPath := filepath.Join(cfg.RootPath, "slidecast.db")
	database, err := store.NewDatabase(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize web server
	webServer := api.NewWebServer(database, cfg)

	// Initialize shared pool sync when a bucket is configured
	if cfg.AWS.Bucket != "" {
		serverURL := fmt.Sprintf("http://localhost%s", portSuffix(cfg.Addr))
		poolManager, err := api.NewPoolManager(cfg, serverURL)
		if err != nil {
			log.Fatalf("Failed to initialize pool manager: %v", err)
		}
		go poolManager.Run()
		go func() {
			for range poolManager.Updated {
				slog.Info("shared media pool updated from remote")
			}
		}()
	} else {
		slog.Info("no s3 bucket configured, skipping shared pool sync")
	}

	webServer.Start(cfg.Addr)
}

func portSuffix(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i:]
		}
	}
	return ":8080"
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
