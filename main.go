package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/sunthewhat/certifypro-api/api"
	"github.com/sunthewhat/certifypro-api/common/config"
	"github.com/sunthewhat/certifypro-api/common/util"
	"github.com/sunthewhat/certifypro-api/internal/renderer"
	"github.com/sunthewhat/certifypro-api/type/shared"
	"go.uber.org/automaxprocs/maxprocs"
)

const fontSyncTimeout = time.Minute

func main() {
	configPath := flag.StringP("config", "c", "config.yml", "path to the YAML config file")
	port := flag.IntP("port", "p", 0, "listen port, overrides config and PORT")
	flag.Parse()

	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		slog.Debug(fmt.Sprintf(format, args...))
	}))

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	if cfg.MinIO.Enabled() {
		syncFonts(cfg)
	}

	api.InitFiber(cfg)
}

// syncFonts pulls missing font files from the configured bucket. Failures
// are logged; rendering falls back to core fonts.
func syncFonts(cfg *shared.Config) {
	client, err := util.InitMinIO(cfg.MinIO)
	if err != nil {
		slog.Warn("Font sync skipped", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), fontSyncTimeout)
	defer cancel()

	fetched, err := util.SyncFonts(ctx, client, cfg.MinIO.FontBucket, cfg.MinIO.FontPrefix, cfg.FontsDir, renderer.FontFiles())
	if err != nil {
		slog.Warn("Font sync failed", "error", err)
		return
	}
	slog.Info("Font sync finished", "bucket", cfg.MinIO.FontBucket, "fetched", fetched)
}
