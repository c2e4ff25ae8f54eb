package util

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sunthewhat/certifypro-api/type/shared"
)

// ObjectFetcher is the part of *minio.Client used to pull font assets.
type ObjectFetcher interface {
	FGetObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.GetObjectOptions) error
}

func InitMinIO(cfg shared.MinIOConfig) (*minio.Client, error) {
	if !cfg.Enabled() || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("MinIO configuration is incomplete")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	return client, nil
}

// SyncFonts downloads every file in files that is missing from dir. Objects
// are looked up under prefix in bucket. It returns how many files were
// fetched; a failed download is logged and skipped.
func SyncFonts(ctx context.Context, fetcher ObjectFetcher, bucket, prefix, dir string, files []string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create fonts directory: %w", err)
	}

	fetched := 0
	for _, file := range files {
		target := filepath.Join(dir, file)
		if _, err := os.Stat(target); err == nil {
			continue
		}

		objectName := path.Join(prefix, file)
		if err := fetcher.FGetObject(ctx, bucket, objectName, target, minio.GetObjectOptions{}); err != nil {
			if IsNoSuchKey(err) {
				slog.Warn("Font object not found in bucket", "bucket", bucket, "object", objectName)
			} else {
				slog.Warn("Failed to download font", "bucket", bucket, "object", objectName, "error", err)
			}
			continue
		}

		slog.Info("Font downloaded from MinIO", "bucket", bucket, "object", objectName, "path", target)
		fetched++
	}

	return fetched, nil
}

// IsNoSuchKey reports whether err says the object does not exist.
func IsNoSuchKey(err error) bool {
	if err == nil {
		return false
	}

	var minioErr minio.ErrorResponse
	if errors.As(err, &minioErr) {
		switch strings.ToLower(strings.TrimSpace(minioErr.Code)) {
		case "nosuchkey", "notfound":
			return true
		}
	}

	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "nosuchkey") ||
		strings.Contains(lower, "specified key does not exist")
}
