package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/sunthewhat/certifypro-api/common"
	"github.com/sunthewhat/certifypro-api/common/util"
	"github.com/sunthewhat/certifypro-api/type/shared"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// envBindings maps config keys to the environment variables overriding them.
var envBindings = map[string]string{
	"environment":       "APP_ENV",
	"service_name":      "SERVICE_NAME",
	"port":              "PORT",
	"frontend_url":      "FRONTEND_URL",
	"cors":              "CORS_ORIGINS",
	"fonts_dir":         "FONTS_DIR",
	"filename_prefix":   "FILENAME_PREFIX",
	"body_limit":        "BODY_LIMIT",
	"compress":          "PDF_COMPRESS",
	"signing.enabled":   "SIGNING_ENABLED",
	"signing.cert_path": "SIGNING_CERT_PATH",
	"signing.key_path":  "SIGNING_KEY_PATH",
	"minio.endpoint":    "MINIO_ENDPOINT",
	"minio.access_key":  "MINIO_ACCESS_KEY",
	"minio.secret_key":  "MINIO_SECRET_KEY",
	"minio.use_ssl":     "MINIO_USE_SSL",
	"minio.font_bucket": "MINIO_FONT_BUCKET",
	"minio.font_prefix": "MINIO_FONT_PREFIX",
}

func Default() *shared.Config {
	return &shared.Config{
		Environment:    "development",
		ServiceName:    common.DefaultServiceName,
		Port:           common.DefaultPort,
		FrontendURL:    common.DefaultFrontendURL,
		FontsDir:       common.DefaultFontsDir,
		FilenamePrefix: common.DefaultFilenamePrefix,
		BodyLimit:      common.DefaultBodyLimit,
		Compress:       true,
	}
}

// LoadConfig builds the configuration once at startup: defaults, then the
// optional YAML file at path, then environment overrides.
func LoadConfig(path string) (*shared.Config, error) {
	config := Default()

	if err := readFile(path, config); err != nil {
		return nil, err
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}

	if err := util.ValidateStruct(config); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, util.ValidationSummary(err))
	}

	return config, nil
}

func readFile(path string, config *shared.Config) error {
	if path == "" {
		return nil
	}

	yml, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("Config file not found, using defaults and environment", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(yml, config); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

func applyEnv(config *shared.Config) error {
	v := viper.New()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	stringFields := map[string]*string{
		"environment":       &config.Environment,
		"service_name":      &config.ServiceName,
		"frontend_url":      &config.FrontendURL,
		"fonts_dir":         &config.FontsDir,
		"filename_prefix":   &config.FilenamePrefix,
		"signing.cert_path": &config.Signing.CertPath,
		"signing.key_path":  &config.Signing.KeyPath,
		"minio.endpoint":    &config.MinIO.Endpoint,
		"minio.access_key":  &config.MinIO.AccessKey,
		"minio.secret_key":  &config.MinIO.SecretKey,
		"minio.font_bucket": &config.MinIO.FontBucket,
		"minio.font_prefix": &config.MinIO.FontPrefix,
	}
	intFields := map[string]*int{
		"port":       &config.Port,
		"body_limit": &config.BodyLimit,
	}
	boolFields := map[string]*bool{
		"compress":        &config.Compress,
		"signing.enabled": &config.Signing.Enabled,
		"minio.use_ssl":   &config.MinIO.UseSSL,
	}

	for key, dst := range stringFields {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	for key, dst := range intFields {
		if v.IsSet(key) {
			*dst = v.GetInt(key)
		}
	}
	for key, dst := range boolFields {
		if v.IsSet(key) {
			*dst = v.GetBool(key)
		}
	}

	if v.IsSet("cors") {
		for _, origin := range strings.Split(v.GetString("cors"), ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				config.Cors = append(config.Cors, origin)
			}
		}
	}

	return nil
}
