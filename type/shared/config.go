package shared

import (
	"net/url"
	"strings"
)

type Config struct {
	Environment    string        `yaml:"environment" validate:"omitempty,oneof=development production"`
	ServiceName    string        `yaml:"service_name" validate:"required"`
	Port           int           `yaml:"port" validate:"required,min=1,max=65535"`
	FrontendURL    string        `yaml:"frontend_url" validate:"required,http_url"`
	Cors           []string      `yaml:"cors" validate:"dive,http_url"`
	FontsDir       string        `yaml:"fonts_dir" validate:"required"`
	FilenamePrefix string        `yaml:"filename_prefix" validate:"required,alphanum"`
	BodyLimit      int           `yaml:"body_limit" validate:"min=1"`
	Compress       bool          `yaml:"compress"`
	Signing        SigningConfig `yaml:"signing"`
	MinIO          MinIOConfig   `yaml:"minio"`
}

type SigningConfig struct {
	Enabled  bool   `yaml:"enabled"`
	CertPath string `yaml:"cert_path" validate:"required_if=Enabled true"`
	KeyPath  string `yaml:"key_path" validate:"required_if=Enabled true"`
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

// MinIOConfig points at a bucket holding the certificate font files.
type MinIOConfig struct {
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key" validate:"required_with=Endpoint"`
	SecretKey  string `yaml:"secret_key" validate:"required_with=Endpoint"`
	UseSSL     bool   `yaml:"use_ssl"`
	FontBucket string `yaml:"font_bucket" validate:"required_with=Endpoint"`
	FontPrefix string `yaml:"font_prefix"`
}

func (m MinIOConfig) Enabled() bool {
	return m.Endpoint != "" && m.FontBucket != ""
}

// AllowedOrigins is the CORS allow-list: the configured frontend, the fixed
// defaults and any extra cors entries, reduced to scheme://host[:port] and
// without duplicates. Entries that are not absolute URLs are dropped.
func (c *Config) AllowedOrigins(defaults []string) []string {
	seen := make(map[string]bool)
	var origins []string

	add := func(raw string) {
		origin, ok := originOf(raw)
		if !ok || seen[origin] {
			return
		}
		seen[origin] = true
		origins = append(origins, origin)
	}

	add(c.FrontendURL)
	for _, origin := range defaults {
		add(origin)
	}
	for _, origin := range c.Cors {
		add(origin)
	}
	return origins
}

func originOf(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	return strings.ToLower(u.Scheme) + "://" + u.Host, true
}
