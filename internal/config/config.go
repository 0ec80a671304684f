package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort      = 3080
	defaultEnv       = "development"
	defaultDBHost    = "127.0.0.1"
	defaultDBPort    = 3306
	defaultDBUser    = "root"
	defaultDBName    = "folio"
	defaultDataDir   = "data"
	defaultPublicURL = "http://localhost:3000"
)

// Load reads the YAML config file, layers environment overrides on top, and
// fills defaults. A missing file is not an error; the environment alone can
// carry a full configuration.
func Load(path string) (*AppConfig, error) {
	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	cfg := AppConfig{}
	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := envString("FOLIO_PORT", "PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := envString("FOLIO_ENV", "GO_ENV"); v != "" {
		cfg.Env = v
	}
	if v := envString("FOLIO_DSN", "DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := envString("FOLIO_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := envString("FOLIO_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := envString("FOLIO_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := envString("FOLIO_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := envString("FOLIO_REDIS_URL", "REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := envString("FOLIO_JWT_SECRET", "JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := envString("FOLIO_PUBLIC_URL", "PUBLIC_URL"); v != "" {
		cfg.PublicURL = v
	}
	if v := envString("FOLIO_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := envString("FOLIO_S3_BUCKET"); v != "" {
		cfg.S3.Bucket = v
	}
	if v := envString("FOLIO_S3_REGION"); v != "" {
		cfg.S3.Region = v
	}
	if v := envString("FOLIO_S3_ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID"); v != "" {
		cfg.S3.AccessKeyID = v
	}
	if v := envString("FOLIO_S3_SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY"); v != "" {
		cfg.S3.SecretAccessKey = v
	}
	if v := envString("FOLIO_S3_ENDPOINT"); v != "" {
		cfg.S3.Endpoint = v
	}
	if v := envString("FOLIO_S3_CUSTOM_DOMAIN"); v != "" {
		cfg.S3.CustomDomain = v
	}
	if v := envString("FOLIO_ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		cfg.AllowedOrigins = origins
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = defaultDBHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = defaultDBPort
	}
	if cfg.Database.User == "" {
		cfg.Database.User = defaultDBUser
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = defaultDBName
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir
	}
	if cfg.PublicURL == "" {
		cfg.PublicURL = defaultPublicURL
	}
	cfg.PublicURL = strings.TrimRight(cfg.PublicURL, "/")
}

func envString(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}
