package config

// AppConfig holds runtime startup configuration loaded from YAML plus
// environment overrides.
type AppConfig struct {
	Port           int            `yaml:"port"`
	Env            string         `yaml:"env"` // "development" | "production"
	Database       DatabaseConfig `yaml:"database"`
	RedisURL       string         `yaml:"redis_url"`
	JWTSecret      string         `yaml:"jwt_secret"`
	PublicURL      string         `yaml:"public_url"` // front-end origin, used in reset links
	DataDir        string         `yaml:"data_dir"`   // contact-message file store
	AllowedOrigins []string       `yaml:"allowed_origins"`
	S3             S3Options      `yaml:"s3"`
}

// DatabaseConfig describes the MySQL connection; a full DSN wins over the
// individual fields.
type DatabaseConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// S3Options configures the image host bucket.
type S3Options struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Endpoint        string `yaml:"endpoint"`       // optional, for S3-compatible hosts
	CustomDomain    string `yaml:"custom_domain"`  // optional CDN domain for public URLs
	KeyPrefix       string `yaml:"key_prefix"`     // object key prefix, default "portfolio"
	PathStyleAccess bool   `yaml:"path_style_access"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }
