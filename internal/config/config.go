package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"recettes/internal/repository/postgres"
	s3source "recettes/internal/source/s3"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     postgres.Config
	JWT    JWTConfig
	Auth   AuthConfig
	Source SourceConfig
	Food   FoodConfig
	Scan   ScanConfig
	CORS   CORSConfig
	Export ExportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
}

// AuthConfig holds the single operator account. The password is stored as a
// bcrypt hash, never in clear.
type AuthConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

// SourceConfig selects where recipe documents come from.
type SourceConfig struct {
	// Kind is "fsdir" or "s3".
	Kind string `mapstructure:"kind"`
	Dir  string `mapstructure:"dir"`
	S3   s3source.Config
}

// FoodConfig locates the optional external food-composition table.
type FoodConfig struct {
	TablePath string `mapstructure:"table_path"`
}

// ScanConfig holds pipeline settings.
type ScanConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ExportConfig holds batch-output settings for the CLI.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load reads configuration from environment variables with the RECETTES_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RECETTES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "recettes")
	v.SetDefault("db.password", "recettes_secret")
	v.SetDefault("db.name", "recettes_db")
	v.SetDefault("db.sslmode", "disable")

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")

	// Operator account defaults (hash of "admin", development only)
	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.password_hash", "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

	// Source defaults
	v.SetDefault("source.kind", "fsdir")
	v.SetDefault("source.dir", "./recettes")
	v.SetDefault("source.s3.bucket", "")
	v.SetDefault("source.s3.prefix", "recettes")
	v.SetDefault("source.s3.region", "eu-west-3")
	v.SetDefault("source.s3.endpoint", "")

	// Food table defaults (builtin table only when unset or missing)
	v.SetDefault("food.table_path", "")

	// Scan defaults
	v.SetDefault("scan.concurrency", 4)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Export defaults
	v.SetDefault("export.dir", ".")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "RECETTES_SERVER_PORT",
		"server.read_timeout":  "RECETTES_SERVER_READ_TIMEOUT",
		"server.write_timeout": "RECETTES_SERVER_WRITE_TIMEOUT",
		"server.environment":   "RECETTES_SERVER_ENVIRONMENT",
		"db.host":              "RECETTES_DB_HOST",
		"db.port":              "RECETTES_DB_PORT",
		"db.user":              "RECETTES_DB_USER",
		"db.password":          "RECETTES_DB_PASSWORD",
		"db.name":              "RECETTES_DB_NAME",
		"db.sslmode":           "RECETTES_DB_SSLMODE",
		"jwt.secret":           "RECETTES_JWT_SECRET",
		"jwt.access_expiry":    "RECETTES_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "RECETTES_JWT_REFRESH_EXPIRY",
		"auth.username":        "RECETTES_AUTH_USERNAME",
		"auth.password_hash":   "RECETTES_AUTH_PASSWORD_HASH",
		"source.kind":          "RECETTES_SOURCE_KIND",
		"source.dir":           "RECETTES_SOURCE_DIR",
		"source.s3.bucket":     "RECETTES_SOURCE_S3_BUCKET",
		"source.s3.prefix":     "RECETTES_SOURCE_S3_PREFIX",
		"source.s3.region":     "RECETTES_SOURCE_S3_REGION",
		"source.s3.endpoint":   "RECETTES_SOURCE_S3_ENDPOINT",
		"source.s3.access_key": "RECETTES_SOURCE_S3_ACCESS_KEY",
		"source.s3.secret_key": "RECETTES_SOURCE_S3_SECRET_KEY",
		"food.table_path":      "RECETTES_FOOD_TABLE_PATH",
		"scan.concurrency":     "RECETTES_SCAN_CONCURRENCY",
		"cors.allowed_origins": "RECETTES_CORS_ALLOWED_ORIGINS",
		"export.dir":           "RECETTES_EXPORT_DIR",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if RECETTES_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("RECETTES_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = postgres.Config{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
	}
	cfg.Auth = AuthConfig{
		Username:     v.GetString("auth.username"),
		PasswordHash: v.GetString("auth.password_hash"),
	}
	cfg.Source = SourceConfig{
		Kind: v.GetString("source.kind"),
		Dir:  v.GetString("source.dir"),
		S3: s3source.Config{
			Bucket:    v.GetString("source.s3.bucket"),
			Prefix:    v.GetString("source.s3.prefix"),
			Region:    v.GetString("source.s3.region"),
			Endpoint:  v.GetString("source.s3.endpoint"),
			AccessKey: v.GetString("source.s3.access_key"),
			SecretKey: v.GetString("source.s3.secret_key"),
		},
	}
	cfg.Food = FoodConfig{
		TablePath: v.GetString("food.table_path"),
	}
	cfg.Scan = ScanConfig{
		Concurrency: v.GetInt("scan.concurrency"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Export = ExportConfig{Dir: v.GetString("export.dir")}

	return cfg, nil
}
