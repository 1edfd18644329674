package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string   `env:"PORT,         default=5000"`
	Env         string   `env:"ENV,          default=development"`
	JWTSecret   string   `env:"JWT_SECRET,   required"`
	LogLevel    string   `env:"LOG_LEVEL,    default=info"`
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:3000"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Upload UploadConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, required"`
	Database string `env:"DB_NAME,   default=pet_sitting"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type UploadConfig struct {
	// Backend selects the storage implementation: "disk" or "inline".
	Backend string `env:"UPLOAD_BACKEND, default=disk"`
	Dir     string `env:"UPLOAD_DIR,     default=uploads"`
	// MaxBytes caps a single uploaded image.
	MaxBytes int64 `env:"UPLOAD_MAX_BYTES, default=5242880"`
}

// Load reads configuration from environment variables using go-envconfig.
// Missing MONGO_URI or JWT_SECRET is a startup failure, not a degraded mode.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
