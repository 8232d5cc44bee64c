package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"

	StoreBackendFile  = "file"
	StoreBackendMongo = "mongo"
)

type Config struct {
	Port      string `env:"PORT,       default=3000"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	DataFile  string `env:"DATA_FILE,  default=data/employees.json"`
	PublicDir string `env:"PUBLIC_DIR, default=public"`
	BodyLimit string `env:"BODY_LIMIT, default=200K"`

	QAFaultsEnabled bool `env:"QA_FAULTS_ENABLED, default=true"`

	StoreBackend string `env:"STORE_BACKEND, default=file"`

	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	Backend     string        `env:"SESSION_BACKEND, default=memory"`
	TTL         time.Duration `env:"SESSION_TTL,     default=30m"`
	RememberTTL time.Duration `env:"REMEMBER_TTL,    default=168h"`
}

type MongoConfig struct {
	URI        string `env:"MONGO_URI,        default=mongodb://localhost:27017"`
	Database   string `env:"MONGO_DB,         default=employee_directory"`
	Collection string `env:"MONGO_COLLECTION, default=employees"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// LoadFrom reads configuration through lookuper and validates the backend choices.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}

	switch cfg.Session.Backend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return nil, fmt.Errorf("SESSION_BACKEND must be %q or %q, got %q", SessionBackendMemory, SessionBackendRedis, cfg.Session.Backend)
	}
	switch cfg.StoreBackend {
	case StoreBackendFile, StoreBackendMongo:
	default:
		return nil, fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", StoreBackendFile, StoreBackendMongo, cfg.StoreBackend)
	}
	if cfg.Session.TTL <= 0 || cfg.Session.RememberTTL <= 0 {
		return nil, fmt.Errorf("session lifetimes must be positive")
	}
	return &cfg, nil
}

// IsDevelopment reports whether human-friendly logging should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
