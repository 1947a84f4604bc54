package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Defaults exist so a fresh checkout runs; they must never reach production.
// InsecureDefaults reports which of them are still in effect.
const (
	DefaultJWTSecret     = "change-this-secret"
	DefaultAdminEmail    = "admin@crm.local"
	DefaultAdminPassword = "Admin1234!"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET, default=change-this-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=168h"`

	AdminEmail    string `env:"ADMIN_EMAIL,    default=admin@crm.local"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=Admin1234!"`

	PublicDir string `env:"PUBLIC_DIR, default=public"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=crm"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// InsecureDefaults lists the security-sensitive settings still carrying their
// built-in default values.
func (c *Config) InsecureDefaults() []string {
	var insecure []string
	if c.JWTSecret == DefaultJWTSecret {
		insecure = append(insecure, "JWT_SECRET")
	}
	if c.AdminPassword == DefaultAdminPassword {
		insecure = append(insecure, "ADMIN_PASSWORD")
	}
	return insecure
}
