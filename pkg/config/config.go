package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const envFile = "./configs/.env"

type Config struct {
	APIAddress string `env:"API_ADDRESS" envDefault:":8080"`
	JWTSecret  string `env:"JWT_SECRET,required"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	Postgres PostgresConfig
	Redis    RedisConfig

	// IANA zone used when request carries no X-Timezone header
	Timezone   string `env:"TIMEZONE" envDefault:"UTC"`
	DailyJobAt string `env:"DAILY_JOB_AT" envDefault:"00:00"`
}

type PostgresConfig struct {
	Address  string `env:"POSTGRES_DB_ADDRESS" envDefault:"localhost:5432"`
	Username string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	DB       string `env:"POSTGRES_DB"`
}

type RedisConfig struct {
	// Empty address disables catalog caching
	Address  string        `env:"REDIS_ADDRESS"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"10m"`
}

func New() *Config {
	once.Do(func() {
		cfg, err := Load(envFile)
		if err != nil {
			log.Fatal("loading envs error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads optional dotenv file into process env and parses Config from it.
func Load(files ...string) (*Config, error) {
	for _, f := range files {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	if _, err := time.Parse("15:04", cfg.DailyJobAt); err != nil {
		return nil, fmt.Errorf("invalid DAILY_JOB_AT %q: %w", cfg.DailyJobAt, err)
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DailyJobTime returns hour and minute of the daily maintenance run.
func (c *Config) DailyJobTime() (uint, uint) {
	t, err := time.Parse("15:04", c.DailyJobAt)
	if err != nil {
		return 0, 0
	}
	return uint(t.Hour()), uint(t.Minute())
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}
