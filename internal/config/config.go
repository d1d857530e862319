package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig `envPrefix:"DATABASE_"`
	CORS     CORSConfig     `envPrefix:"CORS_"`
	Products ProductsConfig `envPrefix:"PRODUCTS_"`
	Log      LogConfig      `envPrefix:"LOG_"`
	Statsd   StatsdConfig   `envPrefix:"STATSD_"`
}

type ServerConfig struct {
	Port  string `env:"PORT" envDefault:"8000"`
	Host  string `env:"HOST" envDefault:"0.0.0.0"`
	Pprof bool   `env:"SERVER_PPROF" envDefault:"false"`
}

func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// DatabaseConfig is only checked for presence. An empty URL or name leaves the
// store unavailable instead of failing startup.
type DatabaseConfig struct {
	URL  string `env:"URL"`
	Name string `env:"NAME"`
}

func (c DatabaseConfig) Configured() bool {
	return c.URL != "" && c.Name != ""
}

type CORSConfig struct {
	AllowOriginPattern string `env:"ALLOW_ORIGIN_PATTERN" envDefault:".*"`
	AllowCredentials   bool   `env:"ALLOW_CREDENTIALS" envDefault:"true"`
}

// ProductsConfig controls listing limits. MaxLimit of 0 leaves caller supplied
// limits unbounded.
type ProductsConfig struct {
	DefaultLimit  int64 `env:"DEFAULT_LIMIT" envDefault:"24"`
	FeaturedLimit int64 `env:"FEATURED_LIMIT" envDefault:"8"`
	MaxLimit      int64 `env:"MAX_LIMIT" envDefault:"0"`
}

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
	File   string `env:"FILE"`
}

type StatsdConfig struct {
	Address string `env:"ADDRESS"`
	Service string `env:"SERVICE" envDefault:"lighting-api"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Errorf("load config: %w", err))
	}
	return cfg
}

func (c *Config) validate() error {
	if c.Products.DefaultLimit < 0 || c.Products.FeaturedLimit < 0 {
		return errors.New("product default limits must not be negative")
	}
	if c.Products.MaxLimit < 0 {
		return errors.New("PRODUCTS_MAX_LIMIT must not be negative")
	}
	return nil
}
