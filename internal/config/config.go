package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
	ModeTest        = "test"
)

// Durations are written as TOML strings such as "5s".
type Config struct {
	Port              int      `toml:"port"`
	Mode              string   `toml:"mode"`
	ReadHeaderTimeout time.Duration `toml:"read_header_timeout"`
	RequestTimeout    time.Duration `toml:"request_timeout"`
	ShutdownTimeout   time.Duration `toml:"shutdown_timeout"`
	MaxBodyBytes      int64         `toml:"max_body_bytes"`
}

func Default() Config {
	return Config{
		Port:              3000,
		Mode:              ModeDevelopment,
		ReadHeaderTimeout: 5 * time.Second,
		RequestTimeout:    3 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		MaxBodyBytes:      1 << 20,
	}
}

// Load starts from Default, applies the TOML file at path (if path is not
// empty), then PORT and APP_ENV from the environment.
func Load(path string) (Config, error) {
	return load(path, os.Getenv)
}

func load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("PORT must be a number: %w", err)
		}
		cfg.Port = port
	}
	if v := getenv("APP_ENV"); v != "" {
		cfg.Mode = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	switch c.Mode {
	case ModeDevelopment, ModeProduction, ModeTest:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.ReadHeaderTimeout <= 0 || c.RequestTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return errors.New("timeouts must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		return errors.New("max_body_bytes must be positive")
	}
	return nil
}

func (c Config) Production() bool {
	return c.Mode == ModeProduction
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
