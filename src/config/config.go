package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	HandlerQuery  = "query"
	HandlerExport = "export"

	maxTimeout = 60 * time.Second
)

type Config struct {
	Handler string        `yaml:"handler" env:"_HANDLER"  env-default:"query"`
	Log     LogConfig     `yaml:"log"`
	PokeAPI PokeAPIConfig `yaml:"pokeapi"`
	Export  ExportConfig  `yaml:"export"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type PokeAPIConfig struct {
	BaseUrl string        `yaml:"base_url" env:"POKEAPI_BASE_URL" env-default:"https://pokeapi.co/api/v2/"`
	Timeout time.Duration `yaml:"timeout"  env:"POKEAPI_TIMEOUT"  env-default:"15s"`
}

type ExportConfig struct {
	Region string `yaml:"region" env:"AWS_REGION"`
	Bucket string `yaml:"bucket" env:"BUCKET_NAME"`
	Prefix string `yaml:"prefix" env:"EXPORT_PREFIX" env-default:"lookups"`
}

// Load reads CONFIG_PATH when set, then environment variables and defaults.
func Load() (*Config, error) {
	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	switch c.Handler {
	case HandlerQuery:
	case HandlerExport:
		if c.Export.Bucket == "" {
			errs = append(errs, errors.New("export handler requires BUCKET_NAME"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown handler %q", c.Handler))
	}
	if c.PokeAPI.BaseUrl == "" {
		errs = append(errs, errors.New("pokeapi base url is empty"))
	}
	if c.PokeAPI.Timeout <= 0 || c.PokeAPI.Timeout > maxTimeout {
		errs = append(errs, fmt.Errorf("pokeapi timeout %s outside (0, %s]", c.PokeAPI.Timeout, maxTimeout))
	}
	return errors.Join(errs...)
}
