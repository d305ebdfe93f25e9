package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/text/language"
)

const defaultConfigPath = "./config/local.yaml"

type HTTPServer struct {
	Addr            string        `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type Storefront struct {
	Locale          string  `yaml:"LOCALE" env:"STOREFRONT_LOCALE" env-default:"en-US"`
	CatalogPath     string  `yaml:"CATALOG_PATH" env:"STOREFRONT_CATALOG_PATH"`
	DefaultMaxPrice float64 `yaml:"DEFAULT_MAX_PRICE" env:"STOREFRONT_DEFAULT_MAX_PRICE" env-default:"1000"`
	DefaultSort     string  `yaml:"DEFAULT_SORT" env:"STOREFRONT_DEFAULT_SORT" env-default:"name"`
}

type Otel struct {
	Enabled          bool    `yaml:"ENABLED" env:"OTEL_ENABLED" env-default:"false"`
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer `yaml:"http_server"`
	Storefront Storefront `yaml:"storefront"`
	Otel       Otel       `yaml:"otel"`
}

// MustLoad reads the config file named by CONFIG_PATH, the -config flag or the
// default path, in that order, and exits on failure.
func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to the config file")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			configPath = defaultConfigPath
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not load config: %s", err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	if _, err := cfg.Storefront.LocaleTag(); err != nil {
		return nil, err
	}

	if cfg.Storefront.DefaultMaxPrice < 0 {
		return nil, fmt.Errorf("storefront default max price must not be negative: %v", cfg.Storefront.DefaultMaxPrice)
	}

	return &cfg, nil
}

// LocaleTag parses the configured collation locale.
func (s *Storefront) LocaleTag() (language.Tag, error) {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid storefront locale %q: %w", s.Locale, err)
	}

	return tag, nil
}
