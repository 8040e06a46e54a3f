// Package config loads application configuration from a YAML file with
// environment variable overrides. The config path comes from the CONFIG_PATH
// environment variable or the --config flag; when neither is set, every field
// falls back to its default so the binary runs without any configuration.
package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	// Env selects log format and verbosity. Valid values: "dev", "prod".
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// StoragePath is the filesystem path of the SQLite database file.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"programmers.db"`

	// SessionTTL is the sliding lifetime of anonymous browser sessions.
	SessionTTL time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"24h"`

	// XSRFSecret signs anti-forgery tokens. The default is for development
	// only and must be overridden in any real deployment.
	XSRFSecret string `yaml:"xsrf_secret" env:"XSRF_SECRET" env-default:"development-insecure-secret-change-me"`

	// XSRFLifetime bounds how long an issued anti-forgery token stays valid.
	XSRFLifetime time.Duration `yaml:"xsrf_lifetime" env:"XSRF_LIFETIME" env-default:"2h"`

	HTTPServer `yaml:"http_server"`
}

type HTTPServer struct {
	// Addr is the TCP address the server listens on.
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-default:":8008"`
}

// MustLoad reads, validates, and returns the application config.
// It exits the process on failure; if it returns, the config is usable.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		flags := flag.String("config", "", "path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	var cfg Config

	// No file given: environment variables plus defaults.
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err)
		}
		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
