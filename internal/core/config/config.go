package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/playmixer/autoparts/internal/adapters/api/rest"
	"github.com/playmixer/autoparts/internal/adapters/events"
	"github.com/playmixer/autoparts/internal/adapters/store"
	"github.com/playmixer/autoparts/internal/adapters/store/database"
	"github.com/playmixer/autoparts/internal/adapters/vindecoder"
	"github.com/playmixer/autoparts/internal/core/autoparts"
)

type Config struct {
	Rest      *rest.Config
	Store     *store.Config
	AutoParts *autoparts.Config
	Vin       *vindecoder.Config
	Events    *events.Config
	Secret    string `env:"SECRET_KEY" envDefault:"secret_key"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPath   string `env:"LOG_PATH"`
}

func Init() (*Config, error) {
	cfg := &Config{
		Rest: &rest.Config{},
		Store: &store.Config{
			Database: &database.Config{},
		},
		AutoParts: &autoparts.Config{},
		Vin:       &vindecoder.Config{},
		Events:    &events.Config{},
	}

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("failed load enviorements from file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return cfg, fmt.Errorf("failed parse env: %w", err)
	}

	flag.StringVar(&cfg.Rest.Address, "a", cfg.Rest.Address, "address listen")
	flag.StringVar(&cfg.Store.Database.DSN, "d", cfg.Store.Database.DSN, "database dsn")
	flag.StringVar(&cfg.Vin.APIURL, "v", cfg.Vin.APIURL, "address vin decoder service")
	flag.Parse()

	return cfg, nil
}
