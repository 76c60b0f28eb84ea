package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/playmixer/autoparts/internal/adapters/api/rest"
	"github.com/playmixer/autoparts/internal/adapters/events"
	"github.com/playmixer/autoparts/internal/adapters/logger"
	"github.com/playmixer/autoparts/internal/adapters/store"
	"github.com/playmixer/autoparts/internal/adapters/vindecoder"
	"github.com/playmixer/autoparts/internal/core/autoparts"
	"github.com/playmixer/autoparts/internal/core/config"
)

func main() {
	if err := run(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("failed initilize config: %w", err)
	}

	lgr, err := logger.New(cfg.LogLevel, logger.OutputPath(cfg.LogPath))
	if err != nil {
		return fmt.Errorf("failed initialize logger: %w", err)
	}

	storage, err := store.New(ctx, cfg.Store, lgr)
	if err != nil {
		return fmt.Errorf("failed initilize storage: %w", err)
	}

	decoder, err := vindecoder.New(cfg.Vin, vindecoder.Logger(lgr))
	if err != nil {
		return fmt.Errorf("failed initialize vin decoder: %w", err)
	}
	defer decoder.Close()

	producer := events.New(cfg.Events, events.Logger(lgr))
	defer func() {
		if err := producer.Close(); err != nil {
			lgr.Error("failed close event producer")
		}
	}()

	parts := autoparts.New(cfg.AutoParts, storage,
		autoparts.Logger(lgr),
		autoparts.SetVinDecoder(decoder),
		autoparts.SetEvents(producer),
	)

	server, err := rest.New(
		parts,
		rest.Logger(lgr),
		rest.Configure(cfg.Rest),
		rest.SecretKey([]byte(cfg.Secret)),
	)
	if err != nil {
		return fmt.Errorf("failed initialize rest server: %w", err)
	}

	err = server.Run()
	if err != nil {
		return fmt.Errorf("stop server, %w", err)
	}
	return nil
}
