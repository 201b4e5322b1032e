// Package backend opens the store and event publisher selected by configuration.
package backend

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sriteja123gujjari/RentalManagement/internal/config"
	"github.com/sriteja123gujjari/RentalManagement/internal/events"
	"github.com/sriteja123gujjari/RentalManagement/internal/storage"
	"github.com/sriteja123gujjari/RentalManagement/internal/storage/memory"
	"github.com/sriteja123gujjari/RentalManagement/internal/storage/sqlite"
)

// Backend holds the opened collaborators.
type Backend struct {
	Store     storage.Store
	Publisher events.Publisher
}

// Close releases the publisher and the store.
func (b *Backend) Close() error {
	return errors.Join(b.Publisher.Close(), b.Store.Close())
}

// OpenStore opens the configured storage backend.
func OpenStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Database.Backend {
	case "sqlite":
		store, err := sqlite.New(cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
		}
		return store, nil
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unsupported database backend: %s", cfg.Database.Backend)
	}
}

// Open opens the store and, when an AMQP URL is configured, the publisher.
// A broker that cannot be reached is logged and replaced by a no-op publisher.
func Open(cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	store, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("Initialized store", "backend", cfg.Database.Backend, "path", cfg.Database.Path)

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.AMQP.URL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.RoutingKey)
		if err != nil {
			logger.Warn("Failed to initialize AMQP publisher, continuing without events", "error", err)
		} else {
			logger.Info("Initialized AMQP publisher",
				"exchange", cfg.AMQP.Exchange,
				"routing_key", cfg.AMQP.RoutingKey)
			publisher = amqpPublisher
		}
	}

	return &Backend{Store: store, Publisher: publisher}, nil
}
