package storage

import (
	"context"
	"fmt"

	"github.com/davonjagah/JagahVA/config"
	"github.com/davonjagah/JagahVA/models"
)

// Store is full-record persistence keyed by user id. GetUser returns a
// zeroed default record when the user is unknown, never nil. Writes are
// whole-record, last-writer-wins; there is no partial update.
type Store interface {
	GetUser(ctx context.Context, userID string) (*models.UserRecord, error)
	SaveUser(ctx context.Context, userID string, record *models.UserRecord) error
}

// Open builds the store selected by STORE_BACKEND.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreBackend {
	case "postgres":
		return NewPostgresStore(cfg)
	case "mongo":
		return NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.StoreBackend)
	}
}
