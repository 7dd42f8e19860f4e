package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
)

// Storages groups the database handle (also the [UnitOfWork]) and every
// repository built on it.
type Storages struct {
	DB             *DB
	UnitOfWork     UnitOfWork
	UserRepository UserRepository
	PostRepository PostRepository
}

// NewStorages connects to cfg.DB, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB builds the repositories on an existing handle.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		DB:             db,
		UnitOfWork:     db,
		UserRepository: NewUserRepository(db, logger),
		PostRepository: NewPostRepository(db, logger),
	}
}
