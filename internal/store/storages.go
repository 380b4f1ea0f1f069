package store

import (
	"context"

	"github.com/sunjoo-dev/movein-registry/internal/config"
	"github.com/sunjoo-dev/movein-registry/internal/logger"
)

// Storages bundles every repository behind a single handle for wiring into
// the service layer.
type Storages struct {
	UserRepository
	MoveInRepository
	FileRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies embedded migrations, and
// returns all repositories sharing one connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		MoveInRepository: NewMoveInRepository(db, log),
		FileRepository:   NewFileRepository(db, log),
		db:               db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
