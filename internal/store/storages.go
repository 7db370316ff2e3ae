package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// Storages aggregates every repository used by the service layer.
type Storages struct {
	UserRepository       UserRepository
	ResetTokenRepository ResetTokenRepository
}

// NewStorages connects to PostgreSQL, runs the embedded migrations, and
// wires all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		ResetTokenRepository: NewResetTokenRepository(db, logger),
	}, nil
}
