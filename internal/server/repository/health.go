package repository

import (
	"context"
	"database/sql"
)

// HealthRepository проверяет доступность БД для /health.
type HealthRepository struct {
	base
}

func NewHealthRepository(db *sql.DB, opts ...Option) *HealthRepository {
	return &HealthRepository{base: newBase(db, opts)}
}

func (r *HealthRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.PingContext(ctx)
}
