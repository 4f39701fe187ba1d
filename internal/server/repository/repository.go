// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors:
//   - sql.ErrNoRows -> ErrNotFound
//   - нарушение внешнего ключа (23503) -> ErrUserNotFound
//   - всё остальное -> ErrInternal
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgconn"

	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
)

// нарушение внешнего ключа в PostgreSQL
const pgForeignKeyViolation = "23503"

// Option настраивает репозиторий.
type Option func(*base)

// WithQueryTimeout ограничивает время каждого запроса к БД.
func WithQueryTimeout(d time.Duration) Option {
	return func(b *base) { b.timeout = d }
}

// base — общее для всех репозиториев: пул и таймаут запроса.
type base struct {
	db      *sql.DB
	timeout time.Duration
}

func newBase(db *sql.DB, opts []Option) base {
	b := base{db: db}
	for _, o := range opts {
		o(&b)
	}
	return b
}

func (b base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, b.timeout)
}

// rowScanner — общее у *sql.Row и *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return serr.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return serr.ErrUserNotFound
	}
	return serr.ErrInternal
}
