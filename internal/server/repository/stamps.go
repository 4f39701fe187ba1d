package repository

import (
	"context"
	"database/sql"

	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// StampsRepository — справочник стампов. Через API только читается,
// Create нужен для заполнения базы.
type StampsRepository struct {
	base
}

func NewStampsRepository(db *sql.DB, opts ...Option) *StampsRepository {
	return &StampsRepository{base: newBase(db, opts)}
}

func (r *StampsRepository) List(ctx context.Context) ([]sharedModels.Stamp, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT stamp_id, message, image_url FROM stamp ORDER BY stamp_id`)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	out := make([]sharedModels.Stamp, 0)
	for rows.Next() {
		var s sharedModels.Stamp
		if err := rows.Scan(&s.ID, &s.Message, &s.ImageURL); err != nil {
			return nil, serr.ErrInternal
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return out, nil
}

func (r *StampsRepository) GetByID(ctx context.Context, id int64) (sharedModels.Stamp, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var s sharedModels.Stamp
	err := r.db.QueryRowContext(ctx,
		`SELECT stamp_id, message, image_url FROM stamp WHERE stamp_id=$1`,
		id,
	).Scan(&s.ID, &s.Message, &s.ImageURL)
	if err != nil {
		return sharedModels.Stamp{}, mapErr(err)
	}
	return s, nil
}

func (r *StampsRepository) Create(ctx context.Context, message *string, imageURL string) (sharedModels.Stamp, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var s sharedModels.Stamp
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO stamp (message, image_url) VALUES ($1,$2) RETURNING stamp_id, message, image_url`,
		message, imageURL,
	).Scan(&s.ID, &s.Message, &s.ImageURL)
	if err != nil {
		return sharedModels.Stamp{}, serr.ErrInternal
	}
	return s, nil
}
