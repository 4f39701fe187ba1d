package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service/models"
	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

const waterColumns = `water_id, water_date, water_type, water_amount, lat, lon, comment, user_id`

// WaterRecordsRepository — журнал записей о воде (таблица water_record).
type WaterRecordsRepository struct {
	base
}

func NewWaterRecordsRepository(db *sql.DB, opts ...Option) *WaterRecordsRepository {
	return &WaterRecordsRepository{base: newBase(db, opts)}
}

func scanWaterRecord(row rowScanner) (sharedModels.WaterRecord, error) {
	var w sharedModels.WaterRecord
	err := row.Scan(&w.ID, &w.WaterDate, &w.WaterType, &w.WaterAmount, &w.Lat, &w.Lon, &w.Comment, &w.UserID)
	return w, err
}

func (r *WaterRecordsRepository) list(ctx context.Context, query string, args ...any) ([]sharedModels.WaterRecord, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	out := make([]sharedModels.WaterRecord, 0)
	for rows.Next() {
		w, err := scanWaterRecord(rows)
		if err != nil {
			return nil, serr.ErrInternal
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return out, nil
}

// ListByUser — все записи пользователя, новые первыми.
func (r *WaterRecordsRepository) ListByUser(ctx context.Context, userID int64) ([]sharedModels.WaterRecord, error) {
	return r.list(ctx,
		`SELECT `+waterColumns+`
		   FROM water_record
		  WHERE user_id=$1
		  ORDER BY water_date DESC, water_id DESC`,
		userID,
	)
}

// ListByUserBetween — записи пользователя с water_date в [from, to).
func (r *WaterRecordsRepository) ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]sharedModels.WaterRecord, error) {
	return r.list(ctx,
		`SELECT `+waterColumns+`
		   FROM water_record
		  WHERE user_id=$1 AND water_date >= $2 AND water_date < $3
		  ORDER BY water_date DESC, water_id DESC`,
		userID, from, to,
	)
}

// LatestByUser — самая свежая запись пользователя или ErrNotFound.
func (r *WaterRecordsRepository) LatestByUser(ctx context.Context, userID int64) (sharedModels.WaterRecord, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	w, err := scanWaterRecord(r.db.QueryRowContext(ctx,
		`SELECT `+waterColumns+`
		   FROM water_record
		  WHERE user_id=$1
		  ORDER BY water_date DESC, water_id DESC
		  LIMIT 1`,
		userID,
	))
	if err != nil {
		return sharedModels.WaterRecord{}, mapErr(err)
	}
	return w, nil
}

// Create вставляет запись. Несуществующий user_id даёт ErrUserNotFound.
func (r *WaterRecordsRepository) Create(ctx context.Context, in models.NewWaterRecord) (sharedModels.WaterRecord, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	w, err := scanWaterRecord(r.db.QueryRowContext(ctx,
		`INSERT INTO water_record (water_date, water_type, water_amount, lat, lon, comment, user_id)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 RETURNING `+waterColumns,
		in.WaterDate, in.WaterType, in.WaterAmount, in.Lat, in.Lon, in.Comment, in.UserID,
	))
	if err != nil {
		return sharedModels.WaterRecord{}, mapErr(err)
	}
	return w, nil
}

// Update перезаписывает переданные поля записи.
//
// Ошибки:
//   - ErrNotFound: записи нет
//   - ErrUserNotFound: новый user_id не существует
func (r *WaterRecordsRepository) Update(ctx context.Context, id int64, p models.WaterRecordPatch) (sharedModels.WaterRecord, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	w, err := scanWaterRecord(r.db.QueryRowContext(ctx,
		`UPDATE water_record
		    SET water_date   = COALESCE($2, water_date),
		        water_type   = COALESCE($3, water_type),
		        water_amount = COALESCE($4, water_amount),
		        lat          = COALESCE($5, lat),
		        lon          = COALESCE($6, lon),
		        comment      = COALESCE($7, comment),
		        user_id      = COALESCE($8, user_id)
		  WHERE water_id=$1
		 RETURNING `+waterColumns,
		id, p.WaterDate, p.WaterType, p.WaterAmount, p.Lat, p.Lon, p.Comment, p.UserID,
	))
	if err != nil {
		return sharedModels.WaterRecord{}, mapErr(err)
	}
	return w, nil
}

// FindInBox ищет записи других пользователей внутри прямоугольника.
//
// Без LatestOnly каждая подходящая запись даёт строку (различаем по паре user_id, water_id),
// поэтому один сосед может встретиться несколько раз.
// С LatestOnly у каждого соседа берётся только его последняя запись.
func (r *WaterRecordsRepository) FindInBox(ctx context.Context, q models.NearbyQuery) ([]sharedModels.NearbyUser, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT DISTINCT user_id, water_id, lat, lon
		   FROM water_record
		  WHERE lat BETWEEN $1 AND $2
		    AND lon BETWEEN $3 AND $4
		    AND user_id <> $5
		  ORDER BY user_id, water_id`
	if q.LatestOnly {
		query = `SELECT user_id, water_id, lat, lon
		   FROM (
		         SELECT DISTINCT ON (user_id) user_id, water_id, lat, lon
		           FROM water_record
		          WHERE user_id <> $5
		          ORDER BY user_id, water_date DESC, water_id DESC
		        ) latest
		  WHERE lat BETWEEN $1 AND $2
		    AND lon BETWEEN $3 AND $4
		  ORDER BY user_id`
	}

	rows, err := r.db.QueryContext(ctx, query,
		q.Box.MinLat, q.Box.MaxLat, q.Box.MinLon, q.Box.MaxLon, q.ExcludeUserID,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	out := make([]sharedModels.NearbyUser, 0)
	for rows.Next() {
		var (
			n       sharedModels.NearbyUser
			waterID int64
		)
		if err := rows.Scan(&n.UserID, &waterID, &n.Lat, &n.Lon); err != nil {
			return nil, serr.ErrInternal
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return out, nil
}
