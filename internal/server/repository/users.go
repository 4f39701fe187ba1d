package repository

import (
	"context"
	"database/sql"

	srvModels "github.com/IvanChernomyrdin/go-aquamate/internal/server/models"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service/models"
	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

const userColumns = `user_id, user_name, bio, x, photo_url`

type UsersRepository struct {
	base
}

func NewUsersRepository(db *sql.DB, opts ...Option) *UsersRepository {
	return &UsersRepository{base: newBase(db, opts)}
}

func scanUser(row rowScanner) (sharedModels.User, error) {
	var u sharedModels.User
	err := row.Scan(&u.ID, &u.Name, &u.Bio, &u.X, &u.PhotoURL)
	return u, err
}

// GetByID возвращает профиль или ErrNotFound.
func (r *UsersRepository) GetByID(ctx context.Context, id int64) (sharedModels.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id=$1`,
		id,
	))
	if err != nil {
		return sharedModels.User{}, mapErr(err)
	}
	return u, nil
}

// Exists проверяет наличие пользователя без чтения профиля.
func (r *UsersRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE user_id=$1)`,
		id,
	).Scan(&ok)
	if err != nil {
		return false, serr.ErrInternal
	}
	return ok, nil
}

// Create вставляет пользователя с уже посчитанным хэшем пароля.
func (r *UsersRepository) Create(ctx context.Context, u srvModels.NewUser) (sharedModels.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	created, err := scanUser(r.db.QueryRowContext(ctx,
		`INSERT INTO users (user_name, bio, x, photo_url, password_hash)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING `+userColumns,
		u.Name, u.Bio, u.X, u.PhotoURL, u.PasswordHash,
	))
	if err != nil {
		return sharedModels.User{}, serr.ErrInternal
	}
	return created, nil
}

// Update меняет только переданные (не nil) поля одним запросом.
// Если пользователя нет, возвращает ErrNotFound.
func (r *UsersRepository) Update(ctx context.Context, id int64, p models.UserPatch) (sharedModels.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	u, err := scanUser(r.db.QueryRowContext(ctx,
		`UPDATE users
		    SET user_name = COALESCE($2, user_name),
		        bio       = COALESCE($3, bio),
		        x         = COALESCE($4, x),
		        photo_url = COALESCE($5, photo_url)
		  WHERE user_id=$1
		 RETURNING `+userColumns,
		id, p.Name, p.Bio, p.X, p.PhotoURL,
	))
	if err != nil {
		return sharedModels.User{}, mapErr(err)
	}
	return u, nil
}
