package tests

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/utils"
)

var stampCols = []string{"stamp_id", "message", "image_url"}

func TestStampsRepository_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewStampsRepository(db)

	mock.ExpectQuery(`SELECT stamp_id, message, image_url FROM stamp ORDER BY stamp_id`).
		WillReturnRows(sqlmock.NewRows(stampCols).
			AddRow(int64(1), "水分補給して！", "💧").
			AddRow(int64(2), nil, "💪"))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "💧", list[0].ImageURL)
	require.Nil(t, list[1].Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStampsRepository_GetByID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewStampsRepository(db)

	mock.ExpectQuery(`FROM stamp WHERE stamp_id`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(stampCols).AddRow(int64(3), "おつかれさま！", "🎉"))
	mock.ExpectQuery(`FROM stamp WHERE stamp_id`).
		WithArgs(int64(4)).
		WillReturnError(sql.ErrNoRows)

	s, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, "おつかれさま！", *s.Message)

	_, err = repo.GetByID(context.Background(), 4)
	require.ErrorIs(t, err, serr.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStampsRepository_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewStampsRepository(db)

	mock.ExpectQuery(`INSERT INTO stamp`).
		WithArgs("がんばって！", "💪").
		WillReturnRows(sqlmock.NewRows(stampCols).AddRow(int64(2), "がんばって！", "💪"))
	mock.ExpectQuery(`INSERT INTO stamp`).
		WillReturnError(sql.ErrConnDone)

	s, err := repo.Create(context.Background(), utils.StrPtr("がんばって！"), "💪")
	require.NoError(t, err)
	require.Equal(t, int64(2), s.ID)

	_, err = repo.Create(context.Background(), nil, "x")
	require.Equal(t, serr.ErrInternal, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
