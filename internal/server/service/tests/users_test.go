package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/crypto"
	srvModels "github.com/IvanChernomyrdin/go-aquamate/internal/server/models"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service/models"
	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/utils"
)

func TestUsersService_Get_OK(t *testing.T) {
	ctx := context.Background()
	svc, m := newServices(t, testConfig())

	m.users.EXPECT().GetByID(ctx, int64(1)).Return(sharedModels.User{ID: 1, Name: "test_user1"}, nil)

	u, err := svc.Users.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "test_user1", u.Name)
}

func TestUsersService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, m := newServices(t, testConfig())

	m.users.EXPECT().GetByID(ctx, int64(5)).Return(sharedModels.User{}, serr.ErrNotFound)

	_, err := svc.Users.Get(ctx, 5)
	require.Equal(t, serr.ErrUserNotFound, err)
}

// внутренняя ошибка не превращается в not found
func TestUsersService_Get_Internal(t *testing.T) {
	ctx := context.Background()
	svc, m := newServices(t, testConfig())

	m.users.EXPECT().GetByID(ctx, int64(5)).Return(sharedModels.User{}, serr.ErrInternal)

	_, err := svc.Users.Get(ctx, 5)
	require.Equal(t, serr.ErrInternal, err)
}

func TestUsersService_Create_HashesPassword(t *testing.T) {
	ctx := context.Background()
	svc, m := newServices(t, testConfig())

	m.users.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u srvModels.NewUser) (sharedModels.User, error) {
			require.Equal(t, "aqua", u.Name)
			require.NotEqual(t, "password123", u.PasswordHash)

			ok, err := crypto.VerifyPassword("password123", u.PasswordHash)
			require.NoError(t, err)
			require.True(t, ok)

			return sharedModels.User{ID: 3, Name: u.Name, Bio: u.Bio}, nil
		})

	u, err := svc.Users.Create(ctx, models.NewUserInput{
		Name:     "  aqua ",
		Password: "password123",
		Bio:      utils.StrPtr("drinks a lot"),
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), u.ID)
	require.Equal(t, "drinks a lot", *u.Bio)
}

func TestUsersService_Create_MissingFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t, testConfig())

	_, err := svc.Users.Create(ctx, models.NewUserInput{Name: " ", Password: "x"})
	var mf *serr.MissingFieldError
	require.ErrorAs(t, err, &mf)
	require.Equal(t, "user_name", mf.Field)

	_, err = svc.Users.Create(ctx, models.NewUserInput{Name: "aqua"})
	require.ErrorAs(t, err, &mf)
	require.Equal(t, "password", mf.Field)
	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

func TestUsersService_Create_HasherFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepo(ctrl)
	hasher := mocks.NewMockPasswordHasher(ctrl)

	hasher.EXPECT().Hash("password123").Return("", errors.New("no entropy"))

	svc := service.NewUsersService(users, hasher)
	_, err := svc.Create(context.Background(), models.NewUserInput{Name: "aqua", Password: "password123"})
	require.Equal(t, serr.ErrInternal, err)
}

func TestUsersService_Update_OK(t *testing.T) {
	ctx := context.Background()
	svc, m := newServices(t, testConfig())

	patch := models.UserPatch{X: utils.StrPtr("@aqua")}
	m.users.EXPECT().Update(ctx, int64(1), patch).
		Return(sharedModels.User{ID: 1, Name: "test_user1", X: utils.StrPtr("@aqua")}, nil)

	u, err := svc.Users.Update(ctx, 1, patch)
	require.NoError(t, err)
	require.Equal(t, "@aqua", *u.X)
}

// пустое тело: ничего не пишем, но 404 на несуществующего пользователя остаётся
func TestUsersService_Update_EmptyPatch(t *testing.T) {
	ctx := context.Background()
	svc, m := newServices(t, testConfig())

	m.users.EXPECT().GetByID(ctx, int64(1)).Return(sharedModels.User{ID: 1, Name: "test_user1"}, nil)
	m.users.EXPECT().GetByID(ctx, int64(2)).Return(sharedModels.User{}, serr.ErrNotFound)

	u, err := svc.Users.Update(ctx, 1, models.UserPatch{})
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)

	_, err = svc.Users.Update(ctx, 2, models.UserPatch{})
	require.Equal(t, serr.ErrUserNotFound, err)
}

func TestUsersService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, m := newServices(t, testConfig())

	m.users.EXPECT().Update(ctx, int64(9), gomock.Any()).Return(sharedModels.User{}, serr.ErrNotFound)

	_, err := svc.Users.Update(ctx, 9, models.UserPatch{Name: utils.StrPtr("x")})
	require.Equal(t, serr.ErrUserNotFound, err)
}

func TestHealthService_Check(t *testing.T) {
	ctx := context.Background()
	svc, m := newServices(t, testConfig())

	m.health.EXPECT().Ping(ctx).Return(nil)
	m.health.EXPECT().Ping(ctx).Return(errors.New("down"))

	require.NoError(t, svc.Health.Check(ctx))
	require.Error(t, svc.Health.Check(ctx))
}
