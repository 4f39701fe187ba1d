package service

import (
	"context"
	"errors"
	"strings"

	srvModels "github.com/IvanChernomyrdin/go-aquamate/internal/server/models"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service/models"
	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// UsersService — справочник пользователей: чтение, создание, частичное обновление профиля.
type UsersService struct {
	users  UsersRepo
	hasher PasswordHasher
}

func NewUsersService(users UsersRepo, hasher PasswordHasher) *UsersService {
	return &UsersService{users: users, hasher: hasher}
}

// Get возвращает профиль или ErrUserNotFound.
func (s *UsersService) Get(ctx context.Context, id int64) (sharedModels.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return sharedModels.User{}, userErr(err)
	}
	return u, nil
}

// Create регистрирует пользователя.
//
// Валидация:
//   - user_name обязателен (пробелы обрезаются)
//   - password обязателен
func (s *UsersService) Create(ctx context.Context, in models.NewUserInput) (sharedModels.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return sharedModels.User{}, &serr.MissingFieldError{Field: "user_name"}
	}
	if strings.TrimSpace(in.Password) == "" {
		return sharedModels.User{}, &serr.MissingFieldError{Field: "password"}
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return sharedModels.User{}, serr.ErrInternal
	}

	return s.users.Create(ctx, srvModels.NewUser{
		Name:         name,
		PasswordHash: hash,
		Bio:          in.Bio,
		X:            in.X,
		PhotoURL:     in.PhotoURL,
	})
}

// Update перезаписывает переданные поля профиля и возвращает профиль целиком.
// Пустой patch ничего не меняет, но существование пользователя всё равно проверяется.
func (s *UsersService) Update(ctx context.Context, id int64, p models.UserPatch) (sharedModels.User, error) {
	if p.Empty() {
		return s.Get(ctx, id)
	}

	u, err := s.users.Update(ctx, id, p)
	if err != nil {
		return sharedModels.User{}, userErr(err)
	}
	return u, nil
}

func userErr(err error) error {
	if errors.Is(err, serr.ErrNotFound) {
		return serr.ErrUserNotFound
	}
	return err
}

// ensureUser проверяет, что пользователь существует.
func ensureUser(ctx context.Context, users UsersRepo, id int64) error {
	ok, err := users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return serr.ErrUserNotFound
	}
	return nil
}
