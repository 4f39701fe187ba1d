// Package service содержит бизнес-логику приложения (aquamate).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

//go:generate mockgen -source=service.go -destination=mocks/mock_repos.go -package=mocks

import (
	"context"
	"time"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/config"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/crypto"
	srvModels "github.com/IvanChernomyrdin/go-aquamate/internal/server/models"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service/models"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users        UsersRepo
	WaterRecords WaterRecordsRepo
	Stamps       StampsRepo
	UserStamps   UserStampsRepo
	Health       HealthRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Users        *UsersService
	WaterRecords *WaterRecordsService
	Stamps       *StampsService
	Nearby       *NearbyService
	Health       *HealthService
}

// NewServices собирает все сервисы приложения.
// cfg нужен для параметров хэширования пароля и поиска соседей.
func NewServices(repos Repositories, cfg *config.Config) *Services {
	hasher := crypto.NewHasher(crypto.ParamsFromConfig(cfg.Password.Argon2))

	return &Services{
		Users:        NewUsersService(repos.Users, hasher),
		WaterRecords: NewWaterRecordsService(repos.WaterRecords, repos.Users),
		Stamps:       NewStampsService(repos.Stamps, repos.UserStamps, repos.Users),
		Nearby:       NewNearbyService(repos.WaterRecords, cfg.Nearby.BoxDegrees, cfg.Nearby.LatestOnly),
		Health:       NewHealthService(repos.Health),
	}
}

// HealthRepo — минимально нужное для health-check.
type HealthRepo interface {
	Ping(ctx context.Context) error
}

// PasswordHasher — хэширование пароля нового пользователя.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// UsersRepo — репозиторий пользователей.
type UsersRepo interface {
	GetByID(ctx context.Context, id int64) (sharedModels.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, u srvModels.NewUser) (sharedModels.User, error)
	Update(ctx context.Context, id int64, p models.UserPatch) (sharedModels.User, error)
}

// WaterRecordsRepo — журнал записей о воде.
type WaterRecordsRepo interface {
	ListByUser(ctx context.Context, userID int64) ([]sharedModels.WaterRecord, error)
	ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]sharedModels.WaterRecord, error)
	LatestByUser(ctx context.Context, userID int64) (sharedModels.WaterRecord, error)
	Create(ctx context.Context, in models.NewWaterRecord) (sharedModels.WaterRecord, error)
	Update(ctx context.Context, id int64, p models.WaterRecordPatch) (sharedModels.WaterRecord, error)
	FindInBox(ctx context.Context, q models.NearbyQuery) ([]sharedModels.NearbyUser, error)
}

// StampsRepo — справочник стампов.
type StampsRepo interface {
	List(ctx context.Context) ([]sharedModels.Stamp, error)
	GetByID(ctx context.Context, id int64) (sharedModels.Stamp, error)
	Create(ctx context.Context, message *string, imageURL string) (sharedModels.Stamp, error)
}

// UserStampsRepo — обмен стампами между пользователями.
type UserStampsRepo interface {
	Send(ctx context.Context, in models.NewUserStamp) (sharedModels.UserStamp, error)
	MarkReplied(ctx context.Context, id int64, at time.Time) (sharedModels.UserStamp, error)
	ListByReceiver(ctx context.Context, receiverID int64) ([]sharedModels.ReceivedStamp, error)
	ListBySender(ctx context.Context, senderID int64) ([]sharedModels.UserStamp, error)
}
