package tests

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/config"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service/mocks"
)

type repoMocks struct {
	users      *mocks.MockUsersRepo
	records    *mocks.MockWaterRecordsRepo
	stamps     *mocks.MockStampsRepo
	userStamps *mocks.MockUserStampsRepo
	health     *mocks.MockHealthRepo
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Password: config.PasswordConfig{
			Argon2: config.Argon2Config{
				Time:      1,
				MemoryKiB: 8 * 1024,
				Threads:   1,
				KeyLen:    16,
				SaltLen:   8,
			},
		},
	}
	config.ApplyDefaults(cfg)
	return cfg
}

// собираем сервисы на моках
func newServices(t *testing.T, cfg *config.Config) (*service.Services, repoMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := repoMocks{
		users:      mocks.NewMockUsersRepo(ctrl),
		records:    mocks.NewMockWaterRecordsRepo(ctrl),
		stamps:     mocks.NewMockStampsRepo(ctrl),
		userStamps: mocks.NewMockUserStampsRepo(ctrl),
		health:     mocks.NewMockHealthRepo(ctrl),
	}

	svc := service.NewServices(service.Repositories{
		Users:        m.users,
		WaterRecords: m.records,
		Stamps:       m.stamps,
		UserStamps:   m.userStamps,
		Health:       m.health,
	}, cfg)
	return svc, m
}
