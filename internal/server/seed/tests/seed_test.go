package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	srvModels "github.com/IvanChernomyrdin/go-aquamate/internal/server/models"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/seed"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-aquamate/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service/models"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/logger"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// hasher без argon2, чтобы тест не зависел от параметров
type fakeHasher struct{ err error }

func (f fakeHasher) Hash(p string) (string, error) { return "hash:" + p, f.err }

func TestSeeder_Run(t *testing.T) {
	ctrl := gomock.NewController(t)

	users := svcmocks.NewMockUsersRepo(ctrl)
	stamps := svcmocks.NewMockStampsRepo(ctrl)
	records := svcmocks.NewMockWaterRecordsRepo(ctrl)
	userStamps := svcmocks.NewMockUserStampsRepo(ctrl)

	var nextUserID int64 = 10
	users.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, u srvModels.NewUser) (sharedModels.User, error) {
			require.Equal(t, "hash:"+seed.DefaultPassword, u.PasswordHash)
			nextUserID++
			return sharedModels.User{ID: nextUserID, Name: u.Name}, nil
		})

	var nextStampID int64
	stamps.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(len(seed.DemoStamps)).
		DoAndReturn(func(_ context.Context, msg *string, img string) (sharedModels.Stamp, error) {
			nextStampID++
			return sharedModels.Stamp{ID: nextStampID, Message: msg, ImageURL: img}, nil
		})

	records.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, in models.NewWaterRecord) (sharedModels.WaterRecord, error) {
			require.InDelta(t, 35.6762, in.Lat, 1e-9)
			require.InDelta(t, 139.6503, in.Lon, 1e-9)
			require.False(t, in.WaterDate.IsZero())
			return sharedModels.WaterRecord{ID: in.UserID * 100, UserID: in.UserID}, nil
		})

	userStamps.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.NewUserStamp) (sharedModels.UserStamp, error) {
			require.Equal(t, int64(11), in.SenderID)
			require.Equal(t, int64(12), in.ReceiverID)
			require.Equal(t, int64(1), in.StampID)
			return sharedModels.UserStamp{ID: 1, SenderID: in.SenderID, ReceiverID: in.ReceiverID, StampID: in.StampID}, nil
		})

	s := seed.NewSeeder(service.Repositories{
		Users:        users,
		WaterRecords: records,
		Stamps:       stamps,
		UserStamps:   userStamps,
	}, fakeHasher{}, logger.NewNop())

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Users, 2)
	require.Equal(t, "test_user1", res.Users[0].Name)
	require.Len(t, res.Stamps, 3)
	require.Equal(t, "💧", res.Stamps[0].ImageURL)
	require.Len(t, res.Records, 2)
	require.Len(t, res.UserStamps, 1)
}

func TestSeeder_StopsOnFirstError(t *testing.T) {
	ctrl := gomock.NewController(t)

	users := svcmocks.NewMockUsersRepo(ctrl)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(sharedModels.User{}, errors.New("db down"))

	s := seed.NewSeeder(service.Repositories{Users: users}, fakeHasher{}, logger.NewNop())

	_, err := s.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "test_user1")
}

func TestSeeder_HashError(t *testing.T) {
	s := seed.NewSeeder(service.Repositories{}, fakeHasher{err: errors.New("boom")}, logger.NewNop())

	_, err := s.Run(context.Background())
	require.Error(t, err)
}
