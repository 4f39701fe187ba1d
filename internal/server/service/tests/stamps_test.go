package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service/models"
	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/utils"
)

func TestStampsService_ListAndGet(t *testing.T) {
	ctx := context.Background()
	svc, m := newServices(t, testConfig())

	stamps := []sharedModels.Stamp{{ID: 1, Message: utils.StrPtr("水分補給して！"), ImageURL: "💧"}}
	m.stamps.EXPECT().List(ctx).Return(stamps, nil)
	m.stamps.EXPECT().GetByID(ctx, int64(1)).Return(stamps[0], nil)
	m.stamps.EXPECT().GetByID(ctx, int64(9)).Return(sharedModels.Stamp{}, serr.ErrNotFound)

	list, err := svc.Stamps.List(ctx)
	require.NoError(t, err)
	require.Equal(t, stamps, list)

	s, err := svc.Stamps.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "💧", s.ImageURL)

	_, err = svc.Stamps.Get(ctx, 9)
	require.Equal(t, serr.ErrStampNotFound, err)
}

func TestStampsService_Send_MissingFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t, testConfig())

	for _, ids := range [][3]int64{{0, 2, 1}, {1, 0, 1}, {1, 2, 0}, {-1, 2, 1}} {
		_, err := svc.Stamps.Send(ctx, ids[0], ids[1], ids[2])
		require.Equal(t, serr.ErrMissingRequiredFields, err)
	}
}

func TestStampsService_Send_OK(t *testing.T) {
	ctx := context.Background()
	svc, m := newServices(t, testConfig())
	before := time.Now()

	m.userStamps.EXPECT().
		Send(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.NewUserStamp) (sharedModels.UserStamp, error) {
			require.Equal(t, models.NewUserStamp{SenderID: 1, ReceiverID: 2, StampID: 1, At: in.At}, in)
			require.False(t, in.At.Before(before))
			return sharedModels.UserStamp{ID: 1, SenderID: 1, ReceiverID: 2, StampID: 1, CreatedAt: in.At, UpdatedAt: in.At}, nil
		})

	us, err := svc.Stamps.Send(ctx, 1, 2, 1)
	require.NoError(t, err)
	require.False(t, us.Replied)
}

// not found от репозитория отдаётся как есть, остальное превращается в failed to send stamp
func TestStampsService_Send_Errors(t *testing.T) {
	ctx := context.Background()
	svc, m := newServices(t, testConfig())

	m.userStamps.EXPECT().Send(ctx, gomock.Any()).Return(sharedModels.UserStamp{}, serr.ErrSenderOrReceiverNotFound)
	m.userStamps.EXPECT().Send(ctx, gomock.Any()).Return(sharedModels.UserStamp{}, serr.ErrStampNotFound)
	m.userStamps.EXPECT().Send(ctx, gomock.Any()).Return(sharedModels.UserStamp{}, serr.ErrInternal)

	_, err := svc.Stamps.Send(ctx, 1, 99, 1)
	require.Equal(t, serr.ErrSenderOrReceiverNotFound, err)

	_, err = svc.Stamps.Send(ctx, 1, 2, 99)
	require.Equal(t, serr.ErrStampNotFound, err)

	_, err = svc.Stamps.Send(ctx, 1, 2, 1)
	require.Equal(t, serr.ErrSendStampFailed, err)
}

// второй ответ на тот же стамп отклоняется, флаг назад не откатывается
func TestStampsService_Reply_Twice(t *testing.T) {
	ctx := context.Background()
	svc, m := newServices(t, testConfig())

	gomock.InOrder(
		m.userStamps.EXPECT().MarkReplied(ctx, int64(1), gomock.Any()).
			Return(sharedModels.UserStamp{ID: 1, Replied: true}, nil),
		m.userStamps.EXPECT().MarkReplied(ctx, int64(1), gomock.Any()).
			Return(sharedModels.UserStamp{}, serr.ErrAlreadyReplied),
	)

	us, err := svc.Stamps.Reply(ctx, 1)
	require.NoError(t, err)
	require.True(t, us.Replied)

	_, err = svc.Stamps.Reply(ctx, 1)
	require.Equal(t, serr.ErrAlreadyReplied, err)
	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

func TestStampsService_Reply_Errors(t *testing.T) {
	ctx := context.Background()
	svc, m := newServices(t, testConfig())

	m.userStamps.EXPECT().MarkReplied(ctx, int64(5), gomock.Any()).Return(sharedModels.UserStamp{}, serr.ErrNotFound)
	m.userStamps.EXPECT().MarkReplied(ctx, int64(6), gomock.Any()).Return(sharedModels.UserStamp{}, serr.ErrInternal)

	_, err := svc.Stamps.Reply(ctx, 5)
	require.Equal(t, serr.ErrUserStampNotFound, err)

	_, err = svc.Stamps.Reply(ctx, 6)
	require.Equal(t, serr.ErrReplyStampFailed, err)
}

func TestStampsService_Received(t *testing.T) {
	ctx := context.Background()
	svc, m := newServices(t, testConfig())

	m.users.EXPECT().Exists(ctx, int64(2)).Return(true, nil)
	m.userStamps.EXPECT().ListByReceiver(ctx, int64(2)).Return([]sharedModels.ReceivedStamp{{SenderName: "test_user1"}}, nil)
	m.users.EXPECT().Exists(ctx, int64(3)).Return(false, nil)

	got, err := svc.Stamps.Received(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "test_user1", got[0].SenderName)

	_, err = svc.Stamps.Received(ctx, 3)
	require.Equal(t, serr.ErrUserNotFound, err)
}

func TestStampsService_Sent(t *testing.T) {
	ctx := context.Background()
	svc, m := newServices(t, testConfig())

	m.users.EXPECT().Exists(ctx, int64(1)).Return(true, nil)
	m.userStamps.EXPECT().ListBySender(ctx, int64(1)).Return([]sharedModels.UserStamp{{ID: 4}}, nil)
	m.users.EXPECT().Exists(ctx, int64(8)).Return(false, serr.ErrInternal)

	got, err := svc.Stamps.Sent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = svc.Stamps.Sent(ctx, 8)
	require.Equal(t, serr.ErrInternal, err)
}
