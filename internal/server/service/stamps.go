package service

import (
	"context"
	"errors"
	"time"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service/models"
	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// StampsService — справочник стампов и обмен ими между пользователями.
type StampsService struct {
	stamps     StampsRepo
	userStamps UserStampsRepo
	users      UsersRepo

	now func() time.Time
}

func NewStampsService(stamps StampsRepo, userStamps UserStampsRepo, users UsersRepo) *StampsService {
	return &StampsService{stamps: stamps, userStamps: userStamps, users: users, now: time.Now}
}

func (s *StampsService) List(ctx context.Context) ([]sharedModels.Stamp, error) {
	return s.stamps.List(ctx)
}

func (s *StampsService) Get(ctx context.Context, id int64) (sharedModels.Stamp, error) {
	st, err := s.stamps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return sharedModels.Stamp{}, serr.ErrStampNotFound
		}
		return sharedModels.Stamp{}, err
	}
	return st, nil
}

// Received — полученные пользователем стампы, новые первыми.
func (s *StampsService) Received(ctx context.Context, userID int64) ([]sharedModels.ReceivedStamp, error) {
	if err := ensureUser(ctx, s.users, userID); err != nil {
		return nil, err
	}
	return s.userStamps.ListByReceiver(ctx, userID)
}

// Sent — отправленные пользователем стампы, новые первыми.
func (s *StampsService) Sent(ctx context.Context, userID int64) ([]sharedModels.UserStamp, error) {
	if err := ensureUser(ctx, s.users, userID); err != nil {
		return nil, err
	}
	return s.userStamps.ListBySender(ctx, userID)
}

// Send отправляет стамп.
//
// Идентификатор <= 0 считается непереданным: 0 не может быть первичным ключом,
// поэтому запрос с ним отклоняется как ErrMissingRequiredFields.
func (s *StampsService) Send(ctx context.Context, senderID, receiverID, stampID int64) (sharedModels.UserStamp, error) {
	if senderID <= 0 || receiverID <= 0 || stampID <= 0 {
		return sharedModels.UserStamp{}, serr.ErrMissingRequiredFields
	}

	us, err := s.userStamps.Send(ctx, models.NewUserStamp{
		SenderID:   senderID,
		ReceiverID: receiverID,
		StampID:    stampID,
		At:         s.now(),
	})
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return sharedModels.UserStamp{}, err
		}
		return sharedModels.UserStamp{}, serr.ErrSendStampFailed
	}
	return us, nil
}

// Reply отмечает стамп как отвеченный. Повторный ответ даёт ErrAlreadyReplied.
func (s *StampsService) Reply(ctx context.Context, userStampID int64) (sharedModels.UserStamp, error) {
	us, err := s.userStamps.MarkReplied(ctx, userStampID, s.now())
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrAlreadyReplied):
			return sharedModels.UserStamp{}, err
		case errors.Is(err, serr.ErrNotFound):
			return sharedModels.UserStamp{}, serr.ErrUserStampNotFound
		}
		return sharedModels.UserStamp{}, serr.ErrReplyStampFailed
	}
	return us, nil
}
