package service

import (
	"context"
	"errors"
	"time"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service/models"
	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// WaterRecordsService — журнал выпитой воды.
type WaterRecordsService struct {
	records WaterRecordsRepo
	users   UsersRepo

	now func() time.Time
}

func NewWaterRecordsService(records WaterRecordsRepo, users UsersRepo) *WaterRecordsService {
	return &WaterRecordsService{records: records, users: users, now: time.Now}
}

// CreateRecordInput — поля запроса на создание записи.
// nil означает, что поле в запросе не передано.
type CreateRecordInput struct {
	WaterAmount *int
	Lat         *float64
	Lon         *float64
	WaterType   *string
	Comment     *string
}

// List — все записи пользователя, новые первыми. Существование пользователя не проверяется.
func (s *WaterRecordsService) List(ctx context.Context, userID int64) ([]sharedModels.WaterRecord, error) {
	return s.records.ListByUser(ctx, userID)
}

// ListToday — записи за текущие календарные сутки по локальному времени сервера.
func (s *WaterRecordsService) ListToday(ctx context.Context, userID int64) ([]sharedModels.WaterRecord, error) {
	from, to := dayBounds(s.now())
	return s.records.ListByUserBetween(ctx, userID, from, to)
}

// Latest — последняя запись пользователя или ErrWaterRecordsEmpty.
func (s *WaterRecordsService) Latest(ctx context.Context, userID int64) (sharedModels.WaterRecord, error) {
	w, err := s.records.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return sharedModels.WaterRecord{}, serr.ErrWaterRecordsEmpty
		}
		return sharedModels.WaterRecord{}, err
	}
	return w, nil
}

// Create проверяет обязательные поля (water_amount, lat, lon, именно в таком порядке),
// затем существование пользователя, и сохраняет запись с серверным временем.
//
// Значение 0 считается переданным: проверяется наличие поля, а не его "истинность".
func (s *WaterRecordsService) Create(ctx context.Context, userID int64, in CreateRecordInput) (sharedModels.WaterRecord, error) {
	switch {
	case in.WaterAmount == nil:
		return sharedModels.WaterRecord{}, &serr.MissingFieldError{Field: "water_amount"}
	case in.Lat == nil:
		return sharedModels.WaterRecord{}, &serr.MissingFieldError{Field: "lat"}
	case in.Lon == nil:
		return sharedModels.WaterRecord{}, &serr.MissingFieldError{Field: "lon"}
	}

	if err := ensureUser(ctx, s.users, userID); err != nil {
		return sharedModels.WaterRecord{}, err
	}

	w, err := s.records.Create(ctx, models.NewWaterRecord{
		UserID:      userID,
		WaterDate:   s.now(),
		WaterType:   in.WaterType,
		WaterAmount: *in.WaterAmount,
		Lat:         *in.Lat,
		Lon:         *in.Lon,
		Comment:     in.Comment,
	})
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return sharedModels.WaterRecord{}, serr.ErrUserNotFound
		}
		return sharedModels.WaterRecord{}, serr.ErrCreateRecordFailed
	}
	return w, nil
}

// Update перезаписывает переданные поля записи.
//
// Смена владельца (user_id) разрешена, но новый владелец должен существовать,
// иначе ErrUserNotFound и запись не меняется.
func (s *WaterRecordsService) Update(ctx context.Context, waterID int64, p models.WaterRecordPatch) (sharedModels.WaterRecord, error) {
	if p.UserID != nil {
		if err := ensureUser(ctx, s.users, *p.UserID); err != nil {
			return sharedModels.WaterRecord{}, err
		}
	}

	w, err := s.records.Update(ctx, waterID, p)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrUserNotFound):
			return sharedModels.WaterRecord{}, err
		case errors.Is(err, serr.ErrNotFound):
			return sharedModels.WaterRecord{}, serr.ErrWaterRecordNotFound
		}
		return sharedModels.WaterRecord{}, err
	}
	return w, nil
}

// dayBounds возвращает [полночь, следующая полночь) для даты t в её часовом поясе.
func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 0, 1)
}
