package service

import (
	"context"
	"errors"

	srvModels "github.com/IvanChernomyrdin/go-aquamate/internal/server/models"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service/models"
	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// NearbyService ищет пользователей рядом по последней записи о воде.
type NearbyService struct {
	records    WaterRecordsRepo
	boxDegrees float64
	latestOnly bool
}

// NewNearbyService: boxDegrees <= 0 заменяется на DefaultBoxDegrees.
func NewNearbyService(records WaterRecordsRepo, boxDegrees float64, latestOnly bool) *NearbyService {
	if boxDegrees <= 0 {
		boxDegrees = srvModels.DefaultBoxDegrees
	}
	return &NearbyService{records: records, boxDegrees: boxDegrees, latestOnly: latestOnly}
}

// Find берёт последнюю запись пользователя как центр и ищет записи других пользователей
// в квадрате ±boxDegrees.
//
// Ошибки:
//   - ErrNoWaterRecords: у пользователя нет ни одной записи
//   - ErrNoNearbyRecords: рядом никого
func (s *NearbyService) Find(ctx context.Context, userID int64) ([]sharedModels.NearbyUser, error) {
	center, err := s.records.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return nil, serr.ErrNoWaterRecords
		}
		return nil, err
	}

	found, err := s.records.FindInBox(ctx, models.NearbyQuery{
		Box:           srvModels.NewBoundingBox(center.Lat, center.Lon, s.boxDegrees),
		ExcludeUserID: userID,
		LatestOnly:    s.latestOnly,
	})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, serr.ErrNoNearbyRecords
	}
	return found, nil
}
