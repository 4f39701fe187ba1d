// Package models содержит входные структуры сервисного слоя,
// которые сервисы собирают из HTTP-запросов и передают в репозитории.
package models

import (
	"time"

	srvModels "github.com/IvanChernomyrdin/go-aquamate/internal/server/models"
)

// UserPatch — изменяемые поля профиля. nil — оставить прежнее значение.
type UserPatch struct {
	Name     *string
	Bio      *string
	X        *string
	PhotoURL *string
}

// Empty сообщает, что обновлять нечего.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Bio == nil && p.X == nil && p.PhotoURL == nil
}

// NewWaterRecord — запись о воде перед вставкой.
// WaterDate всегда серверное время.
type NewWaterRecord struct {
	UserID      int64
	WaterDate   time.Time
	WaterType   *string
	WaterAmount int
	Lat         float64
	Lon         float64
	Comment     *string
}

// WaterRecordPatch — изменяемые поля записи. nil — оставить прежнее значение.
type WaterRecordPatch struct {
	WaterDate   *time.Time
	WaterType   *string
	WaterAmount *int
	Lat         *float64
	Lon         *float64
	Comment     *string
	UserID      *int64
}

// NewUserStamp — отправка стампа. At проставляется сервером
// и используется и как created_at, и как updated_at.
type NewUserStamp struct {
	SenderID   int64
	ReceiverID int64
	StampID    int64
	At         time.Time
}

// NearbyQuery — параметры поиска соседей.
//
// LatestOnly=false: каждая запись соседа в квадрате даёт отдельную строку
// (пользователь может встретиться несколько раз).
// LatestOnly=true: у каждого соседа учитывается только последняя запись.
type NearbyQuery struct {
	Box           srvModels.BoundingBox
	ExcludeUserID int64
	LatestOnly    bool
}

// NewUserInput — регистрация пользователя. Password сырой, хэшируется в сервисе.
type NewUserInput struct {
	Name     string
	Password string
	Bio      *string
	X        *string
	PhotoURL *string
}
