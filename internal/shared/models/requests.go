package models

import "time"

// CreateUserRequest — запрос на создание пользователя.
//
// Используется в:
//
//	POST /users
type CreateUserRequest struct {
	Name     string  `json:"user_name"`
	Password string  `json:"password"`
	Bio      *string `json:"bio,omitempty"`
	X        *string `json:"X,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

// UpdateUserRequest — частичное обновление профиля.
//
// Используется в:
//
//	PUT /users/{id}
//
// Поля — указатели: nil означает "не передано, оставить как есть".
type UpdateUserRequest struct {
	Name     *string `json:"user_name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	X        *string `json:"X,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

// CreateWaterRecordRequest — новая запись о воде.
//
// Используется в:
//
//	POST /water_records/{user_id}
//
// WaterAmount, Lat и Lon обязательны, поэтому тоже указатели:
// так отличаем "не передано" от нуля.
type CreateWaterRecordRequest struct {
	WaterAmount *int     `json:"water_amount,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lon         *float64 `json:"lon,omitempty"`
	WaterType   *string  `json:"water_type,omitempty"`
	Comment     *string  `json:"comment,omitempty"`
}

// UpdateWaterRecordRequest — частичное обновление записи о воде.
//
// Используется в:
//
//	PUT /water_records/{water_id}
type UpdateWaterRecordRequest struct {
	WaterDate   *time.Time `json:"water_date,omitempty"`
	WaterType   *string    `json:"water_type,omitempty"`
	WaterAmount *int       `json:"water_amount,omitempty"`
	Lat         *float64   `json:"lat,omitempty"`
	Lon         *float64   `json:"lon,omitempty"`
	Comment     *string    `json:"comment,omitempty"`
	UserID      *int64     `json:"user_id,omitempty"`
}

// UpdateWaterRecordResponse — ответ на обновление: запись + сообщение.
type UpdateWaterRecordResponse struct {
	Message string `json:"message"`
	WaterRecord
}

// SendStampRequest — отправка стампа.
//
// Используется в:
//
//	POST /stamps/send
//
// Пример: {"sender_id": 1, "receiver_id": 2, "stamp_id": 1}
type SendStampRequest struct {
	SenderID   int64 `json:"sender_id"`
	ReceiverID int64 `json:"receiver_id"`
	StampID    int64 `json:"stamp_id"`
}

// HealthResponse — ответ /health.
type HealthResponse struct {
	Status string `json:"status"`
}
