// Package models содержит модели HTTP API, общие для сервера и CLI-клиента.
//
// Имена JSON-полей совпадают с контрактом мобильного клиента
// (user_id, water_date, after_stamp и т.д.), менять их нельзя.
package models

import "time"

// User — публичный профиль пользователя.
//
// Хэш пароля в API никогда не отдаётся.
type User struct {
	ID       int64   `json:"user_id"`
	Name     string  `json:"user_name"`
	Bio      *string `json:"bio"`
	X        *string `json:"X"` // аккаунт в X (Twitter)
	PhotoURL *string `json:"photo_url"`
}

// WaterRecord — одна запись о выпитой воде.
//
// Поля:
//   - WaterDate: время записи, всегда проставляется сервером при создании
//   - WaterType: произвольная метка напитка (вода, чай, ...)
//   - WaterAmount: объём в мл
//   - Lat/Lon: координаты, диапазон не проверяется
type WaterRecord struct {
	ID          int64     `json:"water_id"`
	WaterDate   time.Time `json:"water_date"`
	WaterType   *string   `json:"water_type"`
	WaterAmount int       `json:"water_amount"`
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	Comment     *string   `json:"comment"`
	UserID      int64     `json:"user_id"`
}

// Stamp — элемент справочника стампов.
// ImageURL может быть как URL, так и просто эмодзи.
type Stamp struct {
	ID       int64   `json:"stamp_id"`
	Message  *string `json:"message"`
	ImageURL string  `json:"image_url"`
}

// UserStamp — факт отправки стампа от одного пользователя другому.
//
// Replied (after_stamp) меняется только false -> true.
type UserStamp struct {
	ID         int64     `json:"user_stamp_id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	StampID    int64     `json:"stamp_id"`
	Replied    bool      `json:"after_stamp"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReceivedStamp — полученный стамп вместе с текстом/картинкой и именем отправителя.
type ReceivedStamp struct {
	UserStamp
	StampMessage  *string `json:"stamp_message"`
	StampImageURL string  `json:"stamp_image_url"`
	SenderName    string  `json:"sender_name"`
}

// NearbyUser — точка другого пользователя рядом с текущим.
type NearbyUser struct {
	UserID int64   `json:"user_id"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// ErrorResponse стандартный формат ошибки API.
//
//	{"error":"not found","message":"user not found"}
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
