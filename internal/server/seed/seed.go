// Package seed заполняет пустую базу демонстрационными данными:
// два пользователя, три стампа, по записи о воде на каждого и один отправленный стамп.
//
// Всё пишется через репозитории, поэтому seed проходит те же проверки и
// маппинг ошибок, что и HTTP API.
package seed

import (
	"context"
	"fmt"
	"time"

	srvModels "github.com/IvanChernomyrdin/go-aquamate/internal/server/models"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service/models"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/logger"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/utils"
)

// DefaultPassword — пароль демо-пользователей.
const DefaultPassword = "password123"

// Токио, Сибуя
const (
	demoLat = 35.6762
	demoLon = 139.6503
)

type demoUser struct {
	name     string
	bio      string
	photoURL string
	record   demoRecord
}

type demoRecord struct {
	amount    int
	waterType string
	comment   string
}

var demoUsers = []demoUser{
	{
		name:     "test_user1",
		bio:      "水分補給を頑張ります！",
		photoURL: "https://example.com/avatar1.jpg",
		record:   demoRecord{amount: 500, waterType: "水", comment: "朝の水分補給"},
	},
	{
		name:     "test_user2",
		bio:      "健康第一！",
		photoURL: "https://example.com/avatar2.jpg",
		record:   demoRecord{amount: 300, waterType: "お茶", comment: "昼食後の水分補給"},
	},
}

// DemoStamps — справочник стампов (картинка — эмодзи).
var DemoStamps = []sharedModels.Stamp{
	{Message: utils.StrPtr("水分補給して！"), ImageURL: "💧"},
	{Message: utils.StrPtr("がんばって！"), ImageURL: "💪"},
	{Message: utils.StrPtr("おつかれさま！"), ImageURL: "🎉"},
}

// Result — что было создано.
type Result struct {
	Users      []sharedModels.User
	Stamps     []sharedModels.Stamp
	Records    []sharedModels.WaterRecord
	UserStamps []sharedModels.UserStamp
}

// Seeder создаёт демо-данные.
type Seeder struct {
	repos  service.Repositories
	hasher service.PasswordHasher
	log    *logger.HTTPLogger
	now    func() time.Time
}

func NewSeeder(repos service.Repositories, hasher service.PasswordHasher, log *logger.HTTPLogger) *Seeder {
	return &Seeder{repos: repos, hasher: hasher, log: log, now: time.Now}
}

// Run создаёт пользователей, стампы, записи о воде и отправляет первый стамп
// от первого пользователя второму. Запускать на пустой базе: повторный запуск
// создаст дубликаты.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	sugar := s.log.Sugar()
	var res Result

	hash, err := s.hasher.Hash(DefaultPassword)
	if err != nil {
		return res, fmt.Errorf("hash password: %w", err)
	}

	sugar.Info("creating sample users")
	for _, du := range demoUsers {
		u, err := s.repos.Users.Create(ctx, srvModels.NewUser{
			Name:         du.name,
			PasswordHash: hash,
			Bio:          utils.StrPtr(du.bio),
			PhotoURL:     utils.StrPtr(du.photoURL),
		})
		if err != nil {
			return res, fmt.Errorf("create user %s: %w", du.name, err)
		}
		res.Users = append(res.Users, u)
	}

	sugar.Info("creating sample stamps")
	for _, ds := range DemoStamps {
		st, err := s.repos.Stamps.Create(ctx, ds.Message, ds.ImageURL)
		if err != nil {
			return res, fmt.Errorf("create stamp %s: %w", ds.ImageURL, err)
		}
		res.Stamps = append(res.Stamps, st)
	}

	sugar.Info("creating sample water records")
	now := s.now()
	for i, du := range demoUsers {
		rec, err := s.repos.WaterRecords.Create(ctx, models.NewWaterRecord{
			UserID:      res.Users[i].ID,
			WaterDate:   now,
			WaterType:   utils.StrPtr(du.record.waterType),
			WaterAmount: du.record.amount,
			Lat:         demoLat,
			Lon:         demoLon,
			Comment:     utils.StrPtr(du.record.comment),
		})
		if err != nil {
			return res, fmt.Errorf("create water record for %s: %w", du.name, err)
		}
		res.Records = append(res.Records, rec)
	}

	sugar.Info("creating sample stamp records")
	us, err := s.repos.UserStamps.Send(ctx, models.NewUserStamp{
		SenderID:   res.Users[0].ID,
		ReceiverID: res.Users[1].ID,
		StampID:    res.Stamps[0].ID,
		At:         now,
	})
	if err != nil {
		return res, fmt.Errorf("send sample stamp: %w", err)
	}
	res.UserStamps = append(res.UserStamps, us)

	sugar.Infow("database initialization completed",
		"users", len(res.Users),
		"stamps", len(res.Stamps),
		"water_records", len(res.Records),
	)
	return res, nil
}
