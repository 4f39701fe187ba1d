// Package main заполняет базу AquaMate демонстрационными данными.
//
// Использует тот же server.yaml и .env, что и сервер; миграции применяются
// перед заполнением, если включены в конфиге.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/config"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/repository"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/seed"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/logger"
)

func main() {
	configPath := flag.String("config", "./configs/server.yaml", "path to server.yaml")
	flag.Parse()

	log := logger.New(logger.Options{File: "seed.log"})
	defer log.Sync()
	sugar := log.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		sugar.Fatal(err)
	}

	ctx := context.Background()

	db, err := config.Init(ctx, cfg, log)
	if err != nil {
		sugar.Fatal(err)
	}
	defer db.Close()

	repos := service.Repositories{
		Users:        repository.NewUsersRepository(db),
		WaterRecords: repository.NewWaterRecordsRepository(db),
		Stamps:       repository.NewStampsRepository(db),
		UserStamps:   repository.NewUserStampsRepository(db),
	}
	hasher := crypto.NewHasher(crypto.ParamsFromConfig(cfg.Password.Argon2))

	res, err := seed.NewSeeder(repos, hasher, log).Run(ctx)
	if err != nil {
		sugar.Fatal(err)
	}

	fmt.Println("Database initialization completed!")
	for _, u := range res.Users {
		fmt.Printf("  user %d: %s (password: %s)\n", u.ID, u.Name, seed.DefaultPassword)
	}
	for _, s := range res.Stamps {
		fmt.Printf("  stamp %d: %s %s\n", s.ID, s.ImageURL, *s.Message)
	}
}
