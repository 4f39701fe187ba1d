// @title           AquaMate API
// @version         1.0
// @description     Hydration tracking backend: users, water records with location,
// @description     stamps between users and nearby search.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:5000
// @BasePath  /api/v1
// @schemes http https
//
// Package main содержит точку входа серверного приложения AquaMate.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml (или -config);
//   - инициализацию подключения к базе данных и применение миграций;
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - запуск HTTP или HTTPS (если tls.enabled) с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/api"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/config"
	h "github.com/IvanChernomyrdin/go-aquamate/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/repository"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-aquamate/swagger/docs"
)

func main() {
	configPath := flag.String("config", "./configs/server.yaml", "path to server.yaml")
	flag.Parse()

	// до чтения конфига пишем в лог по умолчанию
	sugar := logger.NewHTTPLogger().Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		sugar.Fatal(err)
	}

	httpLogger := logger.New(logger.Options{
		Dir:    cfg.Log.Dir,
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	defer httpLogger.Sync()
	sugar = httpLogger.Sugar()

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// подключаем базу данных и катим миграции
	db, err := config.Init(ctx, cfg, httpLogger)
	if err != nil {
		sugar.Fatal(err)
	}
	defer db.Close()

	// создаём репы
	opt := repository.WithQueryTimeout(cfg.DB.QueryTimeout)
	repos := service.Repositories{
		Users:        repository.NewUsersRepository(db, opt),
		WaterRecords: repository.NewWaterRecordsRepository(db, opt),
		Stamps:       repository.NewStampsRepository(db, opt),
		UserStamps:   repository.NewUserStampsRepository(db, opt),
		Health:       repository.NewHealthRepository(db, opt),
	}
	// создаём сервис
	svc := service.NewServices(repos, cfg)
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger)
	// создаём роутер
	router := h.NewRouter(handler, cfg)

	//создаём сервер
	addr := cfg.Addr()

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}
	if cfg.TLS.Enabled {
		server.TLSConfig = &tls.Config{MinVersion: tlsVersion(cfg.TLS.MinVersion)}
	}

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		var err error
		if cfg.TLS.Enabled {
			sugar.Infof("server started on https://%s", addr)
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			sugar.Infof("server started on http://%s", addr)
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единная обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}

func tlsVersion(v string) uint16 {
	if v == "1.3" {
		return tls.VersionTLS13
	}
	return tls.VersionTLS12
}
